package redis

import (
	"context"
	"errors"
	"testing"

	"devconnector_backend/internal/platform/config"
)

func TestNewRedisClient_NotConfigured(t *testing.T) {
	t.Parallel()

	rdb, err := NewRedisClient(context.Background(), &config.Config{})

	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if rdb != nil {
		t.Error("expected nil client")
	}
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	t.Parallel()

	// 予約済みポート（discard）には Redis がいない前提
	rdb, err := NewRedisClient(context.Background(), &config.Config{RedisAddr: "127.0.0.1:9"})

	if err == nil {
		t.Fatal("expected ping error")
	}
	if rdb != nil {
		t.Error("expected nil client")
	}
}
