// Package ratelimiter は外部API呼び出しとクライアント単位のリクエスト頻度を制限します。
package ratelimiter

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"devconnector_backend/internal/api"
)

// RateLimiterInterface は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	Wait(ctx context.Context) error
}

// RateLimiter は、外部API呼び出しの頻度をトークンバケットで制限します。
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter は1秒あたり rps 回、最大 burst 回まで許可するRateLimiterを生成します。
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Wait はトークンが得られるまで待機します。ctx がキャンセルされた場合はエラーを返します。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	return rl.limiter.Wait(ctx)
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// PerClient limits requests per client IP with one token bucket each.
type PerClient struct {
	rpm     int
	mu      sync.Mutex
	clients map[string]*clientLimiter
	now     func() time.Time
}

// NewPerClient creates a limiter allowing rpm requests per minute per client.
func NewPerClient(rpm int) *PerClient {
	if rpm <= 0 {
		rpm = 10
	}
	return &PerClient{
		rpm:     rpm,
		clients: map[string]*clientLimiter{},
		now:     time.Now,
	}
}

// Allow reports whether the client identified by key may proceed.
func (p *PerClient) Allow(key string) bool {
	return p.get(key).AllowN(p.now(), 1)
}

// Middleware rejects requests with 429 once the caller's bucket is empty.
func (p *PerClient) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !p.Allow(c.ClientIP()) {
			slog.Warn("rate limit exceeded", "path", c.FullPath(), "remote_addr", c.ClientIP())
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.MessageResponse{Msg: "Too many requests"})
			return
		}
		c.Next()
	}
}

func (p *PerClient) get(key string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if cl, ok := p.clients[key]; ok {
		cl.lastSeen = now
		return cl.limiter
	}

	l := rate.NewLimiter(rate.Every(time.Minute/time.Duration(p.rpm)), p.rpm)
	p.clients[key] = &clientLimiter{limiter: l, lastSeen: now}
	p.gcLocked(now)
	return l
}

// gcLocked drops clients idle for ten minutes once the map grows large.
func (p *PerClient) gcLocked(now time.Time) {
	if len(p.clients) < 1000 {
		return
	}
	cutoff := now.Add(-10 * time.Minute)
	for key, cl := range p.clients {
		if cl.lastSeen.Before(cutoff) {
			delete(p.clients, key)
		}
	}
}
