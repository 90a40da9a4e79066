// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"devconnector_backend/internal/api"
	"devconnector_backend/internal/feature/auth/domain/entity"
	"devconnector_backend/internal/feature/auth/transport/http/dto"
	"devconnector_backend/internal/feature/auth/usecase"
	jwtmw "devconnector_backend/internal/platform/jwt"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、そのユーザーのJWTトークンを返します。
	Register(ctx context.Context, name, email, password string) (string, error)
	// Login はユーザーを認証し、成功時にJWTトークンを返します。
	Login(ctx context.Context, email, password string) (string, error)
	// CurrentUser は認証済みユーザーを返します。
	CurrentUser(ctx context.Context, id uint) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400（errors配列）を返却
// - メール重複時は400 "User already exists" を返却
// - 成功時はJWTトークン付きで200を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ValidationErrors(err, dto.RegisterMessages))
		return
	}

	token, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("register rejected: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.Errors("User already exists"))
		case errors.Is(err, usecase.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Errors: []api.FieldError{{
				Msg: dto.RegisterMessages["password"], Param: "password",
			}}})
		case errors.Is(err, usecase.ErrPasswordTooLong):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Errors: []api.FieldError{{
				Msg: dto.PasswordTooLongMessage, Param: "password",
			}}})
		default:
			slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.InternalError)
		}
		return
	}

	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 認証失敗時は400 "Invalid credentials" を返却（ユーザー列挙攻撃を防止するため理由は公開しない）
// - 認証成功時はJWTトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ValidationErrors(err, dto.LoginMessages))
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.Errors("Invalid credentials"))
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.InternalError)
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

// CurrentUser は GET /api/auth を処理し、パスワードを除いたユーザー情報を返します。
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, ok := jwtmw.MustUserID(c)
	if !ok {
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.MessageResponse{Msg: "User not found"})
			return
		}
		slog.Error("failed to load current user", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.InternalError)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
