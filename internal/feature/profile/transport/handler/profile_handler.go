// Package handler はprofileフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"devconnector_backend/internal/api"
	"devconnector_backend/internal/feature/profile/domain/entity"
	"devconnector_backend/internal/feature/profile/transport/http/dto"
	"devconnector_backend/internal/feature/profile/usecase"
	jwtmw "devconnector_backend/internal/platform/jwt"
)

// ProfileUsecase はプロフィール操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ProfileUsecase interface {
	ByUser(ctx context.Context, userID uint) (*entity.Profile, error)
	List(ctx context.Context) ([]entity.Profile, error)
	Upsert(ctx context.Context, userID uint, in entity.Profile) (*entity.Profile, error)
	DeleteAccount(ctx context.Context, userID uint) error
	AddExperience(ctx context.Context, userID uint, e entity.Experience) (*entity.Profile, error)
	RemoveExperience(ctx context.Context, userID uint, expID string) (*entity.Profile, error)
	AddEducation(ctx context.Context, userID uint, e entity.Education) (*entity.Profile, error)
	RemoveEducation(ctx context.Context, userID uint, eduID string) (*entity.Profile, error)
	GitHubRepos(ctx context.Context, username string) ([]entity.GitHubRepo, error)
}

// ProfileHandler はプロフィールのHTTPリクエストを処理します。
type ProfileHandler struct {
	uc ProfileUsecase
}

// NewProfileHandler はProfileHandlerの新しいインスタンスを生成します。
func NewProfileHandler(uc ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Me は GET /api/profile/me を処理します。
func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := jwtmw.MustUserID(c)
	if !ok {
		return
	}
	p, err := h.uc.ByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, api.MessageResponse{Msg: "There is no profile for this user"})
			return
		}
		h.fail(c, "get own profile", err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(p))
}

// Upsert は POST /api/profile を処理し、プロフィールを作成または更新します。
func (h *ProfileHandler) Upsert(c *gin.Context) {
	userID, ok := jwtmw.MustUserID(c)
	if !ok {
		return
	}
	var req dto.ProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationErrors(err, dto.ProfileMessages))
		return
	}

	p, err := h.uc.Upsert(c.Request.Context(), userID, req.ToEntity())
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			slog.Warn("profile upsert for deleted user", "user_id", userID)
			c.JSON(http.StatusNotFound, api.MessageResponse{Msg: "User not found"})
			return
		}
		h.fail(c, "upsert profile", err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(p))
}

// List は GET /api/profile を処理します。
func (h *ProfileHandler) List(c *gin.Context) {
	ps, err := h.uc.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list profiles", err)
		return
	}
	out := make([]dto.ProfileResponse, 0, len(ps))
	for i := range ps {
		out = append(out, dto.ToProfileResponse(&ps[i]))
	}
	c.JSON(http.StatusOK, out)
}

// ByUser は GET /api/profile/user/:user_id を処理します。
// 不正なIDは存在しないプロフィールと同じく404を返します。
func (h *ProfileHandler) ByUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, api.MessageResponse{Msg: "Profile not found"})
		return
	}
	p, err := h.uc.ByUser(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, api.MessageResponse{Msg: "Profile not found"})
			return
		}
		h.fail(c, "get profile by user", err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(p))
}

// DeleteAccount は DELETE /api/profile を処理し、投稿・プロフィール・ユーザーを削除します。
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := jwtmw.MustUserID(c)
	if !ok {
		return
	}
	if err := h.uc.DeleteAccount(c.Request.Context(), userID); err != nil {
		h.fail(c, "delete account", err)
		return
	}
	slog.Info("account deleted", "user_id", userID)
	c.JSON(http.StatusOK, api.MessageResponse{Msg: "User deleted"})
}

// AddExperience は PUT /api/profile/xp を処理します。
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, ok := jwtmw.MustUserID(c)
	if !ok {
		return
	}
	var req dto.ExperienceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationErrors(err, dto.ExperienceMessages))
		return
	}
	p, err := h.uc.AddExperience(c.Request.Context(), userID, req.ToEntity())
	h.writeProfile(c, "add experience", p, err)
}

// DeleteExperience は DELETE /api/profile/xp/:exp_id を処理します。
func (h *ProfileHandler) DeleteExperience(c *gin.Context) {
	userID, ok := jwtmw.MustUserID(c)
	if !ok {
		return
	}
	p, err := h.uc.RemoveExperience(c.Request.Context(), userID, c.Param("exp_id"))
	h.writeProfile(c, "delete experience", p, err)
}

// AddEducation は PUT /api/profile/edu を処理します。
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := jwtmw.MustUserID(c)
	if !ok {
		return
	}
	var req dto.EducationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationErrors(err, dto.EducationMessages))
		return
	}
	p, err := h.uc.AddEducation(c.Request.Context(), userID, req.ToEntity())
	h.writeProfile(c, "add education", p, err)
}

// DeleteEducation は DELETE /api/profile/edu/:edu_id を処理します。
func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	userID, ok := jwtmw.MustUserID(c)
	if !ok {
		return
	}
	p, err := h.uc.RemoveEducation(c.Request.Context(), userID, c.Param("edu_id"))
	h.writeProfile(c, "delete education", p, err)
}

// GitHubRepos は GET /api/profile/github/:username を処理します。
// GitHubが200以外を返した場合は404、通信エラーは502を返します。
func (h *ProfileHandler) GitHubRepos(c *gin.Context) {
	repos, err := h.uc.GitHubRepos(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, usecase.ErrGitHubUserNotFound) {
			c.JSON(http.StatusNotFound, api.MessageResponse{Msg: "No Github profile found"})
			return
		}
		slog.Error("github lookup failed", "error", err, "username", c.Param("username"))
		c.JSON(http.StatusBadGateway, api.MessageResponse{Msg: "GitHub is unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.ToRepoResponses(repos))
}

// writeProfile maps the result of a sub-document edit to a response.
func (h *ProfileHandler) writeProfile(c *gin.Context, op string, p *entity.Profile, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.ToProfileResponse(p))
	case errors.Is(err, usecase.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, api.MessageResponse{Msg: "There is no profile for this user"})
	case errors.Is(err, usecase.ErrExperienceNotFound):
		c.JSON(http.StatusNotFound, api.MessageResponse{Msg: "Experience not found"})
	case errors.Is(err, usecase.ErrEducationNotFound):
		c.JSON(http.StatusNotFound, api.MessageResponse{Msg: "Education not found"})
	default:
		h.fail(c, op, err)
	}
}

func (h *ProfileHandler) fail(c *gin.Context, op string, err error) {
	slog.Error(op+" failed", "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, api.InternalError)
}
