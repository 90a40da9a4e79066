// Package handler はpostsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"devconnector_backend/internal/api"
	"devconnector_backend/internal/feature/posts/domain/entity"
	"devconnector_backend/internal/feature/posts/transport/http/dto"
	"devconnector_backend/internal/feature/posts/usecase"
	jwtmw "devconnector_backend/internal/platform/jwt"
)

// PostsUsecase は投稿操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type PostsUsecase interface {
	Create(ctx context.Context, userID uint, text string) (*entity.Post, error)
	List(ctx context.Context) ([]entity.Post, error)
	Get(ctx context.Context, id uint) (*entity.Post, error)
	Delete(ctx context.Context, userID, postID uint) error
	Like(ctx context.Context, userID, postID uint) ([]entity.Like, error)
	Unlike(ctx context.Context, userID, postID uint) ([]entity.Like, error)
	AddComment(ctx context.Context, userID, postID uint, text string) ([]entity.Comment, error)
	DeleteComment(ctx context.Context, userID, postID uint, commentID string) ([]entity.Comment, error)
}

// PostsHandler は投稿・いいね・コメントのHTTPリクエストを処理します。
// すべてのルートはAuthRequiredの後ろにマウントされます。
type PostsHandler struct {
	uc PostsUsecase
}

// NewPostsHandler はPostsHandlerの新しいインスタンスを生成します。
func NewPostsHandler(uc PostsUsecase) *PostsHandler {
	return &PostsHandler{uc: uc}
}

// Create は POST /api/posts を処理します。
func (h *PostsHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.MustUserID(c)
	if !ok {
		return
	}
	var req dto.TextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationErrors(err, dto.TextMessages))
		return
	}
	p, err := h.uc.Create(c.Request.Context(), userID, req.Text)
	if err != nil {
		h.writeError(c, "create post", err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPostResponse(p))
}

// List は GET /api/posts を処理し、新しい順に返します。
func (h *PostsHandler) List(c *gin.Context) {
	ps, err := h.uc.List(c.Request.Context())
	if err != nil {
		h.writeError(c, "list posts", err)
		return
	}
	out := make([]dto.PostResponse, 0, len(ps))
	for i := range ps {
		out = append(out, dto.ToPostResponse(&ps[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get は GET /api/posts/:id を処理します。
func (h *PostsHandler) Get(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	p, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "get post", err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPostResponse(p))
}

// Delete は DELETE /api/posts/:id を処理します。投稿者本人のみ削除できます。
func (h *PostsHandler) Delete(c *gin.Context) {
	userID, ok := jwtmw.MustUserID(c)
	if !ok {
		return
	}
	id, ok := postID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), userID, id); err != nil {
		h.writeError(c, "delete post", err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Msg: "Post removed"})
}

// Like は PUT /api/posts/like/:id を処理します。
func (h *PostsHandler) Like(c *gin.Context) {
	userID, ok := jwtmw.MustUserID(c)
	if !ok {
		return
	}
	id, ok := postID(c)
	if !ok {
		return
	}
	likes, err := h.uc.Like(c.Request.Context(), userID, id)
	if err != nil {
		h.writeError(c, "like post", err)
		return
	}
	c.JSON(http.StatusOK, dto.Likes(likes))
}

// Unlike は PUT /api/posts/unlike/:id を処理します。
func (h *PostsHandler) Unlike(c *gin.Context) {
	userID, ok := jwtmw.MustUserID(c)
	if !ok {
		return
	}
	id, ok := postID(c)
	if !ok {
		return
	}
	likes, err := h.uc.Unlike(c.Request.Context(), userID, id)
	if err != nil {
		h.writeError(c, "unlike post", err)
		return
	}
	c.JSON(http.StatusOK, dto.Likes(likes))
}

// AddComment は POST /api/posts/comment/:id を処理します。
func (h *PostsHandler) AddComment(c *gin.Context) {
	userID, ok := jwtmw.MustUserID(c)
	if !ok {
		return
	}
	id, ok := postID(c)
	if !ok {
		return
	}
	var req dto.TextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationErrors(err, dto.TextMessages))
		return
	}
	comments, err := h.uc.AddComment(c.Request.Context(), userID, id, req.Text)
	if err != nil {
		h.writeError(c, "add comment", err)
		return
	}
	c.JSON(http.StatusOK, dto.Comments(comments))
}

// DeleteComment は DELETE /api/posts/comment/:id/:comment_id を処理します。
// コメント投稿者本人のみ削除できます。
func (h *PostsHandler) DeleteComment(c *gin.Context) {
	userID, ok := jwtmw.MustUserID(c)
	if !ok {
		return
	}
	id, ok := postID(c)
	if !ok {
		return
	}
	comments, err := h.uc.DeleteComment(c.Request.Context(), userID, id, c.Param("comment_id"))
	if err != nil {
		h.writeError(c, "delete comment", err)
		return
	}
	c.JSON(http.StatusOK, dto.Comments(comments))
}

// postID parses :id. A malformed id is reported like a missing post.
func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, api.MessageResponse{Msg: "Post not found"})
		return 0, false
	}
	return uint(id), true
}

func (h *PostsHandler) writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrPostNotFound):
		c.JSON(http.StatusNotFound, api.MessageResponse{Msg: "Post not found"})
	case errors.Is(err, usecase.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, api.MessageResponse{Msg: "Comment does not exist"})
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, api.MessageResponse{Msg: "User not found"})
	case errors.Is(err, usecase.ErrForbidden):
		slog.Warn(op+" forbidden", "path", c.Request.URL.Path, "remote_addr", c.ClientIP())
		c.JSON(http.StatusForbidden, api.MessageResponse{Msg: "User not authorized"})
	case errors.Is(err, usecase.ErrAlreadyLiked):
		c.JSON(http.StatusBadRequest, api.MessageResponse{Msg: "Post already liked"})
	case errors.Is(err, usecase.ErrNotLiked):
		c.JSON(http.StatusBadRequest, api.MessageResponse{Msg: "Post has not yet been liked"})
	default:
		slog.Error(op+" failed", "error", err, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, api.InternalError)
	}
}
