package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"devconnector_backend/internal/feature/posts/domain/entity"
	"devconnector_backend/internal/shared/authz"
)

// PostRepository は投稿の永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	// List は新しい順に全投稿を返します。
	List(ctx context.Context) ([]entity.Post, error)
	// FindByID は投稿を返します。存在しない場合はErrPostNotFound。
	FindByID(ctx context.Context, id uint) (*entity.Post, error)
	Delete(ctx context.Context, id uint) error
	SaveLikes(ctx context.Context, p *entity.Post) error
	SaveComments(ctx context.Context, p *entity.Post) error
}

// AuthorLookup resolves the name and avatar copied onto posts and comments.
type AuthorLookup interface {
	// FindAuthor returns ErrUserNotFound when the user no longer exists.
	FindAuthor(ctx context.Context, userID uint) (entity.Author, error)
}

// postsUsecase は投稿・いいね・コメント操作のユースケースを実装します。
type postsUsecase struct {
	posts   PostRepository
	authors AuthorLookup

	newID func() string
	now   func() time.Time
}

// NewPostsUsecase はpostsUsecaseの新しいインスタンスを生成します。
func NewPostsUsecase(posts PostRepository, authors AuthorLookup) *postsUsecase {
	return &postsUsecase{
		posts:   posts,
		authors: authors,
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

// Create publishes text as userID.
func (u *postsUsecase) Create(ctx context.Context, userID uint, text string) (*entity.Post, error) {
	author, err := u.authors.FindAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := &entity.Post{
		UserID:   userID,
		Text:     strings.TrimSpace(text),
		Name:     author.Name,
		Avatar:   author.Avatar,
		Likes:    []entity.Like{},
		Comments: []entity.Comment{},
	}
	if err := u.posts.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

// List returns all posts, newest first.
func (u *postsUsecase) List(ctx context.Context) ([]entity.Post, error) {
	return u.posts.List(ctx)
}

// Get returns a single post.
func (u *postsUsecase) Get(ctx context.Context, id uint) (*entity.Post, error) {
	return u.posts.FindByID(ctx, id)
}

// Delete removes a post. Only its author may do so.
func (u *postsUsecase) Delete(ctx context.Context, userID, postID uint) error {
	p, err := u.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if !authz.IsOwner(userID, p.UserID) {
		return ErrForbidden
	}
	return u.posts.Delete(ctx, postID)
}

// Like adds userID's like and returns the likes. Liking one's own post
// changes nothing.
func (u *postsUsecase) Like(ctx context.Context, userID, postID uint) ([]entity.Like, error) {
	p, err := u.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if authz.IsOwner(userID, p.UserID) {
		return p.Likes, nil
	}
	if !p.Like(userID) {
		return nil, ErrAlreadyLiked
	}
	if err := u.posts.SaveLikes(ctx, p); err != nil {
		return nil, fmt.Errorf("save likes: %w", err)
	}
	return p.Likes, nil
}

// Unlike removes userID's like and returns the remaining likes.
func (u *postsUsecase) Unlike(ctx context.Context, userID, postID uint) ([]entity.Like, error) {
	p, err := u.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !p.Unlike(userID) {
		return nil, ErrNotLiked
	}
	if err := u.posts.SaveLikes(ctx, p); err != nil {
		return nil, fmt.Errorf("save likes: %w", err)
	}
	return p.Likes, nil
}

// AddComment adds a comment by userID and returns all comments.
func (u *postsUsecase) AddComment(ctx context.Context, userID, postID uint, text string) ([]entity.Comment, error) {
	p, err := u.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	author, err := u.authors.FindAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.AddComment(entity.Comment{
		ID:     u.newID(),
		UserID: userID,
		Text:   strings.TrimSpace(text),
		Name:   author.Name,
		Avatar: author.Avatar,
		Date:   u.now().UTC(),
	})
	if err := u.posts.SaveComments(ctx, p); err != nil {
		return nil, fmt.Errorf("save comments: %w", err)
	}
	return p.Comments, nil
}

// DeleteComment removes a comment. Only the comment's author may do so.
func (u *postsUsecase) DeleteComment(ctx context.Context, userID, postID uint, commentID string) ([]entity.Comment, error) {
	p, err := u.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	c, ok := p.Comment(commentID)
	if !ok {
		return nil, ErrCommentNotFound
	}
	if !authz.IsOwner(userID, c.UserID) {
		return nil, ErrForbidden
	}
	p.RemoveComment(commentID)
	if err := u.posts.SaveComments(ctx, p); err != nil {
		return nil, fmt.Errorf("save comments: %w", err)
	}
	return p.Comments, nil
}
