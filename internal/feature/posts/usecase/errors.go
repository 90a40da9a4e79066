// Package usecase implements the business logic for posts.
package usecase

import "errors"

var (
	// ErrPostNotFound is returned when no post has the requested id.
	ErrPostNotFound = errors.New("post not found")

	// ErrCommentNotFound is returned when the post has no comment with the requested id.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrUserNotFound is returned when the acting user no longer exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrForbidden is returned when the actor does not own the post or comment.
	ErrForbidden = errors.New("user not authorized")

	// ErrAlreadyLiked is returned when the actor already likes the post.
	ErrAlreadyLiked = errors.New("post already liked")

	// ErrNotLiked is returned when the actor unlikes a post they do not like.
	ErrNotLiked = errors.New("post has not yet been liked")
)
