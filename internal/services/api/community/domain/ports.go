package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	ListPosts(ctx context.Context, userID string) ([]PostView, error)
	CreatePost(ctx context.Context, userID string, in CreatePostInput) (PostView, error)
	GetPost(ctx context.Context, userID, postID string) (PostDetailView, error)
	ToggleLike(ctx context.Context, userID, postID string) (LikeResult, error)
	AddComment(ctx context.Context, userID, postID string, in CommentInput) (CommentView, error)
}
