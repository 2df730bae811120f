// Package service contains community workflows
package service

import (
	"context"
	"time"

	"reclaim/internal/modkit/repokit"
	"reclaim/internal/services/api/community/domain"
	"reclaim/internal/services/api/community/repo"

	"github.com/google/uuid"
)

// Service defines the community service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the community service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a community service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("community.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("community.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// ListPosts returns the feed, newest first
func (s *Svc) ListPosts(ctx context.Context, userID string) ([]domain.PostView, error) {
	recs, err := s.Repo.ListPosts(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PostView, 0, len(recs))
	for _, rec := range recs {
		out = append(out, postView(rec))
	}
	return out, nil
}

// CreatePost publishes a post authored by the caller
func (s *Svc) CreatePost(ctx context.Context, userID string, in domain.CreatePostInput) (domain.PostView, error) {
	rec := repo.PostRecord{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Content:   in.Content,
		AuthorID:  userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.InsertPost(ctx, rec); err != nil {
		return domain.PostView{}, err
	}
	return postView(rec), nil
}

// GetPost returns one post with its comment thread
func (s *Svc) GetPost(ctx context.Context, userID, postID string) (domain.PostDetailView, error) {
	rec, err := s.Repo.GetPost(ctx, userID, postID)
	if err != nil {
		return domain.PostDetailView{}, err
	}
	comments, err := s.Repo.ListComments(ctx, postID)
	if err != nil {
		return domain.PostDetailView{}, err
	}
	out := domain.PostDetailView{Post: postView(rec), Comments: make([]domain.CommentView, 0, len(comments))}
	for _, c := range comments {
		out.Comments = append(out.Comments, commentView(c))
	}
	return out, nil
}

// ToggleLike flips the caller's like on a post and reports the new count
func (s *Svc) ToggleLike(ctx context.Context, userID, postID string) (domain.LikeResult, error) {
	if _, err := s.Repo.GetPost(ctx, userID, postID); err != nil {
		return domain.LikeResult{}, err
	}
	liked, err := s.Repo.HasLiked(ctx, postID, userID)
	if err != nil {
		return domain.LikeResult{}, err
	}
	if liked {
		if _, err := s.Repo.DeleteLike(ctx, postID, userID); err != nil {
			return domain.LikeResult{}, err
		}
	} else {
		if _, err := s.Repo.InsertLike(ctx, postID, userID); err != nil {
			return domain.LikeResult{}, err
		}
	}
	n, err := s.Repo.CountLikes(ctx, postID)
	if err != nil {
		return domain.LikeResult{}, err
	}
	return domain.LikeResult{Liked: !liked, Likes: n}, nil
}

// AddComment appends a comment to a post
func (s *Svc) AddComment(ctx context.Context, userID, postID string, in domain.CommentInput) (domain.CommentView, error) {
	if _, err := s.Repo.GetPost(ctx, userID, postID); err != nil {
		return domain.CommentView{}, err
	}
	rec := repo.CommentRecord{
		ID:        uuid.NewString(),
		PostID:    postID,
		AuthorID:  userID,
		Content:   in.Content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.InsertComment(ctx, rec); err != nil {
		return domain.CommentView{}, err
	}
	return commentView(rec), nil
}

func postView(rec repo.PostRecord) domain.PostView {
	return domain.PostView{
		ID:        rec.ID,
		Title:     rec.Title,
		Content:   rec.Content,
		AuthorID:  rec.AuthorID,
		Likes:     rec.Likes,
		Liked:     rec.Liked,
		Comments:  rec.Comments,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
	}
}

func commentView(rec repo.CommentRecord) domain.CommentView {
	return domain.CommentView{
		ID:        rec.ID,
		PostID:    rec.PostID,
		AuthorID:  rec.AuthorID,
		Content:   rec.Content,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
	}
}
