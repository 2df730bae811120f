// Package http provides http transport for community
package http

import (
	stdhttp "net/http"

	"reclaim/internal/modkit/httpkit"
	"reclaim/internal/services/api/community/domain"
	svc "reclaim/internal/services/api/community/service"

	"github.com/go-chi/chi/v5"
)

// Register mounts community endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/posts", h.listPosts)
	httpkit.PostJSON[domain.CreatePostInput](r, "/posts", h.createPost)
	httpkit.Get(r, "/posts/{postID}", h.getPost)
	httpkit.Post(r, "/posts/{postID}/like", h.toggleLike)
	httpkit.PostJSON[domain.CommentInput](r, "/posts/{postID}/comments", h.addComment)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /community/posts Community communityPosts
// @Summary Post feed, newest first
// @Tags Community
// @Produce json
// @Success 200 {array} domain.PostView "ok"
// @Router /community/posts [get]
func (h *handlers) listPosts(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ListPosts(r.Context(), uid)
}

// swagger:route POST /community/posts Community communityCreate
// @Summary Publish a post
// @Tags Community
// @Accept json
// @Produce json
// @Param payload body domain.CreatePostInput true "Post"
// @Success 200 {object} domain.PostView "ok"
// @Router /community/posts [post]
func (h *handlers) createPost(r *stdhttp.Request, in domain.CreatePostInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.CreatePost(r.Context(), uid, in)
}

// swagger:route GET /community/posts/{postID} Community communityGet
// @Summary One post with comments
// @Tags Community
// @Produce json
// @Param postID path string true "Post id"
// @Success 200 {object} domain.PostDetailView "ok"
// @Router /community/posts/{postID} [get]
func (h *handlers) getPost(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.GetPost(r.Context(), uid, chi.URLParam(r, "postID"))
}

// swagger:route POST /community/posts/{postID}/like Community communityLike
// @Summary Toggle a like
// @Tags Community
// @Produce json
// @Param postID path string true "Post id"
// @Success 200 {object} domain.LikeResult "ok"
// @Router /community/posts/{postID}/like [post]
func (h *handlers) toggleLike(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ToggleLike(r.Context(), uid, chi.URLParam(r, "postID"))
}

// swagger:route POST /community/posts/{postID}/comments Community communityComment
// @Summary Comment on a post
// @Tags Community
// @Accept json
// @Produce json
// @Param postID path string true "Post id"
// @Param payload body domain.CommentInput true "Comment"
// @Success 200 {object} domain.CommentView "ok"
// @Router /community/posts/{postID}/comments [post]
func (h *handlers) addComment(r *stdhttp.Request, in domain.CommentInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.AddComment(r.Context(), uid, chi.URLParam(r, "postID"), in)
}
