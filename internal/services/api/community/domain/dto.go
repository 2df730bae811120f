// Package domain holds DTOs for community http and service contracts
package domain

// CreatePostInput publishes a new post
type CreatePostInput struct {
	Title   string `json:"title" validate:"required,min=2,max=120" example:"What finally worked for me"`
	Content string `json:"content" validate:"required,min=1,max=10000" example:"Three things kept me on track..."`
}

// PostView is the read model for one post
type PostView struct {
	ID        string `json:"id" example:"7f0e2d1c-4a8f-4a4e-9d7b-5a2b8c1d9e30"`
	Title     string `json:"title" example:"What finally worked for me"`
	Content   string `json:"content" example:"Three things kept me on track..."`
	AuthorID  string `json:"author_id" example:"0d9adf80-93a6-4f8e-a97e-2f4b4f6e6d61"`
	Likes     int    `json:"likes" example:"4"`
	Liked     bool   `json:"liked" example:"true"`
	Comments  int    `json:"comments" example:"2"`
	CreatedAt string `json:"created_at" example:"2026-09-12T18:30:00Z"`
}

// CommentInput adds a comment to a post
type CommentInput struct {
	Content string `json:"content" validate:"required,min=1,max=2000" example:"Needed to read this today"`
}

// CommentView is the read model for one comment
type CommentView struct {
	ID        string `json:"id" example:"a1c7e9b2-0f3d-4e6a-8b5c-7d9e1f2a3b4c"`
	PostID    string `json:"post_id" example:"7f0e2d1c-4a8f-4a4e-9d7b-5a2b8c1d9e30"`
	AuthorID  string `json:"author_id" example:"0d9adf80-93a6-4f8e-a97e-2f4b4f6e6d61"`
	Content   string `json:"content" example:"Needed to read this today"`
	CreatedAt string `json:"created_at" example:"2026-09-12T19:00:00Z"`
}

// PostDetailView is one post with its comment thread
type PostDetailView struct {
	Post     PostView      `json:"post"`
	Comments []CommentView `json:"comments"`
}

// LikeResult reports the post's state after a like toggle
type LikeResult struct {
	Liked bool `json:"liked" example:"true"`
	Likes int  `json:"likes" example:"5"`
}
