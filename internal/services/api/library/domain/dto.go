// Package domain holds DTOs for library http and service contracts
package domain

// AddBookInput registers a resource; the file itself lives in external storage
type AddBookInput struct {
	Title    string `json:"title" validate:"required,min=1,max=200" example:"Atomic Habits"`
	Author   string `json:"author" validate:"required,min=1,max=120" example:"James Clear"`
	PDFURL   string `json:"pdf_url" validate:"required,url,max=2048" example:"https://cdn.example.com/books/atomic-habits.pdf"`
	CoverURL string `json:"cover_url,omitempty" validate:"omitempty,url,max=2048" example:"https://cdn.example.com/covers/atomic-habits.jpg"`
}

// BookView is the read model for one library entry
type BookView struct {
	ID         string `json:"id" example:"c4d5e6f7-1a2b-3c4d-5e6f-708192a3b4c5"`
	Title      string `json:"title" example:"Atomic Habits"`
	Author     string `json:"author" example:"James Clear"`
	PDFURL     string `json:"pdf_url" example:"https://cdn.example.com/books/atomic-habits.pdf"`
	CoverURL   string `json:"cover_url,omitempty" example:"https://cdn.example.com/covers/atomic-habits.jpg"`
	UploadedBy string `json:"uploaded_by" example:"0d9adf80-93a6-4f8e-a97e-2f4b4f6e6d61"`
	CreatedAt  string `json:"created_at" example:"2026-09-01T09:00:00Z"`
}
