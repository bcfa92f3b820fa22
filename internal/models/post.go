package models

import "time"

// Post represents a social feed entry
type Post struct {
	ID         string    `json:"id"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Hidden     bool      `json:"hidden"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreatePostRequest represents the request body for creating a post
type CreatePostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// VisibilityRequest represents the request body for a visibility toggle
type VisibilityRequest struct {
	Hidden bool `json:"hidden"`
}
