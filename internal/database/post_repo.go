package database

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"pulse-backend/internal/models"
)

var ErrPostNotFound = errors.New("post not found")

// PostRepo handles feed post database operations
type PostRepo struct{}

// NewPostRepo creates a new post repository
func NewPostRepo() *PostRepo {
	return &PostRepo{}
}

// Create creates a new post, assigning it a fresh ID
func (r *PostRepo) Create(p *models.Post) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	_, err := DB.Exec(`
		INSERT INTO posts (id, author_id, title, body, hidden)
		VALUES (?, ?, ?, ?, ?)
	`, p.ID, p.AuthorID, p.Title, p.Body, p.Hidden)
	return err
}

// GetByID retrieves a post by ID
func (r *PostRepo) GetByID(id string) (*models.Post, error) {
	p := &models.Post{}

	err := DB.QueryRow(`
		SELECT p.id, p.author_id, u.name, p.title, p.body, p.hidden, p.created_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = ?
	`, id).Scan(&p.ID, &p.AuthorID, &p.AuthorName, &p.Title, &p.Body, &p.Hidden, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

// List retrieves the full feed, newest first
func (r *PostRepo) List() ([]*models.Post, error) {
	rows, err := DB.Query(`
		SELECT p.id, p.author_id, u.name, p.title, p.body, p.hidden, p.created_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		p := &models.Post{}
		err := rows.Scan(&p.ID, &p.AuthorID, &p.AuthorName, &p.Title, &p.Body, &p.Hidden, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

// SetHidden sets a post's visibility flag
func (r *PostRepo) SetHidden(id string, hidden bool) error {
	result, err := DB.Exec("UPDATE posts SET hidden = ? WHERE id = ?", hidden, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPostNotFound
	}

	return nil
}

// Delete deletes a post
func (r *PostRepo) Delete(id string) error {
	result, err := DB.Exec("DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPostNotFound
	}

	return nil
}
