package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pulse-backend/internal/auth"
	"pulse-backend/internal/database"
	"pulse-backend/internal/models"
)

// listPostsHandler handles GET /api/posts: the full feed, newest first
func listPostsHandler(c echo.Context) error {
	posts, err := postRepo.List()
	if err != nil {
		return serverError(c, "list posts error", err)
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	return c.JSON(http.StatusOK, posts)
}

// createPostHandler handles POST /api/posts
func createPostHandler(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	if req.Title == "" && req.Body == "" {
		return message(c, http.StatusBadRequest, "Post cannot be empty")
	}

	user := auth.GetUserFromContext(c)

	post := &models.Post{
		AuthorID: user.ID,
		Title:    req.Title,
		Body:     req.Body,
	}

	if err := postRepo.Create(post); err != nil {
		return serverError(c, "create post error", err)
	}

	created, err := postRepo.GetByID(post.ID)
	if err != nil {
		return serverError(c, "create post error", err)
	}

	return c.JSON(http.StatusCreated, created)
}

// updatePostVisibilityHandler handles PATCH /api/posts/:id/visibility.
// Only the author may toggle their post.
func updatePostVisibilityHandler(c echo.Context) error {
	post, err := postRepo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrPostNotFound) {
			return message(c, http.StatusNotFound, "Post not found")
		}
		return serverError(c, "get post error", err)
	}

	user := auth.GetUserFromContext(c)
	if post.AuthorID != user.ID {
		return message(c, http.StatusForbidden, "Cannot modify another employee's post")
	}

	var req models.VisibilityRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := postRepo.SetHidden(post.ID, req.Hidden); err != nil {
		return serverError(c, "update post visibility error", err)
	}

	updated, err := postRepo.GetByID(post.ID)
	if err != nil {
		return serverError(c, "update post visibility error", err)
	}

	return c.JSON(http.StatusOK, updated)
}

// deletePostHandler handles DELETE /api/posts/:id. The author or a manager
// may delete.
func deletePostHandler(c echo.Context) error {
	post, err := postRepo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrPostNotFound) {
			return message(c, http.StatusNotFound, "Post not found")
		}
		return serverError(c, "get post error", err)
	}

	user := auth.GetUserFromContext(c)
	if post.AuthorID != user.ID && !user.IsManager() {
		return message(c, http.StatusForbidden, "Cannot delete another employee's post")
	}

	if err := postRepo.Delete(post.ID); err != nil {
		return serverError(c, "delete post error", err)
	}

	return message(c, http.StatusOK, "Post deleted")
}
