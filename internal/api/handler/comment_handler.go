package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillshare/skillshare-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for post comments.
type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type commentRequest struct {
	Content string `json:"content" validate:"required"`
}

// ListByPost returns the comments for a post, oldest first.
//
// @Summary      List comments on a post
// @Tags         comments
// @Produce      json
// @Param        id   path     string  true  "Post id"
// @Success      200  {array}  domain.Comment
// @Failure      404  {object} map[string]string
// @Router       /posts/{id}/comments [get]
func (h *CommentHandler) ListByPost(c echo.Context) error {
	comments, err := h.commentService.ListByPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Create adds a comment by the authenticated user.
//
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Post id"
// @Param        body  body      commentRequest  true  "Comment content"
// @Success      201   {object}  domain.Comment
// @Failure      404   {object}  map[string]string
// @Router       /posts/{id}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	comment, err := h.commentService.Create(c.Request().Context(), userID, c.Param("id"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// Update edits a comment authored by the authenticated user.
//
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      string          true  "Post id"
// @Param        commentId  path      string          true  "Comment id"
// @Param        body       body      commentRequest  true  "Comment content"
// @Success      200        {object}  domain.Comment
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /posts/{id}/comments/{commentId} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	comment, err := h.commentService.Update(c.Request().Context(), userID, c.Param("id"), c.Param("commentId"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

// Delete removes a comment. The comment author and the post owner may
// both delete.
//
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id         path  string  true  "Post id"
// @Param        commentId  path  string  true  "Comment id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/comments/{commentId} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.commentService.Delete(c.Request().Context(), userID, c.Param("id"), c.Param("commentId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
