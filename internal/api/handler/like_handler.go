package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillshare/skillshare-api/internal/core/ports"
)

// LikeHandler handles HTTP requests for post likes.
type LikeHandler struct {
	likeService ports.LikeService
}

func NewLikeHandler(likeService ports.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// ListByPost returns the likes on a post.
//
// @Summary      List likes on a post
// @Tags         likes
// @Produce      json
// @Param        id   path     string  true  "Post id"
// @Success      200  {array}  domain.Like
// @Failure      404  {object} map[string]string
// @Router       /posts/{id}/likes [get]
func (h *LikeHandler) ListByPost(c echo.Context) error {
	likes, err := h.likeService.ListByPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, likes)
}

// Add records the authenticated user's like on a post. Liking twice
// returns the existing like.
//
// @Summary      Like a post
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  domain.Like
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/likes [post]
func (h *LikeHandler) Add(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	like, err := h.likeService.Add(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, like)
}

// Remove deletes the authenticated user's like; removing an absent like
// is a no-op.
//
// @Summary      Unlike a post
// @Tags         likes
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id"
// @Success      204
// @Router       /posts/{id}/likes [delete]
func (h *LikeHandler) Remove(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.likeService.Remove(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
