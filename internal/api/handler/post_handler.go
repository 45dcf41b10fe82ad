package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

// PostHandler handles HTTP requests for posts.
type PostHandler struct {
	postService ports.PostService
}

func NewPostHandler(postService ports.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

type createPostRequest struct {
	Title            string                   `json:"title"   validate:"required"`
	Content          string                   `json:"content" validate:"required"`
	Type             string                   `json:"type"    validate:"omitempty,oneof=general progress achievement"`
	Media            []domain.MediaItem       `json:"media"`
	ProgressTemplate *domain.ProgressTemplate `json:"progress_template"`
	Achievements     []domain.Achievement     `json:"achievements"`
}

type updatePostRequest struct {
	Title            *string                  `json:"title"`
	Content          *string                  `json:"content"`
	Media            []domain.MediaItem       `json:"media"`
	ProgressTemplate *domain.ProgressTemplate `json:"progress_template"`
	Achievements     []domain.Achievement     `json:"achievements"`
}

// List returns posts newest first, optionally filtered by author.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Param        user_id  query    string  false  "Filter by author"
// @Success      200      {array}  domain.Post
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.postService.List(c.Request().Context(), c.QueryParam("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get returns a single post.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.postService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Create adds a post authored by the authenticated user.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  domain.Post
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	post, err := h.postService.Create(c.Request().Context(), userID, ports.CreatePostInput{
		Title:            req.Title,
		Content:          req.Content,
		Type:             req.Type,
		Media:            req.Media,
		ProgressTemplate: req.ProgressTemplate,
		Achievements:     req.Achievements,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// Update mutates a post owned by the authenticated user.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Fields to update"
// @Success      200   {object}  domain.Post
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	post, err := h.postService.Update(c.Request().Context(), userID, c.Param("id"), ports.UpdatePostInput{
		Title:            req.Title,
		Content:          req.Content,
		Media:            req.Media,
		ProgressTemplate: req.ProgressTemplate,
		Achievements:     req.Achievements,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete removes a post owned by the authenticated user.
//
// @Summary      Delete a post
// @Tags         posts
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.postService.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
