package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillshare/skillshare-api/internal/api/metrics"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

// UserHandler handles HTTP requests for profiles and the follow graph.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Address   *string `json:"address"`
	Birthday  *string `json:"birthday"`
	AvatarURL *string `json:"avatar_url"`
	Bio       *string `json:"bio"`
	Password  *string `json:"password" validate:"omitempty,min=6"`
}

type followResponse struct {
	TargetID  string `json:"target_id"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
}

// List returns all users in their public view.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns one user's public view.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// GetPrivate returns the full profile of the authenticated owner.
//
// @Summary      Get own private profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users/{id}/private [get]
func (h *UserHandler) GetPrivate(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetPrivate(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update mutates the authenticated owner's profile.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.userService.Update(c.Request().Context(), userID, c.Param("id"), ports.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Birthday:  req.Birthday,
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes the authenticated owner's account.
//
// @Summary      Delete own account
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Follow makes the authenticated user follow the target.
//
// @Summary      Follow a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Target user id"
// @Success      200  {object}  followResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/follow [post]
func (h *UserHandler) Follow(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	result, err := h.userService.Follow(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.FollowMutationsTotal.WithLabelValues("follow").Inc()
	return c.JSON(http.StatusOK, followResponse{
		TargetID:  result.TargetID,
		Followers: result.Followers,
		Following: result.Following,
	})
}

// Unfollow removes the authenticated user's follow of the target.
//
// @Summary      Unfollow a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Target user id"
// @Success      200  {object}  followResponse
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/unfollow [post]
func (h *UserHandler) Unfollow(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	result, err := h.userService.Unfollow(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.FollowMutationsTotal.WithLabelValues("unfollow").Inc()
	return c.JSON(http.StatusOK, followResponse{
		TargetID:  result.TargetID,
		Followers: result.Followers,
		Following: result.Following,
	})
}

// Followers lists the target's followers as public profiles.
//
// @Summary      List a user's followers
// @Tags         users
// @Produce      json
// @Param        id   path     string  true  "User id"
// @Success      200  {array}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/followers [get]
func (h *UserHandler) Followers(c echo.Context) error {
	users, err := h.userService.Followers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Following lists the users the target follows as public profiles.
//
// @Summary      List who a user follows
// @Tags         users
// @Produce      json
// @Param        id   path     string  true  "User id"
// @Success      200  {array}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/following [get]
func (h *UserHandler) Following(c echo.Context) error {
	users, err := h.userService.Following(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
