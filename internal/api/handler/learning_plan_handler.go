package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

// LearningPlanHandler handles HTTP requests for learning plans.
type LearningPlanHandler struct {
	planService ports.LearningPlanService
}

func NewLearningPlanHandler(planService ports.LearningPlanService) *LearningPlanHandler {
	return &LearningPlanHandler{planService: planService}
}

type createLearningPlanRequest struct {
	Title       string          `json:"title" validate:"required"`
	Thumbnail   string          `json:"thumbnail"`
	Skill       string          `json:"skill" validate:"required"`
	SkillLevel  string          `json:"skill_level"`
	Description string          `json:"description"`
	Lessons     []domain.Lesson `json:"lessons"`
	Duration    string          `json:"duration"`
}

type updateLearningPlanRequest struct {
	Title       *string         `json:"title"`
	Thumbnail   *string         `json:"thumbnail"`
	Skill       *string         `json:"skill"`
	SkillLevel  *string         `json:"skill_level"`
	Description *string         `json:"description"`
	Lessons     []domain.Lesson `json:"lessons"`
	Duration    *string         `json:"duration"`
}

// List returns learning plans, optionally filtered by author, skill or
// skill level.
//
// @Summary      List learning plans
// @Tags         learning-plans
// @Produce      json
// @Param        user_id      query    string  false  "Filter by author"
// @Param        skill        query    string  false  "Filter by skill"
// @Param        skill_level  query    string  false  "Filter by skill level"
// @Success      200          {array}  domain.LearningPlan
// @Router       /learning-plans [get]
func (h *LearningPlanHandler) List(c echo.Context) error {
	filter := ports.LearningPlanFilter{
		UserID:     c.QueryParam("user_id"),
		Skill:      c.QueryParam("skill"),
		SkillLevel: c.QueryParam("skill_level"),
	}

	plans, err := h.planService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}

// Get returns a single learning plan.
//
// @Summary      Get a learning plan
// @Tags         learning-plans
// @Produce      json
// @Param        id   path      string  true  "Plan id"
// @Success      200  {object}  domain.LearningPlan
// @Failure      404  {object}  map[string]string
// @Router       /learning-plans/{id} [get]
func (h *LearningPlanHandler) Get(c echo.Context) error {
	plan, err := h.planService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

// Create adds a learning plan owned by the authenticated user.
//
// @Summary      Create a learning plan
// @Tags         learning-plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLearningPlanRequest  true  "Plan details"
// @Success      201   {object}  domain.LearningPlan
// @Failure      400   {object}  map[string]string
// @Router       /learning-plans [post]
func (h *LearningPlanHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createLearningPlanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	plan, err := h.planService.Create(c.Request().Context(), userID, ports.CreateLearningPlanInput{
		Title:       req.Title,
		Thumbnail:   req.Thumbnail,
		Skill:       req.Skill,
		SkillLevel:  req.SkillLevel,
		Description: req.Description,
		Lessons:     req.Lessons,
		Duration:    req.Duration,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, plan)
}

// Update mutates a learning plan owned by the authenticated user.
//
// @Summary      Update a learning plan
// @Tags         learning-plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "Plan id"
// @Param        body  body      updateLearningPlanRequest  true  "Fields to update"
// @Success      200   {object}  domain.LearningPlan
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /learning-plans/{id} [put]
func (h *LearningPlanHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateLearningPlanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	plan, err := h.planService.Update(c.Request().Context(), userID, c.Param("id"), ports.UpdateLearningPlanInput{
		Title:       req.Title,
		Thumbnail:   req.Thumbnail,
		Skill:       req.Skill,
		SkillLevel:  req.SkillLevel,
		Description: req.Description,
		Lessons:     req.Lessons,
		Duration:    req.Duration,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

// Delete removes a learning plan owned by the authenticated user.
//
// @Summary      Delete a learning plan
// @Tags         learning-plans
// @Security     BearerAuth
// @Param        id  path  string  true  "Plan id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /learning-plans/{id} [delete]
func (h *LearningPlanHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.planService.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
