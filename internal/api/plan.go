package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dpatel-fit/smart-health-advisor/backend/internal/middleware"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/planner"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/service"
)

// PlanHandler serves workout, diet and advisory plans.
type PlanHandler struct {
	plans  service.IPlanService
	assets *service.AssetService
	auth   service.IAuthService
}

func NewPlanHandler(plans service.IPlanService, assets *service.AssetService, auth service.IAuthService) *PlanHandler {
	return &PlanHandler{plans: plans, assets: assets, auth: auth}
}

func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/plans")
	plans.Use(middleware.AuthMiddleware(h.auth))
	{
		plans.GET("/workout", h.Workout)
		plans.GET("/diet", h.Diet)
		plans.GET("/advisory", h.Advisory)
		plans.GET("/groups", h.Groups)
		plans.GET("/groups/:name", h.Group)
		plans.GET("/exercises/:name/animation", h.Animation)
	}
}

func (h *PlanHandler) Workout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plan, err := h.plans.Workout(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, planner.ErrNoPrescription):
			// A catalog gap has no safe default; report it.
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build workout plan"})
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) Diet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	budgeted := c.Query("budget") == "1" || c.Query("budget") == "true"
	plan, err := h.plans.Diet(c.Request.Context(), userID, c.Query("strategy"), budgeted)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUnknownStrategy):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) Advisory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	adv, err := h.plans.Advisory(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build advisory"})
		return
	}

	c.JSON(http.StatusOK, adv)
}

func (h *PlanHandler) Groups(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"groups": h.plans.Groups()})
}

func (h *PlanHandler) Group(c *gin.Context) {
	plan, err := h.plans.Group(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": c.Param("name"), "exercises": plan})
}

// Animation resolves an exercise's animation asset to a time-limited
// URL. An empty URL means the exercise has no animation.
func (h *PlanHandler) Animation(c *gin.Context) {
	url, err := h.assets.AnimationURL(c.Request.Context(), c.Param("name"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAssetStorageUnconfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve animation"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
