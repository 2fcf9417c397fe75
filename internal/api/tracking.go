package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dpatel-fit/smart-health-advisor/backend/internal/middleware"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/progress"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/service"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/types"
)

// TrackingHandler serves activity logs and progress summaries.
type TrackingHandler struct {
	tracking service.ITrackingService
	auth     service.IAuthService
}

func NewTrackingHandler(tracking service.ITrackingService, auth service.IAuthService) *TrackingHandler {
	return &TrackingHandler{tracking: tracking, auth: auth}
}

func (h *TrackingHandler) RegisterRoutes(router *gin.RouterGroup) {
	authed := middleware.AuthMiddleware(h.auth)

	logs := router.Group("/logs")
	logs.Use(authed)
	{
		logs.POST("/exercises/:name/complete", h.CompleteExercise)
		logs.POST("/daily", h.AddDailyLog)
	}

	prog := router.Group("/progress")
	prog.Use(authed)
	{
		prog.GET("/daily", h.DailySummary)
		prog.GET("/weekly", h.WeeklySummary)
	}
}

func (h *TrackingHandler) CompleteExercise(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entry, err := h.tracking.CompleteExercise(c.Request.Context(), userID, c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record completion"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *TrackingHandler) AddDailyLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.DailyLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.tracking.AddDailyLog(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *TrackingHandler) DailySummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format(progress.DateLayout)
	}

	summary, err := h.tracking.Daily(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *TrackingHandler) WeeklySummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	series, err := h.tracking.Weekly(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build weekly summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": series})
}
