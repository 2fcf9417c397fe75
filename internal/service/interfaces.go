package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dpatel-fit/smart-health-advisor/backend/internal/catalog"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/models"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/planner"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/progress"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/types"
)

// IAuthService defines the auth operations the API layer depends on.
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	Logout(ctx context.Context, token string) error
}

// IProfileService defines profile reads, updates and derived metrics.
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error)
	Metrics(ctx context.Context, userID uuid.UUID, strategyName string) (*types.DerivedMetrics, error)
}

// IPlanService defines plan generation.
type IPlanService interface {
	Workout(ctx context.Context, userID uuid.UUID) (*WorkoutPlanResult, error)
	Diet(ctx context.Context, userID uuid.UUID, strategyName string, budgeted bool) (*planner.DietPlan, error)
	Advisory(ctx context.Context, userID uuid.UUID) (*planner.Advisory, error)
	Group(name string) ([]catalog.Exercise, error)
	Groups() []string
}

// ITrackingService defines log appends and progress summaries.
type ITrackingService interface {
	CompleteExercise(ctx context.Context, userID uuid.UUID, exerciseName string) (*models.ActivityLog, error)
	AddDailyLog(ctx context.Context, userID uuid.UUID, req *types.DailyLogRequest) (*models.DailyLog, error)
	Daily(ctx context.Context, userID uuid.UUID, date string) (*progress.DailySummary, error)
	Weekly(ctx context.Context, userID uuid.UUID) ([]progress.DayTotal, error)
}
