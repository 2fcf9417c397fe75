package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dpatel-fit/smart-health-advisor/backend/internal/catalog"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/models"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/progress"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/types"
)

var ErrExerciseNotFound = errors.New("exercise not found in catalog")

// TrackingService appends activity logs and serves progress summaries.
// Log insertion is append-only and at-least-once: completing the same
// exercise twice on one date creates two rows. The engine does not
// deduplicate; that non-guarantee is part of the contract.
type TrackingService struct {
	db      *gorm.DB
	catalog *catalog.Catalog
	now     func() time.Time
}

var _ ITrackingService = (*TrackingService)(nil)

func NewTrackingService(db *gorm.DB, cat *catalog.Catalog) *TrackingService {
	return &TrackingService{
		db:      db,
		catalog: cat,
		now:     time.Now,
	}
}

// CompleteExercise records one completed exercise for today, with the
// exercise's fixed calorie burn from the catalog.
func (s *TrackingService) CompleteExercise(ctx context.Context, userID uuid.UUID, exerciseName string) (*models.ActivityLog, error) {
	ex, ok := s.catalog.Exercise(exerciseName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrExerciseNotFound, exerciseName)
	}

	entry := models.ActivityLog{
		UserID:       userID,
		Date:         s.now().Format(progress.DateLayout),
		ExerciseName: ex.Name,
		Calories:     ex.Calories,
		Completed:    true,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to append log: %w", err)
	}
	return &entry, nil
}

// AddDailyLog appends one extended daily tracker entry. The date
// defaults to today when absent.
func (s *TrackingService) AddDailyLog(ctx context.Context, userID uuid.UUID, req *types.DailyLogRequest) (*models.DailyLog, error) {
	date := req.Date
	if date == "" {
		date = s.now().Format(progress.DateLayout)
	} else if _, err := time.Parse(progress.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	entry := models.DailyLog{
		UserID:           userID,
		Date:             date,
		Food:             req.Food,
		CaloriesConsumed: req.CaloriesConsumed,
		Exercise:         req.Exercise,
		CaloriesBurned:   req.CaloriesBurned,
		WaterLiters:      req.WaterLiters,
		SleepHours:       req.SleepHours,
		Notes:            req.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to append daily log: %w", err)
	}
	return &entry, nil
}

// Daily returns the completed-exercise summary for one date.
func (s *TrackingService) Daily(ctx context.Context, userID uuid.UUID, date string) (*progress.DailySummary, error) {
	if _, err := time.Parse(progress.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	var logs []models.ActivityLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("id").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	summary := progress.Daily(logs, date)
	return &summary, nil
}

// Weekly returns the trailing 7-day trend series. Dates with no
// entries are absent from the series.
func (s *TrackingService) Weekly(ctx context.Context, userID uuid.UUID) ([]progress.DayTotal, error) {
	from, to := progress.TrailingWeek(s.now())
	var logs []models.ActivityLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?",
			userID, from.Format(progress.DateLayout), to.Format(progress.DateLayout)).
		Order("id").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return progress.Weekly(logs, from, to), nil
}
