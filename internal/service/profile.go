package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dpatel-fit/smart-health-advisor/backend/internal/metrics"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/models"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/types"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrUnknownStrategy = errors.New("unknown calorie target strategy")
)

// ProfileService handles user profile reads and updates. Derived
// metrics are computed fresh on every read; nothing derived is stored.
type ProfileService struct {
	db *gorm.DB
}

var _ IProfileService = (*ProfileService)(nil)

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile retrieves a user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies a partial profile edit. Only fields present in
// the request change.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.HeightCm != nil {
		profile.HeightCm = *req.HeightCm
	}
	if req.WeightKg != nil {
		profile.WeightKg = *req.WeightKg
	}
	if req.ActivityLevel != nil {
		profile.ActivityLevel = *req.ActivityLevel
	}
	if req.DietPreference != nil {
		profile.DietPreference = *req.DietPreference
	}
	if req.MedicalConditions != nil {
		profile.MedicalConditions = *req.MedicalConditions
	}

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// Metrics computes the derived body metrics for a profile using the
// named calorie target strategy ("bmr" by default). Metrics that cannot
// be computed from the stored profile come back nil, and the category
// reads Unknown; that is a renderable partial result, not an error.
func (s *ProfileService) Metrics(ctx context.Context, userID uuid.UUID, strategyName string) (*types.DerivedMetrics, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	strategy, ok := metrics.StrategyByName(strategyName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategyName)
	}

	return ComputeMetrics(profile, strategy), nil
}

// ComputeMetrics derives the metrics snapshot from a profile. Split out
// so plan generation can reuse it without a second profile read.
func ComputeMetrics(profile *models.UserProfile, strategy metrics.TargetStrategy) *types.DerivedMetrics {
	in := metrics.Inputs{
		WeightKg:      profile.WeightKg,
		HeightCm:      profile.HeightCm,
		Age:           profile.Age,
		Gender:        profile.Gender,
		ActivityLevel: profile.ActivityLevel,
	}

	out := &types.DerivedMetrics{Strategy: strategy.Name()}

	bmi, bmiOK := metrics.CalculateBMI(in.WeightKg, in.HeightCm)
	out.BMICategory = string(metrics.CategoryFor(bmi, bmiOK))
	if bmiOK {
		rounded := metrics.Round2(bmi)
		out.BMI = &rounded
	}

	if bmr, ok := metrics.CalculateBMR(in.WeightKg, in.HeightCm, in.Age, in.Gender); ok {
		out.BMR = &bmr
	}

	if targets, ok := strategy.Targets(in); ok {
		out.DailyCalories = &targets.Calories
		if targets.Protein > 0 {
			out.DailyProtein = &targets.Protein
		}
	}

	return out
}
