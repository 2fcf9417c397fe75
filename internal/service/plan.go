package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dpatel-fit/smart-health-advisor/backend/internal/catalog"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/metrics"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/planner"
)

var ErrGroupNotFound = errors.New("exercise group not found")

// WorkoutPlanResult bundles a workout plan with the band it was
// resolved for.
type WorkoutPlanResult struct {
	AgeBand   catalog.AgeBand           `json:"age_band"`
	Exercises []planner.PlannedExercise `json:"exercises"`
}

// PlanService generates workout, diet and advisory plans for a stored
// profile. It holds the immutable catalog snapshot and is stateless
// across requests.
type PlanService struct {
	db      *gorm.DB
	catalog *catalog.Catalog
	profile *ProfileService
}

var _ IPlanService = (*PlanService)(nil)

func NewPlanService(db *gorm.DB, cat *catalog.Catalog) *PlanService {
	return &PlanService{
		db:      db,
		catalog: cat,
		profile: NewProfileService(db),
	}
}

// Workout builds the activity- and age-tailored workout plan.
func (s *PlanService) Workout(ctx context.Context, userID uuid.UUID) (*WorkoutPlanResult, error) {
	profile, err := s.profile.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	band := metrics.AgeGroup(profile.Age)
	plan, err := planner.WorkoutPlan(s.catalog, profile.ActivityLevel, band)
	if err != nil {
		return nil, err
	}
	return &WorkoutPlanResult{AgeBand: band, Exercises: plan}, nil
}

// Diet builds a diet plan. When budgeted is true the plan is assembled
// first-fit against the calorie target from the named strategy;
// otherwise it is the simple capped listing.
func (s *PlanService) Diet(ctx context.Context, userID uuid.UUID, strategyName string, budgeted bool) (*planner.DietPlan, error) {
	profile, err := s.profile.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	diet := catalog.DietType(profile.DietPreference)

	if !budgeted {
		items := planner.SimpleDietPlan(s.catalog, diet)
		plan := &planner.DietPlan{Items: items}
		for _, f := range items {
			plan.TotalCalories += f.Calories
			plan.TotalProtein += f.Protein
		}
		return plan, nil
	}

	strategy, ok := metrics.StrategyByName(strategyName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategyName)
	}
	targets, ok := strategy.Targets(metrics.Inputs{
		WeightKg:      profile.WeightKg,
		HeightCm:      profile.HeightCm,
		Age:           profile.Age,
		Gender:        profile.Gender,
		ActivityLevel: profile.ActivityLevel,
	})
	if !ok {
		return nil, fmt.Errorf("calorie target undefined: profile is missing height or weight")
	}

	log.Printf("[PlanService] building diet plan for %s: strategy=%s calories=%d protein=%d",
		userID, strategy.Name(), targets.Calories, targets.Protein)
	plan := planner.BudgetedDietPlan(s.catalog, diet, targets.Calories, targets.Protein)
	return &plan, nil
}

// Advisory builds condition-specific guidance from the profile's
// free-text medical conditions field.
func (s *PlanService) Advisory(ctx context.Context, userID uuid.UUID) (*planner.Advisory, error) {
	profile, err := s.profile.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	adv := planner.Advise(s.catalog, profile.MedicalConditions)
	return &adv, nil
}

// Group returns a curated muscle-group day plan by name.
func (s *PlanService) Group(name string) ([]catalog.Exercise, error) {
	plan, ok := planner.GroupPlan(s.catalog, name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGroupNotFound, name)
	}
	return plan, nil
}

// Groups lists the available curated group names.
func (s *PlanService) Groups() []string {
	return s.catalog.GroupNames()
}
