package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpatel-fit/smart-health-advisor/backend/internal/catalog"
)

func TestWorkoutPlanForSedentaryProfile(t *testing.T) {
	db := setupDB(t)
	userID := seedUser(t, db, sampleRegisterRequest())
	svc := NewPlanService(db, loadCatalog(t))

	result, err := svc.Workout(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, catalog.BandYoung, result.AgeBand)
	require.NotEmpty(t, result.Exercises)
	assert.LessOrEqual(t, len(result.Exercises), 10)

	for _, pe := range result.Exercises {
		assert.Equal(t, catalog.Beginner, pe.Exercise.Level)
		assert.NotEmpty(t, pe.Prescription)
	}
}

func TestWorkoutPlanResolvesBandPrescription(t *testing.T) {
	db := setupDB(t)
	req := sampleRegisterRequest()
	req.Age = 55
	userID := seedUser(t, db, req)
	svc := NewPlanService(db, loadCatalog(t))

	result, err := svc.Workout(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, catalog.BandSenior, result.AgeBand)

	first := result.Exercises[0]
	assert.Equal(t, first.Exercise.Prescriptions[catalog.BandSenior], first.Prescription)
}

func TestDietPlanSimple(t *testing.T) {
	db := setupDB(t)
	userID := seedUser(t, db, sampleRegisterRequest())
	svc := NewPlanService(db, loadCatalog(t))

	plan, err := svc.Diet(context.Background(), userID, "", false)
	require.NoError(t, err)
	require.NotEmpty(t, plan.Items)
	assert.LessOrEqual(t, len(plan.Items), 10)
	for _, f := range plan.Items {
		assert.Equal(t, catalog.Vegetarian, f.Diet)
	}
	// The simple variant enforces no budget.
	assert.Equal(t, 0, plan.CalorieGoal)
}

func TestDietPlanBudgeted(t *testing.T) {
	db := setupDB(t)
	userID := seedUser(t, db, sampleRegisterRequest())
	svc := NewPlanService(db, loadCatalog(t))

	plan, err := svc.Diet(context.Background(), userID, "bmr", true)
	require.NoError(t, err)

	// Sedentary female profile: goal is round(1315.3 * 1.2) = 1578.
	assert.Equal(t, 1578, plan.CalorieGoal)
	assert.LessOrEqual(t, plan.TotalCalories, float64(plan.CalorieGoal))
	for _, f := range plan.Items {
		assert.Equal(t, catalog.Vegetarian, f.Diet)
	}
}

func TestDietPlanBudgetedRequiresDefinedTarget(t *testing.T) {
	db := setupDB(t)
	req := sampleRegisterRequest()
	req.HeightCm = 0
	userID := seedUser(t, db, req)
	svc := NewPlanService(db, loadCatalog(t))

	_, err := svc.Diet(context.Background(), userID, "bmr", true)
	assert.Error(t, err)
}

func TestDietPlanUnknownStrategy(t *testing.T) {
	db := setupDB(t)
	userID := seedUser(t, db, sampleRegisterRequest())
	svc := NewPlanService(db, loadCatalog(t))

	_, err := svc.Diet(context.Background(), userID, "hybrid", true)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestAdvisoryFromProfileConditions(t *testing.T) {
	db := setupDB(t)
	req := sampleRegisterRequest()
	req.MedicalConditions = "type 2 diabetes, high blood pressure"
	userID := seedUser(t, db, req)
	svc := NewPlanService(db, loadCatalog(t))

	adv, err := svc.Advisory(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Diabetes", "Hypertension"}, adv.Conditions)
	assert.NotEmpty(t, adv.Exercises)
	assert.NotEmpty(t, adv.Eat)
	assert.NotEmpty(t, adv.Avoid)
}

func TestAdvisoryEmptyForHealthyProfile(t *testing.T) {
	db := setupDB(t)
	userID := seedUser(t, db, sampleRegisterRequest())
	svc := NewPlanService(db, loadCatalog(t))

	adv, err := svc.Advisory(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, adv.Conditions)
}

func TestGroupPlans(t *testing.T) {
	db := setupDB(t)
	svc := NewPlanService(db, loadCatalog(t))

	assert.Equal(t, []string{"back-day-1", "back-day-2"}, svc.Groups())

	plan, err := svc.Group("back-day-1")
	require.NoError(t, err)
	require.Len(t, plan, 3)
	assert.Equal(t, "Pull-up", plan[0].Name)

	_, err = svc.Group("arm-day")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}
