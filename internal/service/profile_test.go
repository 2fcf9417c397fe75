package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpatel-fit/smart-health-advisor/backend/internal/types"
)

func TestGetProfileNotFound(t *testing.T) {
	db := setupDB(t)
	svc := NewProfileService(db)

	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	db := setupDB(t)
	userID := seedUser(t, db, sampleRegisterRequest())
	svc := NewProfileService(db)

	newWeight := 62.5
	newConditions := "mild hypertension"
	updated, err := svc.UpdateProfile(context.Background(), userID, &types.UpdateProfileRequest{
		WeightKg:          &newWeight,
		MedicalConditions: &newConditions,
	})
	require.NoError(t, err)

	// Provided fields change, everything else stays.
	assert.Equal(t, 62.5, updated.WeightKg)
	assert.Equal(t, "mild hypertension", updated.MedicalConditions)
	assert.Equal(t, 27, updated.Age)
	assert.Equal(t, 165.0, updated.HeightCm)
	assert.Equal(t, "Vegetarian", updated.DietPreference)
}

func TestMetricsComputedOnRead(t *testing.T) {
	db := setupDB(t)
	userID := seedUser(t, db, sampleRegisterRequest())
	svc := NewProfileService(db)

	m, err := svc.Metrics(context.Background(), userID, "")
	require.NoError(t, err)

	// 58 / 1.65^2 = 21.30
	require.NotNil(t, m.BMI)
	assert.InDelta(t, 21.3, *m.BMI, 0.01)
	assert.Equal(t, "Normal", m.BMICategory)

	// 10*58 + 6.25*165 - 5*27 - 161 = 1315.25 -> 1315.3 (female branch)
	require.NotNil(t, m.BMR)
	assert.Equal(t, 1315.3, *m.BMR)

	// Sedentary: round(1315.3 * 1.2) = 1578
	require.NotNil(t, m.DailyCalories)
	assert.Equal(t, 1578, *m.DailyCalories)
	assert.Nil(t, m.DailyProtein)
	assert.Equal(t, "bmr", m.Strategy)
}

func TestMetricsUndefinedWithoutHeight(t *testing.T) {
	db := setupDB(t)
	req := sampleRegisterRequest()
	req.HeightCm = 0
	userID := seedUser(t, db, req)
	svc := NewProfileService(db)

	m, err := svc.Metrics(context.Background(), userID, "bmr")
	require.NoError(t, err)

	// Undefined, not zero: nil metrics and an Unknown category.
	assert.Nil(t, m.BMI)
	assert.Nil(t, m.BMR)
	assert.Nil(t, m.DailyCalories)
	assert.Equal(t, "Unknown", m.BMICategory)
}

func TestMetricsAgeBandStrategy(t *testing.T) {
	db := setupDB(t)
	userID := seedUser(t, db, sampleRegisterRequest())
	svc := NewProfileService(db)

	m, err := svc.Metrics(context.Background(), userID, "age-band")
	require.NoError(t, err)
	assert.Equal(t, "age-band", m.Strategy)

	// Female, 18-29 band, Sedentary: 2400*0.9 and 56*0.9
	require.NotNil(t, m.DailyCalories)
	assert.Equal(t, 2160, *m.DailyCalories)
	require.NotNil(t, m.DailyProtein)
	assert.Equal(t, 50, *m.DailyProtein)
}

func TestMetricsUnknownStrategy(t *testing.T) {
	db := setupDB(t)
	userID := seedUser(t, db, sampleRegisterRequest())
	svc := NewProfileService(db)

	_, err := svc.Metrics(context.Background(), userID, "hybrid")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}
