package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dpatel-fit/smart-health-advisor/backend/internal/catalog"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/models"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/types"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.ActivityLog{},
		&models.DailyLog{},
	))
	return db
}

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return cat
}

// seedUser creates a user with a health profile and returns the user id.
func seedUser(t *testing.T, db *gorm.DB, req types.RegisterRequest) uuid.UUID {
	t.Helper()
	auth := NewAuthService(db, nil, "test-secret")
	token, err := auth.Register(context.Background(), &req)
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	return claims.UserID
}

func sampleRegisterRequest() types.RegisterRequest {
	return types.RegisterRequest{
		Name:              "Asha Rao",
		Email:             "asha@example.com",
		Password:          "hunter22",
		Username:          "asha",
		Age:               27,
		Gender:            "Female",
		HeightCm:          165,
		WeightKg:          58,
		ActivityLevel:     "Sedentary",
		DietPreference:    "Vegetarian",
		MedicalConditions: "",
	}
}
