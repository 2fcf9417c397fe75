package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog is one completed-exercise record. Rows are append-only:
// marking the same exercise done twice on one date creates two rows, by
// design. Date is a calendar date string (YYYY-MM-DD).
type ActivityLog struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	UserID       uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Date         string    `gorm:"size:10;not null;index" json:"date"`
	ExerciseName string    `gorm:"size:100;not null" json:"exercise_name"`
	Calories     float64   `json:"calories"`
	Completed    bool      `gorm:"not null" json:"completed"`
	CreatedAt    time.Time `json:"created_at"`
}

// DailyLog is the extended free-text daily tracker entry: one row per
// submission, never updated.
type DailyLog struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	UserID           uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Date             string    `gorm:"size:10;not null;index" json:"date"`
	Food             string    `gorm:"type:text" json:"food"`
	CaloriesConsumed float64   `json:"calories_consumed"`
	Exercise         string    `gorm:"type:text" json:"exercise"`
	CaloriesBurned   float64   `json:"calories_burned"`
	WaterLiters      float64   `json:"water_liters"`
	SleepHours       float64   `json:"sleep_hours"`
	Notes            string    `gorm:"type:text" json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}
