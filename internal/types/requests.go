package types

// RegisterRequest creates a user and their health profile in one shot.
type RegisterRequest struct {
	Name              string  `json:"name" binding:"required"`
	Email             string  `json:"email" binding:"required,email"`
	Password          string  `json:"password" binding:"required,min=6"`
	Username          string  `json:"username" binding:"required"`
	Age               int     `json:"age" binding:"required,min=10,max=120"`
	Gender            string  `json:"gender" binding:"required"`
	HeightCm          float64 `json:"height_cm"`
	WeightKg          float64 `json:"weight_kg"`
	ActivityLevel     string  `json:"activity_level"`
	DietPreference    string  `json:"diet_preference"`
	MedicalConditions string  `json:"medical_conditions"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest carries partial profile edits. Pointer fields
// distinguish "not provided" from zero values.
type UpdateProfileRequest struct {
	Age               *int     `json:"age,omitempty"`
	Gender            *string  `json:"gender,omitempty"`
	HeightCm          *float64 `json:"height_cm,omitempty"`
	WeightKg          *float64 `json:"weight_kg,omitempty"`
	ActivityLevel     *string  `json:"activity_level,omitempty"`
	DietPreference    *string  `json:"diet_preference,omitempty"`
	MedicalConditions *string  `json:"medical_conditions,omitempty"`
}

// DailyLogRequest is the extended free-text daily tracker submission.
type DailyLogRequest struct {
	Date             string  `json:"date"`
	Food             string  `json:"food"`
	CaloriesConsumed float64 `json:"calories_consumed"`
	Exercise         string  `json:"exercise"`
	CaloriesBurned   float64 `json:"calories_burned"`
	WaterLiters      float64 `json:"water_liters"`
	SleepHours       float64 `json:"sleep_hours"`
	Notes            string  `json:"notes"`
}
