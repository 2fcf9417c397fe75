package types

// DerivedMetrics is the body-composition snapshot computed from a
// profile on every read. Nil pointer fields mean the metric is
// undefined for the stored profile (e.g. missing height or weight),
// as opposed to zero.
type DerivedMetrics struct {
	BMI           *float64 `json:"bmi"`
	BMICategory   string   `json:"bmi_category"`
	BMR           *float64 `json:"bmr"`
	DailyCalories *int     `json:"daily_calories"`
	DailyProtein  *int     `json:"daily_protein,omitempty"`
	Strategy      string   `json:"strategy"`
}
