package metrics

import (
	"math"
	"strings"

	"github.com/dpatel-fit/smart-health-advisor/backend/internal/catalog"
)

// BMICategory classifies a BMI value.
type BMICategory string

const (
	CategoryUnknown     BMICategory = "Unknown"
	CategoryUnderweight BMICategory = "Underweight"
	CategoryNormal      BMICategory = "Normal"
	CategoryOverweight  BMICategory = "Overweight"
	CategoryObese       BMICategory = "Obese"
)

// CalculateBMI computes body mass index. The result is undefined
// (ok=false) when height or weight is not a positive number; callers
// must check ok before rendering.
//
// The value is returned unrounded: classification must see the raw
// number (rounding 18.498 up to 18.50 would flip it across the Normal
// threshold). Use Round2 for display.
func CalculateBMI(weightKg, heightCm float64) (float64, bool) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, false
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM), true
}

// Round2 rounds to 2 decimal places for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CategoryFor maps a BMI value to its category. Thresholds are
// half-open: exactly 18.5 is Normal, exactly 25 is Overweight, exactly
// 30 is Obese.
func CategoryFor(bmi float64, ok bool) BMICategory {
	switch {
	case !ok:
		return CategoryUnknown
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

// isMale reports whether the gender string selects the male BMR branch.
// Matching is case-insensitive on "male" or "m"; everything else
// (female, other, empty) falls through to the female constant. The
// conflation of female and other is a known limitation carried over
// deliberately.
func isMale(gender string) bool {
	return strings.EqualFold(gender, "male") || strings.EqualFold(gender, "m")
}

// CalculateBMR computes basal metabolic rate via Mifflin-St Jeor,
// rounded to 1 decimal place. Undefined when height or weight is not
// positive.
func CalculateBMR(weightKg, heightCm float64, age int, gender string) (float64, bool) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, false
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if isMale(gender) {
		bmr += 5
	} else {
		bmr -= 161
	}
	return math.Round(bmr*10) / 10, true
}

// activityMultipliers maps activity level names (lower-cased) to their
// TDEE multiplier. Both the four-level app naming and the five-level
// BMR naming are accepted.
var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"light":             1.375,
	"lightly active":    1.375,
	"moderate":          1.55,
	"moderately active": 1.55,
	"very active":       1.725,
	"extra active":      1.9,
}

// defaultMultiplier is applied for unrecognized activity levels. An
// unknown level is recovered locally, never escalated.
const defaultMultiplier = 1.2

// ActivityMultiplier returns the multiplier for an activity level,
// falling back to 1.2 for unrecognized values.
func ActivityMultiplier(level string) float64 {
	if m, ok := activityMultipliers[strings.ToLower(level)]; ok {
		return m
	}
	return defaultMultiplier
}

// DailyCalorieNeed estimates total daily energy expenditure from a BMR
// value. Undefined when the BMR is undefined.
func DailyCalorieNeed(bmr float64, ok bool, level string) (int, bool) {
	if !ok {
		return 0, false
	}
	return int(math.Round(bmr * ActivityMultiplier(level))), true
}

// AgeGroup buckets an age into its band.
func AgeGroup(age int) catalog.AgeBand {
	switch {
	case age < 18:
		return catalog.BandTeen
	case age < 30:
		return catalog.BandYoung
	case age < 50:
		return catalog.BandMiddle
	default:
		return catalog.BandSenior
	}
}
