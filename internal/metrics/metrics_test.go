package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dpatel-fit/smart-health-advisor/backend/internal/catalog"
)

func TestCalculateBMIUndefined(t *testing.T) {
	_, ok := CalculateBMI(70, 0)
	assert.False(t, ok)

	_, ok = CalculateBMI(70, -170)
	assert.False(t, ok)

	_, ok = CalculateBMI(0, 170)
	assert.False(t, ok)
}

func TestCalculateBMIValue(t *testing.T) {
	bmi, ok := CalculateBMI(70, 175)
	assert.True(t, ok)
	assert.InDelta(t, 22.86, Round2(bmi), 0.001)
}

func TestCalculateBMIMonotonic(t *testing.T) {
	lighter, _ := CalculateBMI(60, 170)
	heavier, _ := CalculateBMI(80, 170)
	assert.Greater(t, heavier, lighter)

	shorter, _ := CalculateBMI(70, 160)
	taller, _ := CalculateBMI(70, 190)
	assert.Less(t, taller, shorter)
}

func TestCategoryBoundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want BMICategory
	}{
		{18.49, CategoryUnderweight},
		{18.5, CategoryNormal},
		{24.99, CategoryNormal},
		{25, CategoryOverweight},
		{29.99, CategoryOverweight},
		{30, CategoryObese},
		{35, CategoryObese},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryFor(tt.bmi, true), "bmi=%v", tt.bmi)
	}
}

func TestCategoryUnknownWhenUndefined(t *testing.T) {
	bmi, ok := CalculateBMI(70, 0)
	assert.Equal(t, CategoryUnknown, CategoryFor(bmi, ok))
}

func TestCategoryAtThresholdWeights(t *testing.T) {
	// 53.46kg at 170cm sits just under the Normal threshold; the raw
	// value must classify Underweight even though it displays as 18.5.
	bmi, ok := CalculateBMI(53.46, 170)
	assert.True(t, ok)
	assert.Equal(t, CategoryUnderweight, CategoryFor(bmi, ok))

	bmi, ok = CalculateBMI(53.53, 170)
	assert.True(t, ok)
	assert.InDelta(t, 18.52, Round2(bmi), 0.01)
	assert.Equal(t, CategoryNormal, CategoryFor(bmi, ok))
}

func TestCalculateBMRMale(t *testing.T) {
	bmr, ok := CalculateBMR(70, 175, 30, "Male")
	assert.True(t, ok)
	// 10*70 + 6.25*175 - 5*30 + 5 = 1648.75, rounds to 1648.8
	assert.Equal(t, 1648.8, bmr)

	short, ok := CalculateBMR(70, 175, 30, "m")
	assert.True(t, ok)
	assert.Equal(t, bmr, short)
}

func TestCalculateBMRFemaleAndOther(t *testing.T) {
	female, ok := CalculateBMR(70, 175, 30, "Female")
	assert.True(t, ok)
	assert.Equal(t, 1482.8, female)

	// Other falls through to the female constant.
	other, ok := CalculateBMR(70, 175, 30, "Other")
	assert.True(t, ok)
	assert.Equal(t, female, other)

	empty, ok := CalculateBMR(70, 175, 30, "")
	assert.True(t, ok)
	assert.Equal(t, female, empty)
}

func TestCalculateBMRUndefined(t *testing.T) {
	_, ok := CalculateBMR(0, 175, 30, "Male")
	assert.False(t, ok)

	_, ok = CalculateBMR(70, 0, 30, "Male")
	assert.False(t, ok)
}

func TestActivityMultiplierTable(t *testing.T) {
	tests := []struct {
		level string
		want  float64
	}{
		{"Sedentary", 1.2},
		{"Lightly active", 1.375},
		{"Moderately active", 1.55},
		{"Very active", 1.725},
		{"Extra active", 1.9},
		{"Light", 1.375},
		{"Moderate", 1.55},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ActivityMultiplier(tt.level), "level=%s", tt.level)
	}
}

func TestActivityMultiplierDefault(t *testing.T) {
	assert.Equal(t, 1.2, ActivityMultiplier("couch potato"))
	assert.Equal(t, 1.2, ActivityMultiplier(""))
}

func TestDailyCalorieNeed(t *testing.T) {
	cal, ok := DailyCalorieNeed(1648.8, true, "Sedentary")
	assert.True(t, ok)
	assert.Equal(t, 1979, cal) // round(1648.8 * 1.2)

	cal, ok = DailyCalorieNeed(1648.8, true, "Very active")
	assert.True(t, ok)
	assert.Equal(t, 2844, cal) // round(1648.8 * 1.725)

	_, ok = DailyCalorieNeed(0, false, "Sedentary")
	assert.False(t, ok)
}

func TestAgeGroup(t *testing.T) {
	tests := []struct {
		age  int
		want catalog.AgeBand
	}{
		{10, catalog.BandTeen},
		{17, catalog.BandTeen},
		{18, catalog.BandYoung},
		{29, catalog.BandYoung},
		{30, catalog.BandMiddle},
		{49, catalog.BandMiddle},
		{50, catalog.BandSenior},
		{90, catalog.BandSenior},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AgeGroup(tt.age), "age=%d", tt.age)
	}
}
