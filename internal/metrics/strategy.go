package metrics

import (
	"math"
	"strings"

	"github.com/dpatel-fit/smart-health-advisor/backend/internal/catalog"
)

// Inputs carries the profile fields the target strategies consume.
// Planner code always passes these explicitly; nothing here reads
// ambient state.
type Inputs struct {
	WeightKg      float64
	HeightCm      float64
	Age           int
	Gender        string
	ActivityLevel string
}

// Targets is a daily calorie and protein goal. Protein is zero when the
// selected strategy does not prescribe one.
type Targets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
}

// TargetStrategy produces daily targets from profile inputs. The two
// implementations encode different product decisions and are never
// merged; callers select one by name.
type TargetStrategy interface {
	Name() string
	Targets(in Inputs) (Targets, bool)
}

// BMRStrategy derives the calorie target from Mifflin-St Jeor BMR
// scaled by the activity multiplier. It prescribes no protein target.
type BMRStrategy struct{}

func (BMRStrategy) Name() string { return "bmr" }

func (BMRStrategy) Targets(in Inputs) (Targets, bool) {
	bmr, ok := CalculateBMR(in.WeightKg, in.HeightCm, in.Age, in.Gender)
	cal, ok := DailyCalorieNeed(bmr, ok, in.ActivityLevel)
	if !ok {
		return Targets{}, false
	}
	return Targets{Calories: cal}, true
}

// Age-banded base tables. Values are daily baselines before the gender
// and activity adjustments.
var (
	bandCalories = map[catalog.AgeBand]float64{
		catalog.BandTeen:   2200,
		catalog.BandYoung:  2400,
		catalog.BandMiddle: 2200,
		catalog.BandSenior: 2000,
	}
	bandProtein = map[catalog.AgeBand]float64{
		catalog.BandTeen:   52,
		catalog.BandYoung:  56,
		catalog.BandMiddle: 56,
		catalog.BandSenior: 60,
	}
)

// bandActivityScale is the age-banded variant's own activity scaling,
// distinct from the BMR multiplier table.
var bandActivityScale = map[string]float64{
	"sedentary":   0.9,
	"light":       1.0,
	"moderate":    1.2,
	"very active": 1.4,
}

const maleScale = 1.1

// AgeBandStrategy derives calorie and protein targets from age-band
// base tables, scaled for male gender and activity level.
type AgeBandStrategy struct{}

func (AgeBandStrategy) Name() string { return "age-band" }

func (AgeBandStrategy) Targets(in Inputs) (Targets, bool) {
	band := AgeGroup(in.Age)
	cal := bandCalories[band]
	protein := bandProtein[band]
	if isMale(in.Gender) {
		cal *= maleScale
		protein *= maleScale
	}
	scale, ok := bandActivityScale[strings.ToLower(in.ActivityLevel)]
	if !ok {
		scale = 1.0
	}
	cal *= scale
	protein *= scale
	return Targets{
		Calories: int(math.Round(cal)),
		Protein:  int(math.Round(protein)),
	}, true
}

// StrategyByName resolves a strategy by its registered name, defaulting
// to the BMR strategy for an empty name.
func StrategyByName(name string) (TargetStrategy, bool) {
	switch strings.ToLower(name) {
	case "", "bmr":
		return BMRStrategy{}, true
	case "age-band", "ageband":
		return AgeBandStrategy{}, true
	default:
		return nil, false
	}
}
