package planner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dpatel-fit/smart-health-advisor/backend/internal/catalog"
)

// ErrNoPrescription is returned when an exercise selected for a plan
// has no sets/reps entry for the user's age band. There is no safe
// default, so this is reported rather than papered over.
var ErrNoPrescription = errors.New("no prescription for age band")

// maxPlanExercises caps a workout plan's length.
const maxPlanExercises = 10

// PlannedExercise pairs a catalog exercise with the sets/reps
// prescription resolved for the requesting user.
type PlannedExercise struct {
	Exercise     catalog.Exercise `json:"exercise"`
	Prescription string           `json:"prescription"`
}

// includeForActivity applies the activity-level selection rule:
// sedentary users get beginner exercises only, light activity adds
// intermediate, moderate and very active users get everything.
func includeForActivity(activity string, level catalog.Difficulty) bool {
	switch strings.ToLower(activity) {
	case "sedentary":
		return level == catalog.Beginner
	case "light":
		return level == catalog.Beginner || level == catalog.Intermediate
	case "moderate", "very active":
		return true
	default:
		return false
	}
}

// WorkoutPlan selects up to ten exercises for the given activity level
// and resolves each one's prescription for the age band. Selection is a
// deterministic prefix scan in catalog order; there is no ranking.
//
// An exercise missing a prescription for the band fails the whole plan:
// the caller is expected to surface the error, not substitute a value.
func WorkoutPlan(cat *catalog.Catalog, activity string, band catalog.AgeBand) ([]PlannedExercise, error) {
	var plan []PlannedExercise
	for _, ex := range cat.Exercises() {
		if !includeForActivity(activity, ex.Level) {
			continue
		}
		prescription, ok := ex.Prescriptions[band]
		if !ok {
			return nil, fmt.Errorf("exercise %q, band %q: %w", ex.Name, band, ErrNoPrescription)
		}
		plan = append(plan, PlannedExercise{Exercise: ex, Prescription: prescription})
		if len(plan) == maxPlanExercises {
			break
		}
	}
	return plan, nil
}

// GroupPlan resolves a curated muscle-group day plan (e.g. a back day)
// against the exercise catalog. Names without a catalog entry are
// skipped, matching how the curated lists were originally consumed.
func GroupPlan(cat *catalog.Catalog, name string) ([]catalog.Exercise, bool) {
	names, ok := cat.Group(name)
	if !ok {
		return nil, false
	}
	var plan []catalog.Exercise
	for _, n := range names {
		if ex, found := cat.Exercise(n); found {
			plan = append(plan, ex)
		}
	}
	return plan, true
}
