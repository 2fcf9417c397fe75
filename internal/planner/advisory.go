package planner

import (
	"strings"

	"github.com/dpatel-fit/smart-health-advisor/backend/internal/catalog"
)

// DietAdvice is the eat/avoid guidance for a condition.
type DietAdvice struct {
	Eat   []string `json:"eat"`
	Avoid []string `json:"avoid"`
}

// Advisory is the combined guidance for all conditions matched from a
// profile's free-text conditions field.
type Advisory struct {
	Conditions []string `json:"conditions"`
	Exercises  []string `json:"exercises"`
	Eat        []string `json:"eat"`
	Avoid      []string `json:"avoid"`
}

// LookupExercises returns the curated exercise list for a condition.
// Keys are exact, matching how the catalog populates condition
// selectors; an unlisted key is simply not found.
func LookupExercises(cat *catalog.Catalog, condition string) ([]string, bool) {
	rule, ok := cat.Condition(condition)
	if !ok {
		return nil, false
	}
	return rule.Exercises, true
}

// LookupDiet returns the eat/avoid lists for a condition by exact key.
func LookupDiet(cat *catalog.Catalog, condition string) (DietAdvice, bool) {
	rule, ok := cat.Condition(condition)
	if !ok {
		return DietAdvice{}, false
	}
	return DietAdvice{Eat: rule.Eat, Avoid: rule.Avoid}, true
}

// conditionFragments maps keyword fragments to catalog condition keys.
// Matching is case-insensitive substring containment; multiple
// fragments may hit the same free text.
var conditionFragments = []struct {
	fragment  string
	condition string
}{
	{"diab", "Diabetes"},
	{"heart", "Heart Disease"},
	{"hypert", "Hypertension"},
	{"back", "Back Pain"},
	{"blood pressure", "Hypertension"},
}

// MatchConditions scans a profile's free-text conditions field for
// known keyword fragments and returns the matched catalog condition
// keys, de-duplicated in first-occurrence order.
func MatchConditions(freeText string) []string {
	lower := strings.ToLower(freeText)
	var matched []string
	seen := make(map[string]bool)
	for _, frag := range conditionFragments {
		if !strings.Contains(lower, frag.fragment) {
			continue
		}
		if seen[frag.condition] {
			continue
		}
		seen[frag.condition] = true
		matched = append(matched, frag.condition)
	}
	return matched
}

// Advise builds the combined advisory for a free-text conditions field.
// Recommendations from every matched condition are appended, then each
// list is de-duplicated preserving first-occurrence order.
func Advise(cat *catalog.Catalog, freeText string) Advisory {
	adv := Advisory{Conditions: MatchConditions(freeText)}
	for _, cond := range adv.Conditions {
		rule, ok := cat.Condition(cond)
		if !ok {
			continue
		}
		adv.Exercises = append(adv.Exercises, rule.Exercises...)
		adv.Eat = append(adv.Eat, rule.Eat...)
		adv.Avoid = append(adv.Avoid, rule.Avoid...)
	}
	adv.Exercises = dedupe(adv.Exercises)
	adv.Eat = dedupe(adv.Eat)
	adv.Avoid = dedupe(adv.Avoid)
	return adv
}

// dedupe removes duplicates preserving first-occurrence order.
func dedupe(items []string) []string {
	if len(items) == 0 {
		return items
	}
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, it := range items {
		if seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	return out
}
