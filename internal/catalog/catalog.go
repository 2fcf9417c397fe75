package catalog

import (
	"fmt"
)

// AgeBand is a coarse age bucket used for exercise prescriptions and
// nutrition targets.
type AgeBand string

const (
	BandTeen   AgeBand = "10-17"
	BandYoung  AgeBand = "18-29"
	BandMiddle AgeBand = "30-49"
	BandSenior AgeBand = "50+"
)

// Bands returns all age bands in ascending order.
func Bands() []AgeBand {
	return []AgeBand{BandTeen, BandYoung, BandMiddle, BandSenior}
}

// Difficulty is an exercise difficulty level.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// DietType classifies food items by dietary preference.
type DietType string

const (
	Vegetarian    DietType = "Vegetarian"
	NonVegetarian DietType = "Non-Vegetarian"
)

// MealSlot is the time-of-day grouping for food items.
type MealSlot string

const (
	Breakfast MealSlot = "Breakfast"
	Lunch     MealSlot = "Lunch"
	Dinner    MealSlot = "Dinner"
	Snack     MealSlot = "Snack"
)

// Exercise is a catalog entry for a single exercise. Prescriptions maps
// an age band to a "sets x reps" string; a band missing from the map has
// no safe default and must be surfaced by the planner.
type Exercise struct {
	Name          string             `json:"name"`
	Category      string             `json:"category"`
	Level         Difficulty         `json:"level"`
	Muscles       string             `json:"muscles"`
	Calories      float64            `json:"calories"`
	Prescriptions map[AgeBand]string `json:"prescriptions"`
	Animation     string             `json:"animation,omitempty"`
}

// FoodItem is a catalog entry for a single food.
type FoodItem struct {
	Name     string   `json:"name"`
	Diet     DietType `json:"diet"`
	Meal     MealSlot `json:"meal"`
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
}

// ConditionRule holds curated guidance for one medical condition.
type ConditionRule struct {
	Exercises []string `json:"exercises"`
	Eat       []string `json:"eat"`
	Avoid     []string `json:"avoid"`
}

// Catalog is the process-wide reference data snapshot. It is loaded once
// and never mutated afterwards; iteration order of exercises and foods
// is their definition order.
type Catalog struct {
	exercises      []Exercise
	exerciseByName map[string]int
	foods          []FoodItem
	foodByName     map[string]int
	conditions     map[string]ConditionRule
	conditionNames []string
	groups         map[string][]string
	groupNames     []string
}

// New builds a catalog from the given entries, validating required
// fields up front so that a malformed entry fails at load time rather
// than on first use.
func New(exercises []Exercise, foods []FoodItem, conditions map[string]ConditionRule, conditionOrder []string, groups map[string][]string, groupOrder []string) (*Catalog, error) {
	c := &Catalog{
		exercises:      exercises,
		exerciseByName: make(map[string]int, len(exercises)),
		foods:          foods,
		foodByName:     make(map[string]int, len(foods)),
		conditions:     conditions,
		conditionNames: conditionOrder,
		groups:         groups,
		groupNames:     groupOrder,
	}

	for i, ex := range exercises {
		if ex.Name == "" {
			return nil, fmt.Errorf("exercise %d: missing name", i)
		}
		if _, dup := c.exerciseByName[ex.Name]; dup {
			return nil, fmt.Errorf("exercise %q: duplicate name", ex.Name)
		}
		if ex.Category == "" {
			return nil, fmt.Errorf("exercise %q: missing category", ex.Name)
		}
		switch ex.Level {
		case Beginner, Intermediate, Advanced:
		default:
			return nil, fmt.Errorf("exercise %q: invalid level %q", ex.Name, ex.Level)
		}
		if ex.Calories <= 0 {
			return nil, fmt.Errorf("exercise %q: calories must be positive", ex.Name)
		}
		for band := range ex.Prescriptions {
			switch band {
			case BandTeen, BandYoung, BandMiddle, BandSenior:
			default:
				return nil, fmt.Errorf("exercise %q: unknown age band %q", ex.Name, band)
			}
		}
		c.exerciseByName[ex.Name] = i
	}

	for i, f := range foods {
		if f.Name == "" {
			return nil, fmt.Errorf("food %d: missing name", i)
		}
		if _, dup := c.foodByName[f.Name]; dup {
			return nil, fmt.Errorf("food %q: duplicate name", f.Name)
		}
		switch f.Diet {
		case Vegetarian, NonVegetarian:
		default:
			return nil, fmt.Errorf("food %q: invalid diet type %q", f.Name, f.Diet)
		}
		switch f.Meal {
		case Breakfast, Lunch, Dinner, Snack:
		default:
			return nil, fmt.Errorf("food %q: invalid meal slot %q", f.Name, f.Meal)
		}
		if f.Calories < 0 {
			return nil, fmt.Errorf("food %q: negative calories", f.Name)
		}
		if f.Protein < 0 {
			return nil, fmt.Errorf("food %q: negative protein", f.Name)
		}
		c.foodByName[f.Name] = i
	}

	if len(conditionOrder) != len(conditions) {
		return nil, fmt.Errorf("condition order lists %d names, catalog has %d", len(conditionOrder), len(conditions))
	}
	for _, name := range conditionOrder {
		if _, ok := conditions[name]; !ok {
			return nil, fmt.Errorf("condition %q: listed in order but not defined", name)
		}
	}

	for _, name := range groupOrder {
		if _, ok := groups[name]; !ok {
			return nil, fmt.Errorf("group %q: listed in order but not defined", name)
		}
	}

	return c, nil
}

// Exercises returns the exercises in catalog order. The returned slice
// is shared; callers must not modify it.
func (c *Catalog) Exercises() []Exercise {
	return c.exercises
}

// Exercise looks up a single exercise by name.
func (c *Catalog) Exercise(name string) (Exercise, bool) {
	i, ok := c.exerciseByName[name]
	if !ok {
		return Exercise{}, false
	}
	return c.exercises[i], true
}

// Foods returns the food items in catalog order.
func (c *Catalog) Foods() []FoodItem {
	return c.foods
}

// Food looks up a single food item by name.
func (c *Catalog) Food(name string) (FoodItem, bool) {
	i, ok := c.foodByName[name]
	if !ok {
		return FoodItem{}, false
	}
	return c.foods[i], true
}

// Condition looks up the rule for a condition by exact name.
func (c *Catalog) Condition(name string) (ConditionRule, bool) {
	rule, ok := c.conditions[name]
	return rule, ok
}

// ConditionNames returns the condition keys in definition order. This is
// the full domain of the advisory lookups and is what selection UIs are
// populated from.
func (c *Catalog) ConditionNames() []string {
	return c.conditionNames
}

// Group returns the exercise names of a curated muscle-group day plan.
func (c *Catalog) Group(name string) ([]string, bool) {
	g, ok := c.groups[name]
	return g, ok
}

// GroupNames returns the curated group names in definition order.
func (c *Catalog) GroupNames() []string {
	return c.groupNames
}
