package catalog

// Built-in reference data. Loaded once per process; the Load result is
// treated as an immutable snapshot everywhere else.

var defaultExercises = []Exercise{
	{
		Name: "Push-up", Category: "Chest", Level: Beginner,
		Muscles: "Chest, Triceps, Shoulders", Calories: 45,
		Prescriptions: map[AgeBand]string{BandTeen: "2x10", BandYoung: "3x15", BandMiddle: "3x12", BandSenior: "2x8"},
		Animation:     "animations/pushup.glb",
	},
	{
		Name: "Bicep Curl", Category: "Arms", Level: Beginner,
		Muscles: "Biceps", Calories: 30,
		Prescriptions: map[AgeBand]string{BandTeen: "2x12", BandYoung: "3x12", BandMiddle: "3x10", BandSenior: "2x10"},
		Animation:     "animations/bicepcurl.glb",
	},
	{
		Name: "Bodyweight Squat", Category: "Legs", Level: Beginner,
		Muscles: "Quads, Glutes", Calories: 50,
		Prescriptions: map[AgeBand]string{BandTeen: "2x15", BandYoung: "3x20", BandMiddle: "3x15", BandSenior: "2x10"},
		Animation:     "animations/bwsquat.glb",
	},
	{
		Name: "Walking Lunge", Category: "Legs", Level: Beginner,
		Muscles: "Quads, Glutes, Hamstrings", Calories: 40,
		Prescriptions: map[AgeBand]string{BandTeen: "2x10", BandYoung: "3x12", BandMiddle: "3x10", BandSenior: "2x8"},
		Animation:     "animations/lunge.glb",
	},
	{
		Name: "Plank", Category: "Core", Level: Beginner,
		Muscles: "Abs, Lower Back", Calories: 25,
		Prescriptions: map[AgeBand]string{BandTeen: "2x30s", BandYoung: "3x45s", BandMiddle: "3x30s", BandSenior: "2x20s"},
		Animation:     "animations/plank.glb",
	},
	{
		Name: "Lat Pulldown", Category: "Back", Level: Intermediate,
		Muscles: "Lats, Biceps, Rear Delts", Calories: 55,
		Prescriptions: map[AgeBand]string{BandTeen: "2x10", BandYoung: "3x12", BandMiddle: "3x10", BandSenior: "2x10"},
		Animation:     "animations/latpulldown.glb",
	},
	{
		Name: "Squat", Category: "Legs", Level: Intermediate,
		Muscles: "Quads, Glutes, Hamstrings", Calories: 70,
		Prescriptions: map[AgeBand]string{BandTeen: "2x8", BandYoung: "4x10", BandMiddle: "3x8", BandSenior: "2x6"},
		Animation:     "animations/squat.glb",
	},
	{
		Name: "Seated Row", Category: "Back", Level: Intermediate,
		Muscles: "Lats, Rhomboids, Biceps", Calories: 50,
		Prescriptions: map[AgeBand]string{BandTeen: "2x10", BandYoung: "3x12", BandMiddle: "3x10", BandSenior: "2x8"},
		Animation:     "animations/seatedrow.glb",
	},
	{
		Name: "Bench Press", Category: "Chest", Level: Intermediate,
		Muscles: "Chest, Triceps, Front Delts", Calories: 65,
		Prescriptions: map[AgeBand]string{BandTeen: "2x8", BandYoung: "4x8", BandMiddle: "3x8", BandSenior: "2x6"},
		Animation:     "animations/benchpress.glb",
	},
	{
		Name: "Pull-up", Category: "Back", Level: Intermediate,
		Muscles: "Lats, Biceps, Forearms", Calories: 60,
		Prescriptions: map[AgeBand]string{BandTeen: "2x5", BandYoung: "3x8", BandMiddle: "3x6", BandSenior: "2x4"},
		Animation:     "animations/pullup.glb",
	},
	{
		Name: "T-bar Row", Category: "Back", Level: Advanced,
		Muscles: "Lats, Traps, Rhomboids", Calories: 75,
		Prescriptions: map[AgeBand]string{BandTeen: "2x8", BandYoung: "4x8", BandMiddle: "3x8", BandSenior: "2x6"},
		Animation:     "animations/tbarrow.glb",
	},
	{
		Name: "Deadlift", Category: "Back", Level: Advanced,
		Muscles: "Hamstrings, Glutes, Lower Back, Traps", Calories: 90,
		Prescriptions: map[AgeBand]string{BandTeen: "2x5", BandYoung: "4x6", BandMiddle: "3x5", BandSenior: "2x5"},
		Animation:     "animations/deadlift.glb",
	},
	{
		Name: "Face Pull", Category: "Shoulders", Level: Intermediate,
		Muscles: "Rear Delts, Traps", Calories: 35,
		Prescriptions: map[AgeBand]string{BandTeen: "2x12", BandYoung: "3x15", BandMiddle: "3x12", BandSenior: "2x12"},
		Animation:     "animations/facepull.glb",
	},
	{
		Name: "Overhead Press", Category: "Shoulders", Level: Advanced,
		Muscles: "Delts, Triceps", Calories: 60,
		Prescriptions: map[AgeBand]string{BandTeen: "2x8", BandYoung: "4x8", BandMiddle: "3x8", BandSenior: "2x6"},
		Animation:     "animations/ohp.glb",
	},
}

var defaultFoods = []FoodItem{
	{Name: "Oats", Diet: Vegetarian, Meal: Breakfast, Calories: 150, Protein: 5},
	{Name: "Egg Omelette", Diet: NonVegetarian, Meal: Breakfast, Calories: 200, Protein: 14},
	{Name: "Idli with Sambar", Diet: Vegetarian, Meal: Breakfast, Calories: 180, Protein: 6},
	{Name: "Greek Yogurt Bowl", Diet: Vegetarian, Meal: Breakfast, Calories: 220, Protein: 15},
	{Name: "Chicken Sausage", Diet: NonVegetarian, Meal: Breakfast, Calories: 250, Protein: 12},
	{Name: "Almonds", Diet: Vegetarian, Meal: Snack, Calories: 160, Protein: 6},
	{Name: "Boiled Eggs", Diet: NonVegetarian, Meal: Snack, Calories: 140, Protein: 12},
	{Name: "Fruit Salad", Diet: Vegetarian, Meal: Snack, Calories: 120, Protein: 2},
	{Name: "Protein Shake", Diet: Vegetarian, Meal: Snack, Calories: 180, Protein: 24},
	{Name: "Grilled Chicken", Diet: NonVegetarian, Meal: Lunch, Calories: 250, Protein: 30},
	{Name: "Paneer Curry", Diet: Vegetarian, Meal: Lunch, Calories: 300, Protein: 18},
	{Name: "Dal with Rice", Diet: Vegetarian, Meal: Lunch, Calories: 350, Protein: 14},
	{Name: "Fish Curry", Diet: NonVegetarian, Meal: Lunch, Calories: 280, Protein: 26},
	{Name: "Chickpea Salad", Diet: Vegetarian, Meal: Lunch, Calories: 230, Protein: 12},
	{Name: "Salad", Diet: Vegetarian, Meal: Dinner, Calories: 100, Protein: 3},
	{Name: "Grilled Fish", Diet: NonVegetarian, Meal: Dinner, Calories: 220, Protein: 28},
	{Name: "Vegetable Soup", Diet: Vegetarian, Meal: Dinner, Calories: 130, Protein: 4},
	{Name: "Chicken Stir Fry", Diet: NonVegetarian, Meal: Dinner, Calories: 260, Protein: 27},
	{Name: "Tofu Bowl", Diet: Vegetarian, Meal: Dinner, Calories: 240, Protein: 20},
}

var defaultConditionOrder = []string{"Diabetes", "Hypertension", "Heart Disease", "Back Pain"}

var defaultConditions = map[string]ConditionRule{
	"Diabetes": {
		Exercises: []string{"Brisk walking 30 min", "Light cycling", "Bodyweight Squat", "Plank"},
		Eat:       []string{"Whole grains", "Leafy greens", "Legumes", "Nuts"},
		Avoid:     []string{"Sugary drinks", "White bread", "Sweets", "Fried snacks"},
	},
	"Hypertension": {
		Exercises: []string{"Walking", "Swimming", "Light yoga", "Stationary cycling"},
		Eat:       []string{"Bananas", "Oats", "Beets", "Low-fat dairy"},
		Avoid:     []string{"Salted snacks", "Pickles", "Processed meat", "Excess caffeine"},
	},
	"Heart Disease": {
		Exercises: []string{"Supervised walking", "Light stretching", "Breathing exercises"},
		Eat:       []string{"Oily fish", "Oats", "Olive oil", "Berries"},
		Avoid:     []string{"Trans fats", "Red meat", "Full-fat dairy", "Excess salt"},
	},
	"Back Pain": {
		Exercises: []string{"Cat-cow stretch", "Bird dog", "Pelvic tilt", "Plank"},
		Eat:       []string{"Calcium-rich foods", "Fatty fish", "Turmeric"},
		Avoid:     []string{"Excess caffeine", "Alcohol"},
	},
}

var defaultGroupOrder = []string{"back-day-1", "back-day-2"}

var defaultGroups = map[string][]string{
	"back-day-1": {"Pull-up", "Lat Pulldown", "Seated Row"},
	"back-day-2": {"T-bar Row", "Deadlift", "Face Pull"},
}

// Load builds the built-in catalog snapshot.
func Load() (*Catalog, error) {
	return New(defaultExercises, defaultFoods, defaultConditions, defaultConditionOrder, defaultGroups, defaultGroupOrder)
}
