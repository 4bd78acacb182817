package planner

// DailyTargets holds the two numbers that matter plus calories and the
// provider's explanation of how they were derived.
type DailyTargets struct {
	Calories    float64 `json:"calories"`
	ProteinGoal float64 `json:"protein_goal"`
	CarbLimit   float64 `json:"carb_limit"`
	Explanation string  `json:"explanation"`
}

// ProgressMilestone is one projected weigh-in between now and the goal date.
type ProgressMilestone struct {
	Date string `json:"date"`
	// EstimatedWeight is a string so the provider can attach "lbs" or "kg".
	EstimatedWeight string `json:"estimated_weight"`
	ProgressNote    string `json:"progress_note"`
}

// GoalTimeline is the projected path to the target weight.
type GoalTimeline struct {
	EstimatedGoalDate string              `json:"estimated_goal_date"`
	ProgressTimeline  []ProgressMilestone `json:"progress_timeline"`
}

// MealSummary is one slot of the daily meal schedule.
type MealSummary struct {
	Name     string  `json:"name"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Calories float64 `json:"calories"`
}

// MealStructure describes the fasting window and the fixed daily schedule.
type MealStructure struct {
	FastingWindow       string        `json:"fasting_window"`
	ScheduleDescription string        `json:"schedule_description"`
	Meals               []MealSummary `json:"meals"`
}

// Meal is one meal of the seven-day plan. Description breaks the meal down
// per person; CombinedRecipe aggregates ingredient totals for batch prep.
type Meal struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	CombinedRecipe string  `json:"combined_recipe"`
	Protein        float64 `json:"protein"`
	Carbs          float64 `json:"carbs"`
}

// DailyPlan is one day of the seven-day plan.
type DailyPlan struct {
	Day   string `json:"day"`
	Meals []Meal `json:"meals"`
}

// GroceryItem is one line of the shopping list.
type GroceryItem struct {
	Item     string `json:"item"`
	Quantity string `json:"quantity"`
}

// GroceryCategory groups grocery items under a store category.
type GroceryCategory struct {
	Category string        `json:"category"`
	Items    []GroceryItem `json:"items"`
}

// FamilySummaryRow holds per-person targets when family members are included.
type FamilySummaryRow struct {
	Name      string  `json:"name"`
	Goal      string  `json:"goal"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	CarbLimit float64 `json:"carb_limit"`
	Fasting   string  `json:"fasting"`
}

// Plan is the full meal plan as produced by the generative provider.
type Plan struct {
	Disclaimer    string             `json:"disclaimer"`
	DailyTargets  DailyTargets       `json:"daily_targets"`
	GoalTimeline  GoalTimeline       `json:"goal_timeline"`
	MealStructure MealStructure      `json:"meal_structure"`
	SevenDayPlan  []DailyPlan        `json:"seven_day_plan"`
	GroceryList   []GroceryCategory  `json:"grocery_list"`
	FamilySummary []FamilySummaryRow `json:"family_summary,omitempty"`
}
