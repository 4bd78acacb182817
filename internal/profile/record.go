package profile

// Sex is a person's biological sex as used for macro calculations.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Goal is the dietary goal driving calorie and protein targets.
type Goal string

const (
	GoalLoseWeight    Goal = "Lose weight"
	GoalMaintain      Goal = "Maintain weight"
	GoalBuildStrength Goal = "Build strength / muscle"
	GoalRecomposition Goal = "Both (lose fat and gain/maintain muscle)"
)

// CarbPreference is the carb-tier bucket that bounds the daily carb ceiling
// and the permitted food categories.
type CarbPreference string

const (
	CarbVeryLow       CarbPreference = "Very Low (0–30 g/day)"
	CarbLow           CarbPreference = "Low (30–70 g/day)"
	CarbModerate      CarbPreference = "Moderate (70–100 g/day)"
	CarbHigh          CarbPreference = "High Carb (Recommended for Athletes)"
	CarbNotSure       CarbPreference = "Not Sure — Recommend for Me"
	CarbNoRestriction CarbPreference = "No Restriction / Whole-Foods Approach"
)

// FastingPreference is the intermittent-fasting window.
type FastingPreference string

const (
	Fasting168     FastingPreference = "16:8"
	Fasting186     FastingPreference = "18:6"
	Fasting204     FastingPreference = "20:4"
	FastingOMAD    FastingPreference = "OMAD (One Meal A Day)"
	FastingNone    FastingPreference = "No fasting"
	FastingNotSure FastingPreference = "I’m not sure — choose for me"
)

// FoodQuality is the sourcing/quality tier for groceries.
type FoodQuality string

const (
	QualityHigh         FoodQuality = "High Quality"
	QualityAboveAverage FoodQuality = "Above Average"
	QualityAverage      FoodQuality = "Average / Most Cost-Effective"
)

// MealVariety controls how much day-to-day repetition the plan allows.
type MealVariety string

const (
	VarietySimpleRepeat MealVariety = "simple_repeat"
	VarietyVaried       MealVariety = "varied_meals"
)

// FlavorProfile steers seasoning and condiments.
type FlavorProfile string

const (
	FlavorCleanSimple    FlavorProfile = "Clean & Simple"
	FlavorSavoryBalanced FlavorProfile = "Savory & Balanced"
	FlavorBoldSpicy      FlavorProfile = "Bold & Spicy"
)

// WeightUnit is the unit for body-weight fields.
type WeightUnit string

const (
	WeightLbs WeightUnit = "lbs"
	WeightKg  WeightUnit = "kg"
)

// HeightUnit is the unit for height fields.
type HeightUnit string

const (
	HeightFt HeightUnit = "ft"
	HeightCm HeightUnit = "cm"
)

// Record holds one person's biometric and dietary preference data.
// Zero values mean "unset"; MealsPerDay in particular uses 0 for unset.
type Record struct {
	Name         string     `json:"name,omitempty"`
	Sex          Sex        `json:"sex"`
	Age          int        `json:"age"`
	Weight       int        `json:"weight"`
	WeightUnit   WeightUnit `json:"weight_unit"`
	TargetWeight int        `json:"target_weight"`
	HeightFt     int        `json:"height_ft,omitempty"`
	HeightIn     int        `json:"height_in,omitempty"`
	HeightCm     int        `json:"height_cm,omitempty"`
	HeightUnit   HeightUnit `json:"height_unit"`

	Goal              Goal              `json:"goal"`
	CarbPreference    CarbPreference    `json:"carb_preference"`
	FastingPreference FastingPreference `json:"fasting_preference"`
	MealsPerDay       int               `json:"meals_per_day"`

	FoodQuality     FoodQuality         `json:"food_quality_preference"`
	SelectedFoods   map[string][]string `json:"selected_foods"`
	MealVariety     MealVariety         `json:"meal_variety"`
	FlavorProfile   FlavorProfile       `json:"flavor_profile"`
	AllowSnacks     bool                `json:"allow_snacks"`
	FoodPreferences string              `json:"food_preferences"`
}

// NewRecord returns a Record with default field values.
func NewRecord() Record {
	return Record{
		WeightUnit:    WeightLbs,
		HeightUnit:    HeightFt,
		SelectedFoods: map[string][]string{},
	}
}

// SetFastingPreference updates the fasting window and keeps MealsPerDay
// consistent with it: OMAD forces exactly one meal per day, and moving off
// OMAD returns MealsPerDay to unset rather than to a numeric default.
func (r *Record) SetFastingPreference(pref FastingPreference) {
	leavingOMAD := r.FastingPreference == FastingOMAD && pref != FastingOMAD
	r.FastingPreference = pref
	if pref == FastingOMAD {
		r.MealsPerDay = 1
	} else if leavingOMAD {
		r.MealsPerDay = 0
	}
}

// SharedFields is the subset of a Record that a synced family member mirrors
// from the primary user.
type SharedFields struct {
	FoodQuality   FoodQuality
	SelectedFoods map[string][]string
	FlavorProfile FlavorProfile
	AllowSnacks   bool
	MealVariety   MealVariety
}

func (r *Record) sharedFields() SharedFields {
	return SharedFields{
		FoodQuality:   r.FoodQuality,
		SelectedFoods: copyFoods(r.SelectedFoods),
		FlavorProfile: r.FlavorProfile,
		AllowSnacks:   r.AllowSnacks,
		MealVariety:   r.MealVariety,
	}
}

func (r *Record) applyShared(s SharedFields) {
	r.FoodQuality = s.FoodQuality
	r.SelectedFoods = s.SelectedFoods
	r.FlavorProfile = s.FlavorProfile
	r.AllowSnacks = s.AllowSnacks
	r.MealVariety = s.MealVariety
}

func copyFoods(src map[string][]string) map[string][]string {
	dst := make(map[string][]string, len(src))
	for category, items := range src {
		dst[category] = append([]string(nil), items...)
	}
	return dst
}
