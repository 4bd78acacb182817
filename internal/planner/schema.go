package planner

import "github.com/google/generative-ai-go/genai"

// responseSchema constrains the provider to the Plan shape.
func responseSchema() *genai.Schema {
	number := &genai.Schema{Type: genai.TypeNumber}
	str := &genai.Schema{Type: genai.TypeString}

	mealSummary := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":     str,
			"protein":  number,
			"carbs":    number,
			"calories": number,
		},
		Required: []string{"name", "protein", "carbs", "calories"},
	}

	meal := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":            str,
			"description":     {Type: genai.TypeString, Description: "Per-person breakdown."},
			"combined_recipe": {Type: genai.TypeString, Description: "Aggregated totals for batch prep."},
			"protein":         number,
			"carbs":           number,
		},
		Required: []string{"name", "description", "combined_recipe", "protein", "carbs"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"disclaimer": str,
			"daily_targets": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"calories":     number,
					"protein_goal": number,
					"carb_limit":   number,
					"explanation":  str,
				},
				Required: []string{"calories", "protein_goal", "carb_limit", "explanation"},
			},
			"goal_timeline": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"estimated_goal_date": {Type: genai.TypeString, Description: "The estimated date to reach the goal."},
					"progress_timeline": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"date":             str,
								"estimated_weight": {Type: genai.TypeString, Description: "Weight with unit, e.g. \"182 lbs\"."},
								"progress_note":    str,
							},
							Required: []string{"date", "estimated_weight", "progress_note"},
						},
					},
				},
				Required: []string{"estimated_goal_date", "progress_timeline"},
			},
			"meal_structure": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"fasting_window":       str,
					"schedule_description": str,
					"meals":                {Type: genai.TypeArray, Items: mealSummary},
				},
				Required: []string{"fasting_window", "schedule_description", "meals"},
			},
			"seven_day_plan": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"day":   {Type: genai.TypeString, Description: "Day 1, Day 2, etc."},
						"meals": {Type: genai.TypeArray, Items: meal},
					},
					Required: []string{"day", "meals"},
				},
			},
			"grocery_list": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"category": str,
						"items": {
							Type: genai.TypeArray,
							Items: &genai.Schema{
								Type: genai.TypeObject,
								Properties: map[string]*genai.Schema{
									"item":     str,
									"quantity": str,
								},
								Required: []string{"item", "quantity"},
							},
						},
					},
					Required: []string{"category", "items"},
				},
			},
			"family_summary": {
				Type:     genai.TypeArray,
				Nullable: true,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":       str,
						"goal":       str,
						"calories":   number,
						"protein":    number,
						"carb_limit": number,
						"fasting":    str,
					},
					Required: []string{"name", "goal", "calories", "protein", "carb_limit", "fasting"},
				},
			},
		},
		Required: []string{"disclaimer", "daily_targets", "goal_timeline", "meal_structure", "seven_day_plan", "grocery_list"},
	}
}
