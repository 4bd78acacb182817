package planner

import "fmt"

// validatePlan checks the provider's JSON against the requested shape. The
// response crosses a trust boundary, so required sections and fields are
// verified explicitly rather than assumed schema-compliant.
func validatePlan(p *Plan) error {
	if p.Disclaimer == "" {
		return fmt.Errorf("plan is missing disclaimer")
	}
	if p.DailyTargets.Calories <= 0 || p.DailyTargets.ProteinGoal <= 0 {
		return fmt.Errorf("plan has invalid daily targets: calories=%v protein=%v",
			p.DailyTargets.Calories, p.DailyTargets.ProteinGoal)
	}
	if p.DailyTargets.Explanation == "" {
		return fmt.Errorf("plan is missing daily target explanation")
	}
	if p.GoalTimeline.EstimatedGoalDate == "" {
		return fmt.Errorf("plan is missing estimated goal date")
	}
	for i, m := range p.GoalTimeline.ProgressTimeline {
		if m.Date == "" || m.EstimatedWeight == "" {
			return fmt.Errorf("goal timeline milestone %d is incomplete", i+1)
		}
	}
	if p.MealStructure.FastingWindow == "" || p.MealStructure.ScheduleDescription == "" {
		return fmt.Errorf("plan is missing meal structure")
	}
	if len(p.SevenDayPlan) == 0 {
		return fmt.Errorf("plan has no days")
	}
	for _, day := range p.SevenDayPlan {
		if day.Day == "" {
			return fmt.Errorf("plan contains an unnamed day")
		}
		if len(day.Meals) == 0 {
			return fmt.Errorf("%s has no meals", day.Day)
		}
		for _, meal := range day.Meals {
			if meal.Name == "" || meal.Description == "" {
				return fmt.Errorf("%s contains an incomplete meal", day.Day)
			}
		}
	}
	if len(p.GroceryList) == 0 {
		return fmt.Errorf("plan has no grocery list")
	}
	for _, cat := range p.GroceryList {
		if cat.Category == "" {
			return fmt.Errorf("grocery list contains an unnamed category")
		}
		if len(cat.Items) == 0 {
			return fmt.Errorf("grocery category %q has no items", cat.Category)
		}
		for _, item := range cat.Items {
			if item.Item == "" {
				return fmt.Errorf("grocery category %q contains an unnamed item", cat.Category)
			}
		}
	}
	for i, row := range p.FamilySummary {
		if row.Name == "" {
			return fmt.Errorf("family summary row %d is missing a name", i+1)
		}
	}
	return nil
}
