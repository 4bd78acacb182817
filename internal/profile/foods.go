package profile

import "slices"

// FoodCategory is one checklist section of the food picker.
type FoodCategory struct {
	Name  string
	Items []string
}

// Catalog lists the selectable foods per category, in display order.
var Catalog = []FoodCategory{
	{Name: "Proteins", Items: []string{"Beef", "Pork", "Chicken", "Turkey", "Seafood", "Eggs"}},
	{Name: "Vegetables", Items: []string{"Broccoli", "Leafy Greens", "Asparagus", "Cauliflower", "Zucchini", "Peppers"}},
	{Name: "Fruits", Items: []string{"Berries", "Apples", "Bananas", "Citrus"}},
	{Name: "Fats & Oils", Items: []string{"Butter", "Olive Oil", "Avocado", "Nuts"}},
	{Name: "Dairy", Items: []string{"Cheese", "Greek Yogurt", "Heavy Cream"}},
	{Name: "Starches", Items: []string{"Potatoes", "Rice", "Oats", "Sweet Potatoes"}},
}

// ToggleFood selects or deselects a single item in a category. A category
// whose selection becomes empty is removed from the map entirely.
func (r *Record) ToggleFood(category, item string) {
	if r.SelectedFoods == nil {
		r.SelectedFoods = map[string][]string{}
	}
	current := r.SelectedFoods[category]
	if idx := slices.Index(current, item); idx >= 0 {
		current = slices.Delete(current, idx, idx+1)
		if len(current) == 0 {
			delete(r.SelectedFoods, category)
			return
		}
		r.SelectedFoods[category] = current
		return
	}
	r.SelectedFoods[category] = append(current, item)
}

// ToggleCategory is the per-category bulk control: if every item in the
// category is already selected it clears the category, otherwise it selects
// all of them.
func (r *Record) ToggleCategory(category string, items []string) {
	if r.SelectedFoods == nil {
		r.SelectedFoods = map[string][]string{}
	}
	if r.categoryFull(category, items) {
		delete(r.SelectedFoods, category)
		return
	}
	r.SelectedFoods[category] = append([]string(nil), items...)
}

// ToggleAll is the global bulk control across the whole catalog: everything
// selected clears the map, anything less selects the full catalog.
func (r *Record) ToggleAll(catalog []FoodCategory) {
	full := true
	for _, c := range catalog {
		if !r.categoryFull(c.Name, c.Items) {
			full = false
			break
		}
	}
	if full {
		r.SelectedFoods = map[string][]string{}
		return
	}
	selected := make(map[string][]string, len(catalog))
	for _, c := range catalog {
		selected[c.Name] = append([]string(nil), c.Items...)
	}
	r.SelectedFoods = selected
}

func (r *Record) categoryFull(category string, items []string) bool {
	current := r.SelectedFoods[category]
	if len(current) != len(items) {
		return false
	}
	for _, item := range items {
		if !slices.Contains(current, item) {
			return false
		}
	}
	return true
}
