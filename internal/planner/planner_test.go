package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/VinceRamirez1998/fuel-and-conquer/internal/llm"
	"github.com/VinceRamirez1998/fuel-and-conquer/internal/profile"
)

const validPlanJSON = `{
	"disclaimer": "This program is for educational purposes only and is not medical advice. Consult with a qualified healthcare professional before beginning.",
	"daily_targets": {"calories": 1540, "protein_goal": 140, "carb_limit": 50, "explanation": "Protein and carbs are the two numbers that matter."},
	"goal_timeline": {
		"estimated_goal_date": "Mar 15 2027",
		"progress_timeline": [{"date": "Oct 01 2026", "estimated_weight": "155 lbs", "progress_note": "First month down."}]
	},
	"meal_structure": {
		"fasting_window": "16:8 (eat between 12pm and 8pm)",
		"schedule_description": "Two meals inside the window, no snacks.",
		"meals": [{"name": "Lunch", "protein": 70, "carbs": 25, "calories": 770}]
	},
	"seven_day_plan": [
		{"day": "Day 1", "meals": [{"name": "Ribeye & Asparagus", "description": "Jane: 8oz ribeye.", "combined_recipe": "16oz ribeye, 2 bunches asparagus, 4 tbsp butter.", "protein": 55, "carbs": 8}]}
	],
	"grocery_list": [
		{"category": "Meat", "items": [{"item": "Ribeye steak", "quantity": "4 lbs"}]}
	],
	"family_summary": [
		{"name": "Jane", "goal": "Lose weight", "calories": 1540, "protein": 140, "carb_limit": 50, "fasting": "16:8"}
	]
}`

type MockTextGenerator struct {
	Response    string
	Err         error
	LastPrompt  string
	CallCount   int
}

func (m *MockTextGenerator) GenerateContent(ctx context.Context, prompt string) (llm.ContentResponse, error) {
	m.CallCount++
	m.LastPrompt = prompt
	if m.Err != nil {
		return llm.ContentResponse{}, m.Err
	}
	return llm.ContentResponse{Content: m.Response}, nil
}

func TestGeneratePlan(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock := &MockTextGenerator{Response: validPlanJSON}
		p := NewPlanner(mock, nil)

		sub := profile.NewSubmission()
		sub.Primary.Sex = profile.SexFemale
		plan, err := p.GeneratePlan(ctx, sub)
		if err != nil {
			t.Fatalf("GeneratePlan failed: %v", err)
		}
		if len(plan.SevenDayPlan) != 1 || plan.SevenDayPlan[0].Day != "Day 1" {
			t.Errorf("Unexpected seven-day plan: %+v", plan.SevenDayPlan)
		}
		if plan.DailyTargets.ProteinGoal != 140 {
			t.Errorf("Expected protein goal 140, got %v", plan.DailyTargets.ProteinGoal)
		}
		if mock.CallCount != 1 {
			t.Errorf("Expected exactly one provider call, got %d", mock.CallCount)
		}
		if !strings.HasPrefix(mock.LastPrompt, "Here is the household data: ") {
			t.Errorf("Unexpected prompt framing: %q", mock.LastPrompt)
		}
		if !strings.Contains(mock.LastPrompt, `"sex":"female"`) {
			t.Errorf("Expected the household payload in the prompt, got %q", mock.LastPrompt)
		}
	})

	t.Run("FencedResponse", func(t *testing.T) {
		fenced := "```json\n" + validPlanJSON + "\n```"
		mock := &MockTextGenerator{Response: fenced}
		p := NewPlanner(mock, nil)

		plan, err := p.GeneratePlan(ctx, profile.NewSubmission())
		if err != nil {
			t.Fatalf("Expected fenced JSON to parse, got %v", err)
		}
		if plan.GroceryList[0].Items[0].Item != "Ribeye steak" {
			t.Errorf("Unexpected grocery list: %+v", plan.GroceryList)
		}
	})

	t.Run("ProviderError", func(t *testing.T) {
		mock := &MockTextGenerator{Err: fmt.Errorf("quota exceeded")}
		p := NewPlanner(mock, nil)

		_, err := p.GeneratePlan(ctx, profile.NewSubmission())
		if !errors.Is(err, ErrGenerationFailed) {
			t.Errorf("Expected ErrGenerationFailed, got %v", err)
		}
	})

	t.Run("UnparsableResponse", func(t *testing.T) {
		mock := &MockTextGenerator{Response: "I am sorry, I cannot help with that."}
		p := NewPlanner(mock, nil)

		_, err := p.GeneratePlan(ctx, profile.NewSubmission())
		if !errors.Is(err, ErrGenerationFailed) {
			t.Errorf("Expected ErrGenerationFailed, got %v", err)
		}
	})

	t.Run("MissingRequiredKeys", func(t *testing.T) {
		mock := &MockTextGenerator{Response: `{"disclaimer": "x"}`}
		p := NewPlanner(mock, nil)

		_, err := p.GeneratePlan(ctx, profile.NewSubmission())
		if !errors.Is(err, ErrGenerationFailed) {
			t.Errorf("Expected ErrGenerationFailed, got %v", err)
		}
	})

	t.Run("NoRetryAfterFailure", func(t *testing.T) {
		mock := &MockTextGenerator{Err: fmt.Errorf("boom")}
		p := NewPlanner(mock, nil)

		_, _ = p.GeneratePlan(ctx, profile.NewSubmission())
		if mock.CallCount != 1 {
			t.Errorf("Expected a single attempt, got %d", mock.CallCount)
		}
	})
}

func TestBuildPayload(t *testing.T) {
	sub := profile.NewSubmission()
	sub.Primary.Sex = profile.SexFemale
	sub.Primary.Age = 34
	sub.Primary.Weight = 160
	sub.Primary.WeightUnit = profile.WeightLbs
	sub.Primary.TargetWeight = 140
	sub.Primary.Goal = profile.GoalLoseWeight
	sub.Primary.CarbPreference = profile.CarbLow
	sub.Primary.SetFastingPreference(profile.Fasting168)
	sub.Primary.AllowSnacks = false

	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	payload := buildPayload(sub.Consolidate(), now)

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to decode payload: %v", err)
	}

	primary, ok := decoded["primary_user"].(map[string]any)
	if !ok {
		t.Fatal("Payload is missing primary_user")
	}
	checks := map[string]any{
		"sex":                "female",
		"age":                float64(34),
		"weight":             float64(160),
		"weight_unit":        "lbs",
		"target_weight":      float64(140),
		"goal":               "Lose weight",
		"carb_preference":    "Low (30–70 g/day)",
		"fasting_preference": "16:8",
		"allow_snacks":       false,
	}
	for field, want := range checks {
		if got := primary[field]; got != want {
			t.Errorf("Expected %s=%v, got %v", field, want, got)
		}
	}

	if decoded["current_date"] != "Tue Sep 01 2026" {
		t.Errorf("Expected current_date 'Tue Sep 01 2026', got %v", decoded["current_date"])
	}
}

func TestBuildPayloadStripsMemberIDs(t *testing.T) {
	sub := profile.NewSubmission()
	sub.IncludeFamily = true
	sub.Primary.FoodQuality = profile.QualityHigh
	m := sub.AddMember()
	m.Name = "Alex"
	m.Mode = profile.SyncWithPrimary
	m.FoodQuality = profile.QualityAverage

	payload := buildPayload(sub.Consolidate(), time.Now())
	data, _ := json.Marshal(payload)

	if strings.Contains(string(data), m.ID) {
		t.Error("Member identifier leaked into the provider payload")
	}

	var decoded struct {
		FamilyMembers []map[string]any `json:"family_members"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to decode payload: %v", err)
	}
	if len(decoded.FamilyMembers) != 1 {
		t.Fatalf("Expected 1 family member, got %d", len(decoded.FamilyMembers))
	}
	if got := decoded.FamilyMembers[0]["food_quality_preference"]; got != "High Quality" {
		t.Errorf("Expected synced member to carry primary quality, got %v", got)
	}
	if _, ok := decoded.FamilyMembers[0]["id"]; ok {
		t.Error("Payload member still carries an id field")
	}
}

func TestStripCodeFences(t *testing.T) {
	in := "```json\n{\"a\": 1}\n```"
	if got := stripCodeFences(in); got != `{"a": 1}` {
		t.Errorf("Expected fences stripped, got %q", got)
	}
	if got := stripCodeFences(`{"a": 1}`); got != `{"a": 1}` {
		t.Errorf("Expected plain JSON untouched, got %q", got)
	}
}
