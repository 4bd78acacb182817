package profile

import "testing"

func TestAddRemoveMember(t *testing.T) {
	s := NewSubmission()

	first := s.AddMember()
	second := s.AddMember()
	if first.ID == "" || second.ID == "" {
		t.Fatal("Expected generated member identifiers")
	}
	if first.ID == second.ID {
		t.Fatal("Expected unique member identifiers")
	}
	if len(s.Members) != 2 {
		t.Fatalf("Expected 2 members, got %d", len(s.Members))
	}

	if !s.RemoveMember(first.ID) {
		t.Error("Expected RemoveMember to report success")
	}
	if len(s.Members) != 1 || s.Members[0].ID == first.ID {
		t.Errorf("Expected only the second member to remain, got %v", s.Members)
	}
	if s.RemoveMember("missing") {
		t.Error("Expected RemoveMember to report false for an unknown id")
	}
}

func TestConsolidateSyncedMember(t *testing.T) {
	s := NewSubmission()
	s.IncludeFamily = true
	s.Primary.FoodQuality = QualityHigh
	s.Primary.FlavorProfile = FlavorBoldSpicy
	s.Primary.AllowSnacks = true
	s.Primary.MealVariety = VarietyVaried
	s.Primary.ToggleFood("Proteins", "Beef")

	m := s.AddMember()
	m.Mode = SyncWithPrimary
	// Local edits made while synced must not survive consolidation.
	m.FoodQuality = QualityAverage
	m.FlavorProfile = FlavorCleanSimple
	m.AllowSnacks = false
	m.MealVariety = VarietySimpleRepeat
	m.ToggleFood("Proteins", "Tofu")

	out := s.Consolidate()
	got := out.Members[0]
	if got.FoodQuality != QualityHigh {
		t.Errorf("Expected food quality %q, got %q", QualityHigh, got.FoodQuality)
	}
	if got.FlavorProfile != FlavorBoldSpicy {
		t.Errorf("Expected flavor %q, got %q", FlavorBoldSpicy, got.FlavorProfile)
	}
	if !got.AllowSnacks {
		t.Error("Expected snacks flag mirrored from primary")
	}
	if got.MealVariety != VarietyVaried {
		t.Errorf("Expected meal variety %q, got %q", VarietyVaried, got.MealVariety)
	}
	if foods := got.SelectedFoods["Proteins"]; len(foods) != 1 || foods[0] != "Beef" {
		t.Errorf("Expected primary's foods, got %v", foods)
	}
}

func TestConsolidateIndependentMemberKeepsOwnFields(t *testing.T) {
	s := NewSubmission()
	s.IncludeFamily = true
	s.Primary.FoodQuality = QualityHigh

	m := s.AddMember()
	m.FoodQuality = QualityAverage

	out := s.Consolidate()
	if out.Members[0].FoodQuality != QualityAverage {
		t.Errorf("Expected independent member to keep its own quality, got %q", out.Members[0].FoodQuality)
	}
}

func TestConsolidateIsASnapshot(t *testing.T) {
	s := NewSubmission()
	s.IncludeFamily = true
	s.Primary.FoodQuality = QualityHigh
	m := s.AddMember()
	m.Mode = SyncWithPrimary

	out := s.Consolidate()

	// Later edits, including flipping sync off, must not retroactively alter
	// an already-consolidated submission.
	s.Members[0].Mode = SyncIndependent
	s.Members[0].FoodQuality = QualityAverage
	s.Primary.FoodQuality = QualityAboveAverage
	s.Primary.ToggleFood("Proteins", "Beef")

	if out.Members[0].FoodQuality != QualityHigh {
		t.Errorf("Consolidated member mutated retroactively: %q", out.Members[0].FoodQuality)
	}
	if len(out.Primary.SelectedFoods) != 0 {
		t.Error("Consolidated primary foods mutated retroactively")
	}
}

func TestConsolidateExcludesFamilyWhenNotIncluded(t *testing.T) {
	s := NewSubmission()
	s.AddMember()
	s.IncludeFamily = false

	out := s.Consolidate()
	if len(out.Members) != 0 {
		t.Errorf("Expected no members when family is not included, got %d", len(out.Members))
	}
}
