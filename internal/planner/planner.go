package planner

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/VinceRamirez1998/fuel-and-conquer/internal/llm"
	"github.com/VinceRamirez1998/fuel-and-conquer/internal/metrics"
	"github.com/VinceRamirez1998/fuel-and-conquer/internal/profile"

	"github.com/kaptinlin/jsonrepair"
)

//go:embed system_prompt.md
var systemPrompt string

// ErrGenerationFailed is the single failure surfaced for any error in the
// request/parse/validate pipeline. No retry is attempted.
var ErrGenerationFailed = errors.New("failed to generate meal plan, please try again")

// GenerationOptions returns the fixed model configuration for plan
// generation: the system instruction, the Plan response schema, and the
// sampling temperature.
func GenerationOptions() llm.GenerationOptions {
	return llm.GenerationOptions{
		SystemInstruction: systemPrompt,
		ResponseSchema:    responseSchema(),
		Temperature:       0.2,
	}
}

// planRequest is the payload sent to the provider: the consolidated
// submission with member identifiers stripped, plus a current-date stamp.
type planRequest struct {
	PrimaryUser   profile.Record   `json:"primary_user"`
	IncludeFamily bool             `json:"include_family"`
	FamilyMembers []profile.Record `json:"family_members,omitempty"`
	CurrentDate   string           `json:"current_date"`
}

// Planner handles the generation of meal plans.
type Planner struct {
	textGen llm.TextGenerator
	rec     *metrics.Recorder
	now     func() time.Time
}

// NewPlanner creates a new Planner instance. rec may be nil.
func NewPlanner(textGen llm.TextGenerator, rec *metrics.Recorder) *Planner {
	return &Planner{textGen: textGen, rec: rec, now: time.Now}
}

// GeneratePlan consolidates the submission, sends one request to the
// generative provider, and parses the result into a Plan.
func (p *Planner) GeneratePlan(ctx context.Context, sub profile.Submission) (*Plan, error) {
	payload := buildPayload(sub.Consolidate(), p.now())

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan request: %w", err)
	}
	prompt := fmt.Sprintf("Here is the household data: %s", data)

	start := p.now()
	resp, err := p.textGen.GenerateContent(ctx, prompt)
	elapsed := time.Since(start)
	if err != nil {
		log.Printf("Plan generation call failed: %v", err)
		p.rec.ObserveGeneration("error", elapsed, llm.TokenUsage{})
		return nil, ErrGenerationFailed
	}

	plan, err := parsePlan(resp.Content)
	if err != nil {
		log.Printf("Plan generation produced an unusable response: %v", err)
		p.rec.ObserveGeneration("parse_error", elapsed, resp.Usage)
		return nil, ErrGenerationFailed
	}

	p.rec.ObserveGeneration("success", elapsed, resp.Usage)
	return plan, nil
}

// buildPayload shapes a consolidated submission for transmission. Member
// identifiers never leave the process.
func buildPayload(sub profile.Submission, now time.Time) planRequest {
	req := planRequest{
		PrimaryUser:   sub.Primary,
		IncludeFamily: sub.IncludeFamily,
		// Matches the Date().toDateString() stamp of the original client.
		CurrentDate: now.Format("Mon Jan 02 2006"),
	}
	for _, m := range sub.Members {
		req.FamilyMembers = append(req.FamilyMembers, m.Record)
	}
	return req
}

// parsePlan strips Markdown code fences, parses the JSON (repairing it once
// if plain parsing fails), and validates the resulting shape.
func parsePlan(raw string) (*Plan, error) {
	clean := stripCodeFences(raw)

	var plan Plan
	if err := json.Unmarshal([]byte(clean), &plan); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(clean)
		if repairErr != nil {
			return nil, fmt.Errorf("failed to parse plan JSON: %w. Response: %s", err, raw)
		}
		plan = Plan{}
		if err := json.Unmarshal([]byte(repaired), &plan); err != nil {
			return nil, fmt.Errorf("failed to parse repaired plan JSON: %w. Response: %s", err, raw)
		}
	}

	if err := validatePlan(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
