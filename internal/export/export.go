// Package export serializes a generated plan into shareable artifacts: a
// standalone HTML document for download and an HTML + plain-text pair for a
// multi-format clipboard write.
package export

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/VinceRamirez1998/fuel-and-conquer/internal/planner"
)

// Inline style constants, optimized for email clients and print.
const (
	colorText      = "#1e293b"
	colorTextLight = "#475569"
	colorTextMuted = "#64748b"
	colorBorder    = "#e2e8f0"
	colorAccent    = "#84cc16"
	colorTealBg    = "#f0fdfa"
	colorTealDark  = "#134e4a"
	colorSkyBg     = "#f0f9ff"
	colorSkyDark   = "#0c4a6e"
	colorAmberBg   = "#fffbeb"
	colorAmberDark = "#78350f"
	colorNoteBg    = "#fefce8"
	colorNoteEdge  = "#eab308"
	colorNoteText  = "#854d0e"
)

// ClipboardPayload carries both renderings of a plan for a single
// multi-format clipboard entry. The field names are the clipboard MIME types.
type ClipboardPayload struct {
	HTML string `json:"text/html"`
	Text string `json:"text/plain"`
}

// Clipboard renders both representations of the plan.
func Clipboard(p *planner.Plan, generatedAt time.Time) ClipboardPayload {
	return ClipboardPayload{
		HTML: fragment(p, generatedAt),
		Text: Text(p, generatedAt),
	}
}

// FileName returns the download name for an exported plan.
func FileName(generatedAt time.Time) string {
	return fmt.Sprintf("fuel-and-conquer-meal-plan-%s.html", generatedAt.Format("2006-01-02"))
}

// HTML renders the plan as a self-contained document for file export.
func HTML(p *planner.Plan, generatedAt time.Time) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString("<title>Fuel &amp; Conquer Meal Plan</title>\n")
	sb.WriteString(fmt.Sprintf("<style>body { background-color: #f1f5f9; margin: 0; padding: 24px; } @media print { body { background-color: #ffffff; padding: 0; } } table { border-collapse: collapse; } th, td { text-align: left; } th { color: %s; }</style>\n", colorTextLight))
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(fragment(p, generatedAt))
	sb.WriteString("\n</body>\n</html>\n")
	return sb.String()
}

// fragment renders the plan body without the document wrapper, so the same
// markup flows into an email body when pasted from the clipboard.
func fragment(p *planner.Plan, generatedAt time.Time) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("<div style=\"font-family: Helvetica, Arial, sans-serif; color: %s; background-color: #ffffff; padding: 20px; border-radius: 8px; border: 1px solid %s; max-width: 640px;\">\n", colorText, colorBorder))

	// Header
	sb.WriteString(fmt.Sprintf("<div style=\"border-bottom: 2px solid %s; padding-bottom: 16px; margin-bottom: 24px;\">\n", colorAccent))
	sb.WriteString(fmt.Sprintf("<h1 style=\"margin: 0; font-size: 24px; font-weight: 900; font-style: italic; text-transform: uppercase; color: #0f172a;\">Fuel &amp; <span style=\"color: %s;\">Conquer</span></h1>\n", colorAccent))
	sb.WriteString(fmt.Sprintf("<p style=\"margin: 4px 0 0 0; font-size: 12px; font-weight: 700; color: #94a3b8; text-transform: uppercase; letter-spacing: 0.1em;\">Generated on %s</p>\n</div>\n", esc(generatedAt.Format("1/2/2006"))))

	// Disclaimer
	sb.WriteString(fmt.Sprintf("<div style=\"background-color: %s; border-left: 4px solid %s; padding: 12px; margin-bottom: 24px;\">\n", colorNoteBg, colorNoteEdge))
	sb.WriteString(fmt.Sprintf("<p style=\"margin: 0; font-size: 13px; color: %s; font-weight: bold;\">Important Disclaimer</p>\n", colorNoteText))
	sb.WriteString(fmt.Sprintf("<p style=\"margin: 4px 0 0 0; font-size: 13px; color: %s;\">%s</p>\n</div>\n", colorNoteText, esc(p.Disclaimer)))

	writeTargets(&sb, p)
	writeTimeline(&sb, p)
	writeMealStructure(&sb, p)
	writeSevenDayPlan(&sb, p)
	writeGroceryList(&sb, p)
	writeFamilySummary(&sb, p)

	sb.WriteString("</div>")
	return sb.String()
}

func writeTargets(sb *strings.Builder, p *planner.Plan) {
	sb.WriteString(sectionHeading("Your Daily Blueprint"))
	sb.WriteString("<table width=\"100%\" cellpadding=\"0\" cellspacing=\"0\" border=\"0\" style=\"margin-bottom: 16px;\"><tr>\n")
	sb.WriteString(targetCell(colorTealBg, "#0f766e", colorTealDark, "Daily Calories", fmt.Sprintf("%.0f", p.DailyTargets.Calories), "kcal"))
	sb.WriteString("<td width=\"2%\"></td>\n")
	sb.WriteString(targetCell(colorSkyBg, "#0369a1", colorSkyDark, "Protein Goal", fmt.Sprintf("%.0f", p.DailyTargets.ProteinGoal), "grams"))
	sb.WriteString("<td width=\"2%\"></td>\n")
	sb.WriteString(targetCell(colorAmberBg, "#b45309", colorAmberDark, "Carb Limit", fmt.Sprintf("&lt; %.0f", p.DailyTargets.CarbLimit), "grams"))
	sb.WriteString("</tr></table>\n")
	sb.WriteString(fmt.Sprintf("<div style=\"background-color: #f8fafc; padding: 12px; border-radius: 6px; font-size: 14px; color: %s; line-height: 1.5; margin-bottom: 32px;\"><strong style=\"color: %s;\">The &quot;Two Numbers That Matter&quot; Philosophy:</strong> %s</div>\n", colorTextLight, colorText, esc(p.DailyTargets.Explanation)))
}

func targetCell(bg, labelColor, valueColor, title, amount, unit string) string {
	return fmt.Sprintf("<td width=\"32%%\" valign=\"top\" style=\"background-color: %s; padding: 12px; border-radius: 8px; text-align: center;\"><p style=\"margin: 0; font-size: 12px; font-weight: 600; color: %s;\">%s</p><p style=\"margin: 4px 0; font-size: 24px; font-weight: bold; color: %s;\">%s</p><p style=\"margin: 0; font-size: 11px; color: %s;\">%s</p></td>\n",
		bg, labelColor, title, valueColor, amount, valueColor, unit)
}

func writeTimeline(sb *strings.Builder, p *planner.Plan) {
	sb.WriteString(sectionHeading("Goal Timeline"))
	sb.WriteString(fmt.Sprintf("<p style=\"font-size: 15px; margin: 0 0 12px 0;\"><strong style=\"color: %s;\">You could reach your goal by:</strong> <span style=\"color: #0f766e; font-weight: bold;\">%s</span></p>\n", colorTextLight, esc(p.GoalTimeline.EstimatedGoalDate)))

	if len(p.GoalTimeline.ProgressTimeline) == 0 {
		sb.WriteString("<div style=\"margin-bottom: 32px;\"></div>\n")
		return
	}

	sb.WriteString("<table width=\"100%\" cellpadding=\"8\" cellspacing=\"0\" style=\"margin-bottom: 32px; font-size: 13px;\">\n")
	sb.WriteString(tableHeader("Date", "Estimated Weight", "Note"))
	for _, m := range p.GoalTimeline.ProgressTimeline {
		sb.WriteString(tableRow(esc(m.Date), esc(m.EstimatedWeight), esc(m.ProgressNote)))
	}
	sb.WriteString("</table>\n")
}

func writeMealStructure(sb *strings.Builder, p *planner.Plan) {
	sb.WriteString(sectionHeading("Daily Meal Structure"))
	sb.WriteString(fmt.Sprintf("<p style=\"font-size: 14px; margin: 0 0 4px 0;\"><strong>Fasting Window:</strong> %s</p>\n", esc(p.MealStructure.FastingWindow)))
	sb.WriteString(fmt.Sprintf("<p style=\"font-size: 13px; color: %s; margin: 0 0 12px 0;\">%s</p>\n", colorTextLight, esc(p.MealStructure.ScheduleDescription)))
	for _, m := range p.MealStructure.Meals {
		sb.WriteString(fmt.Sprintf("<p style=\"font-size: 13px; margin: 0 0 4px 0;\">%s &mdash; ~%.0fg P | ~%.0fg C | ~%.0f kcal</p>\n", esc(m.Name), m.Protein, m.Carbs, m.Calories))
	}
	sb.WriteString("<div style=\"margin-bottom: 32px;\"></div>\n")
}

func writeSevenDayPlan(sb *strings.Builder, p *planner.Plan) {
	sb.WriteString(sectionHeading("Your 7-Day Meal Plan"))
	for i, day := range p.SevenDayPlan {
		style := ""
		if i != 0 {
			style = fmt.Sprintf("border-top: 1px solid %s; padding-top: 20px; margin-top: 20px;", colorBorder)
		}
		sb.WriteString(fmt.Sprintf("<div style=\"%s\">\n<h3 style=\"font-size: 16px; font-weight: bold; color: %s; margin: 0 0 12px 0;\">%s</h3>\n", style, colorText, esc(day.Day)))
		for _, meal := range day.Meals {
			sb.WriteString("<div style=\"background-color: #f8fafc; padding: 12px; border-radius: 6px; margin-bottom: 12px;\">\n")
			sb.WriteString(fmt.Sprintf("<p style=\"margin: 0 0 4px 0; font-size: 15px; font-weight: 600; color: %s;\">%s</p>\n", colorText, esc(meal.Name)))
			sb.WriteString(fmt.Sprintf("<p style=\"margin: 0 0 8px 0; font-size: 13px; color: %s; line-height: 1.4;\">%s</p>\n", colorTextLight, esc(meal.Description)))
			if meal.CombinedRecipe != "" {
				sb.WriteString(fmt.Sprintf("<p style=\"margin: 0 0 8px 0; font-size: 13px; color: %s; line-height: 1.4;\"><strong>Combined recipe:</strong> %s</p>\n", colorTextLight, esc(meal.CombinedRecipe)))
			}
			sb.WriteString(fmt.Sprintf("<p style=\"margin: 0; font-size: 11px; color: %s;\">~%.0fg P | ~%.0fg C</p>\n</div>\n", colorTextMuted, meal.Protein, meal.Carbs))
		}
		sb.WriteString("</div>\n")
	}
	sb.WriteString("<div style=\"margin-bottom: 32px;\"></div>\n")
}

func writeGroceryList(sb *strings.Builder, p *planner.Plan) {
	sb.WriteString(sectionHeading("Grocery List"))
	sb.WriteString("<table width=\"100%\" cellpadding=\"8\" cellspacing=\"0\" style=\"margin-bottom: 32px; font-size: 13px;\">\n")
	sb.WriteString(tableHeader("Category", "Item", "Quantity"))
	for _, cat := range p.GroceryList {
		for i, item := range cat.Items {
			name := ""
			if i == 0 {
				name = esc(cat.Category)
			}
			sb.WriteString(tableRow(name, esc(item.Item), esc(item.Quantity)))
		}
	}
	sb.WriteString("</table>\n")
}

func writeFamilySummary(sb *strings.Builder, p *planner.Plan) {
	if len(p.FamilySummary) == 0 {
		return
	}
	sb.WriteString(sectionHeading("Family Summary"))
	sb.WriteString("<table width=\"100%\" cellpadding=\"8\" cellspacing=\"0\" style=\"margin-bottom: 16px; font-size: 13px;\">\n")
	sb.WriteString(tableHeader("Name", "Goal", "Calories", "Protein", "Carb Limit", "Fasting"))
	for _, row := range p.FamilySummary {
		sb.WriteString(tableRow(
			esc(row.Name),
			esc(row.Goal),
			fmt.Sprintf("%.0f", row.Calories),
			fmt.Sprintf("%.0f", row.Protein),
			fmt.Sprintf("%.0f", row.CarbLimit),
			esc(row.Fasting),
		))
	}
	sb.WriteString("</table>\n")
}

func sectionHeading(title string) string {
	return fmt.Sprintf("<h2 style=\"font-size: 20px; font-weight: bold; color: %s; border-bottom: 1px solid %s; padding-bottom: 8px; margin: 0 0 16px 0;\">%s</h2>\n", colorText, colorBorder, esc(title))
}

func tableHeader(cells ...string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<tr style=\"border-bottom: 2px solid %s;\">", colorBorder))
	for _, c := range cells {
		sb.WriteString(fmt.Sprintf("<th style=\"padding: 8px;\">%s</th>", c))
	}
	sb.WriteString("</tr>\n")
	return sb.String()
}

func tableRow(cells ...string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<tr style=\"border-bottom: 1px solid %s;\">", colorBorder))
	for _, c := range cells {
		sb.WriteString(fmt.Sprintf("<td style=\"padding: 8px;\">%s</td>", c))
	}
	sb.WriteString("</tr>\n")
	return sb.String()
}

func esc(s string) string {
	return html.EscapeString(s)
}

// Text renders the plan as plain text, the clipboard fallback representation.
func Text(p *planner.Plan, generatedAt time.Time) string {
	var sb strings.Builder

	sb.WriteString("FUEL & CONQUER MEAL PLAN\n")
	sb.WriteString(fmt.Sprintf("Generated on: %s\n\n", generatedAt.Format("1/2/2006")))

	sb.WriteString("DAILY TARGETS\n-------------\n")
	sb.WriteString(fmt.Sprintf("Calories: %.0f\n", p.DailyTargets.Calories))
	sb.WriteString(fmt.Sprintf("Protein: %.0fg\n", p.DailyTargets.ProteinGoal))
	sb.WriteString(fmt.Sprintf("Carb Limit: < %.0fg\n\n", p.DailyTargets.CarbLimit))

	sb.WriteString("GOAL TIMELINE\n-------------\n")
	sb.WriteString(fmt.Sprintf("Estimated Date: %s\n", p.GoalTimeline.EstimatedGoalDate))
	for _, m := range p.GoalTimeline.ProgressTimeline {
		sb.WriteString(fmt.Sprintf("  %s: %s (%s)\n", m.Date, m.EstimatedWeight, m.ProgressNote))
	}
	sb.WriteString("\n")

	sb.WriteString("MEAL STRUCTURE\n--------------\n")
	sb.WriteString(fmt.Sprintf("Fasting Window: %s\n", p.MealStructure.FastingWindow))
	sb.WriteString(p.MealStructure.ScheduleDescription + "\n\n")

	for _, day := range p.SevenDayPlan {
		sb.WriteString(strings.ToUpper(day.Day) + "\n")
		for _, meal := range day.Meals {
			sb.WriteString(fmt.Sprintf("* %s\n  %s\n", meal.Name, meal.Description))
			if meal.CombinedRecipe != "" {
				sb.WriteString(fmt.Sprintf("  Combined recipe: %s\n", meal.CombinedRecipe))
			}
			sb.WriteString(fmt.Sprintf("  (Protein: %.0fg | Carbs: %.0fg)\n", meal.Protein, meal.Carbs))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("GROCERY LIST\n------------\n")
	for _, cat := range p.GroceryList {
		sb.WriteString(cat.Category + ":\n")
		for _, item := range cat.Items {
			sb.WriteString(fmt.Sprintf("  - %s (%s)\n", item.Item, item.Quantity))
		}
	}
	sb.WriteString("\n")

	if len(p.FamilySummary) > 0 {
		sb.WriteString("FAMILY SUMMARY\n--------------\n")
		for _, row := range p.FamilySummary {
			sb.WriteString(fmt.Sprintf("%s: %s | %.0f kcal | %.0fg protein | < %.0fg carbs | %s\n",
				row.Name, row.Goal, row.Calories, row.Protein, row.CarbLimit, row.Fasting))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("DISCLAIMER\n----------\n")
	sb.WriteString(p.Disclaimer + "\n")

	return sb.String()
}
