package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/insightstream/strategy-ai/pkg/model"
)

// DisplayRoadmap formats and displays the full roadmap analysis
func DisplayRoadmap(context string, branches []model.Branch, plan *model.RoadmapPlan, format string) error {
	switch format {
	case "json":
		return displayJSON(roadmapDocument{Context: context, Branches: branches, Plan: plan})
	case "yaml":
		return displayYAML(roadmapDocument{Context: context, Branches: branches, Plan: plan})
	case "human":
		fallthrough
	default:
		displayRoadmapHuman(branches, plan)
	}
	return nil
}

// DisplayValidation formats and displays hypothesis validation results
func DisplayValidation(hypotheses []model.Hypothesis, format string) error {
	switch format {
	case "json":
		return displayJSON(hypotheses)
	case "yaml":
		return displayYAML(hypotheses)
	case "human":
		fallthrough
	default:
		displayValidationHuman(hypotheses)
	}
	return nil
}

// DisplayInterview formats and displays a transcript analysis
func DisplayInterview(summary string, themes []string, insights []model.Insight, format string) error {
	doc := interviewDocument{Summary: summary, Themes: themes, Insights: insights}
	switch format {
	case "json":
		return displayJSON(doc)
	case "yaml":
		return displayYAML(doc)
	case "human":
		fallthrough
	default:
		displayInterviewHuman(doc)
	}
	return nil
}

type roadmapDocument struct {
	Context  string             `json:"context" yaml:"context"`
	Branches []model.Branch     `json:"branches" yaml:"branches"`
	Plan     *model.RoadmapPlan `json:"plan,omitempty" yaml:"plan,omitempty"`
}

type interviewDocument struct {
	Summary  string          `json:"summary" yaml:"summary"`
	Themes   []string        `json:"themes,omitempty" yaml:"themes,omitempty"`
	Insights []model.Insight `json:"insights,omitempty" yaml:"insights,omitempty"`
}

func displayJSON(v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayYAML(v interface{}) error {
	output, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayRoadmapHuman(branches []model.Branch, plan *model.RoadmapPlan) {
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Println()
	cyan.Println("🧭 DECISION BRANCHES:")
	for i, b := range branches {
		fmt.Printf("   %d. %s", i+1, b.Name)
		if b.Risk != nil {
			fmt.Printf(" %s ", severityIcon(b.Risk.OverallLevel))
			severityColor(b.Risk.OverallLevel).Printf("%s", b.Risk.OverallLevel)
		}
		fmt.Println()
		fmt.Println(wrapText(b.Description, 80, "      "))
		if b.Risk != nil {
			for _, dim := range model.Dimensions() {
				res, ok := b.Risk.Dimensions[dim]
				if !ok {
					continue
				}
				fmt.Printf("      %s %s: %s\n", severityIcon(res.Severity), dim.Title(), res.Severity)
			}
			fmt.Println(wrapText(b.Risk.Reasoning, 80, "      "))
		}
		fmt.Println()
	}

	if plan == nil {
		return
	}

	white.Println("📄 EXECUTIVE SUMMARY:")
	fmt.Println(wrapText(plan.ExecutiveSummary, 80, "   "))
	fmt.Println()

	if len(plan.DecisionTimeline) > 0 {
		cyan.Println("🗓️  DECISION TIMELINE:")
		for _, entry := range plan.DecisionTimeline {
			fmt.Printf("   %d. [%d %s] %s\n", entry.Sequence, entry.Year, entry.Quarter, entry.Decision)
			fmt.Println(wrapText(entry.Description, 80, "      "))
			fmt.Printf("      Linked risk: %s / %s %s %s\n",
				entry.LinkedRisk.Branch, entry.LinkedRisk.RiskDimension,
				severityIcon(entry.LinkedRisk.Severity), entry.LinkedRisk.Severity)
			fmt.Println()
		}
	}

	if len(plan.PrioritizedOptions) > 0 {
		cyan.Println("🏁 PRIORITIZED OPTIONS:")
		for _, opt := range plan.PrioritizedOptions {
			fmt.Printf("   %d. %s (%s)\n", opt.Priority, opt.Name, opt.Timeline)
			fmt.Println(wrapText(opt.Rationale, 80, "      "))
			fmt.Println()
		}
	}

	if len(plan.NextSteps) > 0 {
		white.Println("➡️  NEXT STEPS:")
		for i, step := range plan.NextSteps {
			fmt.Printf("   %d. %s\n", i+1, step)
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("─", 80))
	fmt.Printf("💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

func displayValidationHuman(hypotheses []model.Hypothesis) {
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)

	fmt.Println()
	for _, h := range hypotheses {
		header := yellow
		icon := "❔"
		if h.Status == model.StatusVerified {
			header = green
			icon = "✅"
		}
		header.Printf("%s HYPOTHESIS %d: %s\n", icon, h.ID, h.Text)
		if h.Status == model.StatusVerified {
			fmt.Printf("   Confidence: %.0f%%   Supporting: %d   Against: %d\n",
				h.Confidence*100, h.SupportingCount, h.AgainstCount)
		} else {
			fmt.Println("   Not yet validated against transcripts.")
		}
		for _, e := range h.Evidence {
			marker := "+"
			if e.Type == model.EvidenceRefuting {
				marker = "-"
			}
			fmt.Printf("   %s %q (%s)\n", marker, e.Quote, e.Source)
		}
		fmt.Println()
	}
}

func displayInterviewHuman(doc interviewDocument) {
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Println()
	if doc.Summary != "" {
		white.Println("📄 SUMMARY:")
		fmt.Println(wrapText(doc.Summary, 80, "   "))
		fmt.Println()
	}

	if len(doc.Themes) > 0 {
		cyan.Println("🏷️  THEMES:")
		for i, theme := range doc.Themes {
			fmt.Printf("   %d. %s\n", i+1, theme)
		}
		fmt.Println()
	}

	if len(doc.Insights) > 0 {
		cyan.Println("💡 INSIGHTS:")
		for i, insight := range doc.Insights {
			fmt.Printf("   %d. %s (%s, %.0f%%)\n", i+1, insight.Title, insight.Type, insight.Confidence*100)
			fmt.Println(wrapText(insight.Description, 80, "      "))
			fmt.Println()
		}
	}
}

func severityColor(severity model.Severity) *color.Color {
	switch severity {
	case model.SeverityHigh:
		return color.New(color.FgRed)
	case model.SeverityMedium:
		return color.New(color.FgYellow)
	case model.SeverityLow:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgWhite)
	}
}

func severityIcon(severity model.Severity) string {
	switch severity {
	case model.SeverityHigh:
		return "🟠"
	case model.SeverityMedium:
		return "🟡"
	case model.SeverityLow:
		return "🟢"
	default:
		return "⚪"
	}
}

func wrapText(text string, width int, indent string) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := indent
		for _, word := range words {
			if len(currentLine)+len(word)+1 > width {
				result.WriteString(currentLine + "\n")
				currentLine = indent + word
			} else if currentLine == indent {
				currentLine += word
			} else {
				currentLine += " " + word
			}
		}

		if currentLine != indent {
			result.WriteString(currentLine + "\n")
		}
	}

	return strings.TrimSuffix(result.String(), "\n")
}
