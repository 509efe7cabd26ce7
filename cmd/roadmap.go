package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/insightstream/strategy-ai/pkg/analyzer"
	"github.com/insightstream/strategy-ai/pkg/files"
	"github.com/insightstream/strategy-ai/pkg/formatter"
	"github.com/insightstream/strategy-ai/pkg/store"
)

var decisionYear int

func NewRoadmapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roadmap DOCUMENT...",
		Short: "Analyze strategy documents into a risk-ranked decision roadmap",
		Long: `Summarize the given strategy documents, identify candidate decision
branches, assess each branch across the financial, technical,
organizational, and ecosystem risk dimensions, and generate a
prioritized roadmap.

Examples:
  # Analyze a business plan
  strategy-ai roadmap plan.md

  # Analyze a directory of documents anchored on a specific year
  strategy-ai roadmap docs/ --year 2027

  # Run offline with mock data
  strategy-ai roadmap docs/ --mock`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRoadmap,
	}

	cmd.Flags().IntVar(&decisionYear, "year", 0, "Decision year the timeline starts from (default inferred from the documents)")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().BoolVar(&useMock, "mock", false, "Use canned mock data instead of calling the provider")

	return cmd
}

func runRoadmap(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	svc, cfg, err := newService(logger)
	if err != nil {
		return err
	}

	content, err := files.CombineContents(args)
	if err != nil {
		return err
	}

	year := decisionYear
	if year == 0 {
		year = analyzer.InferDecisionYear(content)
	}

	printHeader("🧭 Strategy Roadmap Analysis")
	fmt.Printf("📅 Decision year: %d\n\n", year)

	ctx := cmd.Context()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)

	s.Suffix = " Summarizing strategic context..."
	s.Start()
	strategicContext, err := svc.SummarizeContext(ctx, content)
	if err != nil {
		s.Stop()
		return fmt.Errorf("context summarization failed: %w", err)
	}
	s.Stop()
	printSuccess("Strategic context established")

	s.Suffix = " Identifying decision branches..."
	s.Start()
	branches, err := svc.IdentifyBranches(ctx, strategicContext)
	if err != nil {
		s.Stop()
		return fmt.Errorf("branch identification failed: %w", err)
	}
	s.Stop()
	printSuccess(fmt.Sprintf("Identified %d decision branches", len(branches)))

	for i := range branches {
		s.Suffix = fmt.Sprintf(" Assessing risk for %q (%d/%d)...", branches[i].Name, i+1, len(branches))
		s.Start()
		if _, err := svc.AssessBranch(ctx, strategicContext, &branches[i]); err != nil {
			s.Stop()
			return fmt.Errorf("risk assessment failed for %q: %w", branches[i].Name, err)
		}
		s.Stop()
		printSuccess(fmt.Sprintf("Assessed %q: %s", branches[i].Name, branches[i].Risk.OverallLevel))
	}

	s.Suffix = " Generating roadmap recommendations..."
	s.Start()
	plan, err := svc.GenerateRoadmap(ctx, strategicContext, branches, year)
	if err != nil {
		s.Stop()
		return fmt.Errorf("roadmap generation failed: %w", err)
	}
	s.Stop()
	printSuccess("Roadmap complete")

	if err := formatter.DisplayRoadmap(strategicContext, branches, plan, outputFormat); err != nil {
		return err
	}

	st, err := store.New(cfg.ReportsDir)
	if err != nil {
		return err
	}
	path, err := st.Save(&store.Report{
		Kind:     store.KindRoadmap,
		Title:    fmt.Sprintf("Roadmap for %d branches, year %d", len(branches), year),
		Context:  strategicContext,
		Branches: branches,
		Plan:     plan,
	})
	if err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Report saved to %s", path))

	return nil
}
