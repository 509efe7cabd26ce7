package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/insightstream/strategy-ai/pkg/files"
	"github.com/insightstream/strategy-ai/pkg/formatter"
)

func NewInterviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interview TRANSCRIPT...",
		Short: "Summarize interview transcripts and extract themes and insights",
		Long: `Analyze one or more interview transcripts: generate a summary, extract
recurring themes, and surface structured insights.

Examples:
  # Analyze a single transcript
  strategy-ai interview interviews/chen.txt

  # Analyze every transcript in a directory
  strategy-ai interview interviews/

  # Machine-readable output
  strategy-ai interview interviews/chen.txt -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runInterview,
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().BoolVar(&useMock, "mock", false, "Use canned mock data instead of calling the provider")

	return cmd
}

func runInterview(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	svc, _, err := newService(logger)
	if err != nil {
		return err
	}

	transcripts, err := files.LoadTranscripts(args)
	if err != nil {
		return err
	}

	printHeader("🎤 Interview Analysis")
	fmt.Printf("📄 Transcripts: %d\n\n", len(transcripts))

	ctx := cmd.Context()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)

	for _, t := range transcripts {
		s.Suffix = fmt.Sprintf(" Analyzing %s...", t.Source)
		s.Start()

		summary, err := svc.Summarize(ctx, t.Text)
		if err != nil {
			s.Stop()
			return fmt.Errorf("summary failed for %s: %w", t.Source, err)
		}

		themes, err := svc.ExtractThemes(ctx, t.Text)
		if err != nil {
			s.Stop()
			return fmt.Errorf("theme extraction failed for %s: %w", t.Source, err)
		}

		insights, err := svc.AnalyzeTranscript(ctx, t.Text)
		if err != nil {
			s.Stop()
			return fmt.Errorf("insight analysis failed for %s: %w", t.Source, err)
		}

		s.Stop()
		printSuccess(fmt.Sprintf("Analyzed %s", t.Source))

		if err := formatter.DisplayInterview(summary, themes, insights, outputFormat); err != nil {
			return err
		}
	}

	return nil
}
