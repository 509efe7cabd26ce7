package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/insightstream/strategy-ai/pkg/files"
	"github.com/insightstream/strategy-ai/pkg/formatter"
	"github.com/insightstream/strategy-ai/pkg/store"
)

var hypothesesPath string

func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate TRANSCRIPT...",
		Short: "Validate market hypotheses against interview transcripts",
		Long: `Score each hypothesis against the evidence found in the given interview
transcripts. Hypotheses the model matched are marked verified with
confidence and quoted evidence; the rest stay unverified.

Examples:
  # Validate hypotheses against a directory of transcripts
  strategy-ai validate interviews/ --hypotheses hypotheses.yaml

  # Run offline with mock data
  strategy-ai validate interviews/ --hypotheses hypotheses.yaml --mock`,
		Args: cobra.MinimumNArgs(1),
		RunE: runValidate,
	}

	cmd.Flags().StringVar(&hypothesesPath, "hypotheses", "hypotheses.yaml", "Path to the hypotheses YAML file")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().BoolVar(&useMock, "mock", false, "Use canned mock data instead of calling the provider")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	svc, cfg, err := newService(logger)
	if err != nil {
		return err
	}

	hypotheses, err := files.LoadHypotheses(hypothesesPath)
	if err != nil {
		return err
	}

	transcripts, err := files.LoadTranscripts(args)
	if err != nil {
		return err
	}

	printHeader("🔬 Hypothesis Validation")
	fmt.Printf("📋 Hypotheses: %d\n", len(hypotheses))
	fmt.Printf("📄 Transcripts: %d\n\n", len(transcripts))

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Validating hypotheses against transcripts..."
	s.Start()

	validated, err := svc.ValidateHypotheses(cmd.Context(), hypotheses, transcripts)
	if err != nil {
		s.Stop()
		return fmt.Errorf("validation failed: %w", err)
	}
	s.Stop()

	verified := 0
	for _, h := range validated {
		if h.Confidence > 0 {
			verified++
		}
	}
	printSuccess(fmt.Sprintf("Validated %d hypotheses (%d with evidence)", len(validated), verified))

	if err := formatter.DisplayValidation(validated, outputFormat); err != nil {
		return err
	}

	st, err := store.New(cfg.ReportsDir)
	if err != nil {
		return err
	}
	path, err := st.Save(&store.Report{
		Kind:       store.KindValidation,
		Title:      fmt.Sprintf("Validation of %d hypotheses", len(validated)),
		Hypotheses: validated,
	})
	if err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Report saved to %s", path))

	return nil
}
