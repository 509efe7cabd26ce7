package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/insightstream/strategy-ai/pkg/config"
	"github.com/insightstream/strategy-ai/pkg/formatter"
	"github.com/insightstream/strategy-ai/pkg/store"
)

func NewReportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List and show saved analysis reports",
	}

	cmd.AddCommand(newReportsListCmd(), newReportsShowCmd())
	return cmd
}

func newReportsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved reports, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			reports, err := st.List()
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				fmt.Printf("No reports found in %s\n", st.Dir())
				return nil
			}
			for _, r := range reports {
				fmt.Printf("%s  %-10s  %s  %s\n",
					r.CreatedAt.Format("2006-01-02 15:04"), r.Kind, r.ID, r.Title)
			}
			return nil
		},
	}
}

func newReportsShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one saved report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			r, err := st.Load(args[0])
			if err != nil {
				return err
			}
			switch r.Kind {
			case store.KindValidation:
				return formatter.DisplayValidation(r.Hypotheses, outputFormat)
			case store.KindRoadmap:
				return formatter.DisplayRoadmap(r.Context, r.Branches, r.Plan, outputFormat)
			default:
				return fmt.Errorf("unknown report kind %q", r.Kind)
			}
		},
	}
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	return cmd
}

func openStore() (*store.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return store.New(cfg.ReportsDir)
}
