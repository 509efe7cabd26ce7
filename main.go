package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/insightstream/strategy-ai/cmd"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:   "strategy-ai",
		Short: "AI-powered strategy and market validation analysis",
		Long: `strategy-ai analyzes strategy documents and interview transcripts with
AI: it identifies decision branches, assesses their risk across four
dimensions, validates market hypotheses against evidence, and generates
prioritized roadmap recommendations.`,
		SilenceUsage: true,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			cmd.SetGlobalFlags(configPath, verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.strategy-ai/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		cmd.NewInterviewCmd(),
		cmd.NewValidateCmd(),
		cmd.NewRoadmapCmd(),
		cmd.NewReportsCmd(),
		cmd.NewProxyCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("strategy-ai version %s\n", version)
		},
	}
}
