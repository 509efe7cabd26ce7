// Package cmd implements the strategy-ai subcommands.
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/insightstream/strategy-ai/pkg/analyzer"
	"github.com/insightstream/strategy-ai/pkg/config"
	"github.com/insightstream/strategy-ai/pkg/mock"
)

var (
	configPath   string
	outputFormat string
	verbose      bool
	useMock      bool
)

// SetGlobalFlags receives the persistent flag values bound on the root
// command.
func SetGlobalFlags(cfgPath string, verboseFlag bool) {
	configPath = cfgPath
	verbose = verboseFlag
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// newService resolves configuration and builds the analysis service,
// swapping in the mock layer when mock mode is requested. The returned
// config is always non-nil on success.
func newService(logger *zap.Logger) (analyzer.Service, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	if useMock || cfg.UseMockData {
		return mock.New(logger), cfg, nil
	}

	client, err := cfg.NewClient()
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("provider client ready",
		zap.String("provider", string(cfg.Provider)))
	return analyzer.New(client, logger), cfg, nil
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", msg)
}

func printHeader(title string) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Println(title)
}
