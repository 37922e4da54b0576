package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"echolint/internal/config"
	"echolint/internal/diag"
	"echolint/internal/echo"
	"echolint/internal/ingest"
	"echolint/internal/pipeline"
	"echolint/internal/segment"
)

var (
	configPath string
	scopeFlag  string
	workers    int
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "echolint [file]",
	Short: "Flag words and grammatical features that repeat too densely in nearby text",
	Long: `echolint reads a text, DOCX or PDF document, tokenizes it and flags
places where a lexical or grammatical feature recurs too densely within a
configured window - the editorial "echo" that makes prose feel repetitive.
Detection rules live in a YAML or JSON configuration file.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "echolint.yaml", "configuration file (YAML or JSON)")
	rootCmd.Flags().StringVar(&scopeFlag, "scope", "", "override the configured scope (document or sentence)")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "container analysis workers (0 = GOMAXPROCS)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log progress and mirror diagnostics to the logger")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "echolint: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if scopeFlag != "" {
		cfg.Scope = scopeFlag
	}

	source, err := ingest.ParseFile(path)
	if err != nil {
		return err
	}
	containers, err := segment.Resolve(cfg.Scope, source.Text)
	if err != nil {
		return err
	}
	logger.Info("analysis started",
		zap.String("title", source.Title),
		zap.String("scope", cfg.Scope),
		zap.Int("radius", cfg.Radius),
		zap.Int("conditions", len(cfg.Conditions)),
		zap.Int("containers", len(containers)),
	)

	var diags []diag.Diagnostic
	if verbose {
		// Sequential run that mirrors every diagnostic to the logger as
		// it is produced.
		collector := &diag.Collector{}
		sink := diag.Multi(collector, diag.NewLogSink(logger))
		if err := echo.NewEngine(*cfg, sink).Run(containers); err != nil {
			return err
		}
		diags = collector.Diagnostics
	} else {
		diags, err = pipeline.Analyze(*cfg, containers, workers)
		if err != nil {
			return err
		}
	}

	errorCount := 0
	for _, d := range diags {
		if d.Severity == diag.SeverityError {
			errorCount++
		}
		fmt.Printf("%s:%d:%d: %s: %s\n", path, d.Loc.Line, d.Loc.Column, d.Severity, d.Message)
	}
	logger.Info("analysis completed",
		zap.Int("diagnostics", len(diags)),
		zap.Int("errors", errorCount),
	)

	if errorCount > 0 {
		return fmt.Errorf("%d error-severity echo(es) found", errorCount)
	}
	return nil
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
