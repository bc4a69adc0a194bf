package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/voc-pipeline/internal/config"
	"github.com/nguyentantai21042004/voc-pipeline/internal/logger"
	"github.com/nguyentantai21042004/voc-pipeline/internal/processor"
	"github.com/nguyentantai21042004/voc-pipeline/pkg/executor"
	"github.com/nguyentantai21042004/voc-pipeline/pkg/fileutil"
)

var (
	configPath string
	inputPath  string
	outputDir  string
	limit      int
)

var rootCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Voice-of-customer sentiment pipeline for delivery support conversations",
	Long: `pipeline classifies customer-service conversations (French) as positive,
neutral or negative with fixed keyword rules, extracts themes and keywords,
and writes the nine dashboard JSON documents.`,
	SilenceUsage: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Analyse the input export once and write the dashboard documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, log, err := setup(ctx)
		if err != nil {
			return err
		}
		defer log.Sync()

		proc := processor.New(cfg, executor.New(), log)
		if err := proc.Process(ctx, cfg.Paths.Input); err != nil {
			log.Error(ctx, "Run failed: %v", err)
			return err
		}
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Analyse the input export, then re-run whenever it changes",
	RunE:  runWatch,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&inputPath, "input", "", "conversation export (JSON array), overrides paths.input")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output", "", "dashboard output directory, overrides paths.output")
	rootCmd.PersistentFlags().IntVar(&limit, "limit", 0, "analyse at most this many leading conversations, overrides analysis.max_conversations")

	rootCmd.AddCommand(runCmd, watchCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the configuration, applies flag overrides and builds the logger.
func setup(ctx context.Context) (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if inputPath != "" {
		cfg.Paths.Input = inputPath
	}
	if outputDir != "" {
		cfg.Paths.Output = outputDir
	}
	if limit > 0 {
		cfg.Analysis.MaxConversations = limit
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "System: %s/%s, CPU cores: %d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	log.Info(ctx, "Max concurrent classification workers: %d", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Configuration loaded successfully")

	if err := ensureDirectories(cfg); err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	if err := fileutil.EnsureDir(cfg.Paths.Output); err != nil {
		return fmt.Errorf("create directory %s: %w", cfg.Paths.Output, err)
	}
	return nil
}
