// Package main is the entry point for the passgen binary.
// It generates random passwords from the command line.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/polisai/passgen/pkg/config"
	"github.com/polisai/passgen/pkg/domain"
	"github.com/polisai/passgen/pkg/logging"
	"github.com/polisai/passgen/pkg/metrics"
	"github.com/polisai/passgen/pkg/passgen"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command for passgen
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate random passwords",
		Long: `Generate cryptographically secure random passwords.

Each password contains at least one character from every selected class and
is reported with an entropy estimate and strength label.

Example:
  passgen --length 20 --symbols=false --count 3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerate,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to configuration file (YAML)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Enable pretty console logging")
	rootCmd.PersistentFlags().String("format", "", "Output format (text, json)")

	addGenerationFlags(rootCmd)
	rootCmd.Flags().IntP("count", "c", 1, "Number of passwords to generate")
	rootCmd.Flags().String("metrics-file", "", "Write Prometheus textfile metrics to this path")

	rootCmd.AddCommand(newEstimateCmd(), newInteractiveCmd())

	return rootCmd
}

func addGenerationFlags(cmd *cobra.Command) {
	defaults := domain.DefaultGenerationConfig()
	cmd.Flags().IntP("length", "l", defaults.Length,
		fmt.Sprintf("Password length (%d-%d)", domain.MinLength, domain.MaxLength))
	cmd.Flags().Bool("upper", defaults.IncludeUpper, "Include uppercase letters A-Z")
	cmd.Flags().Bool("lower", defaults.IncludeLower, "Include lowercase letters a-z")
	cmd.Flags().Bool("digits", defaults.IncludeDigits, "Include digits 0-9")
	cmd.Flags().Bool("symbols", defaults.IncludeSymbols, "Include symbols "+domain.Symbols.Chars)
	cmd.Flags().Bool("avoid-ambiguous", defaults.AvoidAmbiguous, "Avoid ambiguous characters (O, 0, I, l, 1)")
}

// loadConfig loads file and environment configuration, then applies any flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := readConfig(cmd)
	if err != nil {
		return nil, err
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// readConfig reads file and environment configuration without flags or
// validation.
func readConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	return config.Read(configPath)
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	gen := &cfg.Generation

	ints := map[string]*int{
		"length": &gen.Length,
		"count":  &gen.Count,
	}
	for name, dst := range ints {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			continue
		}
		v, err := flags.GetInt(name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		*dst = v
	}

	bools := map[string]*bool{
		"upper":           &gen.IncludeUpper,
		"lower":           &gen.IncludeLower,
		"digits":          &gen.IncludeDigits,
		"symbols":         &gen.IncludeSymbols,
		"avoid-ambiguous": &gen.AvoidAmbiguous,
		"pretty":          &cfg.Logging.Pretty,
	}
	for name, dst := range bools {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			continue
		}
		v, err := flags.GetBool(name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		*dst = v
	}

	strs := map[string]*string{
		"log-level":    &cfg.Logging.Level,
		"format":       &cfg.Output.Format,
		"metrics-file": &cfg.Output.MetricsFile,
	}
	for name, dst := range strs {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		*dst = v
	}

	return nil
}

// newLogger builds the run logger on the command's stderr, tagged with a
// fresh run ID.
func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Pretty,
		Output: cmd.ErrOrStderr(),
	}).With("run_id", uuid.NewString())
}

// runGenerate is the main entry point for the root command
func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd, cfg)
	logger.Debug("Starting passgen",
		"length", cfg.Generation.Length,
		"count", cfg.Generation.Count,
		"format", cfg.Output.Format,
	)

	batchMetrics := metrics.NewMetrics()
	svc := passgen.NewService(
		passgen.WithLogger(logger),
		passgen.WithRecorder(batchMetrics),
	)

	results, genErr := svc.GenerateBatch(cmd.Context(), cfg.Generation.GenerationConfig, cfg.Generation.Count)

	if cfg.Output.MetricsFile != "" {
		if err := batchMetrics.WriteTextfile(cfg.Output.MetricsFile); err != nil {
			logger.Error("Failed to write metrics", "path", cfg.Output.MetricsFile, "error", err)
		} else {
			logger.Debug("Metrics written", "path", cfg.Output.MetricsFile)
		}
	}

	if genErr != nil {
		logger.Debug("Generation failed", "code", domain.Code(genErr))
		return genErr
	}

	return writeResults(cmd.OutOrStdout(), cfg.Output.Format, results)
}
