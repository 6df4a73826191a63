package main

import (
	"fmt"

	"github.com/polisai/passgen/pkg/config"
	"github.com/polisai/passgen/pkg/domain"
	"github.com/polisai/passgen/pkg/strength"
	"github.com/spf13/cobra"
)

func newEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the strength of a password space",
		Long: `Print the entropy and strength label for passwords of the given length
drawn uniformly from an alphabet of the given size.

Example:
  passgen estimate --alphabet 62 --length 15`,
		Args: cobra.NoArgs,
		RunE: runEstimate,
	}

	cmd.Flags().IntP("alphabet", "a", 0, "Alphabet size")
	cmd.Flags().IntP("length", "l", domain.DefaultLength, "Password length")
	_ = cmd.MarkFlagRequired("alphabet")

	return cmd
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	alphabet, err := cmd.Flags().GetInt("alphabet")
	if err != nil {
		return fmt.Errorf("failed to get alphabet flag: %w", err)
	}
	length, err := cmd.Flags().GetInt("length")
	if err != nil {
		return fmt.Errorf("failed to get length flag: %w", err)
	}
	if length < 0 {
		return fmt.Errorf("length must not be negative, got %d", length)
	}

	// Only output settings apply here; generation bounds do not.
	cfg, err := readConfig(cmd)
	if err != nil {
		return err
	}
	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		if format, err = cmd.Flags().GetString("format"); err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
	}
	if err := config.ValidateFormat(format); err != nil {
		return err
	}

	return writeAssessment(cmd.OutOrStdout(), format, alphabet, length, strength.Estimate(alphabet, length))
}
