package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/polisai/passgen/pkg/config"
	"github.com/polisai/passgen/pkg/domain"
	"github.com/polisai/passgen/pkg/passgen"
)

// jsonResult is the JSON line written per password.
type jsonResult struct {
	Password     string               `json:"password,omitempty"`
	Length       int                  `json:"length"`
	AlphabetSize int                  `json:"alphabet_size"`
	Bits         float64              `json:"bits"`
	Strength     domain.StrengthLabel `json:"strength"`
}

// strengthLine renders an assessment the way the strength meter shows it.
func strengthLine(a domain.StrengthAssessment) string {
	return fmt.Sprintf("Entropy: %.1f bits  |  Strength: %s", a.Bits, a.Label)
}

func writeResults(w io.Writer, format string, results []passgen.Result) error {
	if format == config.FormatJSON {
		enc := json.NewEncoder(w)
		for _, r := range results {
			if err := enc.Encode(jsonResult{
				Password:     r.Password,
				Length:       r.Length,
				AlphabetSize: r.AlphabetSize,
				Bits:         r.Strength.Bits,
				Strength:     r.Strength.Label,
			}); err != nil {
				return fmt.Errorf("failed to write result: %w", err)
			}
		}
		return nil
	}

	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s\n%s\n", r.Password, strengthLine(r.Strength)); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}

func writeAssessment(w io.Writer, format string, alphabetSize, length int, a domain.StrengthAssessment) error {
	if format == config.FormatJSON {
		return json.NewEncoder(w).Encode(jsonResult{
			Length:       length,
			AlphabetSize: alphabetSize,
			Bits:         a.Bits,
			Strength:     a.Label,
		})
	}
	_, err := fmt.Fprintln(w, strengthLine(a))
	return err
}
