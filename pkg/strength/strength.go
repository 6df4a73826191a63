// Package strength estimates password entropy from alphabet size and length.
package strength

import (
	"math"

	"github.com/polisai/passgen/pkg/domain"
)

// Label thresholds in bits, each an inclusive lower bound.
const (
	ReasonableBits = 60.0
	StrongBits     = 90.0
	ExcellentBits  = 120.0
)

// Estimate returns the entropy of a uniformly random password of length
// characters drawn from alphabetSize symbols, with its label. Alphabets of one
// symbol or fewer are Invalid with zero bits. Non-positive lengths carry zero
// bits.
func Estimate(alphabetSize, length int) domain.StrengthAssessment {
	if alphabetSize <= 1 {
		return domain.StrengthAssessment{Label: domain.StrengthInvalid, Bits: 0}
	}
	bits := Bits(alphabetSize, length)
	return domain.StrengthAssessment{Label: Label(bits), Bits: bits}
}

// Bits returns length * log2(alphabetSize), or 0 when either is non-positive.
func Bits(alphabetSize, length int) float64 {
	if alphabetSize <= 0 || length <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(alphabetSize))
}

// Label maps an entropy value to its strength label.
func Label(bits float64) domain.StrengthLabel {
	switch {
	case bits < ReasonableBits:
		return domain.StrengthWeak
	case bits < StrongBits:
		return domain.StrengthReasonable
	case bits < ExcellentBits:
		return domain.StrengthStrong
	default:
		return domain.StrengthExcellent
	}
}
