package domain

// GeneratedPassword is the result of a successful composition.
// AlphabetSize is the size of the full filtered alphabet used for filler
// characters, which is what strength estimation is based on.
type GeneratedPassword struct {
	Password     string
	AlphabetSize int
}

// Len returns the number of characters in the password.
func (p GeneratedPassword) Len() int {
	return len(p.Password)
}

// StrengthLabel is a qualitative strength bucket.
type StrengthLabel int

// Strength labels, weakest first.
const (
	StrengthInvalid StrengthLabel = iota
	StrengthWeak
	StrengthReasonable
	StrengthStrong
	StrengthExcellent
)

func (l StrengthLabel) String() string {
	switch l {
	case StrengthWeak:
		return "Weak"
	case StrengthReasonable:
		return "Reasonable"
	case StrengthStrong:
		return "Strong"
	case StrengthExcellent:
		return "Excellent"
	default:
		return "Invalid"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l StrengthLabel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// StrengthAssessment is an entropy estimate with its label.
type StrengthAssessment struct {
	Label StrengthLabel
	Bits  float64
}
