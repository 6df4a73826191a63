package domain

// Length bounds. MaxLength is enforced by presentation layers, not by the
// composer.
const (
	MinLength     = 4
	MaxLength     = 32
	DefaultLength = 15
)

// GenerationConfig describes a single password request.
type GenerationConfig struct {
	Length         int  `json:"length" yaml:"length"`
	IncludeUpper   bool `json:"upper" yaml:"upper"`
	IncludeLower   bool `json:"lower" yaml:"lower"`
	IncludeDigits  bool `json:"digits" yaml:"digits"`
	IncludeSymbols bool `json:"symbols" yaml:"symbols"`
	AvoidAmbiguous bool `json:"avoid_ambiguous" yaml:"avoid_ambiguous"`
}

// DefaultGenerationConfig returns every class enabled, ambiguous characters
// avoided and DefaultLength.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Length:         DefaultLength,
		IncludeUpper:   true,
		IncludeLower:   true,
		IncludeDigits:  true,
		IncludeSymbols: true,
		AvoidAmbiguous: true,
	}
}

// SelectedClasses returns the enabled classes in stable order.
func (c GenerationConfig) SelectedClasses() []CharacterClass {
	var classes []CharacterClass
	if c.IncludeUpper {
		classes = append(classes, Upper)
	}
	if c.IncludeLower {
		classes = append(classes, Lower)
	}
	if c.IncludeDigits {
		classes = append(classes, Digits)
	}
	if c.IncludeSymbols {
		classes = append(classes, Symbols)
	}
	return classes
}
