package composer

import (
	"fmt"
	"strings"

	"github.com/polisai/passgen/pkg/domain"
)

// Pool is the filtered character pool of one selected class.
type Pool struct {
	Class domain.CharacterClass
	Chars string
}

// Alphabet is the effective alphabet derived from a GenerationConfig.
type Alphabet struct {
	// Chars is the filtered union of all selected classes, in class order.
	Chars string
	// Pools holds one entry per selected class, in class order.
	Pools []Pool
}

// Size returns the number of characters available for filler draws.
func (a Alphabet) Size() int {
	return len(a.Chars)
}

// BuildAlphabet derives the effective alphabet for cfg. It does not check
// the length.
func BuildAlphabet(cfg domain.GenerationConfig) (Alphabet, error) {
	return buildAlphabet(cfg.SelectedClasses(), cfg.AvoidAmbiguous)
}

func buildAlphabet(classes []domain.CharacterClass, avoidAmbiguous bool) (Alphabet, error) {
	if len(classes) == 0 {
		return Alphabet{}, domain.NewConfigError(domain.KindNoClassSelected,
			"select at least one character class")
	}

	var sb strings.Builder
	for _, class := range classes {
		sb.WriteString(class.Chars)
	}
	chars := sb.String()
	if avoidAmbiguous {
		chars = domain.StripAmbiguous(chars)
	}
	if chars == "" {
		return Alphabet{}, domain.NewConfigError(domain.KindAlphabetEmpty,
			"alphabet empty after filtering; relax constraints")
	}

	pools := make([]Pool, 0, len(classes))
	for _, class := range classes {
		pool := class.Filtered(avoidAmbiguous)
		if pool == "" {
			return Alphabet{}, domain.NewConfigError(domain.KindClassExhausted,
				fmt.Sprintf("class %q became empty after removing ambiguous characters", class.Name))
		}
		pools = append(pools, Pool{Class: class, Chars: pool})
	}

	return Alphabet{Chars: chars, Pools: pools}, nil
}
