// Package composer builds random passwords that cover every selected
// character class.
//
// All randomness comes from a cryptographically secure source. The default
// is crypto/rand.Reader, which is safe for concurrent use, so a single
// Composer can be shared between goroutines.
package composer

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/polisai/passgen/pkg/domain"
)

// Composer generates passwords from GenerationConfig values.
type Composer struct {
	source    io.Reader
	minLength int
}

// Option configures a Composer.
type Option func(*Composer)

// WithSource sets the random source. It must be cryptographically secure;
// tests use it to inject failing readers.
func WithSource(r io.Reader) Option {
	return func(c *Composer) {
		if r != nil {
			c.source = r
		}
	}
}

// WithMinLength overrides domain.MinLength. Negative values clamp to 0.
func WithMinLength(n int) Option {
	return func(c *Composer) {
		c.minLength = max(n, 0)
	}
}

// New returns a Composer reading from crypto/rand unless overridden.
func New(opts ...Option) *Composer {
	c := &Composer{
		source:    rand.Reader,
		minLength: domain.MinLength,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultComposer = New()

// Compose generates a password with the default Composer.
func Compose(cfg domain.GenerationConfig) (domain.GeneratedPassword, error) {
	return defaultComposer.Compose(cfg)
}

// MinLength returns the minimum length this Composer accepts.
func (c *Composer) MinLength() int {
	return c.minLength
}

// Compose generates a password for cfg. It returns a *domain.ConfigError for
// configurations that cannot be satisfied, and an error wrapping
// domain.ErrRandomSource if the source fails. No partial password is ever
// returned.
func (c *Composer) Compose(cfg domain.GenerationConfig) (domain.GeneratedPassword, error) {
	return c.compose(cfg.SelectedClasses(), cfg.Length, cfg.AvoidAmbiguous)
}

func (c *Composer) compose(classes []domain.CharacterClass, length int, avoidAmbiguous bool) (domain.GeneratedPassword, error) {
	if length < c.minLength {
		return domain.GeneratedPassword{}, domain.NewConfigError(domain.KindLengthTooShort,
			fmt.Sprintf("length must be >= %d", c.minLength))
	}

	alphabet, err := buildAlphabet(classes, avoidAmbiguous)
	if err != nil {
		return domain.GeneratedPassword{}, err
	}

	// One character per class first, so coverage does not depend on the fill.
	buf := make([]byte, 0, max(length, len(alphabet.Pools)))
	for _, pool := range alphabet.Pools {
		ch, err := choice(c.source, pool.Chars)
		if err != nil {
			return domain.GeneratedPassword{}, err
		}
		buf = append(buf, ch)
	}

	remaining := length - len(buf)
	if remaining < 0 {
		return domain.GeneratedPassword{}, domain.NewConfigError(domain.KindLengthTooSmallForClasses,
			fmt.Sprintf("length %d is smaller than the %d selected character classes", length, len(buf)))
	}
	for range remaining {
		ch, err := choice(c.source, alphabet.Chars)
		if err != nil {
			return domain.GeneratedPassword{}, err
		}
		buf = append(buf, ch)
	}

	// Position must not reveal which characters were forced for coverage.
	if err := shuffle(c.source, buf); err != nil {
		return domain.GeneratedPassword{}, err
	}

	return domain.GeneratedPassword{
		Password:     string(buf),
		AlphabetSize: alphabet.Size(),
	}, nil
}
