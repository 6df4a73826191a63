package composer

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/polisai/passgen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// confusable is a class made only of ambiguous characters. No fixed class is
// fully ambiguous, so the exhaustion paths need one.
var confusable = domain.CharacterClass{Name: "confusable", Chars: domain.AmbiguousChars}

func TestCompose(t *testing.T) {
	tests := []struct {
		name         string
		cfg          domain.GenerationConfig
		wantAlphabet int
		wantErr      error
	}{
		{
			name:         "all_classes_avoid_ambiguous",
			cfg:          domain.DefaultGenerationConfig(),
			wantAlphabet: 24 + 25 + 8 + 10,
		},
		{
			name: "all_classes_keep_ambiguous",
			cfg: domain.GenerationConfig{
				Length: 20, IncludeUpper: true, IncludeLower: true, IncludeDigits: true, IncludeSymbols: true,
			},
			wantAlphabet: 26 + 26 + 10 + 10,
		},
		{
			name:         "digits_only",
			cfg:          domain.GenerationConfig{Length: 8, IncludeDigits: true},
			wantAlphabet: 10,
		},
		{
			name:         "symbols_only_at_minimum",
			cfg:          domain.GenerationConfig{Length: domain.MinLength, IncludeSymbols: true, AvoidAmbiguous: true},
			wantAlphabet: 10,
		},
		{
			name:    "length_too_short",
			cfg:     domain.GenerationConfig{Length: domain.MinLength - 1, IncludeUpper: true},
			wantErr: domain.ErrLengthTooShort,
		},
		{
			name:    "negative_length",
			cfg:     domain.GenerationConfig{Length: -5, IncludeUpper: true},
			wantErr: domain.ErrLengthTooShort,
		},
		{
			name:    "no_class_selected",
			cfg:     domain.GenerationConfig{Length: 12, AvoidAmbiguous: true},
			wantErr: domain.ErrNoClassSelected,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Compose(tc.cfg)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				var cfgErr *domain.ConfigError
				assert.True(t, errors.As(err, &cfgErr), "expected *domain.ConfigError, got %T", err)
				assert.Empty(t, got.Password)
				return
			}
			require.NoError(t, err)

			assert.Len(t, got.Password, tc.cfg.Length)
			assert.Equal(t, tc.wantAlphabet, got.AlphabetSize)
			for _, class := range tc.cfg.SelectedClasses() {
				assert.True(t, strings.ContainsAny(got.Password, class.Filtered(tc.cfg.AvoidAmbiguous)),
					"expected at least one %s character in %q", class.Name, got.Password)
			}
		})
	}
}

func TestComposeLengthCheckPrecedesClassCheck(t *testing.T) {
	_, err := Compose(domain.GenerationConfig{Length: 1})
	assert.ErrorIs(t, err, domain.ErrLengthTooShort)
}

func TestComposeExhaustedPools(t *testing.T) {
	c := New()

	t.Run("alphabet_empty", func(t *testing.T) {
		_, err := c.compose([]domain.CharacterClass{confusable}, 8, true)
		assert.ErrorIs(t, err, domain.ErrAlphabetEmpty)
	})

	t.Run("class_exhausted", func(t *testing.T) {
		_, err := c.compose([]domain.CharacterClass{domain.Upper, confusable}, 8, true)
		assert.ErrorIs(t, err, domain.ErrClassExhausted)
		assert.Contains(t, err.Error(), "confusable")
	})

	t.Run("kept_without_filtering", func(t *testing.T) {
		got, err := c.compose([]domain.CharacterClass{confusable}, 8, false)
		require.NoError(t, err)
		assert.Equal(t, len(domain.AmbiguousChars), got.AlphabetSize)
	})
}

func TestComposeClassCountBoundary(t *testing.T) {
	c := New(WithMinLength(0))
	cfg := domain.GenerationConfig{IncludeUpper: true, IncludeLower: true, IncludeDigits: true}

	cfg.Length = 3
	got, err := c.Compose(cfg)
	require.NoError(t, err)
	assert.Len(t, got.Password, 3)
	assert.True(t, strings.ContainsAny(got.Password, domain.Upper.Chars))
	assert.True(t, strings.ContainsAny(got.Password, domain.Lower.Chars))
	assert.True(t, strings.ContainsAny(got.Password, domain.Digits.Chars))

	cfg.Length = 2
	_, err = c.Compose(cfg)
	assert.ErrorIs(t, err, domain.ErrLengthTooSmallForClasses)
}

func TestComposeRandomSourceFailure(t *testing.T) {
	c := New(WithSource(iotest.ErrReader(errors.New("entropy pool drained"))))

	got, err := c.Compose(domain.DefaultGenerationConfig())
	require.ErrorIs(t, err, domain.ErrRandomSource)
	assert.Contains(t, err.Error(), "entropy pool drained")
	assert.Empty(t, got.Password)

	var cfgErr *domain.ConfigError
	assert.False(t, errors.As(err, &cfgErr), "source failures are not config errors")
}

func TestComposeUniqueness(t *testing.T) {
	cfg := domain.GenerationConfig{Length: domain.MaxLength, IncludeUpper: true, IncludeLower: true, IncludeDigits: true}

	seen := make(map[string]bool)
	for range 100 {
		got, err := Compose(cfg)
		require.NoError(t, err)
		assert.False(t, seen[got.Password], "duplicate password generated: %s", got.Password)
		seen[got.Password] = true
	}
}

func TestWithMinLength(t *testing.T) {
	assert.Equal(t, domain.MinLength, New().MinLength())
	assert.Equal(t, 0, New(WithMinLength(-3)).MinLength())
	assert.Equal(t, 10, New(WithMinLength(10)).MinLength())
}

func TestBuildAlphabet(t *testing.T) {
	a, err := BuildAlphabet(domain.GenerationConfig{IncludeDigits: true, IncludeSymbols: true, AvoidAmbiguous: true})
	require.NoError(t, err)
	assert.Equal(t, "23456789!@#$%^&*_-", a.Chars)
	require.Len(t, a.Pools, 2)
	assert.Equal(t, domain.Digits, a.Pools[0].Class)
	assert.Equal(t, "23456789", a.Pools[0].Chars)
	assert.Equal(t, domain.Symbols.Chars, a.Pools[1].Chars)
}

func TestShuffleIsPermutation(t *testing.T) {
	buf := []byte("abcdefghij")
	require.NoError(t, shuffle(New().source, buf))
	assert.ElementsMatch(t, []byte("abcdefghij"), buf)
}

func drawConfig(t *rapid.T) domain.GenerationConfig {
	cfg := domain.GenerationConfig{
		Length:         rapid.IntRange(domain.MinLength, domain.MaxLength).Draw(t, "length"),
		IncludeUpper:   rapid.Bool().Draw(t, "upper"),
		IncludeLower:   rapid.Bool().Draw(t, "lower"),
		IncludeDigits:  rapid.Bool().Draw(t, "digits"),
		IncludeSymbols: rapid.Bool().Draw(t, "symbols"),
		AvoidAmbiguous: rapid.Bool().Draw(t, "avoid_ambiguous"),
	}
	if len(cfg.SelectedClasses()) == 0 {
		cfg.IncludeLower = true
	}
	return cfg
}

// For every valid config the password has the requested length, covers every
// selected class, and honours the ambiguous filter.
func TestComposeProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := drawConfig(t)

		got, err := Compose(cfg)
		if err != nil {
			t.Fatalf("unexpected error for %+v: %v", cfg, err)
		}

		if len(got.Password) != cfg.Length {
			t.Fatalf("expected length %d, got %d", cfg.Length, len(got.Password))
		}

		alphabet, err := BuildAlphabet(cfg)
		if err != nil {
			t.Fatalf("build alphabet: %v", err)
		}
		if got.AlphabetSize != alphabet.Size() {
			t.Fatalf("expected alphabet size %d, got %d", alphabet.Size(), got.AlphabetSize)
		}

		for _, pool := range alphabet.Pools {
			if !strings.ContainsAny(got.Password, pool.Chars) {
				t.Fatalf("password %q has no %s character", got.Password, pool.Class.Name)
			}
		}
		for _, r := range got.Password {
			if !strings.ContainsRune(alphabet.Chars, r) {
				t.Fatalf("password %q contains %q outside the alphabet", got.Password, r)
			}
		}
		if cfg.AvoidAmbiguous && strings.ContainsAny(got.Password, domain.AmbiguousChars) {
			t.Fatalf("password %q contains ambiguous characters", got.Password)
		}
	})
}

// With no minimum, length == number of classes always succeeds and one less
// always fails.
func TestClassCountBoundaryProperty(t *testing.T) {
	c := New(WithMinLength(0))

	rapid.Check(t, func(t *rapid.T) {
		cfg := drawConfig(t)
		n := len(cfg.SelectedClasses())

		cfg.Length = n
		got, err := c.Compose(cfg)
		if err != nil {
			t.Fatalf("length %d with %d classes: %v", n, n, err)
		}
		if len(got.Password) != n {
			t.Fatalf("expected length %d, got %d", n, len(got.Password))
		}

		cfg.Length = n - 1
		if _, err := c.Compose(cfg); !errors.Is(err, domain.ErrLengthTooSmallForClasses) {
			t.Fatalf("expected ErrLengthTooSmallForClasses, got %v", err)
		}
	})
}
