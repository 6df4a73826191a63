package domain

import "errors"

// Configuration errors. All of them are permanent for the request that
// produced them.
var (
	ErrLengthTooShort           = errors.New("length too short")
	ErrNoClassSelected          = errors.New("no character class selected")
	ErrAlphabetEmpty            = errors.New("alphabet empty after filtering")
	ErrClassExhausted           = errors.New("character class exhausted by filtering")
	ErrLengthTooSmallForClasses = errors.New("length smaller than number of selected classes")
)

// ErrRandomSource is returned when the secure random source fails.
var ErrRandomSource = errors.New("secure random source failed")

// ErrorKind identifies a class of configuration error.
type ErrorKind int

// Error kinds, one per configuration sentinel.
const (
	KindLengthTooShort ErrorKind = iota + 1
	KindNoClassSelected
	KindAlphabetEmpty
	KindClassExhausted
	KindLengthTooSmallForClasses
)

var kindSentinels = map[ErrorKind]error{
	KindLengthTooShort:           ErrLengthTooShort,
	KindNoClassSelected:          ErrNoClassSelected,
	KindAlphabetEmpty:            ErrAlphabetEmpty,
	KindClassExhausted:           ErrClassExhausted,
	KindLengthTooSmallForClasses: ErrLengthTooSmallForClasses,
}

// String returns a stable machine-readable code.
func (k ErrorKind) String() string {
	switch k {
	case KindLengthTooShort:
		return "LENGTH_TOO_SHORT"
	case KindNoClassSelected:
		return "NO_CLASS_SELECTED"
	case KindAlphabetEmpty:
		return "ALPHABET_EMPTY"
	case KindClassExhausted:
		return "CLASS_EXHAUSTED"
	case KindLengthTooSmallForClasses:
		return "LENGTH_TOO_SMALL_FOR_CLASSES"
	default:
		return "UNKNOWN"
	}
}

// ConfigError reports a GenerationConfig the composer cannot satisfy.
type ConfigError struct {
	Kind    ErrorKind
	Message string
}

// NewConfigError builds a ConfigError of the given kind.
func NewConfigError(kind ErrorKind, message string) *ConfigError {
	return &ConfigError{Kind: kind, Message: message}
}

func (e *ConfigError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if err, ok := kindSentinels[e.Kind]; ok {
		return err.Error()
	}
	return "invalid generation config"
}

// Unwrap returns the sentinel for the error kind so errors.Is works.
func (e *ConfigError) Unwrap() error {
	return kindSentinels[e.Kind]
}

// Code returns the machine-readable code for err. Configuration errors map to
// their kind, random source failures to RANDOM_SOURCE, anything else to
// INTERNAL.
func Code(err error) string {
	var cfgErr *ConfigError
	switch {
	case errors.As(err, &cfgErr):
		return cfgErr.Kind.String()
	case errors.Is(err, ErrRandomSource):
		return "RANDOM_SOURCE"
	default:
		return "INTERNAL"
	}
}
