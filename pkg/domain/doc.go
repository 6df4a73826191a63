// Package domain defines the core value types of the password generator.
//
// This package has ZERO external dependencies outside the Go standard library.
// Every type here is an immutable value:
//
// - GenerationConfig is built by a caller for each request
// - GeneratedPassword and StrengthAssessment are created fresh per call
// - CharacterClass values are fixed at process start
//
// The composer and strength packages operate on these types, and the
// presentation layers (CLI, interactive prompt) translate their own mutable
// state into them. The dependency direction is always:
//
//	composer, strength, passgen, cmd → domain (CORRECT)
//	domain → anything else (FORBIDDEN)
package domain
