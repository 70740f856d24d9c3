// Package validate holds the grammar checks and lenient value parsers the
// compiler applies to attribute text before anything is turned into rows.
// Predicates are pure; parsers report malformed user input through the
// diagnostics channel and return sentinels instead of failing the pass.
package validate

import "regexp"

// IdentifierDiagnosticLength is the length past which identifiers draw a
// non-fatal warning. Longer ids are legal but trip up older installer
// engines.
const IdentifierDiagnosticLength = 72

var (
	identifierRegexp    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)
	locIdentifierRegexp = regexp.MustCompile(`^!\(loc\.[A-Za-z_][A-Za-z0-9_.]*\)$`)
)

// IsValidIdentifier reports whether s is a legal row identifier. Matching
// is case-sensitive; 'Foo' and 'foo' are distinct identifiers.
func IsValidIdentifier(s string) bool {
	return identifierRegexp.MatchString(s)
}

// IsValidLocIdentifier reports whether s is exactly one localization
// variable placeholder, spanning the entire string.
func IsValidLocIdentifier(s string) bool {
	return locIdentifierRegexp.MatchString(s)
}
