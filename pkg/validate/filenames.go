package validate

import "strings"

// MaxFilenameLength is the longest filename any mode accepts.
const MaxFilenameLength = 259

// Character exclusion sets. Exactly one applies per call, selected by the
// mode flags; they are deliberately not composed.
const (
	illegalShortChars         = `\?|><:/*"+,;=[] ` + "\t"
	illegalWildcardShortChars = `\|><:/"+,;=[] ` + "\t"
	illegalLongChars          = `\?|><:/*"`
	illegalWildcardLongChars  = `\|><:/"`
	illegalRelativeLongChars  = `?|><:/"`
)

// IsValidShortFilename reports whether s is a legal 8.3 filename. In
// wildcard mode '?' and '*' are admitted and '?' does not count toward the
// 8/3 character budgets.
func IsValidShortFilename(s string, allowWildcards bool) bool {
	if s == "" || allPeriods(s) {
		return false
	}

	illegal := illegalShortChars
	if allowWildcards {
		illegal = illegalWildcardShortChars
	}
	if strings.ContainsAny(s, illegal) {
		return false
	}

	name, ext, hasDot := strings.Cut(s, ".")
	if hasDot && strings.Contains(ext, ".") {
		return false
	}

	return shortPartFits(name, 8, allowWildcards) && shortPartFits(ext, 3, allowWildcards)
}

func shortPartFits(part string, budget int, allowWildcards bool) bool {
	n := 0
	for _, r := range part {
		if allowWildcards && r == '?' {
			continue
		}
		n++
	}
	return n <= budget
}

// IsValidLongFilename reports whether s is legal under exactly one of the
// three mutually exclusive modes: wildcard, relative, or strict. Names
// composed entirely of periods are rejected in every mode.
func IsValidLongFilename(s string, allowWildcards, allowRelative bool) bool {
	if s == "" || len(s) > MaxFilenameLength || allPeriods(s) {
		return false
	}

	switch {
	case allowWildcards:
		return !strings.ContainsAny(s, illegalWildcardLongChars)
	case allowRelative:
		return !strings.ContainsAny(s, illegalRelativeLongChars)
	default:
		return !strings.ContainsAny(s, illegalLongChars)
	}
}

func allPeriods(s string) bool {
	for _, r := range s {
		if r != '.' {
			return false
		}
	}
	return true
}
