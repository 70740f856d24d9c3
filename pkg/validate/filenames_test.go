package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/walteh/gowix/pkg/validate"
)

func TestIsValidLongFilename(t *testing.T) {
	tests := []struct {
		name           string
		filename       string
		allowWildcards bool
		allowRelative  bool
		want           bool
	}{
		{name: "simple name", filename: "readme.txt", want: true},
		{name: "empty", filename: "", want: false},
		{name: "all periods", filename: "...", want: false},
		{name: "single period", filename: ".", want: false},
		{name: "interior periods ok", filename: "a..b", want: true},
		{name: "pipe rejected", filename: "a|b", want: false},
		{name: "asterisk rejected strict", filename: "a*b", want: false},
		{name: "asterisk allowed wildcard", filename: "a*b", allowWildcards: true, want: true},
		{name: "question allowed wildcard", filename: "a?b", allowWildcards: true, want: true},
		{name: "backslash rejected wildcard", filename: `a\b`, allowWildcards: true, want: false},
		{name: "backslash allowed relative", filename: `dir\file.txt`, allowRelative: true, want: true},
		{name: "question rejected relative", filename: "a?b", allowRelative: true, want: false},
		{name: "colon rejected everywhere", filename: "a:b", allowRelative: true, want: false},
		{name: "quote rejected everywhere", filename: `a"b`, allowWildcards: true, want: false},
		{name: "max length ok", filename: strings.Repeat("a", 259), want: true},
		{name: "over max length", filename: strings.Repeat("a", 260), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validate.IsValidLongFilename(tt.filename, tt.allowWildcards, tt.allowRelative)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValidShortFilename(t *testing.T) {
	tests := []struct {
		name           string
		filename       string
		allowWildcards bool
		want           bool
	}{
		{name: "classic 8.3", filename: "autoexec.bat", want: true},
		{name: "8.3 fits", filename: "readme.txt", want: true},
		{name: "eight chars no ext", filename: "progfile", want: true},
		{name: "nine chars", filename: "progfiles", want: false},
		{name: "two dots", filename: "a.b.c", want: false},
		{name: "space rejected", filename: "my file", want: false},
		{name: "all periods", filename: "..", want: false},
		{name: "wildcard question", filename: "file?.tx?", allowWildcards: true, want: true},
		{name: "wildcard star", filename: "*.txt", allowWildcards: true, want: true},
		{name: "star rejected strict", filename: "*.txt", want: false},
		{name: "question not counted", filename: "abcdefgh?", allowWildcards: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validate.IsValidShortFilename(tt.filename, tt.allowWildcards)
			assert.Equal(t, tt.want, got)
		})
	}
}
