package source

import (
	"fmt"

	"github.com/apparentlymart/go-textseg/v13/textseg"
)

// Location identifies a position in an authored source file. Line and
// Column are 1-based; zero means "not tracked at that granularity".
type Location struct {
	File   string
	Line   int
	Column int
}

// Unknown is the location used when no source information is available.
var Unknown = Location{}

func New(file string, line, column int) Location {
	return Location{File: file, Line: line, Column: column}
}

// FromOffset computes the location of a byte offset within text. The
// column counts grapheme clusters, not bytes, so diagnostics line up with
// what an editor shows the user.
func FromOffset(text, file string, offset int) Location {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	line := 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	segments, err := textseg.TokenCount([]byte(text[lineStart:offset]), textseg.ScanGraphemeClusters)
	if err != nil {
		// Grapheme scanning only fails on invalid UTF-8; fall back to bytes.
		segments = offset - lineStart
	}

	return Location{File: file, Line: line, Column: segments + 1}
}

func (l Location) IsUnknown() bool {
	return l == Unknown
}

func (l Location) String() string {
	switch {
	case l.File == "":
		return "<unknown>"
	case l.Line == 0:
		return l.File
	case l.Column == 0:
		return fmt.Sprintf("%s(%d)", l.File, l.Line)
	default:
		return fmt.Sprintf("%s(%d,%d)", l.File, l.Line, l.Column)
	}
}
