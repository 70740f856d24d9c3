// Package bindvars is the text substitution engine: it merges
// localization and build variables into two independent namespaces and
// resolves placeholder tokens in arbitrary attribute text, deferring the
// bind namespace to a later stage.
package bindvars

import (
	"github.com/walteh/gowix/pkg/messages"
	"github.com/walteh/gowix/pkg/source"
)

// CodepageNotSet is the one "no codepage" sentinel. The original tooling
// used -1 in one call path and a different not-set marker elsewhere; this
// implementation uses -1 everywhere.
const CodepageNotSet = -1

// Variable is one substitutable text value, localization- or build-scoped
// depending on which namespace holds it.
type Variable struct {
	ID          string
	Value       string
	Overridable bool
	Location    source.Location
}

// LocalizedControl overrides the geometry and caption of one dialog
// control. An empty Control names the dialog itself, which is a distinct
// key from any named control.
type LocalizedControl struct {
	Dialog     string
	Control    string
	X          int
	Y          int
	Width      int
	Height     int
	Attributes int64
	Text       string
}

// MSI control attribute bits the layout flags fold into.
const (
	ControlAttrRightToLeft  = 0x1
	ControlAttrRightAligned = 0x2
	ControlAttrLeftScroll   = 0x4
)

func ControlKey(dialog, control string) string {
	return dialog + "/" + control
}

func (c LocalizedControl) Key() string {
	return ControlKey(c.Dialog, c.Control)
}

// Localization is one parsed localization unit. It is immutable once the
// loader returns it; merging into a resolver copies, never aliases.
type Localization struct {
	Codepage  int
	Culture   string
	Variables map[string]Variable
	Controls  map[string]LocalizedControl
}

func NewLocalization() *Localization {
	return &Localization{
		Codepage:  CodepageNotSet,
		Variables: make(map[string]Variable),
		Controls:  make(map[string]LocalizedControl),
	}
}

// Merge applies the override-precedence rule shared by both namespaces:
// a non-overridable definition replaces an overridable one; a second
// non-overridable definition is a duplicate-identifier diagnostic and the
// existing value wins; overridable over overridable is last-write-wins;
// overridable over non-overridable is dropped without comment.
func Merge(vars map[string]Variable, v Variable, handler messages.Handler) {
	existing, ok := vars[v.ID]
	if !ok {
		vars[v.ID] = v
		return
	}

	switch {
	case existing.Overridable:
		vars[v.ID] = v
	case !v.Overridable:
		handler.OnMessage(messages.DuplicateVariableDefinition(v.Location, v.ID))
	}
}
