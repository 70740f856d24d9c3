package bindvars

import (
	"regexp"
	"strings"

	"github.com/walteh/gowix/pkg/messages"
	"github.com/walteh/gowix/pkg/source"
	"gitlab.com/tozd/go/errors"
)

// Resolution is the outcome of one ResolveVariables call.
type Resolution struct {
	// Text is the fully composed output.
	Text string
	// IsDefault stays true until a build variable is substituted from the
	// variable map; inline defaults do not flip it.
	IsDefault bool
	// TextModified reports whether any substitution or escape removal
	// changed the text.
	TextModified bool
	// DelayedResolve reports that a bind-namespace token remains and the
	// binder must re-resolve this text once bind-time values exist.
	DelayedResolve bool
}

// Token grammar:  optional literal-! escape, !( or $( opener, namespace,
// name, optional =default. The default never crosses a ')'.
var variableRegexp = regexp.MustCompile(`(!)?([!$])\((loc|wix|bind)\.([A-Za-z_][A-Za-z0-9_.]*)(=([^)]*))?\)`)

const (
	groupEscape    = 1
	groupForm      = 2
	groupNamespace = 3
	groupName      = 4
	groupDefault   = 6
)

// Resolver accumulates the variable state of exactly one compilation and
// substitutes placeholders in arbitrary text. Not safe for concurrent
// use; parallel pipelines take independent instances.
type Resolver struct {
	handler  messages.Handler
	codepage int
	culture  string
	locVars  map[string]Variable
	wixVars  map[string]Variable
	controls map[string]LocalizedControl
}

func NewResolver(handler messages.Handler) *Resolver {
	if handler == nil {
		panic(errors.New("bindvars: message handler is required"))
	}
	return &Resolver{
		handler:  handler,
		codepage: CodepageNotSet,
		locVars:  make(map[string]Variable),
		wixVars:  make(map[string]Variable),
		controls: make(map[string]LocalizedControl),
	}
}

// AddLocalization merges one parsed localization unit. The first unit to
// announce a codepage wins; variables follow the precedence rule; a
// control key already present keeps its first writer without comment.
func (r *Resolver) AddLocalization(l *Localization) {
	if l == nil {
		panic(errors.New("bindvars: localization is required"))
	}

	if r.codepage == CodepageNotSet && l.Codepage != CodepageNotSet {
		r.codepage = l.Codepage
	}
	if r.culture == "" {
		r.culture = l.Culture
	}

	for _, v := range l.Variables {
		Merge(r.locVars, v, r.handler)
	}
	for key, control := range l.Controls {
		if _, ok := r.controls[key]; !ok {
			r.controls[key] = control
		}
	}
}

// AddVariable defines a build-namespace variable.
func (r *Resolver) AddVariable(loc source.Location, name, value string, overridable bool) {
	Merge(r.wixVars, Variable{ID: name, Value: value, Overridable: overridable, Location: loc}, r.handler)
}

func (r *Resolver) Codepage() int {
	return r.codepage
}

func (r *Resolver) Culture() string {
	return r.culture
}

// VariableCount reports how many variables are defined across both
// namespaces.
func (r *Resolver) VariableCount() int {
	return len(r.locVars) + len(r.wixVars)
}

// TryGetVariable looks name up in the given namespace ("loc" or "wix").
func (r *Resolver) TryGetVariable(namespace, name string) (Variable, bool) {
	switch namespace {
	case "loc":
		v, ok := r.locVars[name]
		return v, ok
	case "wix":
		v, ok := r.wixVars[name]
		return v, ok
	default:
		panic(errors.Errorf("bindvars: unknown namespace %q", namespace))
	}
}

// TryGetLocalizedControl returns the override for (dialog, control), if
// any. An empty control queries the dialog-level override.
func (r *Resolver) TryGetLocalizedControl(dialog, control string) (LocalizedControl, bool) {
	c, ok := r.controls[ControlKey(dialog, control)]
	return c, ok
}

// ResolveVariables substitutes every placeholder in text, reporting
// unknown variables as diagnostics.
func (r *Resolver) ResolveVariables(loc source.Location, text string, localizationOnly bool) Resolution {
	return r.resolve(loc, text, localizationOnly, true)
}

// ResolveVariablesWithUnknowns is ResolveVariables for callers that expect
// unknown variables and want them left in place without diagnostics.
func (r *Resolver) ResolveVariablesWithUnknowns(loc source.Location, text string, localizationOnly bool) Resolution {
	return r.resolve(loc, text, localizationOnly, false)
}

func (r *Resolver) resolve(loc source.Location, text string, localizationOnly, errorOnUnknown bool) Resolution {
	result := Resolution{IsDefault: true}

	matches := variableRegexp.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		result.Text = text
		return result
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		escaped := m[2*groupEscape] >= 0
		form := text[m[2*groupForm]:m[2*groupForm+1]]
		namespace := text[m[2*groupNamespace]:m[2*groupNamespace+1]]
		name := text[m[2*groupName]:m[2*groupName+1]]
		hasDefault := m[2*groupDefault] >= 0
		defaultValue := ""
		if hasDefault {
			defaultValue = text[m[2*groupDefault]:m[2*groupDefault+1]]
		}

		tokenStart := start
		if escaped {
			if !localizationOnly {
				// Drop the escape marker, keep the token literal.
				sb.WriteString(text[last:start])
				sb.WriteString(text[start+1 : end])
				result.TextModified = true
				last = end
				continue
			}
			// Localization-only passes leave escapes for the later full
			// pass; the marker is ordinary text here.
			tokenStart = start + 1
		}
		sb.WriteString(text[last:tokenStart])
		token := text[tokenStart:end]
		last = end

		switch namespace {
		case "loc":
			if form == "$" {
				r.handler.OnMessage(messages.DeprecatedLocVariablePrefix(loc, name))
			}
			if hasDefault {
				r.handler.OnMessage(messages.IllegalInlineDefaultValue(loc, token))
				sb.WriteString(token)
				continue
			}
			if v, ok := r.locVars[name]; ok {
				sb.WriteString(v.Value)
				result.TextModified = true
				continue
			}
			if errorOnUnknown {
				r.handler.OnMessage(messages.UnknownLocalizationVariable(loc, name))
			}
			sb.WriteString(token)

		case "wix":
			if localizationOnly {
				sb.WriteString(token)
				continue
			}
			if form == "$" {
				r.handler.OnMessage(messages.IllegalWixVariablePrefix(loc, token))
				sb.WriteString(token)
				continue
			}
			if v, ok := r.wixVars[name]; ok {
				sb.WriteString(v.Value)
				result.IsDefault = false
				result.TextModified = true
				continue
			}
			if hasDefault {
				sb.WriteString(defaultValue)
				result.TextModified = true
				continue
			}
			if errorOnUnknown {
				r.handler.OnMessage(messages.UnknownBuildVariable(loc, name))
			}
			sb.WriteString(token)

		case "bind":
			// Never resolved here; the binder gets another pass.
			result.DelayedResolve = true
			sb.WriteString(token)
		}
	}
	sb.WriteString(text[last:])

	result.Text = sb.String()
	return result
}
