package bindvars_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/gowix/pkg/bindvars"
	"github.com/walteh/gowix/pkg/messages"
	"github.com/walteh/gowix/pkg/source"
)

func newResolver(t *testing.T) (*bindvars.Resolver, *messages.Collector) {
	t.Helper()
	collector := messages.NewCollector()
	return bindvars.NewResolver(collector), collector
}

func TestResolveNoPlaceholders(t *testing.T) {
	r, collector := newResolver(t)

	res := r.ResolveVariables(source.Unknown, "plain text with $dollars and !bangs", false)

	assert.Equal(t, "plain text with $dollars and !bangs", res.Text)
	assert.True(t, res.IsDefault)
	assert.False(t, res.TextModified)
	assert.False(t, res.DelayedResolve)
	assert.Empty(t, collector.Messages)
}

func TestResolveLocVariable(t *testing.T) {
	r, collector := newResolver(t)
	unit := bindvars.NewLocalization()
	unit.Variables["Greeting"] = bindvars.Variable{ID: "Greeting", Value: "Hello"}
	r.AddLocalization(unit)

	res := r.ResolveVariables(source.Unknown, "!(loc.Greeting), world", false)

	assert.Equal(t, "Hello, world", res.Text)
	assert.True(t, res.IsDefault, "loc substitution must not flip IsDefault")
	assert.True(t, res.TextModified)
	assert.Empty(t, collector.Messages)
}

func TestResolveLocDeprecatedForm(t *testing.T) {
	r, collector := newResolver(t)
	unit := bindvars.NewLocalization()
	unit.Variables["Greeting"] = bindvars.Variable{ID: "Greeting", Value: "Hello"}
	r.AddLocalization(unit)

	res := r.ResolveVariables(source.Unknown, "$(loc.Greeting)", false)

	assert.Equal(t, "Hello", res.Text)
	require.Len(t, collector.Messages, 1)
	assert.Equal(t, messages.CodeDeprecatedLocVariablePrefix, collector.Messages[0].Code)
	assert.Equal(t, messages.SeverityWarning, collector.Messages[0].Severity)
}

func TestResolveUnknownLocVariable(t *testing.T) {
	r, collector := newResolver(t)

	res := r.ResolveVariables(source.Unknown, "!(loc.Missing)", false)

	assert.Equal(t, "!(loc.Missing)", res.Text)
	require.Len(t, collector.Messages, 1)
	assert.Equal(t, messages.CodeUnknownLocalizationVariable, collector.Messages[0].Code)

	// Without errorOnUnknown the token stays silently.
	r2, collector2 := newResolver(t)
	res2 := r2.ResolveVariablesWithUnknowns(source.Unknown, "!(loc.Missing)", false)
	assert.Equal(t, "!(loc.Missing)", res2.Text)
	assert.Empty(t, collector2.Messages)
}

func TestResolveWixVariable(t *testing.T) {
	r, collector := newResolver(t)
	r.AddVariable(source.Unknown, "BundleName", "Orca", false)

	res := r.ResolveVariables(source.Unknown, "Welcome to !(wix.BundleName)", false)

	assert.Equal(t, "Welcome to Orca", res.Text)
	assert.False(t, res.IsDefault, "map-sourced wix substitution flips IsDefault")
	assert.True(t, res.TextModified)
	assert.Empty(t, collector.Messages)
}

func TestResolveWixInlineDefault(t *testing.T) {
	r, collector := newResolver(t)

	res := r.ResolveVariables(source.Unknown, "!(wix.Edition=Standard)", false)

	assert.Equal(t, "Standard", res.Text)
	assert.True(t, res.IsDefault, "inline default leaves IsDefault true")
	assert.True(t, res.TextModified)
	assert.Empty(t, collector.Messages)

	// A defined variable beats the inline default.
	r2, _ := newResolver(t)
	r2.AddVariable(source.Unknown, "Edition", "Enterprise", false)
	res2 := r2.ResolveVariables(source.Unknown, "!(wix.Edition=Standard)", false)
	assert.Equal(t, "Enterprise", res2.Text)
	assert.False(t, res2.IsDefault)
}

func TestResolveUnknownWixVariable(t *testing.T) {
	r, collector := newResolver(t)

	res := r.ResolveVariables(source.Unknown, "!(wix.Missing)", false)

	assert.Equal(t, "!(wix.Missing)", res.Text)
	require.Len(t, collector.Messages, 1)
	assert.Equal(t, messages.CodeUnknownBuildVariable, collector.Messages[0].Code)
}

func TestResolveIllegalWixPrefix(t *testing.T) {
	r, collector := newResolver(t)
	r.AddVariable(source.Unknown, "Name", "value", false)

	res := r.ResolveVariables(source.Unknown, "$(wix.Name)", false)

	assert.Equal(t, "$(wix.Name)", res.Text, "illegal prefix skips substitution")
	require.Len(t, collector.Messages, 1)
	assert.Equal(t, messages.CodeIllegalWixVariablePrefix, collector.Messages[0].Code)
}

func TestResolveLocInlineDefaultIllegal(t *testing.T) {
	r, collector := newResolver(t)

	res := r.ResolveVariables(source.Unknown, "!(loc.Name=default)", false)

	assert.Equal(t, "!(loc.Name=default)", res.Text)
	require.Len(t, collector.Messages, 1)
	assert.Equal(t, messages.CodeIllegalInlineDefaultValue, collector.Messages[0].Code)
}

func TestResolveEscapedToken(t *testing.T) {
	r, collector := newResolver(t)

	res := r.ResolveVariables(source.Unknown, "!!(wix.Foo)", false)

	assert.Equal(t, "!(wix.Foo)", res.Text)
	assert.True(t, res.TextModified)
	assert.False(t, res.DelayedResolve)
	assert.Empty(t, collector.Messages, "escaped tokens draw no diagnostics")
}

func TestResolveEscapePreservedInLocalizationOnly(t *testing.T) {
	r, collector := newResolver(t)

	res := r.ResolveVariables(source.Unknown, "!!(wix.Foo)", true)

	assert.Equal(t, "!!(wix.Foo)", res.Text, "loc-only pass leaves escapes for the full pass")
	assert.False(t, res.TextModified)
	assert.Empty(t, collector.Messages)
}

func TestResolveBindDeferred(t *testing.T) {
	r, collector := newResolver(t)

	res := r.ResolveVariables(source.Unknown, "version=!(bind.FileVersion.MainExe)", false)

	assert.Equal(t, "version=!(bind.FileVersion.MainExe)", res.Text)
	assert.True(t, res.DelayedResolve)
	assert.False(t, res.TextModified)
	assert.Empty(t, collector.Messages)
}

func TestResolveWixSkippedInLocalizationOnly(t *testing.T) {
	r, collector := newResolver(t)
	r.AddVariable(source.Unknown, "Name", "value", false)
	unit := bindvars.NewLocalization()
	unit.Variables["Greeting"] = bindvars.Variable{ID: "Greeting", Value: "Hello"}
	r.AddLocalization(unit)

	res := r.ResolveVariables(source.Unknown, "!(loc.Greeting) !(wix.Name)", true)

	assert.Equal(t, "Hello !(wix.Name)", res.Text)
	assert.True(t, res.IsDefault)
	assert.Empty(t, collector.Messages)
}

func TestResolveMultipleAdjacentTokens(t *testing.T) {
	r, collector := newResolver(t)
	r.AddVariable(source.Unknown, "A", "1", false)
	r.AddVariable(source.Unknown, "B", "longer-value", false)

	res := r.ResolveVariables(source.Unknown, "!(wix.A)!(wix.B)!(wix.A)", false)

	assert.Equal(t, "1longer-value1", res.Text)
	assert.Empty(t, collector.Messages)
}

func TestAddVariablePrecedence(t *testing.T) {
	r, collector := newResolver(t)

	r.AddVariable(source.Unknown, "X", "1", true)
	r.AddVariable(source.Unknown, "X", "2", false)

	v, ok := r.TryGetVariable("wix", "X")
	require.True(t, ok)
	assert.Equal(t, "2", v.Value, "non-overridable replaces overridable")
	assert.Empty(t, collector.Messages)

	r.AddVariable(source.Unknown, "X", "3", false)
	v, _ = r.TryGetVariable("wix", "X")
	assert.Equal(t, "2", v.Value, "duplicate non-overridable keeps existing")
	require.Len(t, collector.Messages, 1)
	assert.Equal(t, messages.CodeDuplicateVariableDefinition, collector.Messages[0].Code)

	r.AddVariable(source.Unknown, "X", "4", true)
	v, _ = r.TryGetVariable("wix", "X")
	assert.Equal(t, "2", v.Value, "overridable over non-overridable drops silently")
	assert.Len(t, collector.Messages, 1)
}

func TestAddVariableOverridableLastWriteWins(t *testing.T) {
	r, collector := newResolver(t)

	r.AddVariable(source.Unknown, "Y", "first", true)
	r.AddVariable(source.Unknown, "Y", "second", true)

	v, ok := r.TryGetVariable("wix", "Y")
	require.True(t, ok)
	assert.Equal(t, "second", v.Value)
	assert.Empty(t, collector.Messages)
}

func TestAddLocalizationCodepageFirstWins(t *testing.T) {
	r, _ := newResolver(t)
	assert.Equal(t, bindvars.CodepageNotSet, r.Codepage())

	first := bindvars.NewLocalization()
	first.Codepage = 1252
	second := bindvars.NewLocalization()
	second.Codepage = 1251

	r.AddLocalization(first)
	r.AddLocalization(second)

	assert.Equal(t, 1252, r.Codepage())
}

func TestAddLocalizationControlsFirstWriterWins(t *testing.T) {
	r, collector := newResolver(t)

	first := bindvars.NewLocalization()
	first.Controls["Welcome/Title"] = bindvars.LocalizedControl{Dialog: "Welcome", Control: "Title", Text: "Hi"}
	second := bindvars.NewLocalization()
	second.Controls["Welcome/Title"] = bindvars.LocalizedControl{Dialog: "Welcome", Control: "Title", Text: "Bonjour"}

	r.AddLocalization(first)
	r.AddLocalization(second)

	got, ok := r.TryGetLocalizedControl("Welcome", "Title")
	require.True(t, ok)
	assert.Equal(t, "Hi", got.Text)
	assert.Empty(t, collector.Messages, "losing control entries are dropped silently")
}

func TestTryGetLocalizedControlDialogLevelKey(t *testing.T) {
	r, _ := newResolver(t)

	unit := bindvars.NewLocalization()
	unit.Controls[bindvars.ControlKey("Welcome", "")] = bindvars.LocalizedControl{Dialog: "Welcome", Text: "dialog override"}
	r.AddLocalization(unit)

	_, ok := r.TryGetLocalizedControl("Welcome", "Title")
	assert.False(t, ok, "dialog-level key is distinct from any named control")

	got, ok := r.TryGetLocalizedControl("Welcome", "")
	require.True(t, ok)
	assert.Equal(t, "dialog override", got.Text)
}
