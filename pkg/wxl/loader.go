// Package wxl parses localization documents (.wxl) into localization
// units. The whole document is walked in one pass so authors see every
// problem at once; a unit with any diagnostic is discarded entirely.
package wxl

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/gowix/pkg/bindvars"
	"github.com/walteh/gowix/pkg/messages"
	"github.com/walteh/gowix/pkg/source"
	"github.com/walteh/gowix/pkg/validate"
	"gitlab.com/tozd/go/errors"
)

// Namespace is the localization document namespace. A WixLocalization
// element in any other namespace belongs to some unrelated document.
const Namespace = "http://schemas.microsoft.com/wix/2006/localization"

const rootElementName = "WixLocalization"

// countingHandler forwards to the caller's handler while tracking whether
// this parse produced any error, which decides whole-unit invalidation.
type countingHandler struct {
	next   messages.Handler
	errors int
}

func (c *countingHandler) OnMessage(m messages.Message) {
	if m.Severity == messages.SeverityError {
		c.errors++
	}
	c.next.OnMessage(m)
}

// Parse reads one localization unit. It returns (nil, nil) when the
// document was well-formed XML but drew diagnostics: callers must consult
// the handler's aggregate state, not just the return value. A non-nil
// error means the input could not be read or was not XML at all.
func Parse(ctx context.Context, r io.Reader, file string, handler messages.Handler) (*bindvars.Localization, error) {
	if handler == nil {
		panic(errors.New("wxl: message handler is required"))
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Errorf("reading localization document %s: %w", file, err)
	}

	counting := &countingHandler{next: handler}
	p := &parser{
		text:    string(data),
		file:    file,
		handler: counting,
		values:  validate.NewParser(counting),
		unit:    bindvars.NewLocalization(),
	}

	if err := p.run(ctx, xml.NewDecoder(bytes.NewReader(data))); err != nil {
		return nil, err
	}
	if counting.errors > 0 {
		return nil, nil
	}

	zerolog.Ctx(ctx).Debug().
		Str("file", file).
		Int("codepage", p.unit.Codepage).
		Int("variables", len(p.unit.Variables)).
		Int("controls", len(p.unit.Controls)).
		Msg("parsed localization unit")
	return p.unit, nil
}

type parser struct {
	text    string
	file    string
	handler messages.Handler
	values  *validate.Parser
	unit    *bindvars.Localization
}

func (p *parser) location(d *xml.Decoder) source.Location {
	return source.FromOffset(p.text, p.file, int(d.InputOffset()))
}

func (p *parser) run(ctx context.Context, d *xml.Decoder) error {
	root, err := nextStartElement(d)
	if err != nil {
		return errors.Errorf("parsing localization document %s: %w", p.file, err)
	}
	if root == nil {
		p.handler.OnMessage(messages.InvalidLocalizationRootElement(source.New(p.file, 0, 0), ""))
		return nil
	}

	if root.Name.Local != rootElementName {
		p.handler.OnMessage(messages.InvalidLocalizationRootElement(p.location(d), root.Name.Local))
		return nil
	}
	if root.Name.Space != Namespace {
		// Right element, wrong (or missing) document namespace: a
		// distinct diagnostic, and parsing still stops here.
		p.handler.OnMessage(messages.InvalidLocalizationNamespace(p.location(d), root.Name.Space))
		return nil
	}

	p.parseRootAttributes(d, root)
	return p.parseChildren(ctx, d)
}

func (p *parser) parseRootAttributes(d *xml.Decoder, root *xml.StartElement) {
	for _, attr := range root.Attr {
		if isNamespaceDeclaration(attr) {
			continue
		}
		switch attr.Name.Local {
		case "Codepage":
			p.setCodepage(d, attr.Value)
		case "Culture":
			p.unit.Culture = attr.Value
		case "Language":
			// Accepted for compatibility with older documents, ignored.
		default:
			p.handler.OnMessage(messages.UnexpectedAttribute(p.location(d), rootElementName, attr.Name.Local))
		}
	}
}

func (p *parser) setCodepage(d *xml.Decoder, value string) {
	cp := p.values.GetInteger(p.location(d), rootElementName, "Codepage", value)
	if cp == validate.IntegerNotSet || cp == validate.IllegalInteger {
		return
	}
	if !SupportedCodepage(cp) {
		p.handler.OnMessage(messages.UnsupportedCodepage(p.location(d), value))
		return
	}
	p.unit.Codepage = cp
}

func (p *parser) parseChildren(ctx context.Context, d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Errorf("parsing localization document %s: %w", p.file, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch {
		case start.Name.Space == Namespace && start.Name.Local == "String":
			p.parseString(d, start)
		case start.Name.Space == Namespace && start.Name.Local == "UI":
			p.parseUI(d, start)
		default:
			p.handler.OnMessage(messages.UnexpectedElement(p.location(d), rootElementName, start.Name.Local))
			if err := d.Skip(); err != nil {
				return errors.Errorf("parsing localization document %s: %w", p.file, err)
			}
		}
	}
}

func (p *parser) parseString(d *xml.Decoder, start xml.StartElement) {
	loc := p.location(d)

	id := ""
	sawID := false
	overridable := false
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "Id":
			id = attr.Value
			sawID = true
		case "Overridable":
			overridable = p.values.GetYesNo(loc, "String", "Overridable", attr.Value) == validate.Yes
		case "Localizable":
			// Accepted and ignored; localizability is implied here.
		default:
			p.handler.OnMessage(messages.UnexpectedAttribute(loc, "String", attr.Name.Local))
		}
	}

	value := p.innerText(d, "String")

	if !sawID || id == "" {
		p.handler.OnMessage(messages.ExpectedLocalizationIdentifier(loc))
		return
	}

	bindvars.Merge(p.unit.Variables, bindvars.Variable{
		ID:          id,
		Value:       value,
		Overridable: overridable,
		Location:    loc,
	}, p.handler)
}

func (p *parser) parseUI(d *xml.Decoder, start xml.StartElement) {
	loc := p.location(d)

	control := bindvars.LocalizedControl{
		X:      validate.IntegerNotSet,
		Y:      validate.IntegerNotSet,
		Width:  validate.IntegerNotSet,
		Height: validate.IntegerNotSet,
	}
	sawDialog := false
	sawControl := false

	flag := func(attr xml.Attr, bit int64) {
		if p.values.GetYesNo(loc, "UI", attr.Name.Local, attr.Value) == validate.Yes {
			control.Attributes |= bit
		}
	}

	var flagAttrs []string
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "Dialog":
			control.Dialog = attr.Value
			sawDialog = true
		case "Control":
			control.Control = attr.Value
			sawControl = true
		case "X":
			control.X = p.dimension(loc, attr)
		case "Y":
			control.Y = p.dimension(loc, attr)
		case "Width":
			control.Width = p.dimension(loc, attr)
		case "Height":
			control.Height = p.dimension(loc, attr)
		case "RightToLeft":
			flagAttrs = append(flagAttrs, attr.Name.Local)
			flag(attr, bindvars.ControlAttrRightToLeft)
		case "RightAligned":
			flagAttrs = append(flagAttrs, attr.Name.Local)
			flag(attr, bindvars.ControlAttrRightAligned)
		case "LeftScroll":
			flagAttrs = append(flagAttrs, attr.Name.Local)
			flag(attr, bindvars.ControlAttrLeftScroll)
		default:
			p.handler.OnMessage(messages.UnexpectedAttribute(loc, "UI", attr.Name.Local))
		}
	}

	control.Text = p.innerText(d, "UI")

	if control.Control == "" {
		for _, name := range flagAttrs {
			p.handler.OnMessage(messages.ControlAttributeWithoutControl(loc, name))
		}
	}
	if !sawDialog && !sawControl {
		p.handler.OnMessage(messages.ExpectedDialogOrControl(loc))
		return
	}

	key := control.Key()
	if _, ok := p.unit.Controls[key]; ok {
		p.handler.OnMessage(messages.DuplicateLocalizedControl(loc, control.Dialog, control.Control))
		return
	}
	p.unit.Controls[key] = control
}

// dimension parses a position or size attribute, which must fit the
// 16-bit field the installer database stores.
func (p *parser) dimension(loc source.Location, attr xml.Attr) int {
	n := p.values.GetInteger(loc, "UI", attr.Name.Local, attr.Value)
	if n == validate.IntegerNotSet || n == validate.IllegalInteger {
		return n
	}
	if n < -32768 || n > 32767 {
		p.handler.OnMessage(messages.IllegalIntegerValue(loc, "UI", attr.Name.Local, attr.Value))
		return validate.IllegalInteger
	}
	return n
}

// innerText consumes the element's content through its end tag and
// returns the trimmed character data. Unexpected nested elements are
// reported and skipped.
func (p *parser) innerText(d *xml.Decoder, parent string) string {
	var sb strings.Builder
	depth := 0
	for {
		tok, err := d.Token()
		if err != nil {
			return strings.TrimSpace(sb.String())
		}
		switch t := tok.(type) {
		case xml.CharData:
			if depth == 0 {
				sb.Write(t)
			}
		case xml.StartElement:
			depth++
			p.handler.OnMessage(messages.UnexpectedElement(p.location(d), parent, t.Name.Local))
		case xml.EndElement:
			if depth == 0 {
				return strings.TrimSpace(sb.String())
			}
			depth--
		}
	}
}

func nextStartElement(d *xml.Decoder) (*xml.StartElement, error) {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return &start, nil
		}
	}
}

func isNamespaceDeclaration(attr xml.Attr) bool {
	return attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns")
}
