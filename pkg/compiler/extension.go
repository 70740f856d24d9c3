package compiler

import (
	"context"
	"encoding/xml"

	"github.com/rs/zerolog"
	"github.com/walteh/gowix/pkg/messages"
	"github.com/walteh/gowix/pkg/source"
	"gitlab.com/tozd/go/errors"
)

// Element is the generic markup node handed to extensions: enough shape
// to parse custom attributes and children without tying extensions to a
// particular decoder.
type Element struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Children []*Element
	Text     string
	Location source.Location
}

// Extension is a capability provider for markup outside the core schema.
// Implementations handle what they recognize and report the rest through
// the shared diagnostics channel.
type Extension interface {
	// ParseAttribute handles an attribute the core walker did not
	// recognize on element. Returns false when the attribute is not this
	// extension's either.
	ParseAttribute(ctx context.Context, core *Core, element *Element, attr xml.Attr) bool

	// ParseElement handles a child element the core walker did not
	// recognize under parent.
	ParseElement(ctx context.Context, core *Core, parent, element *Element) bool

	// ParsePossibleKeyPathElement is ParseElement for children that may
	// additionally nominate a component key path. keyPath is empty when
	// the element does not.
	ParsePossibleKeyPathElement(ctx context.Context, core *Core, parent, element *Element) (keyPath string, handled bool)
}

// Dispatcher routes unrecognized markup to the extension registered for
// its namespace. Lookup happens once per attribute or element; anything
// with no registered namespace falls through to the standard unexpected
// markup diagnostics.
type Dispatcher struct {
	extensions map[string]Extension
	handler    messages.Handler
}

func NewDispatcher(handler messages.Handler) *Dispatcher {
	if handler == nil {
		panic(errors.New("compiler: message handler is required"))
	}
	return &Dispatcher{extensions: make(map[string]Extension), handler: handler}
}

// Register binds an extension to a namespace URI. Double registration of
// the same namespace is a programming error.
func (d *Dispatcher) Register(namespace string, ext Extension) {
	if namespace == "" || ext == nil {
		panic(errors.New("compiler: extension registration requires a namespace and an extension"))
	}
	if _, ok := d.extensions[namespace]; ok {
		panic(errors.Errorf("compiler: namespace %q already has a registered extension", namespace))
	}
	d.extensions[namespace] = ext
}

// DispatchAttribute routes attr to the extension registered for its
// namespace, emitting the unexpected-attribute diagnostic when nothing
// claims it.
func (d *Dispatcher) DispatchAttribute(ctx context.Context, core *Core, element *Element, attr xml.Attr) {
	if ext, ok := d.extensions[attr.Name.Space]; ok {
		if ext.ParseAttribute(ctx, core, element, attr) {
			return
		}
	}
	zerolog.Ctx(ctx).Debug().
		Str("element", element.Name.Local).
		Str("attribute", attr.Name.Local).
		Str("namespace", attr.Name.Space).
		Msg("no extension claimed attribute")
	d.handler.OnMessage(messages.UnexpectedAttribute(element.Location, element.Name.Local, attr.Name.Local))
}

// DispatchElement routes element to the extension registered for its
// namespace, emitting the unexpected-element diagnostic when nothing
// claims it.
func (d *Dispatcher) DispatchElement(ctx context.Context, core *Core, parent, element *Element) {
	if ext, ok := d.extensions[element.Name.Space]; ok {
		if ext.ParseElement(ctx, core, parent, element) {
			return
		}
	}
	d.handler.OnMessage(messages.UnexpectedElement(element.Location, parent.Name.Local, element.Name.Local))
}

// DispatchPossibleKeyPathElement is DispatchElement for contexts where the
// child may nominate a key path.
func (d *Dispatcher) DispatchPossibleKeyPathElement(ctx context.Context, core *Core, parent, element *Element) string {
	if ext, ok := d.extensions[element.Name.Space]; ok {
		if keyPath, handled := ext.ParsePossibleKeyPathElement(ctx, core, parent, element); handled {
			return keyPath
		}
	}
	d.handler.OnMessage(messages.UnexpectedElement(element.Location, parent.Name.Local, element.Name.Local))
	return ""
}
