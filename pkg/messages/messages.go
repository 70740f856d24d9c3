// Package messages is the diagnostics channel shared by every stage of the
// compiler. User-input problems are reported here as structured values with
// stable codes; they never surface as Go errors, so a single pass can keep
// collecting everything wrong with the authored source.
package messages

import (
	"fmt"

	"github.com/walteh/gowix/pkg/source"
)

type Severity int

const (
	SeverityVerbose Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityVerbose:
		return "verbose"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Message is one diagnostic entry. Code is stable across releases; tooling
// keys off it, not the text.
type Message struct {
	Severity Severity
	Code     int
	Location source.Location
	Format   string
	Args     []any
}

func (m Message) Text() string {
	return fmt.Sprintf(m.Format, m.Args...)
}

// Error lets a Message cross an error-valued boundary at the CLI edge.
func (m Message) Error() string {
	return fmt.Sprintf("%s: %s GWX%04d: %s", m.Location, m.Severity, m.Code, m.Text())
}

// Handler receives every diagnostic the core emits. It is constructor
// injected into each component; there is no ambient sink.
type Handler interface {
	OnMessage(Message)
}

// Collector is the standard Handler: it records messages in emission order
// and latches whether any error-severity message was seen.
type Collector struct {
	Messages         []Message
	encounteredError bool
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) OnMessage(m Message) {
	c.Messages = append(c.Messages, m)
	if m.Severity == SeverityError {
		c.encounteredError = true
	}
}

// EncounteredError reports whether any error has been collected. Callers
// use this, not return values, to decide whether a parsed unit is usable.
func (c *Collector) EncounteredError() bool {
	return c.encounteredError
}

func (c *Collector) Errors() []Message {
	return c.filter(SeverityError)
}

func (c *Collector) Warnings() []Message {
	return c.filter(SeverityWarning)
}

func (c *Collector) filter(s Severity) []Message {
	var out []Message
	for _, m := range c.Messages {
		if m.Severity == s {
			out = append(out, m)
		}
	}
	return out
}
