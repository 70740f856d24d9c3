package validate

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/walteh/gowix/pkg/messages"
	"github.com/walteh/gowix/pkg/source"
	"gitlab.com/tozd/go/errors"
)

// Sentinels returned for absent or malformed values. A full compilation
// pass keeps going after any of these; the diagnostic carries the detail.
const (
	IntegerNotSet  = math.MinInt32
	IllegalInteger = math.MinInt32 + 1
	LongNotSet     = math.MinInt64
	IllegalLong    = math.MinInt64 + 1
	IllegalVersion = ""
	IllegalGuid    = ""
)

type YesNoType int

const (
	YesNoNotSet YesNoType = iota
	No
	Yes
	IllegalYesNo
)

// GenerateGuid is the wildcard marker asking the binder to mint a fresh
// guid at bind time.
const GenerateGuid = "*"

var exampleGuidRegexp = regexp.MustCompile(`^(?i)PUT-GUID(-\d+)?-HERE$`)

// variablePrefixes are placeholder forms whose final value is not known at
// validation time; they pass through guid normalization untouched.
var variablePrefixes = []string{"!(loc.", "$(loc.", "!(wix.", "!(bind."}

// Parser converts attribute text into typed values. Malformed user input
// produces a diagnostic and a sentinel, never an error: the two-tier rule
// reserves hard failures for caller bugs.
type Parser struct {
	handler messages.Handler
}

func NewParser(handler messages.Handler) *Parser {
	if handler == nil {
		panic(errors.New("validate: message handler is required"))
	}
	return &Parser{handler: handler}
}

// GetInteger parses a 32-bit integer attribute. Empty input is the
// distinct "not set" sentinel rather than an error.
func (p *Parser) GetInteger(loc source.Location, element, attribute, value string) int {
	if value == "" {
		return IntegerNotSet
	}
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		p.handler.OnMessage(messages.IllegalIntegerValue(loc, element, attribute, value))
		return IllegalInteger
	}
	return int(n)
}

func (p *Parser) GetLong(loc source.Location, element, attribute, value string) int64 {
	if value == "" {
		return LongNotSet
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		p.handler.OnMessage(messages.IllegalLongValue(loc, element, attribute, value))
		return IllegalLong
	}
	return n
}

// GetVersion accepts up to four dotted numeric fields, each within the
// 16-bit range the installer engine stores. The value is returned as
// written; only legality is checked here.
func (p *Parser) GetVersion(loc source.Location, element, attribute, value string) string {
	if value == "" {
		return IllegalVersion
	}
	fields := strings.Split(value, ".")
	if len(fields) > 4 {
		p.handler.OnMessage(messages.IllegalVersionValue(loc, element, attribute, value))
		return IllegalVersion
	}
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 16)
		if err != nil || n > 65535 {
			p.handler.OnMessage(messages.IllegalVersionValue(loc, element, attribute, value))
			return IllegalVersion
		}
	}
	return value
}

func (p *Parser) GetYesNo(loc source.Location, element, attribute, value string) YesNoType {
	switch value {
	case "":
		return YesNoNotSet
	case "yes":
		return Yes
	case "no":
		return No
	default:
		p.handler.OnMessage(messages.IllegalYesNoValue(loc, element, attribute, value))
		return IllegalYesNo
	}
}

// GetGuid normalizes a guid attribute to the uppercase brace-wrapped form
// the installer database stores. The generatable wildcard and deferred
// placeholder prefixes bypass normalization; example guids from
// documentation are called out so they never ship.
func (p *Parser) GetGuid(loc source.Location, element, attribute, value string) string {
	if value == "" {
		p.handler.OnMessage(messages.IllegalEmptyAttributeValue(loc, element, attribute))
		return IllegalGuid
	}

	if value == GenerateGuid {
		return value
	}
	for _, prefix := range variablePrefixes {
		if strings.HasPrefix(value, prefix) {
			return value
		}
	}

	inner := stripWrapper(value)

	if exampleGuidRegexp.MatchString(inner) {
		p.handler.OnMessage(messages.ExampleGuid(loc, element, attribute, value))
		return IllegalGuid
	}

	parsed, err := uuid.Parse(inner)
	if err != nil {
		p.handler.OnMessage(messages.IllegalGuidValue(loc, element, attribute, value))
		return IllegalGuid
	}

	return "{" + strings.ToUpper(parsed.String()) + "}"
}

// stripWrapper removes one matching pair of braces or parentheses. An
// unmatched wrapper is left for the guid parse to reject.
func stripWrapper(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if (first == '{' && last == '}') || (first == '(' && last == ')') {
		return s[1 : len(s)-1]
	}
	return s
}
