// Package identifier generates the symbolic names rows are addressed by,
// including the legacy 8.3-compatible short names. Every generator here is a
// pure function of its inputs: the same markup always compiles to the same
// identifiers, which is what keeps incremental builds and patching sane.
package identifier

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

type AccessModifier int

const (
	AccessPublic AccessModifier = iota
	AccessInternal
	AccessProtected
	AccessPrivate
)

func (a AccessModifier) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessInternal:
		return "internal"
	case AccessProtected:
		return "protected"
	case AccessPrivate:
		return "private"
	default:
		return fmt.Sprintf("access(%d)", int(a))
	}
}

// Identifier is a validated symbolic name for a row plus its visibility to
// other compilation units.
type Identifier struct {
	ID     string
	Access AccessModifier
}

// Create joins a prefix and parts into a canonical private identifier.
// Empty parts are skipped so optional derivation inputs collapse cleanly.
func Create(prefix string, parts ...string) Identifier {
	elems := make([]string, 0, len(parts)+1)
	if prefix != "" {
		elems = append(elems, prefix)
	}
	for _, p := range parts {
		if p != "" {
			elems = append(elems, p)
		}
	}
	return Identifier{ID: strings.Join(elems, "_"), Access: AccessPrivate}
}

// Anonymous derives a stable generated identifier from the given parts.
// Identical parts always produce the identical identifier, so repeated
// emission of the same implicit row can be detected and collapsed.
func Anonymous(prefix string, parts ...string) Identifier {
	sum := xxhash.Sum64String(strings.Join(parts, "|"))
	return Identifier{ID: fmt.Sprintf("%s%016X", prefix, sum), Access: AccessPrivate}
}
