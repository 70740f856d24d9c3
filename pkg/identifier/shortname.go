package identifier

import (
	"encoding/base64"
	"encoding/binary"
	"path"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/walteh/gowix/pkg/validate"
)

const shortNameSeparator = "|"

// ShortName derives the legacy-compatible compact alias for longName.
// The alias body is always exactly 8 lowercase characters drawn from the
// base64 alphabet with '+' and '/' remapped so the result stays filename
// safe. When keepExtension is set, up to four characters of the original
// extension ride along unless they would break short-filename grammar.
//
// Deterministic by contract: identical inputs always yield the identical
// name, across processes and platforms.
func ShortName(longName string, keepExtension, allowWildcards bool, disambiguators ...string) string {
	// Localization placeholders stay case-sensitive; the variable name is
	// the identity, not its casing.
	canonical := longName
	if !validate.IsValidLocIdentifier(longName) {
		canonical = strings.ToLower(longName)
	}

	input := canonical
	if len(disambiguators) > 0 {
		input += shortNameSeparator + strings.Join(disambiguators, shortNameSeparator)
	}

	sum := xxhash.Sum64String(input)
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], sum)

	encoded := base64.StdEncoding.EncodeToString(buf[:])
	body := strings.ToLower(strings.Map(remapBase64, encoded[:8]))

	if keepExtension {
		ext := path.Ext(canonical)
		if len(ext) > 4 {
			ext = ext[:4]
		}
		if ext != "" {
			withExt := body + ext
			if validate.IsValidShortFilename(withExt, allowWildcards) {
				return withExt
			}
		}
	}

	return body
}

func remapBase64(r rune) rune {
	switch r {
	case '+':
		return '-'
	case '/':
		return '_'
	default:
		return r
	}
}
