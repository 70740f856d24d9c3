package wxl

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Codepages the binder can encode string columns with. Unicode codepages
// have no charmap table; they are handled natively downstream.
const (
	CodepageNeutral = 0
	CodepageUTF16   = 1200
	CodepageUTF8    = 65001
)

var codepageEncodings = map[int]encoding.Encoding{
	37:    charmap.CodePage037,
	437:   charmap.CodePage437,
	850:   charmap.CodePage850,
	852:   charmap.CodePage852,
	855:   charmap.CodePage855,
	858:   charmap.CodePage858,
	860:   charmap.CodePage860,
	862:   charmap.CodePage862,
	863:   charmap.CodePage863,
	865:   charmap.CodePage865,
	866:   charmap.CodePage866,
	874:   charmap.Windows874,
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	20866: charmap.KOI8R,
	21866: charmap.KOI8U,
	28591: charmap.ISO8859_1,
	28592: charmap.ISO8859_2,
	28595: charmap.ISO8859_5,
	28597: charmap.ISO8859_7,
	28599: charmap.ISO8859_9,
	28605: charmap.ISO8859_15,
}

// SupportedCodepage reports whether a declared codepage is one the binder
// can actually encode with.
func SupportedCodepage(cp int) bool {
	switch cp {
	case CodepageNeutral, CodepageUTF16, CodepageUTF8:
		return true
	}
	_, ok := codepageEncodings[cp]
	return ok
}

// CodepageEncoding returns the character encoding for a supported
// single-byte codepage, or nil for the Unicode codepages.
func CodepageEncoding(cp int) encoding.Encoding {
	return codepageEncodings[cp]
}
