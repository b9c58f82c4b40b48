// Package textprep prepares raw text for date scanning
// Pipeline order
// 1 drop control characters and invalid UTF-8
// 2 Unicode NFKC normalization (no-break spaces, ligatures, superscripts)
// 3 remove format characters (zero-width space, joiners, BOM)
// 4 width fold fullwidth digits and letters to ASCII
// 5 collapse whitespace runs, keeping line breaks, and trim
// Case is kept; month names and zones are matched case-insensitively downstream
package textprep

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// chains are not safe for concurrent use, so each caller borrows one
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// Prepare returns s ready for the scanner
func Prepare(s string) string {
	if s == "" {
		return ""
	}
	s = dropControls(s)

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		out = s
	}

	return collapseSpaces(out)
}

// dropControls removes C0 (except tab and line breaks), DEL, C1 and invalid bytes
func dropControls(s string) string {
	clean := true
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if isJunk(r, size) {
			clean = false
			break
		}
		i += size
	}
	if clean {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isJunk(r, size) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func isJunk(r rune, size int) bool {
	switch {
	case r == utf8.RuneError && size == 1:
		return true
	case r == '\n' || r == '\r' || r == '\t':
		return false
	case r < 0x20, r == 0x7F:
		return true
	case r >= 0x80 && r <= 0x9F:
		return true
	}
	return false
}

// collapseSpaces turns each whitespace run into one space, or one newline when
// the run contains a line break, then trims the edges
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWS, sawNL := false, false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			if r == '\n' || r == '\r' {
				sawNL = true
			}
			continue
		}
		if inWS {
			if sawNL {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
			inWS, sawNL = false, false
		}
		b.WriteRune(r)
	}
	return strings.Trim(b.String(), " \n")
}
