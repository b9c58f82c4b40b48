package fieldnorm

import "regexp"

// Separator returns the delimiter between the first two digit groups of s
// ("." "-" "_" or "/"), or "" when there is none
func Separator(s string) string {
	i := 0
	for i < len(s) && !isDigit(s[i]) {
		i++
	}
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i >= len(s) {
		return ""
	}
	switch c := s[i]; c {
	case '.', '-', '_', '/':
		return string(c)
	}
	return ""
}

// SeparatorPattern is Separator in escaped regular expression form
func SeparatorPattern(s string) string {
	sep := Separator(s)
	if sep == "" {
		return ""
	}
	return regexp.QuoteMeta(sep)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
