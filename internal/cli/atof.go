package cli

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// parseLenient converts s the way C atof does: leading white space is
// skipped, the longest numeric prefix is used, and anything unparsable is 0.
// Hexadecimal input ("0x1A", "0x1.8p3") is accepted with or without a binary
// exponent. Out-of-range values saturate to ±Inf or 0.
func parseLenient(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	// atof has no digit separators.
	if i := strings.IndexByte(s, '_'); i >= 0 {
		s = s[:i]
	}

	hex := isHex(s)
	for end := len(s); end > 0; end-- {
		if v, ok := parsePrefix(s[:end]); ok {
			return v
		}
		if hex {
			if v, ok := parsePrefix(s[:end] + "p0"); ok {
				return v
			}
		}
	}
	return 0
}

func parsePrefix(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil || errors.Is(err, strconv.ErrRange)
}

// isHex reports whether s starts with an optionally signed 0x or 0X.
func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
