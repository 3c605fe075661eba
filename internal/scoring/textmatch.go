package scoring

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks, and recomposes, so
// "café" and "CAFÉ" fold to the same string once lowercased.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldForCompare(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// matchAnswer tests a candidate (surrounding whitespace already trimmed by
// the caller path; trimmed again here for safety) against one acceptable
// answer. Empty candidates never match. A malformed regex is treated as
// "no match", never surfaced to the caller.
func matchAnswer(candidate string, m AnswerMatcher) bool {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return false
	}
	switch m.Type {
	case "regex":
		return matchRegex(candidate, m.Pattern, m.Flags)
	default: // exact
		if m.CaseSensitive {
			return candidate == m.Value
		}
		return foldForCompare(candidate) == foldForCompare(m.Value)
	}
}

func matchRegex(candidate, pattern, flags string) bool {
	if pattern == "" {
		return false
	}
	if flags == "" {
		flags = "i"
	}
	var inline strings.Builder
	for _, f := range flags {
		switch f {
		case 'i':
			inline.WriteByte('i')
		case 'm':
			inline.WriteByte('m')
		case 's':
			inline.WriteByte('s')
		}
		// other JS flags (g, u, y) have no Go equivalent and do not
		// change single-candidate matching; ignore them
	}
	expr := pattern
	if inline.Len() > 0 {
		expr = "(?" + inline.String() + ")" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return false
	}
	return re.MatchString(candidate)
}
