package linest

import (
	"regexp"
	"strconv"
	"strings"
)

// FastForwardMark starts and ends the trimmed text of a fast-forward
// directive line.
const FastForwardMark = ">>"

// lineKind is the classification of a single expected line. The zero value
// is a literal line.
type lineKind struct {
	fastForward bool
	bounded     bool
	skip        int
}

// classify computes the kind of an expected line from its text. Directive
// bounds ≤ 0 make the whole comparison fail, see DirectiveError.
func classify(line string) (lineKind, error) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 2*len(FastForwardMark) ||
		!strings.HasPrefix(trimmed, FastForwardMark) ||
		!strings.HasSuffix(trimmed, FastForwardMark) {
		return lineKind{}, nil
	}
	inner := trimmed[len(FastForwardMark) : len(trimmed)-len(FastForwardMark)]
	skip, err := strconv.Atoi(strings.TrimSpace(inner))
	if err != nil {
		// empty or non-integer text means skip until the next expected
		// line matches
		return lineKind{fastForward: true}, nil
	}
	if skip <= 0 {
		return lineKind{}, &DirectiveError{Directive: trimmed, Skip: skip}
	}
	return lineKind{fastForward: true, bounded: true, skip: skip}, nil
}

// matches reports whether one expected line accepts one actual line. The
// verbatim comparison comes first so that literal text with regexp
// metacharacters keeps working. The regexp attempt must consume the whole
// actual line; a compile failure counts as no match.
func matches(expected, actual string) bool {
	if expected == actual {
		return true
	}
	rgx, err := regexp.Compile(`\A(?:` + expected + `)\z`)
	if err != nil {
		return false
	}
	return rgx.MatchString(actual)
}
