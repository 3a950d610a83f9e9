package linest

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// SizeError reports that more lines were expected than the actual text has.
// No fast-forward directive can make the actual text longer, so this is
// checked before any matching starts.
type SizeError struct {
	Expected []string
	Actual   []string
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("expected %d lines, but only got %d",
		len(e.Expected),
		len(e.Actual),
	)
}

// Diff renders a line-prefixed diff of the joined expected and actual
// texts, '-' for expected-only and '+' for actual-only parts.
func (e *SizeError) Diff() string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(
		strings.Join(e.Expected, "\n"),
		strings.Join(e.Actual, "\n"),
		true,
	)
	diffs = dmp.DiffCleanupSemantic(diffs)
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString("-[")
			sb.WriteString(d.Text)
			sb.WriteString("]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("+[")
			sb.WriteString(d.Text)
			sb.WriteString("]")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

// DirectiveError reports a fast-forward directive with a bound that is not
// a positive integer.
type DirectiveError struct {
	Directive string
	Skip      int
}

func (e *DirectiveError) Error() string {
	return fmt.Sprintf("fast-forward must be greater than zero, it is: %d",
		e.Skip,
	)
}

// TerminalError reports a bounded fast-forward directive as the last
// expected line whose bound does not equal the number of remaining actual
// lines.
type TerminalError struct {
	Skip      int
	Remaining int
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal fast-forward(%d) error: fast-forward(%d) expected",
		e.Skip,
		e.Remaining,
	)
}

// StarveError reports that a bounded fast-forward directive consumed the
// rest of the actual lines while expected lines remain.
type StarveError struct {
	Remaining int
}

func (e *StarveError) Error() string {
	return fmt.Sprintf("%d more lines expected, actual lines is empty",
		e.Remaining,
	)
}

// SearchError reports that an unbounded fast-forward ran out of actual
// lines before its anchor, the expected line after the directive, found a
// match.
type SearchError struct {
	Anchor string
	Actual []string
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("no match for `%s` line fast-forwarding:\n%s",
		e.Anchor,
		strings.Join(e.Actual, "\n"),
	)
}

// LeftoverError reports actual lines that remain after the last expected
// line was consumed.
type LeftoverError struct {
	Remaining int
}

func (e *LeftoverError) Error() string {
	return fmt.Sprintf("more actual lines than expected: %d", e.Remaining)
}
