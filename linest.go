package linest

import (
	"bufio"
	"io"
	"strings"

	"git.fractalqb.de/fractalqb/icontainer/islist"
)

// Match compares the actual lines against the expected lines and returns
// nil when every expected line found its match and no actual line is left
// over. A non-nil result is one of the error types of this package and
// carries the facts of the mismatch.
//
// Expected lines are matched as described in the package documentation:
// verbatim first, then as a fully anchored regular expression. Fast-forward
// directives skip actual lines, either a fixed count or until the next
// expected line matches. Both slices are only read, never modified.
func Match(expected, actual []string) error {
	if len(expected) == len(actual) {
		// same backing array, no need to look at the lines
		if len(expected) == 0 || &expected[0] == &actual[0] {
			return nil
		}
		allOk := true
		for i := range expected {
			if !matches(expected[i], actual[i]) {
				allOk = false
				break
			}
		}
		if allOk {
			return nil
		}
	} else if len(expected) > len(actual) {
		return &SizeError{Expected: expected, Actual: actual}
	}
	return matchFastForward(expected, actual)
}

// MatchStrings splits both texts into lines and calls Match.
func MatchStrings(expected, actual string) error {
	return MatchReaders(strings.NewReader(expected), strings.NewReader(actual))
}

// MatchReaders reads both texts line by line and calls Match.
func MatchReaders(expected, actual io.Reader) error {
	exls, err := readLines(expected)
	if err != nil {
		return err
	}
	acls, err := readLines(actual)
	if err != nil {
		return err
	}
	return Match(exls, acls)
}

func readLines(rd io.Reader) (lines []string, err error) {
	scn := bufio.NewScanner(rd)
	for scn.Scan() {
		lines = append(lines, scn.Text())
	}
	return lines, scn.Err()
}

// qline is one pending line in a matching cursor.
type qline struct {
	text   string
	lsNext *qline
}

// ListNext to implement intrusive singly linked list
func (q *qline) ListNext() islist.Node { return q.lsNext }

// SetListNext to implement intrusive singly linked list
func (q *qline) SetListNext(n islist.Node) {
	if n == nil {
		q.lsNext = nil
	} else {
		q.lsNext = n.(*qline)
	}
}

func newCursor(lines []string) *islist.List {
	ls := islist.New()
	for i := range lines {
		ls.PushBack(&qline{text: lines[i]})
	}
	return ls
}

func front(ls *islist.List) string { return ls.Front().(*qline).text }

func pop(ls *islist.List) string {
	res := front(ls)
	ls.Drop(1)
	return res
}

// matchFastForward is the general matching loop over two FIFO cursors. Each
// round either shrinks the expected cursor, the actual cursor or both, so
// the loop always terminates.
func matchFastForward(expected, actual []string) error {
	exq := newCursor(expected)
	acq := newCursor(actual)
	for exq.Len() > 0 {
		exLine := pop(exq)

		if acq.Len() > 0 && matches(exLine, front(acq)) {
			acq.Drop(1)
			continue
		}

		kind, err := classify(exLine)
		if err != nil {
			return err
		}
		if !kind.fastForward {
			// An unmatched literal line advances only the expected
			// cursor. Cursor sizes can realign on a later directive,
			// so this is not an immediate failure.
			continue
		}

		if exq.Len() == 0 {
			// directive on the last expected line
			if !kind.bounded || kind.skip == acq.Len() {
				return nil
			}
			return &TerminalError{Skip: kind.skip, Remaining: acq.Len()}
		}
		anchor := front(exq)

		if kind.bounded {
			for i := 0; i < kind.skip && acq.Len() > 0; i++ {
				acq.Drop(1)
			}
			if acq.Len() == 0 {
				return &StarveError{Remaining: exq.Len()}
			}
			continue
		}

		for {
			if acq.Len() == 0 {
				return &SearchError{Anchor: anchor, Actual: actual}
			}
			if matches(anchor, pop(acq)) {
				break
			}
		}
	}
	if n := acq.Len(); n > 0 {
		return &LeftoverError{Remaining: n}
	}
	return nil
}
