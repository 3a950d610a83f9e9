package linest

import (
	"bufio"
	"bytes"
	"io"
	"regexp"
)

// Prepare writes an expected-lines template from observed output. The
// template is the output itself, line separators preserved, so a first
// recorded run matches itself and can then be edited to add patterns and
// fast-forward directives.
type Prepare struct {
	// Quote escapes regexp metacharacters in every line. Without it a
	// line like "total: 3 (+1)" would also be tried as a pattern when
	// the verbatim comparison fails.
	Quote bool
}

func (p Prepare) Text(template io.Writer, subj io.Reader) (err error) {
	var sep lineSepScanner
	scn := bufio.NewScanner(subj)
	scn.Split(sep.ScanLines)
	for scn.Scan() {
		line := scn.Bytes()
		if p.Quote {
			line = []byte(regexp.QuoteMeta(string(line)))
		}
		if _, err = template.Write(line); err != nil {
			return err
		}
		if _, err = template.Write(sep); err != nil {
			return err
		}
	}
	return scn.Err()
}

type lineSepScanner []byte

func (lsc *lineSepScanner) ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// modificated version of bufio.Scan
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		res, cr := dropCR(data[0:i])
		*lsc = data[i-cr : i+1]
		return i + 1, res, nil
	}
	if atEOF {
		res, cr := dropCR(data)
		*lsc = data[len(data)-cr:]
		return len(data), res, nil
	}
	return 0, nil, nil
}

func dropCR(data []byte) ([]byte, int) {
	// modificated version of bufio.dropCR
	if len(data) > 0 && data[len(data)-1] == '\r' {
		return data[0 : len(data)-1], 1
	}
	return data, 0
}
