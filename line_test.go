package linest

import (
	"errors"
	"testing"
)

func Test_classify(t *testing.T) {
	check := func(t *testing.T, line string, ff, bounded bool, skip int) {
		t.Helper()
		kind, err := classify(line)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if kind.fastForward != ff || kind.bounded != bounded || kind.skip != skip {
			t.Errorf("'%s' classified as %+v", line, kind)
		}
	}

	t.Run("literal", func(t *testing.T) {
		check(t, "just a line", false, false, 0)
		check(t, ">> not closed", false, false, 0)
		check(t, "not opened >>", false, false, 0)
		check(t, ">>", false, false, 0)
		check(t, ">>>", false, false, 0)
		check(t, "", false, false, 0)
	})
	t.Run("unbounded", func(t *testing.T) {
		check(t, ">>>>", true, false, 0)
		check(t, ">> >>", true, false, 0)
		check(t, "  >>>>  ", true, false, 0)
		check(t, ">> stack trace >>", true, false, 0)
		check(t, ">>1x>>", true, false, 0)
	})
	t.Run("bounded", func(t *testing.T) {
		check(t, ">>1>>", true, true, 1)
		check(t, ">>42>>", true, true, 42)
		check(t, ">> 7 >>", true, true, 7)
		check(t, "\t>>3>>\t", true, true, 3)
	})
	t.Run("invalid", func(t *testing.T) {
		for _, line := range []string{">>0>>", ">>-1>>", ">> -42 >>"} {
			_, err := classify(line)
			var dErr *DirectiveError
			if !errors.As(err, &dErr) {
				t.Fatalf("'%s': no directive error, got %v", line, err)
			}
			if dErr.Skip > 0 {
				t.Errorf("'%s': positive skip %d in error", line, dErr.Skip)
			}
		}
	})
}

func Test_matches(t *testing.T) {
	check := func(t *testing.T, expected, actual string, want bool) {
		t.Helper()
		if got := matches(expected, actual); got != want {
			t.Errorf("matches('%s', '%s') = %t", expected, actual, got)
		}
	}

	t.Run("verbatim", func(t *testing.T) {
		check(t, "foo bar", "foo bar", true)
		check(t, "foo bar", "foo baz", false)
		check(t, "", "", true)
	})
	t.Run("pattern", func(t *testing.T) {
		check(t, "a.*", "abc", true)
		check(t, "a.*", "xyz", false)
		check(t, `\d{4}-\d{2}-\d{2}`, "2026-08-30", true)
	})
	t.Run("full match only", func(t *testing.T) {
		check(t, "bar", "foo bar baz", false)
		check(t, "foo.*baz", "foo bar baz", true)
	})
	t.Run("broken pattern is no match", func(t *testing.T) {
		check(t, "values: [(", "something else", false)
		// …but the verbatim comparison still works for such lines
		check(t, "values: [(", "values: [(", true)
	})
}
