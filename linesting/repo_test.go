package linesting

import (
	"strings"
	"testing"
)

func TestFatal_Example(t *testing.T) {
	const subject = `Jun 29 20:58:11.112 INFO  [thread1] create localization dir:test1/test.xCuf/l10n
Jun 29 20:58:11.113 INFO  [thread2] load state from file:test1/test.xCuf/bcplus.json
Jun 29 20:58:11.125 DEBUG [thread1] clearing maps`
	// Used to create initial template: Record(t, "", strings.NewReader(subject))
	// Now here comes the test:
	Fatal(t, "", strings.NewReader(subject))
}

func TestCompare_mismatch(t *testing.T) {
	err := defaultConfig.compare(t, "", strings.NewReader("one\nsurprise"))
	if err == nil {
		t.Error("mismatch not detected")
	}
}

func TestCompare_noTemplate(t *testing.T) {
	err := defaultConfig.compare(t, "no-such-hint", strings.NewReader("x"))
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("missing template not reported: %v", err)
	}
}

func TestRepo_Filename(t *testing.T) {
	t.Run("default suffix", func(t *testing.T) {
		n := Repo{Dir: GoTestdataDir}.Filename(t, "")
		if n != "testdata/TestRepo_Filename/default_suffix.lines" {
			t.Errorf("wrong filename '%s'", n)
		}
	})
	t.Run("hint", func(t *testing.T) {
		n := Repo{Dir: GoTestdataDir}.Filename(t, "stderr")
		if n != "testdata/TestRepo_Filename/hint/stderr.lines" {
			t.Errorf("wrong filename '%s'", n)
		}
	})
	t.Run("no suffix", func(t *testing.T) {
		n := Repo{Dir: GoTestdataDir, Suffix: NoSuffix}.Filename(t, "")
		if n != "testdata/TestRepo_Filename/no_suffix" {
			t.Errorf("wrong filename '%s'", n)
		}
	})
}
