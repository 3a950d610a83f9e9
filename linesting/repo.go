// Package linesting supports the use of linest in your Go tests. Expected
// lines live in template files under testdata, named after the running
// test:
//
//	func TestStartup(t *testing.T) {
//		out := runServerStartup(t)
//		linesting.Fatal(t, "", strings.NewReader(out))
//	}
//
// reads testdata/TestStartup.lines, e.g.:
//
//	config loaded
//	listening on :\d+
//	>> startup chatter >>
//	ready
//
// A missing template can be recorded from the subject of a first run, see
// Record and RecordEnv.
package linesting

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/fractalqb/linest"
)

// When this environment variable is set to a regexp and the name of the
// current test matches, calls to Error or Fatal will record the subject as
// a new template file instead of comparing it. E.g.
//
//	LINESTING_RECORD=TestStartup go test .
const RecordEnv = "LINESTING_RECORD"

// GoTestdataDir is the name of Go's default directory for testdata (see go
// help test).
const GoTestdataDir = "testdata"

func Error(t *testing.T, hint string, subj io.Reader) error {
	return defaultConfig.Error(t, hint, subj)
}

func Fatal(t *testing.T, hint string, subj io.Reader) {
	defaultConfig.Fatal(t, hint, subj)
}

func Record(t *testing.T, hint string, subj io.Reader) {
	defaultConfig.Record(t, hint, subj)
}

// Repo maps test names to template files in Dir.
type Repo struct {
	Dir    string
	Suffix string
}

const (
	StdSuffix = ".lines"
	NoSuffix  = "\x00"
)

func (r Repo) Filename(t *testing.T, hint string) string {
	suffix := r.Suffix
	switch suffix {
	case "":
		suffix = StdSuffix
	case NoSuffix:
		suffix = ""
	}
	if hint == "" {
		return filepath.Join(r.Dir, t.Name()+suffix)
	}
	if suffix == "" || strings.HasSuffix(hint, suffix) {
		return filepath.Join(r.Dir, t.Name(), hint)
	}
	return filepath.Join(r.Dir, t.Name(), hint+suffix)
}

type Config struct {
	TemplateFileName func(t *testing.T, hint string) string
	// QuoteRecords escapes regexp metacharacters when recording templates.
	QuoteRecords    bool
	RecordOverwrite bool
}

var defaultConfig = Config{
	TemplateFileName: Repo{Dir: GoTestdataDir}.Filename,
	RecordOverwrite:  false,
}

func (cfg Config) Error(t *testing.T, hint string, subj io.Reader) error {
	if recordTest(t) {
		cfg.Record(t, hint, subj)
		return nil
	}
	err := cfg.compare(t, hint, subj)
	if err != nil {
		t.Error(err)
	}
	return err
}

func (cfg Config) Fatal(t *testing.T, hint string, subj io.Reader) {
	if recordTest(t) {
		cfg.Record(t, hint, subj)
	} else if err := cfg.compare(t, hint, subj); err != nil {
		t.Fatal(err)
	}
}

func recordTest(t *testing.T) bool {
	rec := os.Getenv(RecordEnv)
	if rec == "" {
		return false
	}
	r, err := regexp.Compile(rec)
	if err != nil {
		t.Logf("linesting: invalid regexp '%s' in %s, not recording: %s",
			rec, RecordEnv, err)
		return false
	}
	return r.MatchString(t.Name())
}

func (cfg Config) compare(t *testing.T, hint string, subj io.Reader) error {
	tmplfile := cfg.TemplateFileName(t, hint)
	tmpl, err := os.Open(tmplfile)
	if os.IsNotExist(err) {
		t.Logf("to record a template file run '%[1]s=%[2]s go test -run %[2]s'",
			RecordEnv,
			t.Name(),
		)
		return fmt.Errorf("template file %s does not exist", tmplfile)
	}
	if err != nil {
		return err
	}
	defer tmpl.Close()
	err = linest.MatchReaders(tmpl, subj)
	var sizeErr *linest.SizeError
	switch {
	case errors.As(err, &sizeErr):
		return fmt.Errorf("%s: %w\n%s", tmplfile, err, sizeErr.Diff())
	case err != nil:
		return fmt.Errorf("%s: %w", tmplfile, err)
	}
	return nil
}

func (cfg Config) Record(t *testing.T, hint string, subj io.Reader) {
	tmplfile := cfg.TemplateFileName(t, hint)
	if _, err := os.Stat(tmplfile); !os.IsNotExist(err) && !cfg.RecordOverwrite {
		t.Fatalf("record: template file '%s' already exists", tmplfile)
	}
	dir := filepath.Dir(tmplfile)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err = os.MkdirAll(dir, 0777); err != nil {
			t.Fatal(err)
		}
	}
	wr, err := os.Create(tmplfile)
	if err != nil {
		t.Fatal(err)
	}
	defer wr.Close()
	if err = (linest.Prepare{Quote: cfg.QuoteRecords}).Text(wr, subj); err != nil {
		t.Error(err)
	}
	t.Errorf("linesting template recorder wrote: %s", tmplfile)
}
