package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fractalqb/linest"
	"github.com/fractalqb/linest/linesting"
)

func init() {
	prepareCmd.Run = prepareFiles
	prepareCmd.Flags().StringVarP(
		&prepareCmd.suffix,
		"suffix", "s",
		prepareCmd.suffix,
		"Set file suffix for created template files")
	prepareCmd.Flags().BoolVarP(
		&prepareCmd.quote,
		"quote", "q",
		prepareCmd.quote,
		"Escape regexp metacharacters in template lines")
	prepareCmd.Flags().BoolVarP(
		&prepareCmd.force,
		"force", "f",
		prepareCmd.force,
		"Force to overwrite existing template files")
	rootCmd.AddCommand(&prepareCmd.Command)
}

var prepareCmd = struct {
	cobra.Command
	suffix string
	quote  bool
	force  bool
}{
	Command: cobra.Command{
		Use:   "prepare",
		Short: "Prepare an expected-lines template from sample input",
	},
	suffix: linesting.StdSuffix,
}

func prepareFiles(cmd *cobra.Command, files []string) {
	prep := linest.Prepare{Quote: prepareCmd.quote}
	if len(files) == 0 {
		if err := prep.Text(os.Stdout, os.Stdin); err != nil {
			log.Fatal(err)
		}
		return
	}
	for _, f := range files {
		prepareFile(prep, f)
	}
}

func prepareFile(prep linest.Prepare, name string) {
	tmplfile := name + prepareCmd.suffix
	if _, err := os.Stat(tmplfile); !os.IsNotExist(err) && !prepareCmd.force {
		log.Fatalf("%s already exists", tmplfile)
	}
	rd, err := os.Open(name)
	if err != nil {
		log.Fatal(err)
	}
	defer rd.Close()
	wr, err := os.Create(tmplfile)
	if err != nil {
		log.Fatal(err)
	}
	defer wr.Close()
	if err = prep.Text(wr, rd); err != nil {
		log.Fatal(err)
	}
	log.Infof("wrote %s", tmplfile)
}
