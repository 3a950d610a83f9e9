package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fractalqb/linest"
)

func init() {
	compareCmd.Run = checkFiles
	compareCmd.Flags().StringVarP(&rootCmd.template, "template", "t", "",
		"Set the expected-lines template file")
	compareCmd.MarkFlagRequired("template")
	compareCmd.Flags().BoolVarP(&compareCmd.diff, "diff", "d", false,
		"Print a diff when more lines are expected than the input has")
	rootCmd.AddCommand(&compareCmd.Command)
}

var compareCmd = struct {
	cobra.Command
	diff bool
}{
	Command: cobra.Command{
		Use:   "compare",
		Short: "Compare input files to an expected-lines template",
	},
}

func checkFiles(cmd *cobra.Command, files []string) {
	ok := true
	if len(files) == 0 {
		ok = checkRd(rootCmd.template, "stdin", os.Stdin)
	}
	for _, f := range files {
		ok = checkFile(rootCmd.template, f) && ok
	}
	if !ok {
		os.Exit(1)
	}
}

func checkFile(template, name string) bool {
	rd, err := os.Open(name)
	if err != nil {
		log.Fatal(err)
	}
	defer rd.Close()
	return checkRd(template, name, rd)
}

func checkRd(template, name string, subj io.Reader) bool {
	tmpl, err := os.Open(template)
	if err != nil {
		log.Fatal(err)
	}
	defer tmpl.Close()
	if err = linest.MatchReaders(tmpl, subj); err != nil {
		log.Errorf("%s mismatch with %s: %s", name, template, err)
		var sizeErr *linest.SizeError
		if compareCmd.diff && errors.As(err, &sizeErr) {
			fmt.Println(sizeErr.Diff())
		}
		return false
	}
	log.Infof("%s matches template %s", name, template)
	return true
}
