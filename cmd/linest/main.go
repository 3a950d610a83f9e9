// A command line tool to match line sequences against templates
package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var rootCmd = struct {
	cobra.Command
	template string
}{
	Command: cobra.Command{
		Use:   "linest",
		Short: "Match text against expected-line templates",
		Long: `Match text against expected-line templates

A template is a text file with one expected line per line. Expected lines
match actual lines verbatim or as a fully anchored regular expression.
Fast-forward directives skip actual lines:

   >>N>>  skip exactly N actual lines
   >>>>   skip actual lines until the next expected line matches,
          any non-integer text between the markers does the same
`,
	},
}

func main() {
	log.SetReportTimestamp(false)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
