/*
Package linest matches an ordered sequence of actual text lines against an
ordered sequence of expected lines. Expected lines can be literal text,
regular expressions, or fast-forward directives. This makes it possible to
check multi-line output against a template even when the output has
variable-length or non-deterministic regions such as timestamps, stack
traces or generated identifiers.

An expected line first has to match the actual line verbatim. If it does
not, the expected line is compiled as a regular expression and has to match
the complete actual line, not just a substring of it. Expected lines that do
not compile as a regular expression simply do not match this way, they are
not an error. So

	expected: INFO  .* server started
	actual:   INFO  [main] server started

matches, while arbitrary literal text with stray regexp metacharacters
still matches through the verbatim comparison.

# Fast-Forward Directives

An expected line whose trimmed text starts and ends with ">>" is a
fast-forward directive. The text between the markers selects one of two
skip modes:

	>>3>>   skip exactly 3 actual lines, no questions asked
	>>>>    skip any number of actual lines until the next
	>> >>   expected line matches; any non-integer text between
	        the markers means the same, so ">> stack trace >>"
	        can be used for documentation

A directive with a bound of zero or less is rejected as invalid. A
directive as the last expected line accepts any number of remaining actual
lines when unbounded, and exactly its bound many when bounded.

As an example, the expected lines

	first line
	>> swallow the stack trace >>
	last line

accept

	first line
	panic: oops
	  main.go:17
	  main.go:5
	last line

# Checking Output In Go Tests

Package linesting connects linest to Go's testing package. It reads the
expected lines from a file under testdata named after the running test and
reports mismatches through testing.T. It can also record a template file
from the output of a first run.
*/
package linest
