// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package parsec

import "strings"

// Complete succeeds only when p consumes all of its input.
// Otherwise it fails with p's remainder as the context.
func Complete[T any](p Parser[T]) Parser[T] {
	return Func[T](func(input string) Result[T] {
		r := p.Parse(input)
		if r.OK && r.Rest != "" {
			return Failure[T](r.Rest)
		}
		return r
	})
}

// ForLines runs p against every line of text and calls yield with the
// 1-based line number, the line (without its line ending), and the result.
// Both LF and CR+LF line endings are accepted. A final empty line after
// a trailing newline is not reported.
func ForLines[T any](p Parser[T], text string, yield func(no int, line string, r Result[T])) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return
	}
	for no, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		yield(no+1, line, p.Parse(line))
	}
}

// Lines returns the values of the lines of text that p parses.
// Lines that fail to parse are skipped.
func Lines[T any](p Parser[T], text string) []T {
	var values []T
	ForLines(p, text, func(_ int, _ string, r Result[T]) {
		if r.OK {
			values = append(values, r.Value)
		}
	})
	return values
}
