// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package diag reports input lines that a parser rejected.
package diag

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/mdhender/aoc2020/parsec"
)

// Span represents a range in the source: [Start, End).
type Span struct {
	// Byte offsets into the original input.
	// End is exclusive: input[Start:End] is the span's text.
	Start int
	End   int

	// 1-based line and column of the start of the span.
	// Column counts runes, not bytes.
	Line   int
	Column int
}

// Text is a helper to return the original text of the span.
func (s Span) Text(input string) string {
	return input[s.Start:s.End]
}

// Diagnostic is an error or warning with a span in the original source.
type Diagnostic struct {
	Severity slog.Level // Error, Warning, Info
	Message  string     // "line skipped"
	Span     Span       // where in the file it occurred
	Notes    []string   // optional additional help messages
}

// Skipped returns a warning for every non-blank line of text that p
// rejects. The span starts where the failure context starts and runs
// to the end of the line.
func Skipped[T any](p parsec.Parser[T], text string) []Diagnostic {
	// byte offset of the start of each line
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	var diags []Diagnostic
	parsec.ForLines(p, text, func(no int, line string, r parsec.Result[T]) {
		if r.OK || strings.TrimSpace(line) == "" {
			return
		}
		offset := parsec.Consumed(line, r.Rest)
		start := starts[no-1]
		d := Diagnostic{
			Severity: slog.LevelWarn,
			Message:  "line skipped",
			Span: Span{
				Start:  start + offset,
				End:    start + len(line),
				Line:   no,
				Column: utf8.RuneCountInString(line[:offset]) + 1,
			},
		}
		if r.Rest == "" {
			d.Notes = append(d.Notes, "unexpected end of line")
		} else {
			d.Notes = append(d.Notes, fmt.Sprintf("unexpected %q", firstWord(r.Rest)))
		}
		diags = append(diags, d)
	})
	return diags
}

func firstWord(s string) string {
	if i := strings.IndexAny(s, " \t"); i > 0 {
		return s[:i]
	}
	return s
}

// PrintDiagnostic writes the diagnostic in the style
//
//	file:line:column: severity: message
//	    the source line
//	        ^
//
// followed by any notes.
func PrintDiagnostic(w io.Writer, d Diagnostic, filename string, src string) {
	span := d.Span
	_, _ = fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
		filename, span.Line, span.Column,
		strings.ToLower(d.Severity.String()), d.Message)

	line := findLine(src, span.Start)
	_, _ = fmt.Fprintf(w, "    %s\n", line)

	// tabs are copied so the caret lines up with the source line
	var pad strings.Builder
	for i, r := range []rune(line) {
		if i >= span.Column-1 {
			break
		}
		if r == '\t' {
			pad.WriteRune('\t')
		} else {
			pad.WriteRune(' ')
		}
	}
	_, _ = fmt.Fprintf(w, "    %s^\n", pad.String())

	for _, note := range d.Notes {
		_, _ = fmt.Fprintf(w, "    note: %s\n", note)
	}
}

// findLine returns the line containing the byte at offset, without its
// line ending. An offset at the end of a line finds that line.
func findLine(src string, offset int) string {
	if offset > len(src) {
		return ""
	}
	lineStart := strings.LastIndexByte(src[:offset], '\n') + 1
	line := src[lineStart:]
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSuffix(line, "\r")
}
