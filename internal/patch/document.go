// Package patch edits text files as ordered slices of lines.
//
// A Document is parsed once, mutated in memory by Patches, and serialized
// back with the original trailing-newline state preserved.
package patch

import (
	"strings"
)

// Document is a text file split into lines without their terminators.
type Document struct {
	Lines []string

	// TrailingNewline records whether the source ended with a line terminator.
	TrailingNewline bool

	// Newline is the terminator used between lines, taken from the first
	// line of the source. Empty means "\n".
	Newline string
}

// Parse splits content into a Document. A file whose first line ends in
// "\r\n" is treated as CRLF throughout.
func Parse(content []byte) *Document {
	s := string(content)
	if s == "" {
		return &Document{}
	}

	doc := &Document{Newline: "\n"}
	if i := strings.IndexByte(s, '\n'); i > 0 && s[i-1] == '\r' {
		doc.Newline = "\r\n"
	}
	doc.TrailingNewline = strings.HasSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\n")
	doc.Lines = strings.Split(s, "\n")
	if doc.Newline == "\r\n" {
		for i, line := range doc.Lines {
			doc.Lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return doc
}

// Bytes serializes the document.
func (d *Document) Bytes() []byte {
	if len(d.Lines) == 0 {
		return nil
	}
	nl := d.Newline
	if nl == "" {
		nl = "\n"
	}
	s := strings.Join(d.Lines, nl)
	if d.TrailingNewline {
		s += nl
	}
	return []byte(s)
}

// Index returns the first line index at or after from matching m, or -1.
func (d *Document) Index(m Matcher, from int) int {
	for i := max(from, 0); i < len(d.Lines); i++ {
		if m(d.Lines[i]) {
			return i
		}
	}
	return -1
}

// LastIndex returns the last line index matching m, or -1.
func (d *Document) LastIndex(m Matcher) int {
	for i := len(d.Lines) - 1; i >= 0; i-- {
		if m(d.Lines[i]) {
			return i
		}
	}
	return -1
}

// Any reports whether some line matches m.
func (d *Document) Any(m Matcher) bool {
	return d.Index(m, 0) >= 0
}

// InsertAt splices lines in before index i. i == len(Lines) appends.
func (d *Document) InsertAt(i int, lines ...string) {
	if i < 0 || i > len(d.Lines) {
		panic("patch: insert index out of range")
	}
	if len(d.Lines) == 0 {
		d.TrailingNewline = true
	}
	out := make([]string, 0, len(d.Lines)+len(lines))
	out = append(out, d.Lines[:i]...)
	out = append(out, lines...)
	out = append(out, d.Lines[i:]...)
	d.Lines = out
}

// FindBlock returns the index of the first exact occurrence of block as a
// run of consecutive lines, or -1.
func (d *Document) FindBlock(block []string) int {
	if len(block) == 0 {
		return -1
	}
	for i := 0; i+len(block) <= len(d.Lines); i++ {
		match := true
		for j, line := range block {
			if d.Lines[i+j] != line {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// RemoveBlock removes the first exact occurrence of block and reports
// whether one was found.
func (d *Document) RemoveBlock(block []string) bool {
	i := d.FindBlock(block)
	if i < 0 {
		return false
	}
	d.Lines = append(d.Lines[:i:i], d.Lines[i+len(block):]...)
	return true
}

// Substitute replaces every line equal to old with the lines of repl and
// returns the number of replacements.
func (d *Document) Substitute(old string, repl []string) int {
	n := 0
	match := Exact(old)
	out := make([]string, 0, len(d.Lines))
	for _, line := range d.Lines {
		if match(line) {
			out = append(out, repl...)
			n++
			continue
		}
		out = append(out, line)
	}
	d.Lines = out
	return n
}
