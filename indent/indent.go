// Package indent provides the line-oriented writer that documentation
// renderers emit through.
package indent

import (
	"strings"
	"unicode/utf8"
)

// Writer accumulates output text. It tracks whether the cursor sits at the
// start of a line, applies indentation prefixes lazily at the start of each
// non-empty line, and reports the last character written so callers can make
// spacing decisions.
//
// A Writer is owned by a single rendering call and is not safe for
// concurrent use.
type Writer struct {
	sb       strings.Builder
	prefixes []string
	atStart  bool
	last     rune // zero until the first character is written
	prev     rune // character before last, zero until two are written
}

// NewWriter returns a Writer seeded with initial, written verbatim.
func NewWriter(initial string) *Writer {
	w := &Writer{atStart: true}
	w.Write(initial)
	return w
}

// Write appends s, expanding embedded newlines and applying the current
// indentation at the start of each non-empty line.
func (w *Writer) Write(s string) {
	for s != "" {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			w.writeSegment(s)
			return
		}
		w.writeSegment(s[:i])
		w.newLine()
		s = s[i+1:]
	}
}

// WriteLine appends s followed by a newline. An empty s emits a bare
// newline.
func (w *Writer) WriteLine(s string) {
	w.Write(s)
	w.newLine()
}

// EnsureNewLine moves the cursor to the start of a new line unless it is
// already there. At the very start of the document it does nothing.
func (w *Writer) EnsureNewLine() {
	if w.last != 0 && w.last != '\n' {
		w.newLine()
	}
}

// EnsureSkippedLine guarantees a blank line separates the cursor from the
// previous content. At the very start of the document it does nothing.
func (w *Writer) EnsureSkippedLine() {
	if w.last == 0 {
		return
	}
	w.EnsureNewLine()
	if w.prev == '\n' || w.prev == 0 {
		return
	}
	w.newLine()
}

// LastChar returns the last character written, or the zero rune when nothing
// has been written yet.
func (w *Writer) LastChar() rune {
	return w.last
}

// IncreaseIndent pushes prefix onto the indentation stack. It takes effect
// at the start of the next non-empty line.
func (w *Writer) IncreaseIndent(prefix string) {
	w.prefixes = append(w.prefixes, prefix)
}

// DecreaseIndent pops the most recent indentation prefix.
func (w *Writer) DecreaseIndent() {
	if len(w.prefixes) > 0 {
		w.prefixes = w.prefixes[:len(w.prefixes)-1]
	}
}

// String returns everything written so far.
func (w *Writer) String() string {
	return w.sb.String()
}

func (w *Writer) writeSegment(s string) {
	if s == "" {
		return
	}
	if w.atStart {
		for _, p := range w.prefixes {
			w.sb.WriteString(p)
		}
	}
	w.sb.WriteString(s)
	w.atStart = false
	w.record(s)
}

func (w *Writer) newLine() {
	w.sb.WriteByte('\n')
	w.atStart = true
	w.record("\n")
}

// record updates the last/prev character trackers from a written chunk.
func (w *Writer) record(s string) {
	last, size := utf8.DecodeLastRuneInString(s)
	if size == 0 {
		return
	}
	if prev, psize := utf8.DecodeLastRuneInString(s[:len(s)-size]); psize > 0 {
		w.prev = prev
	} else {
		w.prev = w.last
	}
	w.last = last
}
