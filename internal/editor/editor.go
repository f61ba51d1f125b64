// Package editor implements the small line editor backing the demo chat
// composer. It exposes the content and caret predicates the router reads,
// plus the mutation operations the app drives from leftover key events.
package editor

import "strings"

// Editor is a rune-addressed text buffer with a caret. The zero value is
// an empty editor with the caret at position zero.
type Editor struct {
	runes []rune
	caret int
}

// New creates an empty editor.
func New() *Editor {
	return &Editor{}
}

// Content returns the current buffer contents.
func (e *Editor) Content() string {
	return string(e.runes)
}

// CaretAtStart reports whether the caret is at the absolute start.
func (e *Editor) CaretAtStart() bool {
	return e.caret == 0
}

// CaretAtEnd reports whether the caret is at the absolute end.
func (e *Editor) CaretAtEnd() bool {
	return e.caret == len(e.runes)
}

// Caret returns the caret position in runes.
func (e *Editor) Caret() int {
	return e.caret
}

// SetContent replaces the buffer and moves the caret to the end.
func (e *Editor) SetContent(s string) {
	e.runes = []rune(s)
	e.caret = len(e.runes)
}

// Clear empties the buffer and resets the caret.
func (e *Editor) Clear() {
	e.runes = e.runes[:0]
	e.caret = 0
}

// Insert writes s at the caret and advances past it.
func (e *Editor) Insert(s string) {
	if s == "" {
		return
	}
	ins := []rune(s)
	e.runes = append(e.runes[:e.caret], append(ins, e.runes[e.caret:]...)...)
	e.caret += len(ins)
}

// InsertNewline inserts a paragraph break at the caret.
func (e *Editor) InsertNewline() {
	e.Insert("\n")
}

// Backspace deletes the rune before the caret.
func (e *Editor) Backspace() {
	if e.caret == 0 {
		return
	}
	e.runes = append(e.runes[:e.caret-1], e.runes[e.caret:]...)
	e.caret--
}

// MoveLeft moves the caret one rune left.
func (e *Editor) MoveLeft() {
	if e.caret > 0 {
		e.caret--
	}
}

// MoveRight moves the caret one rune right.
func (e *Editor) MoveRight() {
	if e.caret < len(e.runes) {
		e.caret++
	}
}

// MoveStart moves the caret to the absolute start.
func (e *Editor) MoveStart() {
	e.caret = 0
}

// MoveEnd moves the caret to the absolute end.
func (e *Editor) MoveEnd() {
	e.caret = len(e.runes)
}

// Blank reports whether the buffer holds only whitespace.
func (e *Editor) Blank() bool {
	return strings.TrimSpace(string(e.runes)) == ""
}
