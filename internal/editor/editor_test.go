package editor

import "testing"

func TestEditorInsertAndCaret(t *testing.T) {
	e := New()
	if !e.CaretAtStart() || !e.CaretAtEnd() {
		t.Error("empty editor caret must be at both extremes")
	}

	e.Insert("hello")
	if e.Content() != "hello" {
		t.Errorf("content = %q, want hello", e.Content())
	}
	if !e.CaretAtEnd() || e.CaretAtStart() {
		t.Error("caret should sit at end after insert")
	}

	e.MoveStart()
	e.Insert("say ")
	if e.Content() != "say hello" {
		t.Errorf("content = %q, want %q", e.Content(), "say hello")
	}
	if e.Caret() != 4 {
		t.Errorf("caret = %d, want 4", e.Caret())
	}
}

func TestEditorBackspace(t *testing.T) {
	e := New()
	e.Insert("héllo")
	e.Backspace()
	e.Backspace()
	if e.Content() != "hél" {
		t.Errorf("content = %q, want %q", e.Content(), "hél")
	}

	e.MoveStart()
	e.Backspace() // no-op at start
	if e.Content() != "hél" {
		t.Errorf("backspace at start mutated buffer: %q", e.Content())
	}
}

func TestEditorMovement(t *testing.T) {
	e := New()
	e.Insert("ab")

	e.MoveLeft()
	if e.Caret() != 1 {
		t.Errorf("caret = %d, want 1", e.Caret())
	}
	e.MoveLeft()
	e.MoveLeft() // clamped at start
	if !e.CaretAtStart() {
		t.Error("caret should clamp at start")
	}
	e.MoveRight()
	e.MoveRight()
	e.MoveRight() // clamped at end
	if !e.CaretAtEnd() {
		t.Error("caret should clamp at end")
	}
}

func TestEditorSetContentAndClear(t *testing.T) {
	e := New()
	e.SetContent("existing message")
	if !e.CaretAtEnd() {
		t.Error("SetContent should place caret at end")
	}

	e.Clear()
	if e.Content() != "" || !e.CaretAtStart() {
		t.Errorf("clear left content %q caret %d", e.Content(), e.Caret())
	}
}

func TestEditorBlank(t *testing.T) {
	e := New()
	if !e.Blank() {
		t.Error("empty editor should be blank")
	}
	e.Insert("  \n ")
	if !e.Blank() {
		t.Error("whitespace-only editor should be blank")
	}
	e.Insert("x")
	if e.Blank() {
		t.Error("editor with content reported blank")
	}
}

func TestEditorNewlineInsertion(t *testing.T) {
	e := New()
	e.Insert("line one")
	e.InsertNewline()
	e.Insert("line two")
	if e.Content() != "line one\nline two" {
		t.Errorf("content = %q", e.Content())
	}
}
