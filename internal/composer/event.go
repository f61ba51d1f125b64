// Package composer implements the input decision layer of the message
// composer: it classifies incoming events and routes them into message
// submission, edit navigation, or pass-through to the editor widget.
package composer

import tea "charm.land/bubbletea/v2"

// Category is the coarse classification of an incoming event.
type Category int

const (
	// CategoryPassThrough events are never inspected further; the editor
	// widget owns them entirely (bracketed paste and friends).
	CategoryPassThrough Category = iota
	// CategoryKeyboard events go through the key-binding resolver.
	CategoryKeyboard
	// CategoryInput covers semantic editing events emitted by the editor
	// itself, plus everything else.
	CategoryInput
)

// Classify determines the category of an event. Pure and total: every
// event lands in exactly one category.
func Classify(msg tea.Msg) Category {
	switch msg.(type) {
	case tea.PasteMsg, tea.PasteStartMsg, tea.PasteEndMsg:
		return CategoryPassThrough
	case tea.KeyPressMsg:
		return CategoryKeyboard
	default:
		return CategoryInput
	}
}

// InputType tags a semantic editing event.
type InputType int

const (
	// InputInsertParagraph means the user asked for a paragraph break
	// (plain enter inside the editor).
	InputInsertParagraph InputType = iota
	// InputSendMessage means the editor's own send affordance fired
	// (e.g. the editor recognized ctrl+enter itself).
	InputSendMessage
)

// InputMsg is a semantic editing event emitted by the editor widget.
// Tags other than the two recognized ones pass through untouched.
type InputMsg struct {
	Type InputType
}
