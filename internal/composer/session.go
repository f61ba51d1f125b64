package composer

import "github.com/mistweaver/comet/internal/timeline"

// EditSession exists only while the composer is editing an existing
// message; its absence means "compose new message" mode. The session is
// created by the start-edit flow and torn down on submit, cancel, or
// navigation to a different message. The router only reads it.
type EditSession struct {
	// Message is the message being edited.
	Message timeline.MessageRef
	// InitialContent is the editor content captured when editing began.
	InitialContent string
}

// Modified reports whether the editor content has diverged from the
// content captured at the start of the edit. Comparison is by value.
func (s *EditSession) Modified(current string) bool {
	return current != s.InitialContent
}
