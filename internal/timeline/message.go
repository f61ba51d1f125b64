// Package timeline implements the in-memory room store and the editable-message
// locator used for edit navigation in the composer.
package timeline

import "github.com/google/uuid"

// RoomID identifies a room.
type RoomID string

// MessageID identifies a single message within a room.
type MessageID string

// NewMessageID returns a fresh unique message identifier.
func NewMessageID() MessageID {
	return MessageID(uuid.NewString())
}

// MessageRef carries enough of a message to locate it in a room's sequence
// and to decide whether it can be edited.
type MessageRef struct {
	ID       MessageID
	Room     RoomID
	Sender   string
	Body     string
	InThread bool
	Redacted bool
}
