package timeline

// Direction is the scan direction for edit navigation.
type Direction int

const (
	// Backward scans toward older messages.
	Backward Direction = iota
	// Forward scans toward newer messages.
	Forward
)

// Predicate reports whether a message is eligible for editing.
// Ownership, message type, and redaction checks live here.
type Predicate func(MessageRef) bool

// BuildSequence assembles the ordered message sequence for a room: the
// confirmed timeline followed by pending messages. Pending messages are
// excluded for thread anchors because they cannot be attributed to a
// thread yet.
func BuildSequence(room *Room, threadAnchor bool) []MessageRef {
	if room == nil {
		return nil
	}
	seq := room.Events()
	if !threadAnchor {
		seq = append(seq, room.PendingEvents()...)
	}
	return seq
}

// FindEditable scans the room sequence from the anchor in the given
// direction and returns the first message satisfying the predicate.
//
// All failure modes are soft: a nil store or predicate, an unknown room, or
// an anchor that is no longer part of the sequence all yield (zero, false).
// The sequence is rebuilt from the store on every call, so repeated calls
// against unchanged state return identical results.
func FindEditable(store Store, anchor MessageRef, dir Direction, editable Predicate) (MessageRef, bool) {
	if store == nil || editable == nil {
		return MessageRef{}, false
	}
	room, ok := store.Room(anchor.Room)
	if !ok {
		return MessageRef{}, false
	}

	seq := BuildSequence(room, anchor.InThread)
	idx := -1
	for i, msg := range seq {
		if msg.ID == anchor.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return MessageRef{}, false
	}

	step := 1
	if dir == Backward {
		step = -1
	}
	for i := idx + step; i >= 0 && i < len(seq); i += step {
		if editable(seq[i]) {
			return seq[i], true
		}
	}
	return MessageRef{}, false
}
