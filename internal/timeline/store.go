package timeline

import "sync"

// Store resolves rooms by identifier. Implementations must return ok=false
// for unknown rooms rather than an error; callers treat a missing room as
// "nothing to navigate to".
type Store interface {
	Room(id RoomID) (*Room, bool)
}

// Room holds a room's confirmed timeline followed by its locally pending
// (not yet acknowledged) messages.
type Room struct {
	ID RoomID

	mu       sync.RWMutex
	timeline []MessageRef
	pending  []MessageRef
}

// Events returns a copy of the confirmed timeline, oldest first.
func (r *Room) Events() []MessageRef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]MessageRef, len(r.timeline))
	copy(out, r.timeline)
	return out
}

// PendingEvents returns a copy of the locally pending messages, oldest first.
func (r *Room) PendingEvents() []MessageRef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]MessageRef, len(r.pending))
	copy(out, r.pending)
	return out
}

// MemoryStore is an in-memory Store implementation used by the demo app
// and by tests.
type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[RoomID]*Room
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rooms: make(map[RoomID]*Room)}
}

// Room returns the room with the given id, if it exists.
func (s *MemoryStore) Room(id RoomID) (*Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	return room, ok
}

// CreateRoom creates (or returns the existing) room with the given id.
func (s *MemoryStore) CreateRoom(id RoomID) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	if room, ok := s.rooms[id]; ok {
		return room
	}
	room := &Room{ID: id}
	s.rooms[id] = room
	return room
}

// Append adds a confirmed message to the end of a room's timeline.
// Unknown rooms are created on first append.
func (s *MemoryStore) Append(id RoomID, msg MessageRef) {
	room := s.CreateRoom(id)
	room.mu.Lock()
	defer room.mu.Unlock()
	room.timeline = append(room.timeline, msg)
}

// AppendPending adds a locally pending message to a room.
func (s *MemoryStore) AppendPending(id RoomID, msg MessageRef) {
	room := s.CreateRoom(id)
	room.mu.Lock()
	defer room.mu.Unlock()
	room.pending = append(room.pending, msg)
}

// Acknowledge moves a pending message onto the confirmed timeline.
// It is a no-op if the room or message is unknown.
func (s *MemoryStore) Acknowledge(id RoomID, msgID MessageID) {
	room, ok := s.Room(id)
	if !ok {
		return
	}
	room.mu.Lock()
	defer room.mu.Unlock()
	for i, msg := range room.pending {
		if msg.ID == msgID {
			room.pending = append(room.pending[:i], room.pending[i+1:]...)
			room.timeline = append(room.timeline, msg)
			return
		}
	}
}

// UpdateBody replaces the body of a message in a room's timeline or pending
// set. It is a no-op if the room or message is unknown.
func (s *MemoryStore) UpdateBody(id RoomID, msgID MessageID, body string) {
	room, ok := s.Room(id)
	if !ok {
		return
	}
	room.mu.Lock()
	defer room.mu.Unlock()
	for i := range room.timeline {
		if room.timeline[i].ID == msgID {
			room.timeline[i].Body = body
			return
		}
	}
	for i := range room.pending {
		if room.pending[i].ID == msgID {
			room.pending[i].Body = body
			return
		}
	}
}

// Trim drops the oldest confirmed messages so the timeline holds at most
// limit entries. A non-positive limit is a no-op.
func (s *MemoryStore) Trim(id RoomID, limit int) {
	if limit <= 0 {
		return
	}
	room, ok := s.Room(id)
	if !ok {
		return
	}
	room.mu.Lock()
	defer room.mu.Unlock()
	if excess := len(room.timeline) - limit; excess > 0 {
		room.timeline = append([]MessageRef(nil), room.timeline[excess:]...)
	}
}

// Redact marks a message as redacted, removing it from edit navigation.
// It is a no-op if the room or message is unknown.
func (s *MemoryStore) Redact(id RoomID, msgID MessageID) {
	room, ok := s.Room(id)
	if !ok {
		return
	}
	room.mu.Lock()
	defer room.mu.Unlock()
	for i := range room.timeline {
		if room.timeline[i].ID == msgID {
			room.timeline[i].Redacted = true
			return
		}
	}
}
