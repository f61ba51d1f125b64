// Package app implements the demo chat TUI that drives the composer:
// a single local room, a line editor, and edit navigation over your own
// messages with ctrl+up / ctrl+down.
package app

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mistweaver/comet/internal/composer"
	"github.com/mistweaver/comet/internal/config"
	"github.com/mistweaver/comet/internal/dispatch"
	"github.com/mistweaver/comet/internal/editor"
	"github.com/mistweaver/comet/internal/timeline"
)

// Options configures a new chat model.
type Options struct {
	// Registry resolves key presses to action names. Required.
	Registry *config.KeybindRegistry

	// Room is the room the composer posts to. Defaults to the configured
	// default room.
	Room timeline.RoomID

	// Sender is the local user's display name.
	Sender string

	// Logger defaults to log.Default when nil.
	Logger *log.Logger
}

// Model is the demo chat application. All state mutation happens inside
// Update; the dispatch bus delivers edit requests synchronously, so the
// subscription below runs within the same Update call that emitted it.
type Model struct {
	store    *timeline.MemoryStore
	bus      *dispatch.Bus
	router   *composer.Router
	registry *config.KeybindRegistry
	editor   *editor.Editor
	session  *composer.EditSession
	room     timeline.RoomID
	sender   string
	logger   *log.Logger

	width  int
	height int
}

// NewModel creates the chat model and wires the composer collaborators.
func NewModel(opts Options) *Model {
	registry := opts.Registry
	if registry == nil {
		registry = config.NewKeybindRegistry(nil)
	}
	room := opts.Room
	if room == "" {
		room = timeline.RoomID(config.DefaultRoomName)
	}
	sender := opts.Sender
	if sender == "" {
		sender = config.SenderName
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := &Model{
		store:    timeline.NewMemoryStore(),
		bus:      dispatch.NewBus(),
		registry: registry,
		editor:   editor.New(),
		room:     room,
		sender:   sender,
		logger:   logger,
	}
	m.store.CreateRoom(room)
	m.bus.SetLogger(logger)
	m.bus.Subscribe(m.startEdit)

	m.router = composer.New(composer.Config{
		Resolver: composer.ResolverFunc(func(key string) composer.Action {
			return composer.Action(registry.GetAction(key))
		}),
		Store:    m.store,
		Bus:      m.bus,
		Settings: config.RuntimeSettings{},
		Editable: m.editable,
		Context:  dispatch.ContextRoom,
		Send:     m.submit,
		Logger:   logger,
	})

	return m
}

// editable is the predicate for edit navigation: the local user's own
// non-redacted messages.
func (m *Model) editable(msg timeline.MessageRef) bool {
	return msg.Sender == m.sender && !msg.Redacted
}

// startEdit swaps the composer into editing the requested message.
func (m *Model) startEdit(req dispatch.EditRequest) {
	m.session = &composer.EditSession{
		Message:        req.Target,
		InitialContent: req.Target.Body,
	}
	m.editor.SetContent(req.Target.Body)
	m.logger.Debug("editing message", "id", req.Target.ID, "context", req.Context)
}

// cancelEdit leaves edit mode and clears the composer.
func (m *Model) cancelEdit() {
	m.session = nil
	m.editor.Clear()
}

// submit applies the composer content: updates the edited message, or
// appends a new one. Blank content is dropped.
func (m *Model) submit() {
	body := strings.TrimSpace(m.editor.Content())
	if body == "" {
		return
	}

	if m.session != nil {
		m.store.UpdateBody(m.room, m.session.Message.ID, body)
		m.session = nil
	} else {
		msg := timeline.MessageRef{
			ID:     timeline.NewMessageID(),
			Room:   m.room,
			Sender: m.sender,
			Body:   body,
		}
		// No server round trip in the local demo: the pending message is
		// acknowledged immediately.
		m.store.AppendPending(m.room, msg)
		m.store.Acknowledge(m.room, msg.ID)
		m.store.Trim(m.room, config.HistoryLimit)
	}
	m.editor.Clear()
}

// startEditLast enters edit mode on the newest editable message, the way
// "press up in an empty composer" works in most chat clients.
func (m *Model) startEditLast() {
	room, ok := m.store.Room(m.room)
	if !ok {
		return
	}
	events := room.Events()
	for i := len(events) - 1; i >= 0; i-- {
		if m.editable(events[i]) {
			m.startEdit(dispatch.EditRequest{Target: events[i], Context: dispatch.ContextRoom})
			return
		}
	}
}
