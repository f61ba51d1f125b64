// Package comet provides the composer input router for embedding in
// Bubble Tea chat applications.
//
// The router classifies incoming events and decides between message
// submission, edit navigation, and pass-through. It owns no state: the
// editor, the edit session, the room store, and the settings all belong
// to the caller and are injected at construction.
//
// # Basic Usage
//
// Create a router with the collaborators your app owns:
//
//	store := comet.NewStore()
//	bus := comet.NewBus()
//	router := comet.New(
//		comet.WithStore(store),
//		comet.WithBus(bus),
//		comet.WithSend(func() { /* submit the draft */ }),
//		comet.WithResolver(comet.ResolverFunc(myResolver)),
//	)
//
// Then route events from your Update function:
//
//	if router.Process(msg, editorHandle, session) == nil {
//		return m, nil // consumed
//	}
//	// let the editor handle msg
//
// Subscribe to the bus to learn when the composer should switch to
// editing a different message:
//
//	bus.Subscribe(func(req comet.EditRequest) {
//		// swap the edit session to req.Target
//	})
package comet

import (
	"github.com/charmbracelet/log"

	"github.com/mistweaver/comet/internal/composer"
	"github.com/mistweaver/comet/internal/dispatch"
	"github.com/mistweaver/comet/internal/timeline"
)

// Router routes composer input events. See composer.Router.
type Router = composer.Router

// EditorHandle is the read-only editor view the router needs.
type EditorHandle = composer.EditorHandle

// EditSession is the state held while editing an existing message.
type EditSession = composer.EditSession

// Action is a semantic action resolved from a key press.
type Action = composer.Action

// Composer actions.
const (
	ActionSend         = composer.ActionSend
	ActionEditPrevious = composer.ActionEditPrevious
	ActionEditNext     = composer.ActionEditNext
	ActionNone         = composer.ActionNone
)

// ActionResolver maps key strings to actions.
type ActionResolver = composer.ActionResolver

// ResolverFunc adapts a plain function to an ActionResolver.
type ResolverFunc = composer.ResolverFunc

// Settings exposes the ctrl+enter-to-send flag to the router.
type Settings = composer.Settings

// InputMsg is a semantic editing event emitted by the editor widget.
type InputMsg = composer.InputMsg

// Input event tags.
const (
	InputInsertParagraph = composer.InputInsertParagraph
	InputSendMessage     = composer.InputSendMessage
)

// MessageRef identifies a message for edit navigation.
type MessageRef = timeline.MessageRef

// MessageID identifies a single message.
type MessageID = timeline.MessageID

// RoomID identifies a room.
type RoomID = timeline.RoomID

// Store resolves rooms for edit navigation.
type Store = timeline.Store

// MemoryStore is the bundled in-memory Store implementation.
type MemoryStore = timeline.MemoryStore

// Predicate reports whether a message is eligible for editing.
type Predicate = timeline.Predicate

// Bus carries edit navigation requests to subscribers.
type Bus = dispatch.Bus

// EditRequest asks the application to edit the target message.
type EditRequest = dispatch.EditRequest

// Context names the rendering surface a composer belongs to.
type Context = dispatch.Context

// Rendering contexts.
const (
	ContextRoom   = dispatch.ContextRoom
	ContextThread = dispatch.ContextThread
)

// NewStore creates an empty in-memory room store.
func NewStore() *MemoryStore { return timeline.NewMemoryStore() }

// NewBus creates an edit-request bus.
func NewBus() *Bus { return dispatch.NewBus() }

// NewMessageID returns a fresh unique message identifier.
func NewMessageID() MessageID { return timeline.NewMessageID() }

// Options configures a Router.
type Options struct {
	// Resolver maps key presses to composer actions.
	Resolver ActionResolver

	// Store resolves rooms for edit navigation.
	Store Store

	// Bus receives edit navigation requests.
	Bus *Bus

	// Settings supplies the ctrl+enter-to-send flag.
	Settings Settings

	// Editable decides which messages qualify for edit navigation.
	Editable Predicate

	// Context is the rendering surface this composer belongs to.
	// Defaults to ContextRoom.
	Context Context

	// Send submits the current composer content.
	Send func()

	// Logger defaults to log.Default when nil.
	Logger *log.Logger
}

// Option is a functional option for configuring the router.
type Option func(*Options)

// WithResolver sets the key-binding resolver.
func WithResolver(r ActionResolver) Option {
	return func(o *Options) { o.Resolver = r }
}

// WithStore sets the room store used for edit navigation.
func WithStore(s Store) Option {
	return func(o *Options) { o.Store = s }
}

// WithBus sets the bus edit requests are emitted on.
func WithBus(b *Bus) Option {
	return func(o *Options) { o.Bus = b }
}

// WithSettings sets the settings source.
func WithSettings(s Settings) Option {
	return func(o *Options) { o.Settings = s }
}

// WithEditable sets the editability predicate.
func WithEditable(p Predicate) Option {
	return func(o *Options) { o.Editable = p }
}

// WithContext sets the rendering context attached to edit requests.
func WithContext(c Context) Option {
	return func(o *Options) { o.Context = c }
}

// WithSend sets the submit callback.
func WithSend(send func()) Option {
	return func(o *Options) { o.Send = send }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// New creates a router with the given options.
// This is the main entry point for using comet as a library.
func New(opts ...Option) *Router {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	return composer.New(composer.Config{
		Resolver: options.Resolver,
		Store:    options.Store,
		Bus:      options.Bus,
		Settings: options.Settings,
		Editable: options.Editable,
		Context:  options.Context,
		Send:     options.Send,
		Logger:   options.Logger,
	})
}
