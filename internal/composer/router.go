package composer

import (
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/mistweaver/comet/internal/dispatch"
	"github.com/mistweaver/comet/internal/timeline"
)

// Action is a semantic action resolved from a key press.
type Action string

const (
	// ActionSend submits the composer content.
	ActionSend Action = "send"
	// ActionEditPrevious moves the edit session to the previous editable message.
	ActionEditPrevious Action = "edit_previous"
	// ActionEditNext moves the edit session to the next editable message.
	ActionEditNext Action = "edit_next"
	// ActionNone means the key is not bound to a composer action.
	ActionNone Action = ""
)

// ActionResolver maps a key string (as produced by tea.KeyPressMsg.String)
// to a semantic action. Unbound keys resolve to ActionNone.
type ActionResolver interface {
	Resolve(key string) Action
}

// ResolverFunc adapts a plain function to an ActionResolver.
type ResolverFunc func(key string) Action

// Resolve implements ActionResolver.
func (f ResolverFunc) Resolve(key string) Action { return f(key) }

// Settings exposes the one user setting the router cares about.
type Settings interface {
	// CtrlEnterToSend reports whether plain enter inserts a paragraph
	// break and the explicit send gesture submits, instead of the reverse.
	CtrlEnterToSend() bool
}

// Config carries the router's collaborators. All of them are optional;
// a missing collaborator degrades the affected path to pass-through.
type Config struct {
	// Resolver maps key presses to actions.
	Resolver ActionResolver
	// Store resolves rooms for edit navigation.
	Store timeline.Store
	// Bus receives edit navigation requests.
	Bus *dispatch.Bus
	// Settings supplies the ctrl+enter-to-send flag.
	Settings Settings
	// Editable decides which messages qualify for edit navigation.
	Editable timeline.Predicate
	// Context is the rendering surface this composer belongs to.
	Context dispatch.Context
	// Send submits the current composer content.
	Send func()
	// Logger defaults to log.Default when nil.
	Logger *log.Logger
}

// Router turns classified input events into submit, edit navigation, or
// pass-through decisions. It holds no state of its own between calls;
// everything it reads is owned by its collaborators.
type Router struct {
	resolver ActionResolver
	store    timeline.Store
	bus      *dispatch.Bus
	settings Settings
	editable timeline.Predicate
	context  dispatch.Context
	send     func()
	logger   *log.Logger
}

// New creates a Router from the given collaborators.
func New(cfg Config) *Router {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	context := cfg.Context
	if context == "" {
		context = dispatch.ContextRoom
	}
	return &Router{
		resolver: cfg.Resolver,
		store:    cfg.Store,
		bus:      cfg.Bus,
		settings: cfg.Settings,
		editable: cfg.Editable,
		context:  context,
		send:     cfg.Send,
		logger:   logger,
	}
}

// Process routes one event. It returns nil when the event was fully
// handled (suppress default behavior) and the original event when the
// editor should handle it natively. sess is nil outside edit mode.
func (r *Router) Process(msg tea.Msg, ed EditorHandle, sess *EditSession) tea.Msg {
	switch Classify(msg) {
	case CategoryPassThrough:
		return msg
	case CategoryKeyboard:
		return r.routeKeyboard(msg.(tea.KeyPressMsg), ed, sess)
	default:
		if input, ok := msg.(InputMsg); ok {
			return r.routeInput(input, msg)
		}
		return msg
	}
}

func (r *Router) routeKeyboard(key tea.KeyPressMsg, ed EditorHandle, sess *EditSession) tea.Msg {
	if r.resolver == nil {
		return key
	}

	switch r.resolver.Resolve(key.String()) {
	case ActionSend:
		r.fireSend()
		return nil

	case ActionEditPrevious:
		if sess == nil || ed == nil || !ed.CaretAtStart() || sess.Modified(ed.Content()) {
			return key
		}
		target, ok := timeline.FindEditable(r.store, sess.Message, timeline.Backward, r.editable)
		if !ok {
			// Nothing older to edit; let the editor handle the key.
			return key
		}
		return r.requestEdit(key, target)

	case ActionEditNext:
		if sess == nil || ed == nil || !ed.CaretAtEnd() || sess.Modified(ed.Content()) {
			return key
		}
		target, ok := timeline.FindEditable(r.store, sess.Message, timeline.Forward, r.editable)
		if !ok {
			// TODO: decide whether hitting the newest message should cancel
			// the edit session instead of doing nothing.
			return key
		}
		return r.requestEdit(key, target)
	}

	return key
}

// requestEdit emits the navigation request and consumes the event. Without
// a bus there is nowhere to navigate, so the key falls through instead.
func (r *Router) requestEdit(key tea.KeyPressMsg, target timeline.MessageRef) tea.Msg {
	if r.bus == nil {
		return key
	}
	r.bus.Emit(dispatch.EditRequest{Target: target, Context: r.context})
	r.logger.Debug("edit navigation", "target", target.ID, "context", r.context)
	return nil
}

func (r *Router) routeInput(input InputMsg, msg tea.Msg) tea.Msg {
	ctrlEnter := r.settings != nil && r.settings.CtrlEnterToSend()

	switch input.Type {
	case InputInsertParagraph:
		if ctrlEnter {
			// Plain enter inserts a literal newline in this mode.
			return msg
		}
		r.fireSend()
		return nil
	case InputSendMessage:
		if !ctrlEnter {
			// The plain-enter path already submits in this mode.
			return msg
		}
		r.fireSend()
		return nil
	}

	return msg
}

func (r *Router) fireSend() {
	if r.send != nil {
		r.send()
	}
}
