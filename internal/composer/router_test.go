package composer

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mistweaver/comet/internal/dispatch"
	"github.com/mistweaver/comet/internal/timeline"
)

type fakeEditor struct {
	content string
	atStart bool
	atEnd   bool
}

func (e fakeEditor) Content() string    { return e.content }
func (e fakeEditor) CaretAtStart() bool { return e.atStart }
func (e fakeEditor) CaretAtEnd() bool   { return e.atEnd }

type fixedSettings bool

func (s fixedSettings) CtrlEnterToSend() bool { return bool(s) }

func fixedResolver(action Action) ActionResolver {
	return ResolverFunc(func(string) Action { return action })
}

func anyEditable(timeline.MessageRef) bool { return true }

func ownMessages(sender string) timeline.Predicate {
	return func(m timeline.MessageRef) bool {
		return m.Sender == sender && !m.Redacted
	}
}

func recordingBus() (*dispatch.Bus, *[]dispatch.EditRequest) {
	bus := dispatch.NewBus()
	var requests []dispatch.EditRequest
	bus.Subscribe(func(req dispatch.EditRequest) {
		requests = append(requests, req)
	})
	return bus, &requests
}

// seededStore builds a room holding alice's m5, m3, m1 in that (oldest
// first) order.
func seededStore() *timeline.MemoryStore {
	store := timeline.NewMemoryStore()
	for _, id := range []string{"m5", "m3", "m1"} {
		store.Append("!room", timeline.MessageRef{
			ID:     timeline.MessageID(id),
			Room:   "!room",
			Sender: "alice",
		})
	}
	return store
}

func sessionFor(id string, initial string) *EditSession {
	return &EditSession{
		Message:        timeline.MessageRef{ID: timeline.MessageID(id), Room: "!room", Sender: "alice"},
		InitialContent: initial,
	}
}

var someKey = tea.KeyPressMsg{Code: tea.KeyUp, Mod: tea.ModCtrl}

func TestRouterSend(t *testing.T) {
	sends := 0
	router := New(Config{
		Resolver: fixedResolver(ActionSend),
		Send:     func() { sends++ },
	})

	got := router.Process(someKey, fakeEditor{}, nil)

	if got != nil {
		t.Errorf("send must consume the event, got %v", got)
	}
	if sends != 1 {
		t.Errorf("send callback invoked %d times, want 1", sends)
	}
}

func TestRouterSendWithoutCallback(t *testing.T) {
	router := New(Config{Resolver: fixedResolver(ActionSend)})
	if got := router.Process(someKey, fakeEditor{}, nil); got != nil {
		t.Errorf("send without callback must still consume, got %v", got)
	}
}

func TestRouterEditNavigationGuards(t *testing.T) {
	tests := []struct {
		name    string
		action  Action
		editor  fakeEditor
		session *EditSession
	}{
		{"edit previous without session", ActionEditPrevious, fakeEditor{atStart: true}, nil},
		{"edit next without session", ActionEditNext, fakeEditor{atEnd: true}, nil},
		{"edit previous caret mid-content", ActionEditPrevious, fakeEditor{atStart: false}, sessionFor("m3", "")},
		{"edit next caret mid-content", ActionEditNext, fakeEditor{atEnd: false}, sessionFor("m3", "")},
		{"edit previous content modified", ActionEditPrevious, fakeEditor{content: "changed", atStart: true}, sessionFor("m3", "original")},
		{"edit next content modified", ActionEditNext, fakeEditor{content: "changed", atEnd: true}, sessionFor("m3", "original")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus, requests := recordingBus()
			sends := 0
			router := New(Config{
				Resolver: fixedResolver(tt.action),
				Store:    seededStore(),
				Bus:      bus,
				Editable: anyEditable,
				Send:     func() { sends++ },
			})

			got := router.Process(someKey, tt.editor, tt.session)

			if got != tea.Msg(someKey) {
				t.Errorf("guarded navigation must pass the event through, got %v", got)
			}
			if sends != 0 {
				t.Errorf("send callback invoked %d times, want 0", sends)
			}
			if len(*requests) != 0 {
				t.Errorf("dispatched %d requests, want 0", len(*requests))
			}
		})
	}
}

func TestRouterEditPrevious(t *testing.T) {
	bus, requests := recordingBus()
	router := New(Config{
		Resolver: fixedResolver(ActionEditPrevious),
		Store:    seededStore(),
		Bus:      bus,
		Editable: anyEditable,
	})

	got := router.Process(someKey, fakeEditor{content: "hi", atStart: true}, sessionFor("m3", "hi"))

	if got != nil {
		t.Errorf("successful navigation must consume the event, got %v", got)
	}
	if len(*requests) != 1 {
		t.Fatalf("dispatched %d requests, want 1", len(*requests))
	}
	req := (*requests)[0]
	if req.Target.ID != "m5" {
		t.Errorf("navigated to %q, want m5", req.Target.ID)
	}
	if req.Context != dispatch.ContextRoom {
		t.Errorf("context = %q, want room", req.Context)
	}
}

func TestRouterEditPreviousNotFound(t *testing.T) {
	bus, requests := recordingBus()
	router := New(Config{
		Resolver: fixedResolver(ActionEditPrevious),
		Store:    seededStore(),
		Bus:      bus,
		Editable: anyEditable,
	})

	// m5 is the oldest message; there is nothing before it.
	got := router.Process(someKey, fakeEditor{atStart: true}, sessionFor("m5", ""))

	if got != tea.Msg(someKey) {
		t.Errorf("no candidate must pass the event through, got %v", got)
	}
	if len(*requests) != 0 {
		t.Errorf("dispatched %d requests, want 0", len(*requests))
	}
}

func TestRouterEditNext(t *testing.T) {
	bus, requests := recordingBus()
	router := New(Config{
		Resolver: fixedResolver(ActionEditNext),
		Store:    seededStore(),
		Bus:      bus,
		Editable: anyEditable,
	})

	got := router.Process(someKey, fakeEditor{atEnd: true}, sessionFor("m3", ""))

	if got != nil {
		t.Errorf("successful navigation must consume the event, got %v", got)
	}
	if len(*requests) != 1 || (*requests)[0].Target.ID != "m1" {
		t.Fatalf("requests = %+v, want single navigation to m1", *requests)
	}
}

func TestRouterEditNextNotFound(t *testing.T) {
	bus, requests := recordingBus()
	router := New(Config{
		Resolver: fixedResolver(ActionEditNext),
		Store:    seededStore(),
		Bus:      bus,
		Editable: anyEditable,
	})

	// m1 is the newest message; there is nothing after it.
	got := router.Process(someKey, fakeEditor{atEnd: true}, sessionFor("m1", ""))

	if got != tea.Msg(someKey) {
		t.Errorf("no candidate must pass the event through, got %v", got)
	}
	if len(*requests) != 0 {
		t.Errorf("dispatched %d requests, want 0", len(*requests))
	}
}

func TestRouterEditableFilterApplies(t *testing.T) {
	store := timeline.NewMemoryStore()
	store.Append("!room", timeline.MessageRef{ID: "m1", Room: "!room", Sender: "alice"})
	store.Append("!room", timeline.MessageRef{ID: "m2", Room: "!room", Sender: "bob"})
	store.Append("!room", timeline.MessageRef{ID: "m3", Room: "!room", Sender: "alice"})

	bus, requests := recordingBus()
	router := New(Config{
		Resolver: fixedResolver(ActionEditPrevious),
		Store:    store,
		Bus:      bus,
		Editable: ownMessages("alice"),
	})

	router.Process(someKey, fakeEditor{atStart: true}, sessionFor("m3", ""))

	if len(*requests) != 1 || (*requests)[0].Target.ID != "m1" {
		t.Errorf("requests = %+v, want single navigation to m1 skipping bob's message", *requests)
	}
}

func TestRouterNavigationWithoutBus(t *testing.T) {
	router := New(Config{
		Resolver: fixedResolver(ActionEditPrevious),
		Store:    seededStore(),
		Editable: anyEditable,
	})

	got := router.Process(someKey, fakeEditor{atStart: true}, sessionFor("m3", ""))

	if got != tea.Msg(someKey) {
		t.Errorf("navigation without a bus must pass the event through, got %v", got)
	}
}

func TestRouterThreadContext(t *testing.T) {
	bus, requests := recordingBus()
	router := New(Config{
		Resolver: fixedResolver(ActionEditNext),
		Store:    seededStore(),
		Bus:      bus,
		Editable: anyEditable,
		Context:  dispatch.ContextThread,
	})

	router.Process(someKey, fakeEditor{atEnd: true}, sessionFor("m3", ""))

	if len(*requests) != 1 || (*requests)[0].Context != dispatch.ContextThread {
		t.Errorf("requests = %+v, want thread context", *requests)
	}
}

func TestRouterUnboundKey(t *testing.T) {
	sends := 0
	router := New(Config{
		Resolver: fixedResolver(ActionNone),
		Send:     func() { sends++ },
	})

	key := tea.KeyPressMsg{Code: 'a', Text: "a"}
	if got := router.Process(key, fakeEditor{}, nil); got != tea.Msg(key) {
		t.Errorf("unbound key must pass through, got %v", got)
	}
	if sends != 0 {
		t.Errorf("send callback invoked %d times, want 0", sends)
	}
}

func TestRouterWithoutResolver(t *testing.T) {
	router := New(Config{})
	if got := router.Process(someKey, fakeEditor{}, nil); got != tea.Msg(someKey) {
		t.Errorf("missing resolver must pass keys through, got %v", got)
	}
}

func TestRouterPasteNeverInspected(t *testing.T) {
	sends := 0
	router := New(Config{
		Resolver: fixedResolver(ActionSend),
		Send:     func() { sends++ },
	})

	paste := tea.PasteMsg{Content: "clipboard"}
	if got := router.Process(paste, fakeEditor{}, nil); got != tea.Msg(paste) {
		t.Errorf("paste must pass through untouched, got %v", got)
	}
	if sends != 0 {
		t.Error("paste event reached the keyboard path")
	}
}

func TestRouterGenericInput(t *testing.T) {
	tests := []struct {
		name        string
		ctrlEnter   bool
		input       InputMsg
		wantSends   int
		wantConsume bool
	}{
		{"paragraph break sends when ctrl+enter off", false, InputMsg{Type: InputInsertParagraph}, 1, true},
		{"send gesture ignored when ctrl+enter off", false, InputMsg{Type: InputSendMessage}, 0, false},
		{"paragraph break inserts newline when ctrl+enter on", true, InputMsg{Type: InputInsertParagraph}, 0, false},
		{"send gesture sends when ctrl+enter on", true, InputMsg{Type: InputSendMessage}, 1, true},
		{"unknown tag passes through", false, InputMsg{Type: InputType(42)}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sends := 0
			router := New(Config{
				Settings: fixedSettings(tt.ctrlEnter),
				Send:     func() { sends++ },
			})

			got := router.Process(tt.input, fakeEditor{}, nil)

			if tt.wantConsume && got != nil {
				t.Errorf("expected consumed event, got %v", got)
			}
			if !tt.wantConsume && got != tea.Msg(tt.input) {
				t.Errorf("expected pass-through, got %v", got)
			}
			if sends != tt.wantSends {
				t.Errorf("send callback invoked %d times, want %d", sends, tt.wantSends)
			}
		})
	}
}

func TestRouterOtherMessagesPassThrough(t *testing.T) {
	router := New(Config{Resolver: fixedResolver(ActionSend)})
	size := tea.WindowSizeMsg{Width: 80, Height: 24}
	if got := router.Process(size, fakeEditor{}, nil); got != tea.Msg(size) {
		t.Errorf("non-composer message must pass through, got %v", got)
	}
}

func TestEditSessionModified(t *testing.T) {
	sess := sessionFor("m1", "hello")
	if sess.Modified("hello") {
		t.Error("identical content reported as modified")
	}
	if !sess.Modified("hello!") {
		t.Error("changed content not reported as modified")
	}
	if !sess.Modified("") {
		t.Error("cleared content not reported as modified")
	}
}
