// Package dispatch provides the synchronous event bus that carries edit
// navigation requests from the composer to the rest of the application.
package dispatch

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/mistweaver/comet/internal/timeline"
)

// Context names the rendering surface an edit request originates from.
type Context string

const (
	// ContextRoom is the main room timeline.
	ContextRoom Context = "room"
	// ContextThread is a thread panel.
	ContextThread Context = "thread"
)

// EditRequest asks the application to switch the composer to editing the
// target message. Fire-and-forget: emitters never learn the outcome.
type EditRequest struct {
	Target  timeline.MessageRef
	Context Context
}

// Handler receives emitted edit requests.
type Handler func(EditRequest)

// Bus delivers edit requests to subscribers synchronously, in subscription
// order. A panicking handler is isolated so the remaining handlers still run.
type Bus struct {
	mu       sync.Mutex
	handlers []Handler
	logger   *log.Logger
}

// NewBus creates a Bus that logs handler panics to the default logger.
func NewBus() *Bus {
	return &Bus{logger: log.Default()}
}

// SetLogger replaces the logger used for handler panic reports.
func (b *Bus) SetLogger(logger *log.Logger) {
	if logger == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logger = logger
}

// Subscribe registers a handler. Handlers cannot be removed; the bus lives
// as long as the composer that owns it.
func (b *Bus) Subscribe(h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Emit delivers the request to every subscriber before returning.
func (b *Bus) Emit(req EditRequest) {
	b.mu.Lock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	logger := b.logger
	b.mu.Unlock()

	for _, h := range handlers {
		b.invoke(h, req, logger)
	}
}

func (b *Bus) invoke(h Handler, req EditRequest, logger *log.Logger) {
	defer func() {
		if r := recover(); r != nil && logger != nil {
			logger.Error("edit request handler panicked",
				"panic", r,
				"target", req.Target.ID,
				"context", req.Context)
		}
	}()
	h(req)
}
