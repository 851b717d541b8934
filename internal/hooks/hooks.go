// Package hooks maps event names to prioritized handlers.
package hooks

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Event names dispatched by the service.
const (
	EventActivate         = "activate"
	EventDeactivate       = "deactivate"
	EventUninstall        = "uninstall"
	EventAdminNotices     = "admin_notices"
	EventSaveForm         = "save_form"
	EventSyncDomains      = "sync_disposable_domains"
	EventMessages         = "messages"
	EventValidateEmail    = "validate_email"
	EventValidateEmailReq = "validate_email*" // required email fields
)

const (
	// DefaultPriority is used by handlers without ordering needs.
	DefaultPriority = 10
	// ValidateEmailPriority runs the disposable check after the host's own email checks.
	ValidateEmailPriority = 99
)

// Event is passed to every handler of one dispatch.
type Event struct {
	Name    string
	Payload any
}

// Handler reacts to an event.
type Handler interface {
	Handle(ctx context.Context, e *Event) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, e *Event) error

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, e *Event) error {
	return f(ctx, e)
}

type entry struct {
	handler  Handler
	priority int
}

// Registry holds the handlers of every event ordered by ascending priority.
// Handlers with equal priority run in subscription order.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string][]entry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string][]entry),
	}
}

// Subscribe adds handler to event.
func (r *Registry) Subscribe(event string, priority int, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.handlers[event]

	pos := len(entries)
	for i, e := range entries {
		if e.priority > priority {
			pos = i
			break
		}
	}

	entries = append(entries, entry{})
	copy(entries[pos+1:], entries[pos:])
	entries[pos] = entry{handler: handler, priority: priority}

	r.handlers[event] = entries

	log.Trace().Str("event", event).Int("priority", priority).Msg("handler subscribed")
}

// Has reports whether event has at least one handler.
func (r *Registry) Has(event string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.handlers[event]) > 0
}

// Dispatch runs the handlers of event with payload and stops at the first error.
// An event without handlers is not an error.
func (r *Registry) Dispatch(ctx context.Context, event string, payload any) error {
	r.mu.RLock()
	entries := make([]entry, len(r.handlers[event]))
	copy(entries, r.handlers[event])
	r.mu.RUnlock()

	e := &Event{Name: event, Payload: payload}

	for _, en := range entries {
		if err := en.handler.Handle(ctx, e); err != nil {
			return errors.Wrapf(err, "handler for event %s failed", event)
		}
	}

	return nil
}
