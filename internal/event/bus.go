// Package event is the in-process relay decoupling onboarding completion
// and loan approval from their downstream side effects. Handlers are
// registered once at startup; delivery is synchronous, at-least-once,
// and a failing handler never propagates to the publisher.
package event

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeConsumerOnboarded Type = "consumer.onboarded"
	TypeApprovalGranted   Type = "loan_application.approved"
)

// Envelope wraps one published event.
type Envelope struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// ConsumerOnboarded fires after the consumer row commits.
type ConsumerOnboarded struct {
	ConsumerID string   `json:"consumer_id"`
	Vendors    []string `json:"vendors,omitempty"`
}

// ApprovalGranted fires after an APPROVED decision commits. Published
// after commit, so a crash in between leaves a reconciliation gap rather
// than a phantom event.
type ApprovalGranted struct {
	ApplicationID string    `json:"application_id"`
	ConsumerID    string    `json:"consumer_id"`
	Amount        float64   `json:"amount"`
	StaffID       string    `json:"staff_id"`
	ApprovedAt    time.Time `json:"approved_at"`
}

type Handler func(ctx context.Context, evt Envelope) error

type Bus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
	logger   *log.Logger
}

func NewBus(logger *log.Logger) *Bus {
	if logger == nil {
		logger = log.Default()
	}
	return &Bus{handlers: make(map[Type][]Handler), logger: logger}
}

// Subscribe appends a handler to the dispatch list of an event type.
// Intended for startup wiring; safe for concurrent use anyway.
func (b *Bus) Subscribe(t Type, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], h)
}

// Publish delivers payload to every handler of the type, in registration
// order. Handler errors are logged and swallowed: one vendor's outage
// must not abort the other handlers or the caller that triggered them.
func (b *Bus) Publish(ctx context.Context, t Type, payload any) {
	env := Envelope{
		ID:         uuid.NewString(),
		Type:       t,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}

	b.mu.RLock()
	hs := make([]Handler, len(b.handlers[t]))
	copy(hs, b.handlers[t])
	b.mu.RUnlock()

	for _, h := range hs {
		if err := h(ctx, env); err != nil {
			b.logger.Printf("event %s (%s): handler failed: %v", t, env.ID, err)
		}
	}
}
