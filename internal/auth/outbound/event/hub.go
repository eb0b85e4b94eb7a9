// Package event fans controller output (notifications, visual signals and
// redirects) out to every connected event-stream client.
package event

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shandysiswandi/otpgate/internal/auth/countdown"
	"github.com/shandysiswandi/otpgate/internal/auth/entity"
	"github.com/shandysiswandi/otpgate/internal/pkg/clock"
)

type Type string

const (
	TypeNotification    Type = "notification"
	TypeShake           Type = "shake"
	TypeUrgency         Type = "urgency"
	TypeResendAvailable Type = "resend_available"
	TypeRedirect        Type = "redirect"
)

// subscriberBuffer bounds how far a slow client may lag before events are
// dropped for it.
const subscriberBuffer = 16

// StreamEvent is one message on the event stream.
type StreamEvent struct {
	Type Type      `json:"type"`
	Data any       `json:"data,omitempty"`
	At   time.Time `json:"at"`
}

type Redirect struct {
	Path string `json:"path"`
}

type Urgency struct {
	Level string `json:"level"`
}

type subscriber struct {
	ch     chan StreamEvent
	closed atomic.Bool
}

type Hub struct {
	clock clock.Clocker

	mu   sync.RWMutex
	subs map[*subscriber]struct{}
}

func NewHub(clk clock.Clocker) *Hub {
	return &Hub{clock: clk, subs: make(map[*subscriber]struct{})}
}

// Subscribe registers a stream that is closed once ctx is done.
func (h *Hub) Subscribe(ctx context.Context) <-chan StreamEvent {
	sub := &subscriber{ch: make(chan StreamEvent, subscriberBuffer)}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs, sub)
		sub.closed.Store(true)
		close(sub.ch)
		h.mu.Unlock()
	}()

	return sub.ch
}

// Subscribers returns the number of connected streams.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs)
}

func (h *Hub) publish(evt StreamEvent) {
	evt.At = h.clock.Now()

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs {
		if sub.closed.Load() {
			continue
		}

		select {
		case sub.ch <- evt:
		default:
			slog.Warn("event stream subscriber is lagging, dropping event", "type", evt.Type)
		}
	}
}

func (h *Hub) Notify(ctx context.Context, n entity.Notification) {
	slog.DebugContext(ctx, "notification", "kind", n.Kind, "event", n.Event, "message", n.Message)
	h.publish(StreamEvent{Type: TypeNotification, Data: n})
}

func (h *Hub) Shake(context.Context) {
	h.publish(StreamEvent{Type: TypeShake})
}

func (h *Hub) Urgency(_ context.Context, u countdown.Urgency) {
	h.publish(StreamEvent{Type: TypeUrgency, Data: Urgency{Level: u.String()}})
}

func (h *Hub) ResendAvailable(context.Context) {
	h.publish(StreamEvent{Type: TypeResendAvailable})
}

func (h *Hub) Navigate(_ context.Context, path string) {
	h.publish(StreamEvent{Type: TypeRedirect, Data: Redirect{Path: path}})
}
