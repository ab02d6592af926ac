package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies a toast.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// DefaultTTL is how long a toast stays visible unless dismissed earlier.
const DefaultTTL = 3500 * time.Millisecond

// Toast is a transient user notification.
type Toast struct {
	Severity Severity
	Message  string
}

// Notifier holds at most one live toast. A new toast unconditionally
// replaces the previous one; there is no queue, so concurrent completion
// handlers show only the most recent outcome. Each toast carries an
// identity token so the auto-clear timer of a replaced toast cannot wipe
// its successor.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Toast
	token   uuid.UUID
}

// New returns a Notifier that auto-clears toasts after ttl. A
// non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Notifier{ttl: ttl}
}

func (n *Notifier) Success(message string) {
	n.push(Toast{Severity: SeveritySuccess, Message: message})
}

func (n *Notifier) Error(message string) {
	n.push(Toast{Severity: SeverityError, Message: message})
}

func (n *Notifier) Info(message string) {
	n.push(Toast{Severity: SeverityInfo, Message: message})
}

// Current returns a copy of the live toast, or nil when the slot is
// empty.
func (n *Notifier) Current() *Toast {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return nil
	}

	t := *n.current

	return &t
}

// Dismiss clears the slot immediately.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.current = nil
	n.token = uuid.Nil
}

func (n *Notifier) push(t Toast) {
	token := uuid.New()

	n.mu.Lock()
	n.current = &t
	n.token = token
	n.mu.Unlock()

	time.AfterFunc(n.ttl, func() {
		n.clear(token)
	})
}

// clear empties the slot only while it still holds the toast the timer
// was armed for.
func (n *Notifier) clear(token uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.token != token {
		return
	}

	n.current = nil
	n.token = uuid.Nil
}
