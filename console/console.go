package console

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aetherrootr/sub-cache/client"
	"github.com/aetherrootr/sub-cache/clipboard"
	"github.com/aetherrootr/sub-cache/notify"
)

// Confirmer is the blocking yes/no port delete actions go through. A
// renderer backs it with a modal dialog; tests inject a stub.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(ctx context.Context, prompt string) bool

func (f ConfirmerFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

// Console dispatches user intents against the backend and keeps the
// store, form and notifier in sync. Every action catches its own
// failures and converts them to a toast; nothing propagates to the
// caller and nothing is retried.
type Console struct {
	client    *client.Client
	store     *Store
	form      *Form
	notifier  *notify.Notifier
	confirmer Confirmer
	copyText  func(string) bool
	origin    string
	inflight  *inflightID
	log       *slog.Logger
}

// New wires a console around c. origin is the public base the
// subscription links are built from.
func New(
	origin string,
	c *client.Client,
	notifier *notify.Notifier,
	confirmer Confirmer,
	log *slog.Logger,
) *Console {
	return &Console{
		client:    c,
		store:     NewStore(c, notifier, log),
		form:      NewForm(),
		notifier:  notifier,
		confirmer: confirmer,
		copyText:  clipboard.Copy,
		origin:    strings.TrimSpace(origin),
		inflight:  newInflightID(),
		log:       log,
	}
}

func (c *Console) Store() *Store {
	return c.store
}

func (c *Console) Form() *Form {
	return c.form
}

// SetCopyFunc overrides the clipboard implementation.
func (c *Console) SetCopyFunc(fn func(string) bool) {
	c.copyText = fn
}
