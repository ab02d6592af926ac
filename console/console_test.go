package console

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/aetherrootr/sub-cache/client"
	"github.com/aetherrootr/sub-cache/model"
	"github.com/aetherrootr/sub-cache/notify"
)

// backendStub is an httptest stand-in for the subscription backend. It
// counts calls per endpoint so tests can assert which network round
// trips happened.
type backendStub struct {
	t *testing.T

	mu           sync.Mutex
	list         []model.SubscriptionSource
	listCalls    int
	addCalls     int
	updateCalls  int
	deleteCalls  int
	refreshCalls int

	// Optional overrides; when nil the default success behavior runs.
	onAdd     http.HandlerFunc
	onUpdate  http.HandlerFunc
	onDelete  http.HandlerFunc
	onRefresh http.HandlerFunc
	onList    http.HandlerFunc

	srv *httptest.Server
}

func newBackendStub(t *testing.T, list []model.SubscriptionSource) *backendStub {
	t.Helper()

	b := &backendStub{t: t, list: list}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /sub/list", func(w http.ResponseWriter, r *http.Request) {
		b.count(&b.listCalls)
		if b.onList != nil {
			b.onList(w, r)
			return
		}
		b.writeList(w)
	})
	mux.HandleFunc("POST /sub/add", func(w http.ResponseWriter, r *http.Request) {
		b.count(&b.addCalls)
		if b.onAdd != nil {
			b.onAdd(w, r)
			return
		}
		b.writeJSON(w, http.StatusCreated, map[string]any{"id": 1})
	})
	mux.HandleFunc("POST /sub/update/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.count(&b.updateCalls)
		if b.onUpdate != nil {
			b.onUpdate(w, r)
			return
		}
		b.writeJSON(w, http.StatusOK, map[string]any{"message": "Subscription updated successfully"})
	})
	mux.HandleFunc("DELETE /sub/delete/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.count(&b.deleteCalls)
		if b.onDelete != nil {
			b.onDelete(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /sub/refresh/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.count(&b.refreshCalls)
		if b.onRefresh != nil {
			b.onRefresh(w, r)
			return
		}
		b.writeJSON(w, http.StatusOK, map[string]any{"message": "Subscription cache refreshed successfully"})
	})

	b.srv = httptest.NewServer(mux)
	t.Cleanup(b.srv.Close)

	return b
}

func (b *backendStub) count(field *int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	*field++
}

func (b *backendStub) calls(field *int) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return *field
}

func (b *backendStub) writeList(w http.ResponseWriter) {
	b.mu.Lock()
	list := b.list
	b.mu.Unlock()

	b.writeJSON(w, http.StatusOK, map[string]any{"sub_list": list})
}

func (b *backendStub) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		b.t.Errorf("failed to encode response: %v", err)
	}
}

// confirmStub records the prompt and answers with a fixed decision.
type confirmStub struct {
	mu      sync.Mutex
	answer  bool
	prompts []string
}

func (c *confirmStub) Confirm(_ context.Context, prompt string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prompts = append(c.prompts, prompt)

	return c.answer
}

func (c *confirmStub) lastPrompt() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.prompts) == 0 {
		return ""
	}

	return c.prompts[len(c.prompts)-1]
}

func newTestConsole(t *testing.T, b *backendStub, confirmer Confirmer) (*Console, *notify.Notifier) {
	t.Helper()

	notifier := notify.New(time.Minute)
	c := client.New(b.srv.URL, slog.Default())

	return New(b.srv.URL, c, notifier, confirmer, slog.Default()), notifier
}
