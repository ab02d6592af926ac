package console

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/aetherrootr/sub-cache/client"
	"github.com/aetherrootr/sub-cache/model"
	"github.com/aetherrootr/sub-cache/notify"
)

// Store holds the authoritative in-memory list of subscription sources
// plus the free-text search query. The list is only ever replaced
// wholesale with the backend's response, never patched locally, so it
// cannot drift from server state outside the round-trip window. When
// overlapping loads race, the last one to complete wins.
type Store struct {
	mu      sync.RWMutex
	items   []model.SubscriptionSource
	loading bool
	query   string

	client   *client.Client
	notifier *notify.Notifier
	log      *slog.Logger
}

func NewStore(c *client.Client, notifier *notify.Notifier, log *slog.Logger) *Store {
	return &Store{
		client:   c,
		notifier: notifier,
		log:      log,
	}
}

// Load replaces the list with a fresh fetch. On failure the previous
// list is kept and the reason is surfaced as an error toast; the store
// itself never holds error state.
func (s *Store) Load(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	items, err := s.client.List(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to load subscription list",
			"error", err)
		s.notifier.Error(err.Error())

		return
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

// Items returns the full list in backend order.
func (s *Store) Items() []model.SubscriptionSource {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.items
}

func (s *Store) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = query
}

func (s *Store) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.query
}

// Filtered derives the visible list: a case-insensitive substring match
// of the trimmed query against name, decimal id, url and type. An empty
// query returns the full list unmodified; backend order is preserved
// either way.
func (s *Store) Filtered() []model.SubscriptionSource {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(s.query))
	if q == "" {
		return s.items
	}

	var out []model.SubscriptionSource
	for _, src := range s.items {
		if matchesQuery(src, q) {
			out = append(out, src)
		}
	}

	return out
}

// matchesQuery expects q to be trimmed and lower-cased already.
func matchesQuery(src model.SubscriptionSource, q string) bool {
	return strings.Contains(strings.ToLower(src.Name), q) ||
		strings.Contains(strconv.FormatInt(src.ID, 10), q) ||
		strings.Contains(strings.ToLower(src.URL), q) ||
		strings.Contains(strings.ToLower(string(src.Type)), q)
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = v
}
