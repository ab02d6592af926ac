package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/aetherrootr/sub-cache/client"
	"github.com/aetherrootr/sub-cache/console"
	"github.com/aetherrootr/sub-cache/model"
)

const (
	// DefaultRefreshSpec matches the backend's default 30 minute fetch
	// interval.
	DefaultRefreshSpec = "*/30 * * * *"

	refreshRunTimeout = 10 * time.Minute
)

// Scheduler periodically asks the backend to re-cache every remote
// source and then reloads the store, keeping the console view warm
// without user interaction. Per-source refresh failures are logged, not
// toasted, so background work does not steal the single toast slot from
// user actions.
type Scheduler struct {
	ctx    context.Context
	cron   *cron.Cron
	spec   string
	client *client.Client
	store  *console.Store
	log    *slog.Logger
}

func New(
	ctx context.Context,
	spec string,
	c *client.Client,
	store *console.Store,
	log *slog.Logger,
) *Scheduler {
	if spec == "" {
		spec = DefaultRefreshSpec
	}

	return &Scheduler{
		ctx:    ctx,
		cron:   cron.New(),
		spec:   spec,
		client: c,
		store:  store,
		log:    log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.refreshRemoteSources); err != nil {
		return err
	}

	s.cron.Start()

	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) refreshRemoteSources() {
	ctx, cancel := context.WithTimeout(s.ctx, refreshRunTimeout)
	defer cancel()

	if err := s.RefreshRemoteSources(ctx); err != nil {
		s.log.ErrorContext(ctx, "Failed to refresh remote sources",
			"error", err,
			"spec", s.spec)
	}
}

// RefreshRemoteSources fetches the current list, asks the backend to
// re-cache every remote entry that has a URL, then reloads the store.
// Individual refresh failures do not stop the walk.
func (s *Scheduler) RefreshRemoteSources(ctx context.Context) error {
	sources, err := s.client.List(ctx)
	if err != nil {
		return fmt.Errorf("list subscriptions: %w", err)
	}

	var errs []error
	for _, src := range sources {
		if src.Type != model.SubTypeRemote || src.URL == "" {
			continue
		}

		if refreshErr := s.client.RefreshCache(ctx, src.ID); refreshErr != nil {
			errs = append(errs, fmt.Errorf("refresh cache (id = %d): %w", src.ID, refreshErr))
		}
	}

	s.store.Load(ctx)

	return errors.Join(errs...)
}
