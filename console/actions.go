package console

import (
	"context"
	"fmt"

	"github.com/aetherrootr/sub-cache/client"
	"github.com/aetherrootr/sub-cache/model"
)

// CopyLink builds the public subscription link for id and puts it on the
// clipboard. No network involved.
func (c *Console) CopyLink(id int64) {
	link := client.SubLink(c.origin, id)

	if c.copyText(link) {
		c.notifier.Success("Subscription link copied")

		return
	}

	c.notifier.Error("Copy failed")
}

// Add opens an empty form dialog.
func (c *Console) Add() {
	c.form.OpenAdd()
}

// Edit opens the form dialog seeded from src.
func (c *Console) Edit(src model.SubscriptionSource) {
	c.form.OpenEdit(src)
}

// Delete asks for confirmation, then removes src and reloads the list.
// A declined confirmation is a no-op: no network call, no toast.
func (c *Console) Delete(ctx context.Context, src model.SubscriptionSource) {
	prompt := fmt.Sprintf("Delete subscription #%d (%s) ?", src.ID, src.Name)
	if !c.confirmer.Confirm(ctx, prompt) {
		return
	}

	if err := c.client.Delete(ctx, src.ID); err != nil {
		c.log.ErrorContext(ctx, "Failed to delete subscription",
			"error", err,
			"id", src.ID,
			"name", src.Name)
		c.notifier.Error(err.Error())

		return
	}

	c.notifier.Success("Deleted")
	c.store.Load(ctx)
}

// RefreshCache asks the backend to re-fetch a remote source's payload.
// Local sources have nothing to refresh and short-circuit with an info
// toast. The shared in-flight slot is always released before the outcome
// is toasted.
func (c *Console) RefreshCache(ctx context.Context, src model.SubscriptionSource) {
	if src.Type != model.SubTypeRemote {
		c.notifier.Info("Only remote subscriptions can be refreshed")

		return
	}

	c.inflight.Begin(src.ID)
	err := c.client.RefreshCache(ctx, src.ID)
	c.inflight.End(src.ID)

	if err != nil {
		c.log.ErrorContext(ctx, "Failed to refresh subscription cache",
			"error", err,
			"id", src.ID)
		c.notifier.Error(err.Error())

		return
	}

	c.notifier.Success("Cache refreshed")
	c.store.Load(ctx)
}

// RefreshingID reports which row's refresh is in flight, if any, so a
// renderer can disable that row's control and show its busy indicator.
func (c *Console) RefreshingID() (int64, bool) {
	return c.inflight.Current()
}

// SaveForm validates the draft and submits it. On success the dialog
// closes and the list reloads; on failure the dialog stays open so the
// input can be corrected.
func (c *Console) SaveForm(ctx context.Context) {
	if !c.form.IsOpen() {
		return
	}

	if err := c.form.Validate(); err != nil {
		c.notifier.Error(err.Error())

		return
	}

	switch c.form.Mode() {
	case FormModeAdd:
		res, err := c.client.Add(ctx, c.form.AddPayload())
		if err != nil {
			c.log.ErrorContext(ctx, "Failed to add subscription",
				"error", err)
			c.notifier.Error(err.Error())

			return
		}

		c.form.Close()
		c.notifier.Success(fmt.Sprintf("Added (id=%d)", res.ID))

	case FormModeEdit:
		id, payload, err := c.form.UpdatePayload()
		if err != nil {
			c.notifier.Error(err.Error())

			return
		}

		if err = c.client.Update(ctx, id, payload); err != nil {
			c.log.ErrorContext(ctx, "Failed to update subscription",
				"error", err,
				"id", id)
			c.notifier.Error(err.Error())

			return
		}

		c.form.Close()
		c.notifier.Success("Updated")
	}

	c.store.Load(ctx)
}
