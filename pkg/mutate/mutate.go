// Package mutate implements the optimistic mutation protocol shared by
// every user action: apply the change locally, persist the override,
// issue the network call, and either confirm or roll back by reloading
// from the source of truth.
package mutate

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"tableflip.dev/checklist/pkg/api"
	"tableflip.dev/checklist/pkg/checklist"
	"tableflip.dev/checklist/pkg/palette"
	"tableflip.dev/checklist/pkg/store"
	"tableflip.dev/checklist/pkg/view"
)

// Mutator applies user actions optimistically against a view model and an
// override store, then syncs with the service.
type Mutator struct {
	Client    *api.Client
	Overrides store.Overrides
	Model     *view.Model

	// Reload re-fetches and rebuilds the model from the service plus the
	// override store; it is the rollback path for failed content
	// mutations. Set by the owning view.
	Reload func(ctx context.Context) error
}

// change is one optimistic mutation run through the shared three-phase
// protocol.
type change struct {
	// apply mutates the view model and override store immediately.
	apply func() error
	// call issues the network request.
	call func(ctx context.Context) error
	// confirm runs after a successful call, e.g. swapping a temporary id
	// for the server-assigned one. Optional.
	confirm func() error
	// failure is the banner message when the call fails.
	failure string
}

// run executes the protocol. On call failure the optimistic state is
// discarded by reloading, the failure message is surfaced, and the
// original error is returned.
func (m *Mutator) run(ctx context.Context, ch change) error {
	if ch.apply != nil {
		if err := ch.apply(); err != nil {
			return err
		}
	}

	if err := ch.call(ctx); err != nil {
		m.Model.SetError(ch.failure)
		m.rollback(ctx)
		return fmt.Errorf("%s: %w", ch.failure, err)
	}

	if ch.confirm != nil {
		if err := ch.confirm(); err != nil {
			return err
		}
	}
	m.Model.SetError("")
	return nil
}

func (m *Mutator) reloadNow(ctx context.Context) error {
	if m.Reload == nil {
		return nil
	}
	return m.Reload(ctx)
}

func (m *Mutator) rollback(ctx context.Context) {
	if m.Reload == nil {
		return
	}
	if err := m.Reload(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "reload after failed mutation: %v\n", err)
	}
}

// CreateItem adds an item to a checklist. The item appears immediately
// under a temporary id; once the server responds the id is replaced and
// the name and completion overrides are persisted under the real id, so a
// later fetch that drops the name can be repaired.
func (m *Mutator) CreateItem(ctx context.Context, checklistID, name string) error {
	tempID := "tmp_" + uuid.NewString()
	var created checklist.Raw

	return m.run(ctx, change{
		apply: func() error {
			m.Model.Update(checklistID, func(c *checklist.Checklist) {
				c.Items = append(c.Items, checklist.Item{ID: tempID, Name: name})
			})
			return nil
		},
		call: func(ctx context.Context) error {
			var err error
			created, err = m.Client.CreateItem(ctx, checklistID, checklist.Raw{"name": name, "completed": false})
			return err
		},
		confirm: func() error {
			id := serverID(created)
			if id == "" {
				// No usable id in the response; fall back to a full
				// reload so the item gets whatever identity a fetch
				// assigns it.
				return m.reloadNow(ctx)
			}
			m.Model.Update(checklistID, func(c *checklist.Checklist) {
				for i := range c.Items {
					if c.Items[i].ID == tempID {
						c.Items[i].ID = id
					}
				}
			})
			if err := m.Overrides.SetItemName(checklistID, id, name); err != nil {
				return err
			}
			return m.Overrides.SetItemCompletion(checklistID, id, false)
		},
		failure: "Failed to create item",
	})
}

// ToggleItem flips an item's completion state. The override is persisted
// only once the server accepts the write: the override store records
// confirmed state, and an early write would survive the rollback reload
// and resurrect the failed toggle.
func (m *Mutator) ToggleItem(ctx context.Context, checklistID, itemID string, completed bool) error {
	return m.run(ctx, change{
		apply: func() error {
			m.Model.Update(checklistID, func(c *checklist.Checklist) {
				for i := range c.Items {
					if c.Items[i].ID == itemID {
						c.Items[i].Completed = completed
					}
				}
			})
			return nil
		},
		call: func(ctx context.Context) error {
			return m.Client.UpdateItemStatus(ctx, checklistID, itemID, checklist.Raw{"completed": completed})
		},
		confirm: func() error {
			return m.Overrides.SetItemCompletion(checklistID, itemID, completed)
		},
		failure: "Failed to update item status",
	})
}

// RenameItem renames an item via the service's dedicated rename endpoint.
// Like ToggleItem, the name override waits for the server so a failed
// rename can actually be discarded.
func (m *Mutator) RenameItem(ctx context.Context, checklistID, itemID, name string) error {
	return m.run(ctx, change{
		apply: func() error {
			m.Model.Update(checklistID, func(c *checklist.Checklist) {
				for i := range c.Items {
					if c.Items[i].ID == itemID {
						c.Items[i].Name = name
					}
				}
			})
			return nil
		},
		call: func(ctx context.Context) error {
			return m.Client.RenameItem(ctx, checklistID, itemID, name)
		},
		confirm: func() error {
			return m.Overrides.SetItemName(checklistID, itemID, name)
		},
		failure: "Failed to rename item",
	})
}

// DeleteItem removes an item and, once the server confirms, purges its
// override entries so the namespaces do not accumulate dead keys.
func (m *Mutator) DeleteItem(ctx context.Context, checklistID, itemID string) error {
	return m.run(ctx, change{
		apply: func() error {
			m.Model.Update(checklistID, func(c *checklist.Checklist) {
				kept := c.Items[:0]
				for _, it := range c.Items {
					if it.ID != itemID {
						kept = append(kept, it)
					}
				}
				c.Items = kept
			})
			return nil
		},
		call: func(ctx context.Context) error {
			return m.Client.DeleteItem(ctx, checklistID, itemID)
		},
		confirm: func() error {
			return m.Overrides.RemoveItem(checklistID, itemID)
		},
		failure: "Failed to delete item",
	})
}

// CreateChecklist creates a checklist and shows it at the top of the
// dashboard immediately, pending the server id.
func (m *Mutator) CreateChecklist(ctx context.Context, name, color string) error {
	color = palette.Normalize(color)
	tempID := "tmp_" + uuid.NewString()
	var created checklist.Raw

	return m.run(ctx, change{
		apply: func() error {
			m.Model.Insert(checklist.Checklist{ID: tempID, Name: name, Color: color})
			return nil
		},
		call: func(ctx context.Context) error {
			var err error
			created, err = m.Client.CreateChecklist(ctx, checklist.Raw{"name": name, "color": color})
			return err
		},
		confirm: func() error {
			id := serverID(created)
			if id == "" {
				return m.reloadNow(ctx)
			}
			m.Model.Update(tempID, func(c *checklist.Checklist) {
				c.ID = id
			})
			// The service tends to forget colors; keep ours.
			return m.Overrides.SetColor(id, color)
		},
		failure: "Failed to create checklist",
	})
}

// DeleteChecklist deletes a checklist after a best-effort cascade over its
// items. Individual item deletions may fail without aborting the cascade.
// If the checklist delete itself fails server-side, the checklist is
// still removed from the local view and its overrides purged: blocking
// deletion on a flaky backend hurts more than a phantom resurrection on
// the next reload. The returned warning is non-empty in that case.
func (m *Mutator) DeleteChecklist(ctx context.Context, checklistID string) (warning string, err error) {
	if raws, err := m.Client.Items(ctx, checklistID); err == nil {
		for i, raw := range raws {
			id := serverID(raw)
			if id == "" {
				continue
			}
			if err := m.Client.DeleteItem(ctx, checklistID, id); err != nil {
				fmt.Fprintf(os.Stderr, "delete item %d of checklist %s: %v\n", i, checklistID, err)
			}
		}
	} else {
		fmt.Fprintf(os.Stderr, "list items before delete of %s: %v\n", checklistID, err)
	}

	deleteErr := m.Client.DeleteChecklist(ctx, checklistID)

	m.Model.Remove(checklistID)
	if err := m.Overrides.RemoveNamespace(checklistID); err != nil {
		fmt.Fprintf(os.Stderr, "purge overrides for %s: %v\n", checklistID, err)
	}

	if deleteErr != nil {
		warning = "Checklist removed locally; server state may be stale"
		m.Model.SetError(warning)
		return warning, nil
	}
	m.Model.SetError("")
	return "", nil
}

// Recolor changes a checklist's color. The change is optimistic and
// sticky: the override store is the durable record, and a failed server
// sync is swallowed because color is not worth an error banner.
func (m *Mutator) Recolor(ctx context.Context, checklistID, color string) error {
	color = palette.Normalize(color)
	m.Model.Update(checklistID, func(c *checklist.Checklist) {
		c.Color = color
	})
	if err := m.Overrides.SetColor(checklistID, color); err != nil {
		return err
	}

	if err := m.Client.UpdateChecklistColor(ctx, checklistID, color); err != nil {
		fmt.Fprintf(os.Stderr, "color sync for %s failed, kept locally: %v\n", checklistID, err)
	}
	m.Model.SetError("")
	return nil
}

// Reorder moves a checklist to a new dashboard position. Purely local:
// the service has no ordering endpoint, so the override store holds the
// authoritative display order.
func (m *Mutator) Reorder(checklistID string, position int) error {
	return m.Model.Reorder(checklistID, position, m.Overrides)
}

// serverID pulls the id out of a created record, tolerating the usual
// field-name drift.
func serverID(raw checklist.Raw) string {
	if raw == nil {
		return ""
	}
	for _, field := range []string{"id", "itemId", "checklistId", "checklistItemId"} {
		switch t := raw[field].(type) {
		case string:
			if t != "" {
				return t
			}
		case float64:
			return fmt.Sprintf("%d", int64(t))
		}
	}
	return ""
}
