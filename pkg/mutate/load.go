package mutate

import (
	"context"
	"fmt"
	"os"
	"sync"

	"tableflip.dev/checklist/pkg/api"
	"tableflip.dev/checklist/pkg/checklist"
	"tableflip.dev/checklist/pkg/reconcile"
	"tableflip.dev/checklist/pkg/store"
	"tableflip.dev/checklist/pkg/view"
)

// LoadChecklists fetches every checklist, reconciles it against the
// override store, and fills in item counts by fetching each checklist's
// items. A failed item fetch degrades that card to 0/0 rather than
// failing the dashboard.
func LoadChecklists(ctx context.Context, client *api.Client, overrides store.Overrides) ([]checklist.Checklist, error) {
	raws, err := client.Checklists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load checklists: %w", err)
	}

	lists := reconcile.Checklists(raws, overrides)

	var wg sync.WaitGroup
	for i := range lists {
		wg.Add(1)
		go func(c *checklist.Checklist) {
			defer wg.Done()
			itemRaws, err := client.Items(ctx, c.ID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "checklist %s: items: %v\n", c.ID, err)
				return
			}
			items := reconcile.Items(c.ID, itemRaws, overrides)
			c.ItemCount = len(items)
			for _, it := range items {
				if it.Completed {
					c.CompletedCount++
				}
			}
		}(&lists[i])
	}
	wg.Wait()

	return lists, nil
}

// LoadChecklist fetches one checklist's metadata and items concurrently.
// Metadata failure degrades to defaults; items failure is fatal, since a
// detail view without items is useless.
func LoadChecklist(ctx context.Context, client *api.Client, overrides store.Overrides, checklistID string) (checklist.Checklist, error) {
	var (
		wg       sync.WaitGroup
		meta     checklist.Raw
		raws     []checklist.Raw
		itemsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		// Tolerated independently of the items fetch.
		if raw, err := client.Checklist(ctx, checklistID); err == nil {
			meta = raw
		}
	}()
	go func() {
		defer wg.Done()
		raws, itemsErr = client.Items(ctx, checklistID)
	}()
	wg.Wait()

	if itemsErr != nil {
		return checklist.Checklist{}, fmt.Errorf("failed to load checklist details: %w", itemsErr)
	}

	c := reconcile.Detail(checklistID, orEmpty(meta), overrides)
	c.Items = reconcile.Items(checklistID, raws, overrides)
	return c, nil
}

// ForDashboard returns a Mutator whose model holds the full dashboard and
// whose rollback path reloads it.
func ForDashboard(client *api.Client, overrides store.Overrides) *Mutator {
	m := &Mutator{Client: client, Overrides: overrides, Model: &view.Model{}}
	m.Reload = func(ctx context.Context) error {
		lists, err := LoadChecklists(ctx, client, overrides)
		if err != nil {
			return err
		}
		m.Model.SetLists(lists)
		return nil
	}
	return m
}

// ForChecklist returns a Mutator scoped to one checklist's detail view.
func ForChecklist(client *api.Client, overrides store.Overrides, checklistID string) *Mutator {
	m := &Mutator{Client: client, Overrides: overrides, Model: &view.Model{}}
	m.Reload = func(ctx context.Context) error {
		c, err := LoadChecklist(ctx, client, overrides, checklistID)
		if err != nil {
			return err
		}
		m.Model.SetLists([]checklist.Checklist{c})
		return nil
	}
	return m
}

func orEmpty(raw checklist.Raw) checklist.Raw {
	if raw == nil {
		return checklist.Raw{}
	}
	return raw
}
