// Package remove provides the runner logic for deleting items.
package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/checklist/pkg/api"
	"tableflip.dev/checklist/pkg/mutate"
	"tableflip.dev/checklist/pkg/printers"
	"tableflip.dev/checklist/pkg/store"
)

// Remove deletes one item from a checklist.
type Remove struct {
	ChecklistID string
	ItemID      string

	Client    *api.Client
	Overrides store.Overrides
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Client == nil || n.Overrides == nil {
		return errors.New("can not remove, no client")
	}

	m := mutate.ForChecklist(n.Client, n.Overrides, n.ChecklistID)
	if err := m.Reload(ctx); err != nil {
		return err
	}
	if err := m.DeleteItem(ctx, n.ChecklistID, n.ItemID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	if c, ok := m.Model.Find(n.ChecklistID); ok {
		pp.Detail(c)
	}
	return nil
}
