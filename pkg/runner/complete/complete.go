// Package complete provides the runner logic for toggling item
// completion.
package complete

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/checklist/pkg/api"
	"tableflip.dev/checklist/pkg/mutate"
	"tableflip.dev/checklist/pkg/printers"
	"tableflip.dev/checklist/pkg/store"
)

// Complete marks an item done, or not done when Undo is set.
type Complete struct {
	ChecklistID string
	ItemID      string
	Undo        bool

	Client    *api.Client
	Overrides store.Overrides
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Client == nil || n.Overrides == nil {
		return errors.New("can not complete, no client")
	}

	m := mutate.ForChecklist(n.Client, n.Overrides, n.ChecklistID)
	if err := m.Reload(ctx); err != nil {
		return err
	}
	if err := m.ToggleItem(ctx, n.ChecklistID, n.ItemID, !n.Undo); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	if c, ok := m.Model.Find(n.ChecklistID); ok {
		pp.Detail(c)
	}
	return nil
}
