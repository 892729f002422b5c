// Package rename provides the runner logic for renaming items.
package rename

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/checklist/pkg/api"
	"tableflip.dev/checklist/pkg/mutate"
	"tableflip.dev/checklist/pkg/printers"
	"tableflip.dev/checklist/pkg/store"
)

// Rename changes an item's name via the service's dedicated rename
// endpoint, keeping a local override so the name survives flaky fetches.
type Rename struct {
	ChecklistID string
	ItemID      string
	Name        string

	Client    *api.Client
	Overrides store.Overrides
}

func (n *Rename) Do(ctx context.Context) error {
	if n.Client == nil || n.Overrides == nil {
		return errors.New("can not rename, no client")
	}

	m := mutate.ForChecklist(n.Client, n.Overrides, n.ChecklistID)
	if err := m.Reload(ctx); err != nil {
		return err
	}
	if err := m.RenameItem(ctx, n.ChecklistID, n.ItemID, n.Name); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	if c, ok := m.Model.Find(n.ChecklistID); ok {
		pp.Detail(c)
	}
	return nil
}
