// Package add provides the runner logic for adding items to a checklist.
package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/checklist/pkg/api"
	"tableflip.dev/checklist/pkg/mutate"
	"tableflip.dev/checklist/pkg/printers"
	"tableflip.dev/checklist/pkg/store"
)

// Add creates an item on a checklist and shows the updated detail view.
type Add struct {
	ChecklistID string
	Name        string

	Client    *api.Client
	Overrides store.Overrides
}

func (n *Add) Do(ctx context.Context) error {
	if n.Client == nil || n.Overrides == nil {
		return errors.New("can not add, no client")
	}

	m := mutate.ForChecklist(n.Client, n.Overrides, n.ChecklistID)
	if err := m.Reload(ctx); err != nil {
		return err
	}
	if err := m.CreateItem(ctx, n.ChecklistID, n.Name); err != nil {
		return err
	}

	n.print(m)
	return nil
}

func (n *Add) print(m *mutate.Mutator) {
	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	if c, ok := m.Model.Find(n.ChecklistID); ok {
		pp.Detail(c)
	}
}
