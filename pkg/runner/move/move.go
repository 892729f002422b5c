// Package move provides the runner logic for reordering the dashboard.
package move

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/checklist/pkg/api"
	"tableflip.dev/checklist/pkg/mutate"
	"tableflip.dev/checklist/pkg/printers"
	"tableflip.dev/checklist/pkg/store"
)

// Move places a checklist at a new dashboard position (0-based) and
// persists the resulting order as authoritative.
type Move struct {
	ChecklistID string
	Position    int

	Client    *api.Client
	Overrides store.Overrides
}

func (n *Move) Do(ctx context.Context) error {
	if n.Client == nil || n.Overrides == nil {
		return errors.New("can not move, no client")
	}

	m := mutate.ForDashboard(n.Client, n.Overrides)
	if err := m.Reload(ctx); err != nil {
		return err
	}
	if _, ok := m.Model.Find(n.ChecklistID); !ok {
		return fmt.Errorf("no checklist with id %q", n.ChecklistID)
	}
	if err := m.Reorder(n.ChecklistID, n.Position); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title("Your Checklists")
	pp.Dashboard(m.Model.Lists()...)
	return nil
}
