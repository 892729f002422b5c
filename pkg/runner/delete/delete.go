// Package delete provides the runner logic for deleting a checklist and
// its items.
package delete

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/checklist/pkg/api"
	"tableflip.dev/checklist/pkg/mutate"
	"tableflip.dev/checklist/pkg/printers"
	"tableflip.dev/checklist/pkg/store"
)

// Delete removes a checklist, cascading over its items first. A failed
// server delete still removes the checklist locally with a warning.
type Delete struct {
	ChecklistID string

	Client    *api.Client
	Overrides store.Overrides
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Client == nil || n.Overrides == nil {
		return errors.New("can not delete, no client")
	}

	m := mutate.ForDashboard(n.Client, n.Overrides)
	if err := m.Reload(ctx); err != nil {
		return err
	}

	warning, err := m.DeleteChecklist(ctx, n.ChecklistID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Error(warning)
	pp.Title("Your Checklists")
	pp.Dashboard(m.Model.Lists()...)
	return nil
}
