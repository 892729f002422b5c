// Package get provides the runner logic for the dashboard and detail
// views.
package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/checklist/pkg/api"
	"tableflip.dev/checklist/pkg/mutate"
	"tableflip.dev/checklist/pkg/printers"
	"tableflip.dev/checklist/pkg/store"
)

// Get renders all checklists, or one checklist's items when ChecklistID
// is set.
type Get struct {
	ChecklistID string
	ShowID      bool

	Client    *api.Client
	Overrides store.Overrides
}

func (n *Get) Do(ctx context.Context) error {
	if n.Client == nil || n.Overrides == nil {
		return errors.New("can not get, no client")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.ChecklistID != "" {
		c, err := mutate.LoadChecklist(ctx, n.Client, n.Overrides, n.ChecklistID)
		if err != nil {
			return err
		}
		pp.Detail(c)
		return nil
	}

	lists, err := mutate.LoadChecklists(ctx, n.Client, n.Overrides)
	if err != nil {
		return err
	}
	pp.Title("Your Checklists")
	pp.Dashboard(lists...)
	return nil
}
