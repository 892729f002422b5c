// Package create provides the runner logic for creating checklists.
package create

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/checklist/pkg/api"
	"tableflip.dev/checklist/pkg/mutate"
	"tableflip.dev/checklist/pkg/printers"
	"tableflip.dev/checklist/pkg/store"
)

// Create makes a new checklist and shows the updated dashboard.
type Create struct {
	Name  string
	Color string

	Client    *api.Client
	Overrides store.Overrides
}

func (n *Create) Do(ctx context.Context) error {
	if n.Client == nil || n.Overrides == nil {
		return errors.New("can not create, no client")
	}

	m := mutate.ForDashboard(n.Client, n.Overrides)
	if err := m.Reload(ctx); err != nil {
		return err
	}
	if err := m.CreateChecklist(ctx, n.Name, n.Color); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title("Your Checklists")
	pp.Dashboard(m.Model.Lists()...)
	return nil
}
