// Package color provides the runner logic for recoloring checklists.
package color

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/checklist/pkg/api"
	"tableflip.dev/checklist/pkg/mutate"
	"tableflip.dev/checklist/pkg/palette"
	"tableflip.dev/checklist/pkg/printers"
	"tableflip.dev/checklist/pkg/store"
)

// Color changes a checklist's color. The override store keeps the change
// even when the server refuses to.
type Color struct {
	ChecklistID string
	Value       string

	Client    *api.Client
	Overrides store.Overrides
}

func (n *Color) Do(ctx context.Context) error {
	if n.Client == nil || n.Overrides == nil {
		return errors.New("can not recolor, no client")
	}
	if !palette.Valid(n.Value) {
		return fmt.Errorf("unknown color %q; pick one of the palette: %s", n.Value, paletteNames())
	}

	m := mutate.ForDashboard(n.Client, n.Overrides)
	if err := m.Reload(ctx); err != nil {
		return err
	}
	if err := m.Recolor(ctx, n.ChecklistID, n.Value); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title("Your Checklists")
	pp.Dashboard(m.Model.Lists()...)
	return nil
}

func paletteNames() string {
	names := ""
	for i, c := range palette.All() {
		if i > 0 {
			names += ", "
		}
		names += c.Value
	}
	return names
}
