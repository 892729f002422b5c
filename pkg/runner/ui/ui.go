// Package ui launches the full-screen checklist view.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/checklist/pkg/api"
	"tableflip.dev/checklist/pkg/mutate"
	"tableflip.dev/checklist/pkg/store"
	"tableflip.dev/checklist/pkg/tui"
)

// UI opens the interactive detail view for one checklist.
type UI struct {
	ChecklistID string

	Client    *api.Client
	Overrides store.Overrides
}

func (n *UI) Do(ctx context.Context) error {
	if n.Client == nil || n.Overrides == nil {
		return errors.New("can not open ui, no client")
	}

	m := mutate.ForChecklist(n.Client, n.Overrides, n.ChecklistID)
	return tui.Run(ctx, n.ChecklistID, m, n.Overrides)
}
