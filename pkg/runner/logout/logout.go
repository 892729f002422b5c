// Package logout clears the stored session token.
package logout

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"tableflip.dev/checklist/pkg/store"
)

type Logout struct {
	Overrides store.Overrides
}

func (n *Logout) Do(_ context.Context) error {
	if n.Overrides == nil {
		return errors.New("can not logout, no store")
	}
	if err := n.Overrides.ClearToken(); err != nil {
		return err
	}
	_, _ = color.New(color.Faint).Fprintln(color.Output, "Logged out.")
	return nil
}
