// Package login provides the runner logic for authenticating against the
// checklist service.
package login

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/checklist/pkg/api"
	"tableflip.dev/checklist/pkg/store"
)

// Login exchanges credentials for a session token and persists it.
type Login struct {
	Username string
	Password string

	Client    *api.Client
	Overrides store.Overrides
}

// Do executes the login and stores the bearer token for later commands.
func (n *Login) Do(ctx context.Context) error {
	if n.Client == nil || n.Overrides == nil {
		return errors.New("can not login, no client")
	}

	token, err := n.Client.Login(ctx, api.LoginRequest{Username: n.Username, Password: n.Password})
	if err != nil {
		return err
	}
	if err := n.Overrides.SetToken(token); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}

	ok := color.New(color.FgGreen)
	_, _ = ok.Fprintf(color.Output, "Logged in as %s\n", n.Username)
	return nil
}
