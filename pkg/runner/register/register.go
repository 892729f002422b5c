// Package register provides the runner logic for account creation.
package register

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"tableflip.dev/checklist/pkg/api"
)

// Register creates an account. It does not authenticate; the user logs in
// separately afterwards.
type Register struct {
	Username string
	Email    string
	Password string

	Client *api.Client
}

func (n *Register) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not register, no client")
	}

	if err := n.Client.Register(ctx, api.RegisterRequest{
		Username: n.Username,
		Email:    n.Email,
		Password: n.Password,
	}); err != nil {
		return err
	}

	ok := color.New(color.FgGreen)
	_, _ = ok.Fprintln(color.Output, "Registered. Run `checklist login` to sign in.")
	return nil
}
