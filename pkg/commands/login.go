package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/checklist/pkg/commands/options"
	"tableflip.dev/checklist/pkg/runner/login"
)

func addLogin(topLevel *cobra.Command) {
	ao := &options.AuthOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the checklist service",
		Example: `
checklist login -u someone -p secret
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			client, overrides, err := session()
			if err != nil {
				return err
			}

			s := login.Login{
				Username:  ao.Username,
				Password:  ao.Password,
				Client:    client,
				Overrides: overrides,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddAuthArgs(cmd, ao)
	topLevel.AddCommand(cmd)
}
