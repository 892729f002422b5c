package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/checklist/pkg/commands/options"
	"tableflip.dev/checklist/pkg/runner/register"
)

func addRegister(topLevel *cobra.Command) {
	ao := &options.AuthOptions{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account on the checklist service",
		Example: `
checklist register -u someone -e someone@example.com -p secret
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			client, _, err := session()
			if err != nil {
				return err
			}

			s := register.Register{
				Username: ao.Username,
				Email:    ao.Email,
				Password: ao.Password,
				Client:   client,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddAuthArgs(cmd, ao)
	options.AddEmailArg(cmd, ao)
	topLevel.AddCommand(cmd)
}
