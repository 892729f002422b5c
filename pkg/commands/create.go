package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/checklist/pkg/commands/options"
	"tableflip.dev/checklist/pkg/runner/create"
)

func addCreate(topLevel *cobra.Command) {
	co := &options.ColorOptions{}

	name := ""

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a checklist",
		Example: `
checklist create Groceries --color green
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a checklist name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			client, overrides, err := session()
			if err != nil {
				return err
			}

			s := create.Create{
				Name:      name,
				Color:     co.Color,
				Client:    client,
				Overrides: overrides,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddColorArg(cmd, co)
	topLevel.AddCommand(cmd)
}
