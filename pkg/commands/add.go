package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/checklist/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	checklistID := ""
	name := ""

	cmd := &cobra.Command{
		Use:   "add <checklist id> <item name>",
		Short: "Add an item to a checklist",
		Example: `
checklist add 42 Buy milk
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 2 {
				return errors.New("requires a checklist id and an item name")
			}
			checklistID = args[0]
			name = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			client, overrides, err := session()
			if err != nil {
				return err
			}

			s := add.Add{
				ChecklistID: checklistID,
				Name:        name,
				Client:      client,
				Overrides:   overrides,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
