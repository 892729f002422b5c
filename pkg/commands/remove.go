package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/checklist/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	checklistID := ""
	itemID := ""

	cmd := &cobra.Command{
		Use:   "remove <checklist id> <item id>",
		Short: "Remove an item from a checklist",
		Example: `
checklist remove 42 item_8_66
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a checklist id and an item id")
			}
			checklistID = args[0]
			itemID = args[1]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			client, overrides, err := session()
			if err != nil {
				return err
			}

			s := remove.Remove{
				ChecklistID: checklistID,
				ItemID:      itemID,
				Client:      client,
				Overrides:   overrides,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
