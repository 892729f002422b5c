package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/checklist/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	checklistID := ""
	itemID := ""
	undo := false

	cmd := &cobra.Command{
		Use:   "complete <checklist id> <item id>",
		Short: "Mark an item done, or not done with --undo",
		Example: `
checklist complete 42 item_8_66
checklist complete 42 item_8_66 --undo
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

			s := complete.Complete{
				ChecklistID: checklistID,
				ItemID:      itemID,
				Undo:        undo,
				Client:      client,
				Overrides:   overrides,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "mark the item as not done")
	topLevel.AddCommand(cmd)
}
