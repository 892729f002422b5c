package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/checklist/pkg/runner/rename"
)

func addRename(topLevel *cobra.Command) {
	checklistID := ""
	itemID := ""
	name := ""

	cmd := &cobra.Command{
		Use:   "rename <checklist id> <item id> <new name>",
		Short: "Rename a checklist item",
		Example: `
checklist rename 42 item_8_66 Buy oat milk
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 3 {
				return errors.New("requires a checklist id, an item id, and a new name")
			}
			checklistID = args[0]
			itemID = args[1]
			name = strings.Join(args[2:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			client, overrides, err := session()
			if err != nil {
				return err
			}

			s := rename.Rename{
				ChecklistID: checklistID,
				ItemID:      itemID,
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
