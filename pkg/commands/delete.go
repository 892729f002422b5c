package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	del "tableflip.dev/checklist/pkg/runner/delete"
)

func addDelete(topLevel *cobra.Command) {
	checklistID := ""

	cmd := &cobra.Command{
		Use:   "delete <checklist id>",
		Short: "Delete a checklist and all of its items",
		Example: `
checklist delete 42
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a checklist id")
			}
			checklistID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			client, overrides, err := session()
			if err != nil {
				return err
			}

			s := del.Delete{
				ChecklistID: checklistID,
				Client:      client,
				Overrides:   overrides,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
