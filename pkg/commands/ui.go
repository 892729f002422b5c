package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/checklist/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	checklistID := ""

	cmd := &cobra.Command{
		Use:   "ui <checklist id>",
		Short: "Work a checklist in a full screen terminal view",
		Example: `
checklist ui 42
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

			s := ui.UI{
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
