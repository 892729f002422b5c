package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/checklist/pkg/commands/options"
	"tableflip.dev/checklist/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	checklistID := ""

	cmd := &cobra.Command{
		Use:   "get [checklist id]",
		Short: "Show your checklists, or one checklist's items",
		Example: `
checklist get
checklist get 42 --show-id
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				checklistID = strings.TrimSpace(args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			client, overrides, err := session()
			if err != nil {
				return err
			}

			s := get.Get{
				ChecklistID: checklistID,
				ShowID:      io.ShowID,
				Client:      client,
				Overrides:   overrides,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
