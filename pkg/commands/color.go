package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/checklist/pkg/runner/color"
)

func addColor(topLevel *cobra.Command) {
	checklistID := ""
	value := ""

	cmd := &cobra.Command{
		Use:   "color <checklist id> <color>",
		Short: "Change a checklist's color",
		Example: `
checklist color 42 green
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a checklist id and a color")
			}
			checklistID = args[0]
			value = args[1]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			client, overrides, err := session()
			if err != nil {
				return err
			}

			s := color.Color{
				ChecklistID: checklistID,
				Value:       value,
				Client:      client,
				Overrides:   overrides,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
