package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/checklist/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	checklistID := ""
	position := 0

	cmd := &cobra.Command{
		Use:   "move <checklist id> <position>",
		Short: "Move a checklist to a new position on the dashboard",
		Example: `
checklist move 42 1
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a checklist id and a position")
			}
			checklistID = args[0]
			p, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("position must be a number, got %q", args[1])
			}
			position = p
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			client, overrides, err := session()
			if err != nil {
				return err
			}

			s := move.Move{
				ChecklistID: checklistID,
				Position:    position,
				Client:      client,
				Overrides:   overrides,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
