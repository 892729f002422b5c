package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/checklist/pkg/runner/logout"
)

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, overrides, err := session()
			if err != nil {
				return err
			}

			s := logout.Logout{Overrides: overrides}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
