package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/checklist/pkg/palette"
)

// ColorOptions captures the checklist color flag.
type ColorOptions struct {
	Color string
}

// AddColorArg wires the --color flag with the palette listed in help.
func AddColorArg(cmd *cobra.Command, o *ColorOptions) {
	names := make([]string, 0, 12)
	for _, c := range palette.All() {
		names = append(names, c.Value)
	}
	cmd.Flags().StringVar(&o.Color, "color", palette.Default,
		"Checklist color, one of: "+strings.Join(names, ", ")+".")

	_ = cmd.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}
