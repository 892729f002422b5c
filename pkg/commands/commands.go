package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/checklist/pkg/api"
	"tableflip.dev/checklist/pkg/store"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "checklist",
		Short: base.Wrap80("Checklists on the command line, backed by a remote checklist service."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLogin(topLevel)
	addRegister(topLevel)
	addLogout(topLevel)
	addGet(topLevel)
	addCreate(topLevel)
	addDelete(topLevel)
	addColor(topLevel)
	addMove(topLevel)
	addAdd(topLevel)
	addComplete(topLevel)
	addRename(topLevel)
	addRemove(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}

// session builds the API client and override store every command shares.
// The stored bearer token rides along on the client.
func session() (*api.Client, store.Overrides, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	o, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	return api.New(cfg.APIBase(), o.Token()), o, nil
}
