package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/DiegoGarzaro/cookbook-2.0/pkg/catalog"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/runner/menu"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "cookbook",
		Short: "A personal recipe catalog on the command line.",
		Long: `Diego's Cookbook keeps short recipes ("receipts") in a flat text
file. Run with no arguments for the interactive menu, or use the
subcommands directly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog()
			if err != nil {
				return err
			}
			m := menu.Menu{Catalog: c}
			return m.Do(context.Background())
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addList(topLevel)
	addAdd(topLevel)
	addView(topLevel)
	addUpdate(topLevel)
	addDelete(topLevel)
	addVersion(topLevel)
}

func loadCatalog() (*catalog.Catalog, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return catalog.Load(p)
}
