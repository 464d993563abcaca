package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/DiegoGarzaro/cookbook-2.0/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Display all receipts.",
		Example: `
cookbook list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog()
			if err != nil {
				return err
			}
			s := list.List{Catalog: c}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
