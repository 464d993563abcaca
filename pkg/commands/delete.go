package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/DiegoGarzaro/cookbook-2.0/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a receipt for good.",
		Example: `
cookbook delete 2
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := loadCatalog()
			if err != nil {
				return err
			}
			s := remove.Remove{ID: id, Catalog: c}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
