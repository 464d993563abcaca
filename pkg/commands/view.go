package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/DiegoGarzaro/cookbook-2.0/pkg/runner/view"
)

func addView(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "view <id>",
		Short: "View the full text of one receipt.",
		Example: `
cookbook view 2
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
			s := view.View{ID: id, Catalog: c}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid receipt id %q", arg)
	}
	return id, nil
}
