package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DiegoGarzaro/cookbook-2.0/pkg/commands/options"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ro := &options.ReceiptOptions{}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a receipt.",
		Example: `
cookbook add "Banana bread" --receipt "mash, mix, bake at 180C"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog()
			if err != nil {
				return err
			}
			s := add.Add{
				Name:    strings.Join(args, " "),
				Body:    ro.Body,
				Catalog: c,
			}
			return s.Do(context.Background())
		},
	}

	options.AddReceiptArg(cmd, ro)

	topLevel.AddCommand(cmd)
}
