package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/DiegoGarzaro/cookbook-2.0/pkg/commands/options"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/runner/update"
)

func addUpdate(topLevel *cobra.Command) {
	ro := &options.ReceiptOptions{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the name or text of a receipt.",
		Long: `Change the name or text of a receipt.

A flag left off entirely means "not provided": when neither --name nor
--receipt is given nothing is touched, not even the file. A flag set to
the empty string keeps the current value but still rewrites the store.`,
		Example: `
cookbook update 2 --name "Banana bread"
cookbook update 2 --receipt "mash, mix, bake at 180C"
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
			s := update.Update{ID: id, Catalog: c}
			if cmd.Flags().Changed("name") {
				s.Name = &ro.Name
			}
			if cmd.Flags().Changed("receipt") {
				s.Body = &ro.Body
			}
			return s.Do(context.Background())
		},
	}

	options.AddNameArg(cmd, ro)
	options.AddReceiptArg(cmd, ro)

	topLevel.AddCommand(cmd)
}
