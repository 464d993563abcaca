// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ReceiptOptions captures the receipt body flag used by add and update.
type ReceiptOptions struct {
	Name string
	Body string
}

// AddReceiptArg wires the receipt body flag on the provided command.
func AddReceiptArg(cmd *cobra.Command, o *ReceiptOptions) {
	cmd.Flags().StringVarP(&o.Body, "receipt", "r", "",
		"The receipt text.")
}

// AddNameArg wires the name flag used by update.
func AddNameArg(cmd *cobra.Command, o *ReceiptOptions) {
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		"The receipt name.")
}
