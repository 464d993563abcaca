package main

import (
	"os"

	"github.com/DiegoGarzaro/cookbook-2.0/pkg/commands"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/logging"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		logging.Default().Error().Err(err).Msg("error during command execution")
		os.Exit(1)
	}
}
