package main

import (
	"os"
	"ur/cmd"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := cmd.Root().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
