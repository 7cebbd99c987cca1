package env

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/mvx-signer/internal/util/command"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Prints the env",
		Long: `Prints the currently applied env

Secrets (keystore password, mnemonic, passphrase, management
secret) are omitted.`,
		Run: func(cmd *cobra.Command, _ []string /* args */) {
			runEnv(cmd)
		},
	}
}

func runEnv(cmd *cobra.Command) {
	cfg, err := command.ConfigFromFlags(cmd)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	c, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal the env")
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(c))
}
