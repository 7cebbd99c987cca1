package keystore

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/util/command"
)

func newVerify() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verifies the keystore password and passphrase",
		Long: `Decrypts the keystore, derives the account and compares
it with the address stored in the keystore. Prints the
address on success.`,
		Run: func(cmd *cobra.Command, _ []string /* args */) {
			runVerify(cmd)
		},
	}
}

func runVerify(cmd *cobra.Command) {
	cfg, err := command.ConfigFromFlags(cmd)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// verify the keystore even if a development mnemonic is configured
	cfg.Signer.Mnemonic = ""

	err = command.WithServer(cmd.Context(), cfg, func(ctx context.Context, s *api.Server) error {
		if err := s.Unlock(ctx, passwordPrompt()); err != nil {
			return err
		}

		addr, err := s.Wallet.GetAddress(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Keystore OK: %s\n", addr)

		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to verify keystore")
	}
}
