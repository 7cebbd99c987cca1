package keystore

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/util/command"
	"github/chapool/mvx-signer/internal/wallet"
)

func newCreate() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Creates a new keystore",
		Long: `Generates a new 24 word mnemonic and stores it encrypted
at SERVER_SIGNER_KEYSTORE_PATH.

The mnemonic is printed once. Write it down, it is the only
way to recover the account.`,
		Run: func(cmd *cobra.Command, _ []string /* args */) {
			runCreate(cmd)
		},
	}
}

func runCreate(cmd *cobra.Command) {
	cfg, err := command.ConfigFromFlags(cmd)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	err = command.WithServer(cmd.Context(), cfg, func(ctx context.Context, s *api.Server) error {
		prompt := passwordPrompt()
		if prompt == nil {
			return errors.New("keystore create requires an interactive terminal")
		}

		ks, err := wallet.CreateKeystore(ctx, s.Keystore, s.Addresses, s.Config.Signer.DerivationPath, s.Config.Signer.Passphrase, prompt, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		log.Info().Str("path", s.Keystore.Path()).Str("address", ks.Address).Msg("Keystore created")

		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create keystore")
	}
}
