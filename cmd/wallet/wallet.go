package wallet

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/util/command"
	"github/chapool/mvx-signer/internal/wallet"
	"golang.org/x/term"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("wallet",
		newAddress(),
		newSignTransactions(),
		newSignMessage(),
		newSignAuthToken(),
		newTransfer(),
		newVerifyMessage(),
	)
}

// withUnlockedWallet runs f with an unlocked server whose confirmations are prompted on
// this terminal.
func withUnlockedWallet(cmd *cobra.Command, f func(ctx context.Context, s *api.Server) error) {
	cfg, err := command.ConfigFromFlags(cmd)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	cfg.Confirmation.Interactive = true

	err = command.WithServer(cmd.Context(), cfg, func(ctx context.Context, s *api.Server) error {
		var prompt wallet.PasswordPrompt
		if term.IsTerminal(int(os.Stdin.Fd())) { //nolint:gosec
			prompt = wallet.TerminalPrompt
		}

		if err := s.Unlock(ctx, prompt); err != nil {
			return err
		}

		return f(ctx, s)
	})
	if err != nil {
		log.Fatal().Err(err).Str("command", cmd.Name()).Msg("Command failed")
	}
}
