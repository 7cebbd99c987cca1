package keystore

import (
	"os"

	"github.com/spf13/cobra"
	"github/chapool/mvx-signer/internal/util/command"
	"github/chapool/mvx-signer/internal/wallet"
	"golang.org/x/term"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("keystore",
		newCreate(),
		newVerify(),
	)
}

// passwordPrompt returns the terminal prompt, or nil when stdin is not a terminal.
func passwordPrompt() wallet.PasswordPrompt {
	if !term.IsTerminal(int(os.Stdin.Fd())) { //nolint:gosec
		return nil
	}

	return wallet.TerminalPrompt
}
