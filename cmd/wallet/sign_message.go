package wallet

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/mvx-signer/internal/api"
)

func newSignMessage() *cobra.Command {
	return &cobra.Command{
		Use:   "sign-message <message>",
		Short: "Signs a message",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			withUnlockedWallet(cmd, func(ctx context.Context, s *api.Server) error {
				signature, err := s.Wallet.SignMessage(ctx, args[0])
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), signature)

				return nil
			})
		},
	}
}
