package wallet

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/mvx-signer/internal/api"
)

func newSignAuthToken() *cobra.Command {
	return &cobra.Command{
		Use:   "sign-auth-token <origin> <token>",
		Short: "Signs a native authentication token for origin",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			withUnlockedWallet(cmd, func(ctx context.Context, s *api.Server) error {
				signature, err := s.Wallet.SignAuthToken(ctx, args[0], args[1])
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), signature)

				return nil
			})
		},
	}
}
