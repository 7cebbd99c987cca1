package wallet

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/mvx-signer/internal/api"
)

func newAddress() *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Prints the account address",
		Run: func(cmd *cobra.Command, _ []string /* args */) {
			withUnlockedWallet(cmd, func(ctx context.Context, s *api.Server) error {
				addr, err := s.Wallet.GetAddress(ctx)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), addr)

				return nil
			})
		},
	}
}
