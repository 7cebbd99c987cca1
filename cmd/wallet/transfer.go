package wallet

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/wallet/amount"
	"github/chapool/mvx-signer/internal/wallet/chain"
	"github/chapool/mvx-signer/internal/wallet/fee"
	"github/chapool/mvx-signer/internal/wallet/transaction"
)

type TransferFlags struct {
	ChainID  string
	To       string
	Amount   string
	Nonce    uint64
	GasPrice uint64
	GasLimit uint64
	Data     string
}

func newTransfer() *cobra.Command {
	var flags TransferFlags

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Signs a transfer of the native coin",
		Long: `Builds a transfer of --amount (in display units, e.g. 1.5)
to --to, asks for approval and prints the signed transaction.

Gas price and limit default to the minimum the network
accepts for the transaction.`,
		Run: func(cmd *cobra.Command, _ []string /* args */) {
			withUnlockedWallet(cmd, func(ctx context.Context, s *api.Server) error {
				network, err := s.Registry.Resolve(flags.ChainID)
				if err != nil {
					return err
				}

				params, err := s.Network.GetNetworkParameters(ctx, network)
				if err != nil {
					return err
				}

				sender, err := s.Wallet.GetAddress(ctx)
				if err != nil {
					return err
				}

				intent, err := BuildTransfer(params, sender, flags)
				if err != nil {
					return err
				}

				signed, err := s.Wallet.SignTransactions(ctx, []*transaction.Intent{intent})
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), signed[0])

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&flags.ChainID, "chain", chain.ChainIDMainnet, "Chain id (1, D or T).")
	cmd.Flags().StringVar(&flags.To, "to", "", "Receiver address.")
	cmd.Flags().StringVar(&flags.Amount, "amount", "", "Amount of the native coin, in display units.")
	cmd.Flags().Uint64Var(&flags.Nonce, "nonce", 0, "Account nonce.")
	cmd.Flags().Uint64Var(&flags.GasPrice, "gas-price", 0, "Gas price, defaults to the network minimum.")
	cmd.Flags().Uint64Var(&flags.GasLimit, "gas-limit", 0, "Gas limit, defaults to the minimum for the data.")
	cmd.Flags().StringVar(&flags.Data, "data", "", "Optional note.")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("nonce")

	return cmd
}

// BuildTransfer creates the intent of a native transfer from sender.
func BuildTransfer(params *chain.Parameters, sender string, flags TransferFlags) (*transaction.Intent, error) {
	value, err := amount.Parse(flags.Amount, params.Decimals)
	if err != nil {
		return nil, err
	}
	if value.Sign() < 0 {
		return nil, errors.Errorf("amount %s must not be negative", flags.Amount)
	}

	intent := &transaction.Intent{
		Nonce:    flags.Nonce,
		Value:    value.String(),
		Receiver: flags.To,
		Sender:   sender,
		GasPrice: flags.GasPrice,
		GasLimit: flags.GasLimit,
		ChainID:  params.ChainID,
		Version:  1,
	}

	if flags.Data != "" {
		intent.Data = []byte(flags.Data)
	}

	if intent.GasPrice == 0 {
		intent.GasPrice = params.MinGasPrice
	}

	if intent.GasLimit == 0 {
		intent.GasLimit = fee.BaseGas(intent, params)
	}

	return intent, nil
}
