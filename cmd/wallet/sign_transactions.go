package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/wallet/transaction"
)

const fileFlag = "file"

func newSignTransactions() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "sign-transactions",
		Short: "Signs a batch of transactions",
		Long: `Reads a JSON array of transactions from --file, asks for
the approval of each one on this terminal and prints the
signed transactions, one JSON document per line, in order.

Nothing is printed if any transaction is rejected.`,
		Run: func(cmd *cobra.Command, _ []string /* args */) {
			withUnlockedWallet(cmd, func(ctx context.Context, s *api.Server) error {
				intents, err := readIntents(file)
				if err != nil {
					return err
				}

				signed, err := s.Wallet.SignTransactions(ctx, intents)
				if err != nil {
					return err
				}

				for _, tx := range signed {
					fmt.Fprintln(cmd.OutOrStdout(), tx)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&file, fileFlag, "f", "", "JSON file holding an array of transactions.")
	_ = cmd.MarkFlagRequired(fileFlag)

	return cmd
}

func readIntents(path string) ([]*transaction.Intent, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	var intents []*transaction.Intent
	if err := json.Unmarshal(raw, &intents); err != nil {
		return nil, errors.Wrapf(err, "failed to parse transactions in %s", path)
	}

	return intents, nil
}
