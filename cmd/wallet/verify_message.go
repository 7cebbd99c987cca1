package wallet

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/mvx-signer/internal/wallet/signer"
)

func newVerifyMessage() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-message <address> <message> <signature>",
		Short: "Verifies a signed message",
		Long: `Verifies a hex signature produced by sign-message for
address. Does not need the keystore.`,
		Args: cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			valid, err := verifyMessage(args[0], args[1], args[2])
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to verify message")
			}

			if !valid {
				log.Fatal().Msg("Invalid signature")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Signature OK")
		},
	}
}

func verifyMessage(addr string, message string, signatureHex string) (bool, error) {
	signature, err := hex.DecodeString(signatureHex)
	if err != nil {
		return false, errors.Wrap(err, "signature is not hex")
	}

	return signer.VerifyMessage(addr, []byte(message), signature)
}
