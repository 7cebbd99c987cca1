package wallet

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/mvx-signer/internal/wallet/address"
	"github/chapool/mvx-signer/internal/wallet/seed"
)

// DeriveAccountAddress derives the account address from the unlocked seed.
func DeriveAccountAddress(ctx context.Context, seedManager seed.Manager, addressService address.Service, path string) (string, error) {
	s := seedManager.GetSeed()
	if s == nil {
		return "", errors.New("seed not initialized")
	}
	defer clear(s)

	addr, err := addressService.DeriveAddress(ctx, s, path)
	if err != nil {
		return "", errors.Wrap(err, "failed to derive account address")
	}

	return addr, nil
}

// VerifyAddress compares the address derived from the unlocked seed with the stored one.
// An empty stored address cannot be verified and is accepted.
func VerifyAddress(ctx context.Context, seedManager seed.Manager, addressService address.Service, path string, stored string) (bool, error) {
	log := log.With().Str("component", "address_verification").Logger()

	derived, err := DeriveAccountAddress(ctx, seedManager, addressService, path)
	if err != nil {
		log.Error().Err(err).Msg("Failed to derive verification address")
		return false, err
	}

	if stored == "" {
		log.Warn().Msg("Keystore has no stored address, skipping verification")
		return true, nil
	}

	if derived != stored {
		log.Warn().
			Str("derived", derived).
			Str("stored", stored).
			Msg("Address verification failed: addresses do not match")
		return false, nil
	}

	return true, nil
}
