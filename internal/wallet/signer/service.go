package signer

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"strconv"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github/chapool/mvx-signer/internal/metrics"
	"github/chapool/mvx-signer/internal/util"
	"github/chapool/mvx-signer/internal/wallet/address"
	"github/chapool/mvx-signer/internal/wallet/errs"
	"github/chapool/mvx-signer/internal/wallet/transaction"
)

type service struct {
	keys    KeyProvider
	metrics *metrics.Service
}

// NewService creates a new SignerService
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(keys KeyProvider, m *metrics.Service) Service {
	return &service{
		keys:    keys,
		metrics: m,
	}
}

func (s *service) Address(ctx context.Context) (string, error) {
	kp, err := s.keys.Derive(ctx)
	if err != nil {
		return "", err
	}
	defer kp.Wipe()

	return kp.Address, nil
}

// SignTransaction signs the intent. The sender must be the account address.
func (s *service) SignTransaction(ctx context.Context, intent *transaction.Intent) (*transaction.Signed, error) {
	data, err := intent.SigningBytes()
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidIntent, err)
	}

	kp, err := s.keys.Derive(ctx)
	if err != nil {
		return nil, err
	}
	defer kp.Wipe()

	if intent.Sender != kp.Address {
		return nil, errs.Newf(errs.ErrInvalidIntent, "Sender %s is not the account address", intent.Sender)
	}

	signature := kp.Sign(data)
	s.metrics.ObserveSignature("transaction")

	util.LogFromContext(ctx).Debug().
		Uint64("nonce", intent.Nonce).
		Str("chain_id", intent.ChainID).
		Msg("Signed transaction")

	return &transaction.Signed{
		Intent:    *intent,
		Signature: hex.EncodeToString(signature),
	}, nil
}

func (s *service) SignMessage(ctx context.Context, message []byte) ([]byte, error) {
	kp, err := s.keys.Derive(ctx)
	if err != nil {
		return nil, err
	}
	defer kp.Wipe()

	signature := kp.Sign(MessageHash(message))
	s.metrics.ObserveSignature("message")

	return signature, nil
}

func (s *service) SignAuthToken(ctx context.Context, token string) ([]byte, error) {
	if token == "" {
		return nil, errs.New(errs.ErrInvalidIntent, "Token is empty")
	}

	kp, err := s.keys.Derive(ctx)
	if err != nil {
		return nil, err
	}
	defer kp.Wipe()

	signature := kp.Sign(MessageHash([]byte(kp.Address + token)))
	s.metrics.ObserveSignature("auth_token")

	return signature, nil
}

// MessageHash is keccak256(prefix + len(message) + message).
func MessageHash(message []byte) []byte {
	return crypto.Keccak256(
		[]byte(MessagePrefix),
		[]byte(strconv.Itoa(len(message))),
		message,
	)
}

// VerifyMessage checks a message signature produced by SignMessage.
func VerifyMessage(addr string, message []byte, signature []byte) (bool, error) {
	pubKey, err := address.Decode(addr)
	if err != nil {
		return false, errors.Wrap(err, "failed to decode address")
	}

	return ed25519.Verify(pubKey, MessageHash(message), signature), nil
}
