package wallet

import (
	"context"
	"encoding/hex"
	"math/big"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github/chapool/mvx-signer/internal/metrics"
	"github/chapool/mvx-signer/internal/util"
	"github/chapool/mvx-signer/internal/wallet/calldata"
	"github/chapool/mvx-signer/internal/wallet/chain"
	"github/chapool/mvx-signer/internal/wallet/confirm"
	"github/chapool/mvx-signer/internal/wallet/disclosure"
	"github/chapool/mvx-signer/internal/wallet/errs"
	"github/chapool/mvx-signer/internal/wallet/fee"
	"github/chapool/mvx-signer/internal/wallet/provider"
	"github/chapool/mvx-signer/internal/wallet/signer"
	"github/chapool/mvx-signer/internal/wallet/token"
	"github/chapool/mvx-signer/internal/wallet/transaction"
)

type service struct {
	registry chain.Registry
	client   provider.Client
	signer   signer.Service
	approver confirm.Approver
	metrics  *metrics.Service
	config   Config
}

// NewService creates a new WalletService
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(
	registry chain.Registry,
	client provider.Client,
	signerService signer.Service,
	approver confirm.Approver,
	m *metrics.Service,
	cfg Config,
) Service {
	return &service{
		registry: registry,
		client:   client,
		signer:   signerService,
		approver: approver,
		metrics:  m,
		config:   cfg,
	}
}

func (s *service) GetAddress(ctx context.Context) (string, error) {
	return s.signer.Address(ctx)
}

// prepared is a validated intent ready to be presented.
type prepared struct {
	intent    *transaction.Intent
	operation *calldata.Operation
	fee       *big.Int
}

// SignTransactions validates the whole batch before the first prompt, then presents the
// transactions one by one.
func (s *service) SignTransactions(ctx context.Context, intents []*transaction.Intent) ([]string, error) {
	log := util.LogFromContext(ctx).With().Int("batch_size", len(intents)).Logger()
	ctx = log.WithContext(ctx)

	if len(intents) == 0 {
		return nil, errs.ErrEmptyBatch
	}

	for i, intent := range intents {
		if intent == nil {
			return nil, errs.Newf(errs.ErrInvalidIntent, "Transaction %d is missing", i+1)
		}
	}

	chainID := intents[0].ChainID
	for _, intent := range intents[1:] {
		if intent.ChainID != chainID {
			return nil, errs.ErrMixedChain
		}
	}

	network, err := s.registry.Resolve(chainID)
	if err != nil {
		return nil, err
	}

	batch := make([]*prepared, len(intents))
	for i, intent := range intents {
		if err := intent.Validate(); err != nil {
			return nil, err
		}

		op, err := calldata.Decode(intent)
		if err != nil {
			return nil, err
		}

		batch[i] = &prepared{intent: intent, operation: op}
	}

	account, err := s.signer.Address(ctx)
	if err != nil {
		return nil, err
	}

	for i, p := range batch {
		if p.intent.Sender != account {
			return nil, errs.Newf(errs.ErrInvalidIntent, "Transaction %d: sender %s is not the account address", i+1, p.intent.Sender)
		}
	}

	params, err := s.client.GetNetworkParameters(ctx, network)
	if err != nil {
		return nil, err
	}

	for _, p := range batch {
		if p.fee, err = fee.Compute(p.intent, params); err != nil {
			return nil, err
		}
	}

	prompts, err := s.buildDisclosures(ctx, &params.Network, batch)
	if err != nil {
		return nil, err
	}

	signed := make([]string, 0, len(batch))
	tasks := make([]confirm.Task, len(batch))
	for i, p := range batch {
		tasks[i] = confirm.Task{
			Prompt: prompts[i],
			OnApprove: func(ctx context.Context) error {
				tx, err := s.signer.SignTransaction(ctx, p.intent)
				if err != nil {
					return err
				}

				out, err := tx.JSON()
				if err != nil {
					return errors.Wrap(err, "failed to encode signed transaction")
				}

				signed = append(signed, out)

				return nil
			},
		}
	}

	if err := confirm.NewSequencer(s.approver, s.metrics).Run(ctx, tasks); err != nil {
		return nil, err
	}

	log.Info().Str("chain_id", chainID).Msg("Signed transaction batch")

	return signed, nil
}

func (s *service) buildDisclosures(ctx context.Context, network *chain.Network, batch []*prepared) ([]*disclosure.Disclosure, error) {
	resolver := token.NewBatchResolver(token.NewResolver(s.client))

	prompts := make([]*disclosure.Disclosure, len(batch))
	for i, p := range batch {
		metadata := make([]*token.Metadata, len(p.operation.Transfers))
		for j := range p.operation.Transfers {
			m, err := resolver.Resolve(ctx, network, &p.operation.Transfers[j])
			if err != nil {
				return nil, err
			}
			metadata[j] = m
		}

		d, err := disclosure.Build(disclosure.Input{
			Index:     i + 1,
			Total:     len(batch),
			Intent:    p.intent,
			Operation: p.operation,
			Metadata:  metadata,
			Fee:       p.fee,
			Network:   network,
		})
		if err != nil {
			return nil, err
		}

		prompts[i] = d
	}

	return prompts, nil
}

func (s *service) SignMessage(ctx context.Context, message string) (string, error) {
	var signature []byte

	task := confirm.Task{
		Prompt: disclosure.ForMessage(message),
		OnApprove: func(ctx context.Context) error {
			var err error
			signature, err = s.signer.SignMessage(ctx, []byte(message))
			return err
		},
	}

	if err := confirm.NewSequencer(s.approver, s.metrics).Run(ctx, []confirm.Task{task}); err != nil {
		return "", err
	}

	return hex.EncodeToString(signature), nil
}

func (s *service) SignAuthToken(ctx context.Context, origin string, token string) (string, error) {
	log := util.LogFromContext(ctx).With().Str("origin", origin).Logger()

	if token == "" {
		return "", errs.New(errs.ErrInvalidIntent, "Token is empty")
	}

	if !s.originAllowed(origin) {
		log.Warn().Msg("Auth token requested by origin outside the allow-list")
		s.metrics.ObserveDecision(string(disclosure.KindAuthToken), false)

		return "", errs.Newf(errs.ErrUserRejected, "Origin %s is not allowed to request authentication tokens", origin)
	}

	var signature []byte

	task := confirm.Task{
		Prompt: disclosure.ForAuthToken(origin, token),
		OnApprove: func(ctx context.Context) error {
			var err error
			signature, err = s.signer.SignAuthToken(ctx, token)
			return err
		},
	}

	if err := confirm.NewSequencer(s.approver, s.metrics).Run(log.WithContext(ctx), []confirm.Task{task}); err != nil {
		return "", err
	}

	return hex.EncodeToString(signature), nil
}

func (s *service) originAllowed(origin string) bool {
	if len(s.config.AllowedOrigins) == 0 {
		return origin != ""
	}

	normalized, ok := NormalizeOrigin(origin)
	if !ok {
		return false
	}

	for _, allowed := range s.config.AllowedOrigins {
		if allowed == "*" {
			return true
		}

		if a, ok := NormalizeOrigin(allowed); ok && a == normalized {
			return true
		}
	}

	return false
}

// NormalizeOrigin reduces an origin or URL to lowercase scheme://host[:port].
func NormalizeOrigin(origin string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(origin))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}

	return strings.ToLower(u.Scheme + "://" + u.Host), true
}
