package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/mvx-signer/internal/metrics"
	"github/chapool/mvx-signer/internal/util"
	"github/chapool/mvx-signer/internal/wallet/chain"
	"github/chapool/mvx-signer/internal/wallet/errs"
	"golang.org/x/time/rate"
)

const (
	endpointNetworkConfig = "network_config"
	endpointTokens        = "tokens"
	endpointCollections   = "collections"

	responseCodeSuccessful = "successful"
	maxResponseBytes       = 1 << 20
)

var ErrNotFound = errors.New("not found")

type client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *metrics.Service
	cfg        Config
}

// NewClient creates the network API client. m may be nil.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewClient(cfg Config, m *metrics.Service) Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	if cfg.AllowInsecure {
		log.Warn().Msg("Insecure network API addresses are allowed")
	}

	return &client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, burst),
		metrics:    m,
		cfg:        cfg,
	}
}

func (c *client) GetNetworkParameters(ctx context.Context, network *chain.Network) (*chain.Parameters, error) {
	var resp networkConfigResponse
	if err := c.get(ctx, endpointNetworkConfig, network.APIAddress, "network/config", &resp); err != nil {
		return nil, errs.Wrap(errs.ErrNetworkUnavailable, err)
	}

	if resp.Code != responseCodeSuccessful {
		return nil, errs.Wrap(errs.ErrNetworkUnavailable, errors.Errorf("unexpected response code %q: %s", resp.Code, resp.Error))
	}

	cfg := resp.Data.Config
	if cfg.ChainID != network.ChainID {
		return nil, errs.Wrap(errs.ErrNetworkUnavailable, errors.Errorf("API reports chain id %q, expected %q", cfg.ChainID, network.ChainID))
	}

	if cfg.MinGasLimit == 0 || cfg.GasPriceModifier == "" {
		return nil, errs.Wrap(errs.ErrNetworkUnavailable, errors.New("incomplete network configuration"))
	}

	params := &chain.Parameters{
		Network:                *network,
		MinGasLimit:            cfg.MinGasLimit,
		MinGasPrice:            cfg.MinGasPrice,
		GasPerDataByte:         cfg.GasPerDataByte,
		GasPriceModifier:       cfg.GasPriceModifier,
		ExtraGasLimitGuardedTx: cfg.ExtraGasLimitGuardedTx,
	}
	if cfg.Denomination > 0 {
		params.Decimals = cfg.Denomination
	}

	return params, nil
}

func (c *client) GetToken(ctx context.Context, network *chain.Network, identifier string) (*Token, error) {
	var token Token
	if err := c.get(ctx, endpointTokens, network.APIAddress, "tokens/"+url.PathEscape(identifier), &token); err != nil {
		return nil, err
	}

	return &token, nil
}

func (c *client) GetCollection(ctx context.Context, network *chain.Network, collection string) (*Collection, error) {
	var result Collection
	if err := c.get(ctx, endpointCollections, network.APIAddress, "collections/"+url.PathEscape(collection), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *client) get(ctx context.Context, endpoint string, apiAddress string, path string, out any) (err error) {
	log := util.LogFromContext(ctx).With().Str("component", "provider").Str("endpoint", endpoint).Logger()

	started := time.Now()
	defer func() { c.metrics.ObserveAPICall(endpoint, started, err) }()

	target, err := c.resolve(apiAddress, path)
	if err != nil {
		return err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "rate limiter")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Msg("Network API request failed")
		return errors.Wrap(err, "http request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.Wrap(err, "read response")
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.Wrapf(ErrNotFound, "%s", path)
	case resp.StatusCode != http.StatusOK:
		log.Debug().Int("status", resp.StatusCode).Msg("Network API returned an error status")
		return errors.Errorf("http status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "unmarshal response")
	}

	return nil
}

func (c *client) resolve(apiAddress string, path string) (string, error) {
	base, err := url.Parse(apiAddress)
	if err != nil || base.Host == "" {
		return "", errors.Errorf("invalid API address %q", apiAddress)
	}

	switch base.Scheme {
	case "https":
	case "http":
		if !c.cfg.AllowInsecure {
			return "", errors.Errorf("refusing insecure API address %q", apiAddress)
		}
	default:
		return "", errors.Errorf("unsupported API address scheme %q", base.Scheme)
	}

	return strings.TrimRight(base.String(), "/") + "/" + path, nil
}
