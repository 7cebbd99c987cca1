package common_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/test"
)

func TestGetReadyReadiness(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/ready", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		require.Equal(t, "Ready.", res.Body.String())
	})
}

func TestGetReadyReadinessBroken(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		// forcefully remove an initialized component to check if ready state works
		s.Wallet = nil

		res := test.PerformRequest(t, s, "GET", "/-/ready", nil, nil)
		require.Equal(t, 521, res.Result().StatusCode)
		require.Equal(t, "Not ready.", res.Body.String())
	})
}

func TestGetReadyLockedNotReady(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		s.Seed.Clear()

		res := test.PerformRequest(t, s, "GET", "/-/ready", nil, nil)
		require.Equal(t, 521, res.Result().StatusCode)
		require.Equal(t, "Not ready.", res.Body.String())
	})
}

func TestGetHealthy(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequestWithParams(t, s, "GET", "/-/healthy", nil, nil, map[string]string{
			"mgmt-secret": s.Config.Management.Secret,
		})
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		assert.Contains(t, res.Body.String(), "Wallet: unlocked")
		assert.Contains(t, res.Body.String(), "Network devnet: ok")
		assert.Contains(t, res.Body.String(), "Probes succeeded.")
	})
}

func TestGetHealthyWrongSecret(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequestWithParams(t, s, "GET", "/-/healthy", nil, nil, map[string]string{
			"mgmt-secret": "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, res.Result().StatusCode)
	})
}

func TestGetHealthyNetworkDown(t *testing.T) {
	cfg := test.NewTestConfig(t, "http://127.0.0.1:1")

	test.WithTestServerConfigurable(t, cfg, func(s *api.Server) {
		res := test.PerformRequestWithParams(t, s, "GET", "/-/healthy", nil, nil, map[string]string{
			"mgmt-secret": s.Config.Management.Secret,
		})
		require.Equal(t, http.StatusServiceUnavailable, res.Result().StatusCode)
		assert.Contains(t, res.Body.String(), "Network devnet: unreachable")
	})
}
