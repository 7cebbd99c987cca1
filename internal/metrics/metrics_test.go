package metrics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mvx-signer/internal/metrics"
)

func TestServiceRecords(t *testing.T) {
	s, err := metrics.New()
	require.NoError(t, err)

	s.ObserveAPICall("network_config", time.Now(), nil)
	s.ObserveDecision("transaction", true)
	s.ObserveDecision("transaction", false)
	s.ObserveSignature("message")
	s.SetPending(2)

	count, err := testutil.GatherAndCount(s.Registry,
		"signer_network_api_calls_total",
		"signer_confirmation_decisions_total",
		"signer_signer_signatures_total",
		"signer_confirmation_pending",
	)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestNilServiceIsNoop(t *testing.T) {
	var s *metrics.Service

	assert.NotPanics(t, func() {
		s.ObserveAPICall("tokens", time.Now(), errors.New("boom"))
		s.ObserveDecision("message", true)
		s.ObserveSignature("message")
		s.SetPending(1)
	})
}

func TestClassifyError(t *testing.T) {
	assert.Equal(t, "ok", metrics.ClassifyError(nil))
	assert.Equal(t, "timeout", metrics.ClassifyError(context.DeadlineExceeded))
	assert.Equal(t, "rate_limited", metrics.ClassifyError(errors.New("http status 429")))
	assert.Equal(t, "server_error", metrics.ClassifyError(errors.New("http status 502")))
	assert.Equal(t, "network_error", metrics.ClassifyError(errors.New("dial tcp: connection refused")))
	assert.Equal(t, "client_error", metrics.ClassifyError(errors.New("http status 404")))
}
