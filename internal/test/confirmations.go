package test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/api/router"
	"github/chapool/mvx-signer/internal/wallet/confirm"
)

// PerformRequestAsync performs the request in a goroutine, for routes blocking on a confirmation.
func PerformRequestAsync(t *testing.T, s *api.Server, method string, path string, body any, headers http.Header) <-chan *httptest.ResponseRecorder {
	t.Helper()

	done := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		done <- PerformRequest(t, s, method, path, body, headers)
	}()

	return done
}

// WaitForConfirmation waits until exactly one confirmation is pending and returns it.
func WaitForConfirmation(t *testing.T, s *api.Server) confirm.Pending {
	t.Helper()

	var pending []confirm.Pending
	require.Eventually(t, func() bool {
		pending = s.Broker.List()
		return len(pending) == 1
	}, 5*time.Second, 5*time.Millisecond, "no confirmation became pending")

	return pending[0]
}

// AwaitResponse returns the recorder of an async request.
func AwaitResponse(t *testing.T, done <-chan *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	t.Helper()

	select {
	case res := <-done:
		return res
	case <-time.After(5 * time.Second):
		require.FailNow(t, "request did not complete")
		return nil
	}
}

// OperatorHeaders authenticate a request to the confirmation endpoints.
func OperatorHeaders(s *api.Server) http.Header {
	return http.Header{router.HeaderOperatorSecret: []string{s.Config.Confirmation.OperatorSecret}}
}
