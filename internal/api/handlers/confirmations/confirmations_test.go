package confirmations_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/api/router"
	"github/chapool/mvx-signer/internal/test"
	"github/chapool/mvx-signer/internal/types"
	"github/chapool/mvx-signer/internal/wallet/disclosure"
)

func TestGetConfirmationsEmpty(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/confirmations", nil, test.OperatorHeaders(s))
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.GetConfirmationsResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Empty(t, response.Confirmations)
	})
}

func TestConfirmationLifecycle(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		done := test.PerformRequestAsync(t, s, "POST", "/api/v1/wallet/sign-message", test.GenericPayload{"message": "hello"}, nil)

		pending := test.WaitForConfirmation(t, s)

		res := test.PerformRequest(t, s, "GET", "/api/v1/confirmations", nil, test.OperatorHeaders(s))
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var list types.GetConfirmationsResponse
		test.ParseResponseAndValidate(t, res, &list)
		require.Len(t, list.Confirmations, 1)

		item := list.Confirmations[0]
		assert.Equal(t, pending.ID, *item.ID)
		assert.Equal(t, disclosure.KindMessage, item.Prompt.Kind)
		assert.Contains(t, item.Text, "hello")

		res = test.PerformRequest(t, s, "POST", "/api/v1/confirmations/"+pending.ID+"/approve", nil, test.OperatorHeaders(s))
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		signed := test.AwaitResponse(t, done)
		require.Equal(t, http.StatusOK, signed.Result().StatusCode)

		var signature types.SignatureResponse
		test.ParseResponseAndValidate(t, signed, &signature)
		assert.Len(t, *signature.Signature, 128)

		// decided confirmations disappear
		res = test.PerformRequest(t, s, "POST", "/api/v1/confirmations/"+pending.ID+"/reject", nil, test.OperatorHeaders(s))
		require.Equal(t, http.StatusNotFound, res.Result().StatusCode)
	})
}

func TestRejectConfirmation(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		done := test.PerformRequestAsync(t, s, "POST", "/api/v1/wallet/sign-message", test.GenericPayload{"message": "hello"}, nil)

		pending := test.WaitForConfirmation(t, s)

		res := test.PerformRequest(t, s, "POST", "/api/v1/confirmations/"+pending.ID+"/reject", nil, test.OperatorHeaders(s))
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		signed := test.AwaitResponse(t, done)
		require.Equal(t, http.StatusForbidden, signed.Result().StatusCode)
		assert.Contains(t, signed.Body.String(), "Message must be signed by the user")
	})
}

func TestApproveUnknownConfirmation(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/confirmations/does-not-exist/approve", nil, test.OperatorHeaders(s))
		require.Equal(t, http.StatusNotFound, res.Result().StatusCode)
		assert.Contains(t, res.Body.String(), "Confirmation not found.")
	})
}

func TestDecideConfirmationRequiresOperator(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		browser := http.Header{echo.HeaderOrigin: []string{"https://evil.example"}}
		done := test.PerformRequestAsync(t, s, "POST", "/api/v1/wallet/sign-message", test.GenericPayload{"message": "hello"}, browser)

		pending := test.WaitForConfirmation(t, s)
		approvePath := "/api/v1/confirmations/" + pending.ID + "/approve"

		res := test.PerformRequest(t, s, "GET", "/api/v1/confirmations", nil, browser)
		require.Equal(t, http.StatusForbidden, res.Result().StatusCode)
		assert.Empty(t, res.Header().Get(echo.HeaderAccessControlAllowOrigin))

		res = test.PerformRequest(t, s, "POST", approvePath, nil, nil)
		require.Equal(t, http.StatusUnauthorized, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "POST", approvePath, nil, http.Header{router.HeaderOperatorSecret: []string{"wrong"}})
		require.Equal(t, http.StatusUnauthorized, res.Result().StatusCode)

		// the secret does not help a browser page
		withSecret := test.OperatorHeaders(s)
		withSecret.Set(echo.HeaderOrigin, "https://evil.example")
		res = test.PerformRequest(t, s, "POST", approvePath, nil, withSecret)
		require.Equal(t, http.StatusForbidden, res.Result().StatusCode)

		// still waiting for the operator
		require.Len(t, s.Broker.List(), 1)
		select {
		case <-done:
			t.Fatal("message was signed without an operator decision")
		default:
		}

		res = test.PerformRequest(t, s, "POST", "/api/v1/confirmations/"+pending.ID+"/reject", nil, test.OperatorHeaders(s))
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		signed := test.AwaitResponse(t, done)
		require.Equal(t, http.StatusForbidden, signed.Result().StatusCode)
	})
}
