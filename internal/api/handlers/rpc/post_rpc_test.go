package rpc_test

import (
	"encoding/hex"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/test"
	"github/chapool/mvx-signer/internal/types"
	"github/chapool/mvx-signer/internal/wallet/chain"
	"github/chapool/mvx-signer/internal/wallet/transaction"
)

type rpcResponse[T any] struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Result  T      `json:"result"`
}

type errorResponse struct {
	Status int64  `json:"status"`
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func call(method string, params any) test.GenericPayload {
	payload := test.GenericPayload{
		"jsonrpc": types.JSONRPCVersion,
		"id":      1,
		"method":  method,
	}
	if params != nil {
		payload["params"] = params
	}

	return payload
}

func intent(nonce uint64) *transaction.Intent {
	return &transaction.Intent{
		Nonce:    nonce,
		Value:    "1000000000000000000",
		Receiver: test.BobAddress,
		Sender:   test.AliceAddress,
		GasPrice: 1000000000,
		GasLimit: 50000,
		ChainID:  chain.ChainIDDevnet,
		Version:  1,
	}
}

func TestPostRPCGetAddress(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/rpc", call(types.MethodGetAddress, nil), nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response rpcResponse[types.GetAddressResponse]
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, types.JSONRPCVersion, response.JSONRPC)
		assert.EqualValues(t, 1, response.ID)
		require.NotNil(t, response.Result.Address)
		assert.Equal(t, test.AliceAddress, *response.Result.Address)
	})
}

func TestPostRPCUnknownMethod(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/rpc", call("mvx_doesNotExist", nil), nil)
		require.Equal(t, http.StatusNotFound, res.Result().StatusCode)

		var response errorResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, "Method not found.", response.Title)
		assert.Equal(t, types.PublicHTTPErrorTypeMethodNotFound.String(), response.Type)
	})
}

func TestPostRPCMissingMethod(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/rpc", test.GenericPayload{"id": 1}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}

func TestPostRPCInvalidParams(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/rpc", call(types.MethodSignMessage, nil), nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response errorResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, types.PublicHTTPErrorTypeInvalidParams.String(), response.Type)
		assert.Empty(t, s.Broker.List())
	})
}

func TestPostRPCSignTransactionsApproved(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		params := map[string]any{"transactions": []*transaction.Intent{intent(7)}}
		done := test.PerformRequestAsync(t, s, "POST", "/api/v1/rpc", call(types.MethodSignTransactions, params), nil)

		pending := test.WaitForConfirmation(t, s)
		assert.Equal(t, "Transaction 1 of 1 on devnet", pending.Prompt.Title)

		approve := test.PerformRequest(t, s, "POST", "/api/v1/confirmations/"+pending.ID+"/approve", nil, test.OperatorHeaders(s))
		require.Equal(t, http.StatusOK, approve.Result().StatusCode)

		res := test.AwaitResponse(t, done)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response rpcResponse[types.SignTransactionsResponse]
		test.ParseResponseAndValidate(t, res, &response)
		require.Len(t, response.Result.Transactions, 1)

		var signed map[string]any
		require.NoError(t, json.Unmarshal([]byte(response.Result.Transactions[0]), &signed))
		assert.EqualValues(t, 7, signed["nonce"])
		assert.Equal(t, test.BobAddress, signed["receiver"])

		signature, err := hex.DecodeString(signed["signature"].(string))
		require.NoError(t, err)
		assert.Len(t, signature, 64)
	})
}

func TestPostRPCSignTransactionsRejected(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		params := map[string]any{"transactions": []*transaction.Intent{intent(1), intent(2)}}
		done := test.PerformRequestAsync(t, s, "POST", "/api/v1/rpc", call(types.MethodSignTransactions, params), nil)

		pending := test.WaitForConfirmation(t, s)
		assert.Equal(t, 1, pending.Prompt.Index)

		reject := test.PerformRequest(t, s, "POST", "/api/v1/confirmations/"+pending.ID+"/reject", nil, test.OperatorHeaders(s))
		require.Equal(t, http.StatusOK, reject.Result().StatusCode)

		res := test.AwaitResponse(t, done)
		require.Equal(t, http.StatusForbidden, res.Result().StatusCode)

		var response errorResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, "USER_REJECTED", response.Type)
		assert.Equal(t, "All transactions must be approved by the user", response.Title)

		// the second transaction is never presented
		assert.Empty(t, s.Broker.List())
	})
}

func TestPostRPCSignTransactionsUnknownChain(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		tx := intent(1)
		tx.ChainID = "Z"

		params := map[string]any{"transactions": []*transaction.Intent{tx}}
		res := test.PerformRequest(t, s, "POST", "/api/v1/rpc", call(types.MethodSignTransactions, params), nil)
		require.Equal(t, http.StatusBadGateway, res.Result().StatusCode)

		var response errorResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, "UNKNOWN_CHAIN", response.Type)
		assert.Empty(t, s.Broker.List())
	})
}

func TestPostRPCSignAuthTokenOriginHeader(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		params := map[string]any{"token": "aHR0cHM6Ly9leGFtcGxlLmNvbQ.blockhash.3600.e30"}
		headers := http.Header{"Origin": []string{"https://example.com"}}
		done := test.PerformRequestAsync(t, s, "POST", "/api/v1/rpc", call(types.MethodSignAuthToken, params), headers)

		pending := test.WaitForConfirmation(t, s)
		assert.Contains(t, pending.Prompt.String(), "https://example.com")

		approve := test.PerformRequest(t, s, "POST", "/api/v1/confirmations/"+pending.ID+"/approve", nil, test.OperatorHeaders(s))
		require.Equal(t, http.StatusOK, approve.Result().StatusCode)

		res := test.AwaitResponse(t, done)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response rpcResponse[types.SignatureResponse]
		test.ParseResponseAndValidate(t, res, &response)
		require.NotNil(t, response.Result.Signature)
		assert.Len(t, *response.Result.Signature, 128)
	})
}

func TestPostRPCSignAuthTokenWithoutOrigin(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		params := map[string]any{"token": "token"}
		res := test.PerformRequest(t, s, "POST", "/api/v1/rpc", call(types.MethodSignAuthToken, params), nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response errorResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, "Origin is required.", response.Title)
	})
}
