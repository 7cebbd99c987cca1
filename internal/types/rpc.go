package types

import (
	"encoding/json"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
	"github/chapool/mvx-signer/internal/wallet/transaction"
)

const JSONRPCVersion = "2.0"

// Methods served by the RPC endpoint.
const (
	MethodGetAddress       = "mvx_getAddress"
	MethodSignTransactions = "mvx_signTransactions"
	MethodSignMessage      = "mvx_signMessage"
	MethodSignAuthToken    = "mvx_signAuthToken"
)

// RPCRequest is a JSON-RPC 2.0 style request.
type RPCRequest struct {
	JSONRPC string `json:"jsonrpc,omitempty"`

	// ID is echoed back in the response
	ID any `json:"id,omitempty"`

	// Required: true
	Method *string `json:"method"`

	Params json.RawMessage `json:"params,omitempty"`
}

func (m *RPCRequest) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("method", "body", m.Method); err != nil {
		res = append(res, err)
	} else if err := validate.RequiredString("method", "body", *m.Method); err != nil {
		res = append(res, err)
	}

	if m.JSONRPC != "" {
		if err := validate.EnumCase("jsonrpc", "body", m.JSONRPC, []any{JSONRPCVersion}, true); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// RPCResponse carries the result of a successful call.
type RPCResponse struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id,omitempty"`
	Result  any    `json:"result"`
}

func (m *RPCResponse) Validate(_ strfmt.Registry) error {
	return nil
}

// SignTransactionsParams are the params of mvx_signTransactions.
type SignTransactionsParams struct {
	// Required: true
	// Min Items: 1
	Transactions []*transaction.Intent `json:"transactions"`
}

func (m *SignTransactionsParams) Validate(_ strfmt.Registry) error {
	if err := validate.Required("transactions", "body", m.Transactions); err != nil {
		return err
	}

	for i, tx := range m.Transactions {
		if tx == nil {
			return errors.Required(indexPath("transactions", i), "body", nil)
		}
	}

	return nil
}

// SignMessageParams are the params of mvx_signMessage.
type SignMessageParams struct {
	// Required: true
	Message *string `json:"message"`
}

func (m *SignMessageParams) Validate(_ strfmt.Registry) error {
	if err := validate.Required("message", "body", m.Message); err != nil {
		return err
	}

	return nil
}

// SignAuthTokenParams are the params of mvx_signAuthToken. Origin is only honored without an Origin header.
type SignAuthTokenParams struct {
	Origin string `json:"origin,omitempty"`

	// Required: true
	Token *string `json:"token"`
}

func (m *SignAuthTokenParams) Validate(_ strfmt.Registry) error {
	if err := validate.Required("token", "body", m.Token); err != nil {
		return err
	}

	if err := validate.RequiredString("token", "body", *m.Token); err != nil {
		return err
	}

	return nil
}

// GetAddressResponse is the result of mvx_getAddress.
type GetAddressResponse struct {
	// Required: true
	Address *string `json:"address"`
}

func (m *GetAddressResponse) Validate(_ strfmt.Registry) error {
	if err := validate.Required("address", "body", m.Address); err != nil {
		return err
	}

	return nil
}

// SignTransactionsResponse holds the signed transactions as JSON strings, in request order.
type SignTransactionsResponse struct {
	// Required: true
	Transactions []string `json:"transactions"`
}

func (m *SignTransactionsResponse) Validate(_ strfmt.Registry) error {
	if err := validate.Required("transactions", "body", m.Transactions); err != nil {
		return err
	}

	return nil
}

// SignatureResponse is the result of message and auth token signatures.
type SignatureResponse struct {
	// Required: true
	Signature *string `json:"signature"`
}

func (m *SignatureResponse) Validate(_ strfmt.Registry) error {
	if err := validate.Required("signature", "body", m.Signature); err != nil {
		return err
	}

	return nil
}
