package rpc

import (
	"encoding/json"
	"net/http"

	"github.com/go-openapi/strfmt"
	"github.com/labstack/echo/v4"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/api/handlers/wallet"
	"github/chapool/mvx-signer/internal/api/httperrors"
	"github/chapool/mvx-signer/internal/types"
	"github/chapool/mvx-signer/internal/util"
)

func PostRPCRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1.POST("/rpc", postRPCHandler(s))
}

// Dispatches a single JSON-RPC call. Failures are answered with an HTTPError whose type is
// the stable error code, the same way the REST routes do.
func postRPCHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var req types.RPCRequest
		if err := util.BindAndValidateBody(c, &req); err != nil {
			return err
		}

		method := *req.Method
		log.Debug().Str("method", method).Msg("RPC call")

		var (
			result util.Validatable
			err    error
		)

		switch method {
		case types.MethodGetAddress:
			result, err = wallet.GetAddress(ctx, s)

		case types.MethodSignTransactions:
			var params types.SignTransactionsParams
			if err := bindParams(req.Params, &params); err != nil {
				return err
			}
			result, err = wallet.SignTransactions(ctx, s, &params)

		case types.MethodSignMessage:
			var params types.SignMessageParams
			if err := bindParams(req.Params, &params); err != nil {
				return err
			}
			result, err = wallet.SignMessage(ctx, s, &params)

		case types.MethodSignAuthToken:
			var params types.SignAuthTokenParams
			if err := bindParams(req.Params, &params); err != nil {
				return err
			}
			result, err = wallet.SignAuthToken(ctx, s, &params, c.Request().Header.Get(echo.HeaderOrigin))

		default:
			log.Debug().Str("method", method).Msg("Unknown RPC method")
			return httperrors.ErrNotFoundMethod
		}

		if err != nil {
			return err
		}

		if err := result.Validate(strfmt.Default); err != nil {
			log.Error().Err(err).Str("method", method).Msg("RPC result validation failed")
			return err
		}

		return c.JSON(http.StatusOK, &types.RPCResponse{
			JSONRPC: types.JSONRPCVersion,
			ID:      req.ID,
			Result:  result,
		})
	}
}

// bindParams decodes and validates raw params. Absent params decode as an empty object.
func bindParams(raw json.RawMessage, params util.Validatable) error {
	if len(raw) == 0 || string(raw) == "null" {
		raw = json.RawMessage("{}")
	}

	if err := json.Unmarshal(raw, params); err != nil {
		return httperrors.NewHTTPErrorWithDetail(http.StatusBadRequest, types.PublicHTTPErrorTypeInvalidParams, "Invalid params.", err.Error())
	}

	if err := params.Validate(strfmt.Default); err != nil {
		return httperrors.NewHTTPErrorWithDetail(http.StatusBadRequest, types.PublicHTTPErrorTypeInvalidParams, "Invalid params.", err.Error())
	}

	return nil
}
