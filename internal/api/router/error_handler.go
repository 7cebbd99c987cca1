package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mvx-signer/internal/api/httperrors"
	"github/chapool/mvx-signer/internal/types"
	"github/chapool/mvx-signer/internal/util"
)

type HTTPErrorHandlerConfig struct {
	HideInternalServerErrorDetails bool
}

// HTTPErrorHandlerWithConfig renders every error returned by a handler as an HTTPError.
// Wallet errors keep their stable code as type.
func HTTPErrorHandlerWithConfig(config HTTPErrorHandlerConfig) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		log := util.LogFromEchoContext(c)

		var he *httperrors.HTTPError
		var echoErr *echo.HTTPError

		if errors.As(err, &he) {
			// as is
		} else if walletErr, ok := httperrors.FromWalletError(err); ok {
			he = walletErr
		} else if errors.As(err, &echoErr) {
			he = httperrors.NewFromEcho(echoErr)

			if echoErr.Code == http.StatusBadRequest {
				if msg, ok := echoErr.Message.(string); ok {
					he.Detail = msg
				}
			}
			if echoErr.Internal != nil {
				he.Internal = echoErr.Internal
			}
		} else {
			he = httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusInternalServerError))
			he.Internal = err
		}

		code := int(*he.Code)
		if code >= http.StatusInternalServerError {
			log.Error().Err(err).Int("status", code).Msg("Request failed")

			if config.HideInternalServerErrorDetails && he.Detail != "" {
				he = httperrors.NewHTTPError(code, types.PublicHTTPErrorType(*he.Type), *he.Title)
			}
		} else {
			log.Debug().Err(err).Int("status", code).Msg("Request failed")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, he)
		}

		if err != nil {
			log.Warn().Err(err).AnErr("http_err", he).Msg("Failed to handle HTTP error")
		}
	}
}
