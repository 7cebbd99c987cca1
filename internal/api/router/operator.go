package router

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"github/chapool/mvx-signer/internal/api/httperrors"
	"github/chapool/mvx-signer/internal/util"
)

// HeaderOperatorSecret carries the secret of the operator deciding confirmations.
const HeaderOperatorSecret = "X-Operator-Secret"

// OperatorAuth only lets the operator through: requests need the operator secret and must
// not come from a browser, so a page that submitted a signing request cannot approve it.
func OperatorAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			if origin := req.Header.Get(echo.HeaderOrigin); origin != "" {
				util.LogFromEchoContext(c).Warn().Str("origin", origin).Msg("Refusing confirmation request from a browser")
				return httperrors.ErrForbiddenBrowser
			}

			given := req.Header.Get(HeaderOperatorSecret)
			if secret == "" || subtle.ConstantTimeCompare([]byte(given), []byte(secret)) != 1 {
				return httperrors.ErrUnauthorizedOperator
			}

			return next(c)
		}
	}
}
