package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/types"
	"github/chapool/mvx-signer/internal/util"
)

func PostSignTransactionsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/sign-transactions", postSignTransactionsHandler(s))
}

// Blocks until every transaction of the batch was approved or one was rejected.
func postSignTransactionsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body types.SignTransactionsParams
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		response, err := SignTransactions(c.Request().Context(), s, &body)
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
