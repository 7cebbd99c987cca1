package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/util"
)

func GetWalletAddressRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.GET("/address", getWalletAddressHandler(s))
}

func getWalletAddressHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		response, err := GetAddress(c.Request().Context(), s)
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
