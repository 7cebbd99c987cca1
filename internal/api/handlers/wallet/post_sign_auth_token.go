package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/types"
	"github/chapool/mvx-signer/internal/util"
)

func PostSignAuthTokenRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/sign-auth-token", postSignAuthTokenHandler(s))
}

func postSignAuthTokenHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body types.SignAuthTokenParams
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		response, err := SignAuthToken(c.Request().Context(), s, &body, c.Request().Header.Get(echo.HeaderOrigin))
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
