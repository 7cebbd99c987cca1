package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/types"
	"github/chapool/mvx-signer/internal/util"
)

func GetChainsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.GET("/chains", getChainsHandler(s))
}

func getChainsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		networks := s.Registry.List()

		chainItems := make([]*types.ChainItem, 0, len(networks))
		for _, network := range networks {
			chainItems = append(chainItems, &types.ChainItem{
				ChainID:    network.ChainID,
				Name:       network.Name,
				Label:      network.Label,
				Decimals:   int64(network.Decimals),
				APIAddress: network.APIAddress,
			})
		}

		response := &types.GetChainsResponse{
			Chains: chainItems,
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
