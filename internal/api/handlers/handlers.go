package handlers

import (
	"github.com/labstack/echo/v4"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/api/handlers/common"
	"github/chapool/mvx-signer/internal/api/handlers/confirmations"
	"github/chapool/mvx-signer/internal/api/handlers/rpc"
	"github/chapool/mvx-signer/internal/api/handlers/wallet"
)

func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetReadyRoute(s),
		confirmations.GetConfirmationsRoute(s),
		confirmations.PostApproveConfirmationRoute(s),
		confirmations.PostRejectConfirmationRoute(s),
		rpc.PostRPCRoute(s),
		wallet.GetChainsRoute(s),
		wallet.GetWalletAddressRoute(s),
		wallet.PostSignAuthTokenRoute(s),
		wallet.PostSignMessageRoute(s),
		wallet.PostSignTransactionsRoute(s),
	}
}
