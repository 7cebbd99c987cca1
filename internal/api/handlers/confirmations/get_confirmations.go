package confirmations

import (
	"net/http"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/types"
	"github/chapool/mvx-signer/internal/util"
	"github/chapool/mvx-signer/internal/wallet/confirm"
)

func GetConfirmationsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Confirmations.GET("", getConfirmationsHandler(s))
}

// Lists the prompts waiting for a decision, oldest first.
func getConfirmationsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		pending := s.Broker.List()

		items := make([]*types.Confirmation, 0, len(pending))
		for i := range pending {
			items = append(items, toConfirmation(&pending[i]))
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.GetConfirmationsResponse{
			Confirmations: items,
		})
	}
}

func toConfirmation(p *confirm.Pending) *types.Confirmation {
	createdAt := strfmt.DateTime(p.CreatedAt)

	return &types.Confirmation{
		ID:        swag.String(p.ID),
		CreatedAt: &createdAt,
		Prompt:    p.Prompt,
		Text:      p.Prompt.String(),
	}
}
