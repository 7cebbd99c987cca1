package confirmations

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/api/httperrors"
	"github/chapool/mvx-signer/internal/util"
	"github/chapool/mvx-signer/internal/wallet/confirm"
)

const confirmationIDParam = "confirmationId"

func PostApproveConfirmationRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Confirmations.POST("/:"+confirmationIDParam+"/approve", postDecideConfirmationHandler(s, confirm.DecisionApproved))
}

func PostRejectConfirmationRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Confirmations.POST("/:"+confirmationIDParam+"/reject", postDecideConfirmationHandler(s, confirm.DecisionRejected))
}

func postDecideConfirmationHandler(s *api.Server, decision confirm.Decision) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := util.LogFromEchoContext(c)

		id := c.Param(confirmationIDParam)

		pending, err := s.Broker.Get(id)
		if err != nil {
			if errors.Is(err, confirm.ErrConfirmationNotFound) {
				return httperrors.ErrNotFoundConfirmation
			}
			return err
		}

		if err := s.Broker.Resolve(id, decision); err != nil {
			// resolved or abandoned concurrently
			if errors.Is(err, confirm.ErrConfirmationNotFound) {
				return httperrors.ErrNotFoundConfirmation
			}
			return err
		}

		log.Info().
			Str("confirmation_id", id).
			Str("kind", string(pending.Prompt.Kind)).
			Str("decision", string(decision)).
			Msg("Confirmation decided")

		return util.ValidateAndReturn(c, http.StatusOK, toConfirmation(pending))
	}
}
