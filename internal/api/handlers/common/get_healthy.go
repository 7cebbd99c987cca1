package common

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/util"
)

const mgmtSecretQueryParam = "mgmt-secret"

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// Health check
// Returns an human readable string about the current service status.
// In addition to readiness probes, it performs liveness probes against the network APIs.
// Requires the management secret, as the output names the configured networks.
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		secret := c.QueryParam(mgmtSecretQueryParam)
		if subtle.ConstantTimeCompare([]byte(secret), []byte(s.Config.Management.Secret)) != 1 {
			return echo.ErrUnauthorized
		}

		if !s.Ready() {
			return c.String(statusNotReady, "Not ready.")
		}

		var str strings.Builder
		str.WriteString("Ready.\n")

		ctx, cancel := context.WithTimeout(c.Request().Context(), s.Config.Management.LivenessTimeout)
		defer cancel()

		probes, errs := ProbeLiveness(ctx, s)
		str.WriteString(probes)

		if len(errs) > 0 {
			util.LogFromEchoContext(c).Error().Errs("errs", errs).Msg("Health probes failed")
			return c.String(http.StatusServiceUnavailable, str.String())
		}

		str.WriteString("Probes succeeded.")

		return c.String(http.StatusOK, str.String())
	}
}
