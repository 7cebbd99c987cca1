package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/util"
)

// statusNotReady is the cloudflare "web server is down" status, distinct from gateway errors.
const statusNotReady = 521

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// Readiness check
// This endpoint returns 200 when our Service is ready to serve traffic (i.e. respond to queries).
// Does read-only probes apart from the general server ready state.
// Note that /-/ready is typically public (and not shielded by a mgmt-secret), we thus prevent information leakage here and only return `"Ready."`.
// Structured upon https://prometheus.io/docs/prometheus/latest/management_api/
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			// We use 521 to indicate an error state
			// same as Cloudflare: https://support.cloudflare.com/hc/en-us/articles/115003011431#521error
			return c.String(statusNotReady, "Not ready.")
		}

		if _, errs := ProbeReadiness(c.Request().Context(), s); len(errs) > 0 {
			util.LogFromEchoContext(c).Warn().Errs("errs", errs).Msg("Readiness probes failed")
			return c.String(statusNotReady, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
