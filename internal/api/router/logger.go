package router

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github/chapool/mvx-signer/internal/config"
)

// LoggerWithConfig attaches a request scoped zerolog logger to the request context and
// logs each request once it completed. Bodies are never logged, they carry signatures.
func LoggerWithConfig(cfg config.LoggerServer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = res.Header().Get(echo.HeaderXRequestID)
			}

			lctx := log.With().Str("id", id)
			if cfg.LogCaller {
				lctx = lctx.Caller()
			}
			l := lctx.Logger()

			c.SetRequest(req.WithContext(l.WithContext(req.Context())))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			event := l.WithLevel(cfg.RequestLevel)
			if res.Status >= 500 {
				event = l.Error()
			}

			event = event.
				Str("method", req.Method).
				Str("path", c.Path()).
				Str("uri", req.RequestURI).
				Int("status", res.Status).
				Int64("bytes_out", res.Size).
				Dur("duration", time.Since(start)).
				Str("remote_ip", c.RealIP())

			if cfg.LogRequestHeader {
				event = event.Interface("req_header", req.Header)
			}
			if cfg.LogRequestQuery {
				event = event.Interface("req_query", req.URL.Query())
			}
			if cfg.LogResponseHeader {
				event = event.Interface("res_header", res.Header())
			}

			event.Msg("http request")

			return nil
		}
	}
}
