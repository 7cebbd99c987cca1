package util

import (
	"net/http"

	"github.com/go-openapi/strfmt"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request and response payloads.
type Validatable interface {
	Validate(formats strfmt.Registry) error
}

// BindAndValidateBody binds the request body to v and validates it. Validation failures are
// returned as echo 400 errors.
func BindAndValidateBody(c echo.Context, v Validatable) error {
	binder := &echo.DefaultBinder{}
	if err := binder.BindBody(c, v); err != nil {
		LogFromEchoContext(c).Debug().Err(err).Msg("Failed to bind request body")
		return err
	}

	if err := v.Validate(strfmt.Default); err != nil {
		LogFromEchoContext(c).Debug().Err(err).Msg("Request body validation failed")
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}

	return nil
}

// ValidateAndReturn validates a response payload before sending it as JSON.
func ValidateAndReturn(c echo.Context, code int, v Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		LogFromEchoContext(c).Error().Err(err).Msg("Response payload validation failed")
		return err
	}

	return c.JSON(code, v)
}
