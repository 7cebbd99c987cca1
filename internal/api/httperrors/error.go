package httperrors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/mvx-signer/internal/types"
)

type HTTPError struct {
	Code           *int64         `json:"status"`
	Type           *string        `json:"type"`
	Title          *string        `json:"title"`
	Detail         string         `json:"detail,omitempty"`
	Internal       error          `json:"-"`
	AdditionalData map[string]any `json:"-"`
}

func NewHTTPError(code int, errorType types.PublicHTTPErrorType, title string) *HTTPError {
	return &HTTPError{
		Code:  swag.Int64(int64(code)),
		Type:  swag.String(errorType.String()),
		Title: swag.String(title),
	}
}

func NewHTTPErrorWithDetail(code int, errorType types.PublicHTTPErrorType, title string, detail string) *HTTPError {
	return &HTTPError{
		Code:   swag.Int64(int64(code)),
		Type:   swag.String(errorType.String()),
		Title:  swag.String(title),
		Detail: detail,
	}
}

func NewFromEcho(e *echo.HTTPError) *HTTPError {
	return NewHTTPError(e.Code, types.PublicHTTPErrorTypeGeneric, http.StatusText(e.Code))
}

func (e *HTTPError) Validate(_ strfmt.Registry) error {
	return nil
}

func (e *HTTPError) Error() string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "HTTPError %d (%s): %s", *e.Code, *e.Type, *e.Title)

	if len(e.Detail) > 0 {
		fmt.Fprintf(&builder, " - %s", e.Detail)
	}
	if e.Internal != nil {
		fmt.Fprintf(&builder, ", %v", e.Internal)
	}
	if len(e.AdditionalData) > 0 {
		keys := make([]string, 0, len(e.AdditionalData))
		for k := range e.AdditionalData {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		builder.WriteString(". Additional: ")
		for i, k := range keys {
			fmt.Fprintf(&builder, "%s=%v", k, e.AdditionalData[k])
			if i < len(keys)-1 {
				builder.WriteString(", ")
			}
		}
	}

	return builder.String()
}
