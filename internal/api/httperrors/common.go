package httperrors

import (
	"net/http"

	"github/chapool/mvx-signer/internal/types"
)

var (
	ErrNotFoundMethod       = NewHTTPError(http.StatusNotFound, types.PublicHTTPErrorTypeMethodNotFound, "Method not found.")
	ErrNotFoundConfirmation = NewHTTPError(http.StatusNotFound, types.PublicHTTPErrorTypeNotFound, "Confirmation not found.")
	ErrBadRequestOrigin     = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInvalidParams, "Origin is required.")
	ErrUnauthorizedOperator = NewHTTPError(http.StatusUnauthorized, types.PublicHTTPErrorTypeUnauthorized, "Operator secret required.")
	ErrForbiddenBrowser     = NewHTTPError(http.StatusForbidden, types.PublicHTTPErrorTypeForbidden, "Confirmations cannot be decided from a browser.")
)
