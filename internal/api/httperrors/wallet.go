package httperrors

import (
	"errors"
	"net/http"

	"github.com/go-openapi/swag"
	"github/chapool/mvx-signer/internal/wallet/errs"
)

// FromWalletError converts a wallet error into an HTTPError whose type is the stable error code.
// ok is false if err carries no wallet error.
func FromWalletError(err error) (*HTTPError, bool) {
	var e *errs.Error
	if !errors.As(err, &e) {
		return nil, false
	}

	return &HTTPError{
		Code:     swag.Int64(int64(StatusForKind(e.Kind))),
		Type:     swag.String(e.Code),
		Title:    swag.String(e.Message),
		Internal: err,
	}, true
}

// StatusForKind maps error classes to HTTP statuses so clients can tell a rejection apart
// from an infrastructure failure.
func StatusForKind(kind errs.Kind) int {
	switch kind {
	case errs.KindInputValidation:
		return http.StatusBadRequest
	case errs.KindEnvironment:
		return http.StatusBadGateway
	case errs.KindUserDecision:
		return http.StatusForbidden
	case errs.KindSigning:
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}
