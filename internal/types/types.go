package types

// PublicHTTPErrorType is the machine readable type of an HTTPError. Domain failures use the
// stable error code of the wallet error instead (e.g. USER_REJECTED).
type PublicHTTPErrorType string

const (
	PublicHTTPErrorTypeGeneric        PublicHTTPErrorType = "generic"
	PublicHTTPErrorTypeMethodNotFound PublicHTTPErrorType = "METHOD_NOT_FOUND"
	PublicHTTPErrorTypeInvalidParams  PublicHTTPErrorType = "INVALID_PARAMS"
	PublicHTTPErrorTypeNotFound       PublicHTTPErrorType = "NOT_FOUND"
	PublicHTTPErrorTypeUnauthorized   PublicHTTPErrorType = "UNAUTHORIZED"
	PublicHTTPErrorTypeForbidden      PublicHTTPErrorType = "FORBIDDEN"
)

func (t PublicHTTPErrorType) String() string {
	return string(t)
}
