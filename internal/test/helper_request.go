package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-openapi/strfmt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/util"
)

type GenericPayload map[string]any

// PerformRequestWithParams performs a request against the echo instance of s. body is JSON
// encoded unless nil.
func PerformRequestWithParams(t *testing.T, s *api.Server, method string, path string, body any, headers http.Header, queryParams map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	if body == nil {
		return PerformRequestWithRawBody(t, s, method, path, nil, headers, queryParams)
	}

	j, err := json.Marshal(body)
	require.NoError(t, err, "failed to marshal body")

	return PerformRequestWithRawBody(t, s, method, path, bytes.NewReader(j), headers, queryParams)
}

func PerformRequestWithRawBody(t *testing.T, s *api.Server, method string, path string, body io.Reader, headers http.Header, queryParams map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)

	for k, v := range headers {
		req.Header[k] = v
	}

	if body != nil && len(req.Header.Get(echo.HeaderContentType)) == 0 {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	if queryParams != nil {
		q := req.URL.Query()
		for k, v := range queryParams {
			q.Add(k, v)
		}

		req.URL.RawQuery = q.Encode()
	}

	res := httptest.NewRecorder()

	s.Echo.ServeHTTP(res, req)

	return res
}

func PerformRequest(t *testing.T, s *api.Server, method string, path string, body any, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	return PerformRequestWithParams(t, s, method, path, body, headers, nil)
}

// ParseResponseAndValidate decodes the recorded JSON body into response.
func ParseResponseAndValidate(t *testing.T, res *httptest.ResponseRecorder, response any) {
	t.Helper()

	require.NoError(t, json.NewDecoder(res.Result().Body).Decode(response), "failed to parse response")

	if v, ok := response.(util.Validatable); ok {
		require.NoError(t, v.Validate(strfmt.Default))
	}
}
