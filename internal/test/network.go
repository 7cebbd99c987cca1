package test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

const networkConfigBody = `{"data":{"config":{"erd_chain_id":"D","erd_denomination":18,"erd_gas_per_data_byte":1500,"erd_gas_price_modifier":"0.01","erd_min_gas_limit":50000,"erd_min_gas_price":1000000000,"erd_extra_gas_limit_guarded_tx":50000}},"code":"successful"}`

// FakeTokens are served by the fake network API by identifier.
var FakeTokens = map[string]string{
	"USDC-350c4e":  `{"identifier":"USDC-350c4e","name":"WrappedUSDC","ticker":"USDC","decimals":6,"type":"FungibleESDT"}`,
	"WEGLD-a28c59": `{"identifier":"WEGLD-a28c59","name":"WrappedEGLD","ticker":"WEGLD","decimals":18,"type":"FungibleESDT"}`,
}

// FakeCollections are served by the fake network API by collection.
var FakeCollections = map[string]string{
	"NFT-123456": `{"collection":"NFT-123456","name":"Pictures","ticker":"NFT","type":"NonFungibleESDT"}`,
}

// NewFakeNetwork starts a fake MultiversX devnet API closed at the end of the test.
func NewFakeNetwork(t *testing.T) *httptest.Server {
	t.Helper()

	e := echo.New()
	e.HideBanner = true

	e.GET("/network/config", func(c echo.Context) error {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(networkConfigBody))
	})
	e.GET("/tokens/:id", func(c echo.Context) error {
		body, ok := FakeTokens[c.Param("id")]
		if !ok {
			return echo.ErrNotFound
		}

		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(body))
	})
	e.GET("/collections/:id", func(c echo.Context) error {
		body, ok := FakeCollections[c.Param("id")]
		if !ok {
			return echo.ErrNotFound
		}

		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(body))
	})

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return server
}
