package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratesServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRateCrossCurrency(t *testing.T) {
	srv := ratesServer(t, http.StatusOK,
		`{"conversion_rates": {"USD": 1, "EUR": 0.5, "GBP": 0.25}}`)
	t.Setenv("EXCHANGE_API_URL", srv.URL)

	api := &exchangeRateAPI{}
	rate, err := api.Rate(context.Background(), "EUR", "GBP")
	require.NoError(t, err)
	// rates[GBP] / rates[EUR] = 0.25 / 0.5
	assert.Equal(t, 0.5, rate)
}

func TestRateUnknownCurrency(t *testing.T) {
	srv := ratesServer(t, http.StatusOK, `{"conversion_rates": {"USD": 1}}`)
	t.Setenv("EXCHANGE_API_URL", srv.URL)

	api := &exchangeRateAPI{}
	_, err := api.Rate(context.Background(), "EUR", "USD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EUR")
}

func TestRateUpstreamFailure(t *testing.T) {
	srv := ratesServer(t, http.StatusServiceUnavailable, `{}`)
	t.Setenv("EXCHANGE_API_URL", srv.URL)

	api := &exchangeRateAPI{}
	_, err := api.Rate(context.Background(), "EUR", "USD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch exchange rates")
}
