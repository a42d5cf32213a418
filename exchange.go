package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

// RateSource resolves the multiplier converting an amount from one currency
// into another.
type RateSource interface {
	Rate(ctx context.Context, from, to string) (float64, error)
}

// rateSource is swapped for a fake in tests.
var rateSource RateSource = &exchangeRateAPI{}

// exchangeRateAPI queries a latest-rates endpoint keyed off USD and derives
// cross rates as rates[to]/rates[from]. One request per conversion: no
// caching, no retry, no staleness handling.
type exchangeRateAPI struct {
	client *http.Client
}

func (a *exchangeRateAPI) url() string {
	if v := os.Getenv("EXCHANGE_API_URL"); v != "" {
		return v
	}
	return fmt.Sprintf("https://v6.exchangerate-api.com/v6/%s/latest/USD", os.Getenv("EXCHANGE_API_KEY"))
}

func (a *exchangeRateAPI) Rate(ctx context.Context, from, to string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url(), nil)
	if err != nil {
		return 0, err
	}
	client := a.client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch exchange rates: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("failed to fetch exchange rates: status %d", resp.StatusCode)
	}
	var body struct {
		ConversionRates map[string]float64 `json:"conversion_rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode exchange rates: %w", err)
	}
	fromRate, ok := body.ConversionRates[from]
	if !ok || fromRate == 0 {
		return 0, fmt.Errorf("unknown currency %q", from)
	}
	toRate, ok := body.ConversionRates[to]
	if !ok {
		return 0, fmt.Errorf("unknown currency %q", to)
	}
	return toRate / fromRate, nil
}
