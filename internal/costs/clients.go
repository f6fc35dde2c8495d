package costs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tripplanner/internal/utils"
)

// IndicatorFetcher returns GDP per capita in USD for an ISO3 country code.
type IndicatorFetcher interface {
	GDPPerCapita(ctx context.Context, countryCode string) (float64, error)
}

// RateFetcher returns the latest conversion rates from base to every quote currency.
type RateFetcher interface {
	Latest(ctx context.Context, base string) (map[string]float64, error)
}

const gdpPerCapitaIndicator = "NY.GDP.PCAP.CD"

// WorldBankClient reads the most recent non-empty GDP per capita value.
type WorldBankClient struct {
	BaseURL string
	HTTP    *http.Client
	Retry   utils.Retry
}

func (c WorldBankClient) GDPPerCapita(ctx context.Context, countryCode string) (float64, error) {
	endpoint := fmt.Sprintf("%s/country/%s/indicator/%s?format=json&per_page=1&mrnev=1",
		strings.TrimRight(c.BaseURL, "/"), url.PathEscape(countryCode), gdpPerCapitaIndicator)

	var value float64
	err := c.Retry.Do(ctx, "worldbank.gdp_per_capita", func() error {
		body, err := getJSON(ctx, c.HTTP, endpoint)
		if err != nil {
			return err
		}
		value, err = parseWorldBank(body)
		return err
	})
	return value, err
}

// parseWorldBank decodes the [meta, [{value}]] envelope.
func parseWorldBank(body []byte) (float64, error) {
	var envelope []json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(envelope) < 2 {
		return 0, fmt.Errorf("%w: world bank envelope has %d parts", ErrMalformed, len(envelope))
	}

	var rows []struct {
		Value *float64 `json:"value"`
	}
	if err := json.Unmarshal(envelope[1], &rows); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(rows) == 0 || rows[0].Value == nil || *rows[0].Value <= 0 {
		return 0, fmt.Errorf("%w: no gdp per capita value", ErrMalformed)
	}
	return *rows[0].Value, nil
}

// ExchangeRateClient talks to the open exchange-rate API.
type ExchangeRateClient struct {
	BaseURL string
	HTTP    *http.Client
	Retry   utils.Retry
}

func (c ExchangeRateClient) Latest(ctx context.Context, base string) (map[string]float64, error) {
	endpoint := fmt.Sprintf("%s/latest/%s", strings.TrimRight(c.BaseURL, "/"), url.PathEscape(strings.ToUpper(base)))

	var rates map[string]float64
	err := c.Retry.Do(ctx, "exchange_rate.latest", func() error {
		body, err := getJSON(ctx, c.HTTP, endpoint)
		if err != nil {
			return err
		}
		rates, err = parseRates(body)
		return err
	})
	return rates, err
}

func parseRates(body []byte) (map[string]float64, error) {
	var payload struct {
		Result string             `json:"result"`
		Rates  map[string]float64 `json:"rates"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if payload.Result != "" && payload.Result != "success" {
		return nil, fmt.Errorf("%w: result %q", ErrMalformed, payload.Result)
	}
	if len(payload.Rates) == 0 {
		return nil, fmt.Errorf("%w: no rates", ErrMalformed)
	}
	return payload.Rates, nil
}

// RetryTransient retries everything except malformed payloads.
func RetryTransient(err error) bool {
	return !errors.Is(err, ErrMalformed)
}

func getJSON(ctx context.Context, client *http.Client, endpoint string) ([]byte, error) {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: status %d", endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", endpoint, err)
	}
	return body, nil
}
