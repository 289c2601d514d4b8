package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"walletfx/internal/domain"

	"github.com/sirupsen/logrus"
)

const DefaultAwesomeAPIURL = "https://economia.awesomeapi.com.br/json/all"

// AwesomeAPIClient reads the full quote table published by economia.awesomeapi.com.br.
type AwesomeAPIClient struct {
	http *http.Client
	url  string
}

// GetAllRates returns the values of the provider's top-level object in
// document order. Every failure is a *domain.FetchError.
func (c *AwesomeAPIClient) GetAllRates(ctx context.Context) ([]domain.RateRecord, error) {
	u, err := url.Parse(c.url)
	if err != nil {
		return nil, domain.NewFetchError(domain.KindNetwork, fmt.Errorf("failed to parse provider URL: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, domain.NewFetchError(domain.KindNetwork, fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, domain.NewFetchError(domain.KindNetwork, fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domain.NewFetchError(domain.KindNetwork,
			fmt.Errorf("%w: unexpected status code %d: %s", domain.ErrUnexpectedStatus, resp.StatusCode, resp.Status))
	}

	records, err := decodeRecords(json.NewDecoder(resp.Body))
	if err != nil {
		return nil, domain.NewFetchError(domain.KindDecode, fmt.Errorf("failed to decode response: %w", err))
	}
	return records, nil
}

// decodeRecords walks {"USDBRL": {...}, "EURBRL": {...}} token by token so the
// provider's ordering survives; a map would lose it. Only malformed JSON is an
// error: values that are not objects are skipped and odd field types are kept
// as their literal text.
func decodeRecords(dec *json.Decoder) ([]domain.RateRecord, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("expected a JSON object at top level")
	}

	records := make([]domain.RateRecord, 0, 32)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			logrus.WithField("entry", key).Debug("Skipping non-object provider entry")
			continue
		}

		var rec wireRecord
		if err = json.Unmarshal(trimmed, &rec); err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}
		records = append(records, rec.toDomain())
	}

	if _, err = dec.Token(); err != nil {
		return nil, err
	}
	return records, nil
}

func NewAwesomeAPIClient(httpClient *http.Client, providerURL string) *AwesomeAPIClient {
	if providerURL == "" {
		providerURL = DefaultAwesomeAPIURL
	}
	return &AwesomeAPIClient{http: httpClient, url: providerURL}
}
