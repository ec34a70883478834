// Package ingestion loads sales records from the products HTTP API.
package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/salespulse/internal/domain/apperrors"
	"github.com/guttosm/salespulse/internal/domain/models"
	"github.com/guttosm/salespulse/internal/logger"
)

// DefaultURL is the public products API.
const DefaultURL = "https://labdados.com/produtos"

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 64 << 20

// Client queries the products API. The zero value is not usable; use NewClient.
type Client struct {
	url  string
	http *http.Client
}

// NewClient returns a Client for baseURL. A zero timeout keeps the
// http.Client default (none); the request context still applies.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultURL
	}
	return &Client{url: baseURL, http: &http.Client{Timeout: timeout}}
}

// URL returns the configured endpoint.
func (c *Client) URL() string { return c.url }

// Fetch requests the records of region ("" for all) in year (0 for all).
//
// Query parameters:
//   - regiao: lower-cased region name, empty for every region
//   - ano:    four-digit year, empty for every year
//
// Transport failures, non-2xx answers and bodies that are not a JSON array
// return *apperrors.FetchError. Malformed elements are skipped and counted in
// the returned report.
func (c *Client) Fetch(ctx context.Context, region string, year int) ([]models.SalesRecord, models.ParseReport, error) {
	log := logger.With("ingestion")
	start := time.Now()

	target, err := c.requestURL(region, year)
	if err != nil {
		return nil, models.ParseReport{}, &apperrors.FetchError{URL: c.url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, models.ParseReport{}, &apperrors.FetchError{URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Str("url", target).Err(err).Msg("fetch failed")
		return nil, models.ParseReport{}, &apperrors.FetchError{URL: target, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error().Str("url", target).Int("status", resp.StatusCode).Msg("fetch rejected")
		return nil, models.ParseReport{}, &apperrors.FetchError{
			URL:        target,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("status %s", resp.Status),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, models.ParseReport{}, &apperrors.FetchError{URL: target, Err: fmt.Errorf("read body: %w", err)}
	}

	records, report, err := Decode(body)
	if err != nil {
		log.Error().Str("url", target).Err(err).Msg("decode failed")
		return nil, models.ParseReport{}, &apperrors.FetchError{URL: target, Err: err}
	}

	log.Info().
		Str("url", target).
		Int("records", report.Accepted).
		Int("malformed", report.Malformed).
		Dur("elapsed", time.Since(start)).
		Msg("fetch done")
	return records, report, nil
}

func (c *Client) requestURL(region string, year int) (string, error) {
	u, err := url.Parse(c.url)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	q := u.Query()
	q.Set("regiao", strings.ToLower(region))
	if year > 0 {
		q.Set("ano", strconv.Itoa(year))
	} else {
		q.Set("ano", "")
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
