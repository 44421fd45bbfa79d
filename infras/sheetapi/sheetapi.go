// Package sheetapi is the HTTP client for the remote spreadsheet API
// (a Google Apps Script web app) that owns all dashboard data.
package sheetapi

//go:generate go run go.uber.org/mock/mockgen -source=./sheetapi.go -destination=./mocks/sheetapi_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"majlis/config"
	"majlis/infras/otel"
	"majlis/shared/constant"
)

type Client interface {
	// Fetch downloads the full data snapshot.
	Fetch(ctx context.Context) (Document, error)
	// Submit sends one record to a writable collection. An empty identifier
	// in the record means create, a present one means update; the remote
	// store applies last-write-wins either way.
	Submit(ctx context.Context, target string, record Record) error
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	return &clientImpl{
		baseURL: cfg.Sheet.URL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Sheet.TimeoutSeconds) * time.Second,
		},
		otel: ot,
	}
}

func (c *clientImpl) Fetch(ctx context.Context) (doc Document, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Fetch")
	defer scope.End()
	defer scope.TraceIfError(err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return doc, fmt.Errorf("failed to create fetch request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return doc, fmt.Errorf("failed to fetch sheet snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return doc, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}

	if err = json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return doc, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	log.Debug().
		Int("bookings", len(doc.Bookings)).
		Int("rooms", len(doc.Rooms)).
		Int("hospitality", len(doc.Hospitality)).
		Int("indicators", len(doc.Dashboard)).
		Msg("fetched sheet snapshot")

	return doc, nil
}

func (c *clientImpl) Submit(ctx context.Context, target string, record Record) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("sheet.target", target)

	payload, err := json.Marshal(envelope{Target: target, Record: record})
	if err != nil {
		return fmt.Errorf("failed to marshal sheet record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create submit request: %w", err)
	}

	// Apps Script web apps reject preflighted content types; text/plain is
	// the contract even though the body is JSON.
	req.Header.Set(constant.RequestHeaderContentType, "text/plain;charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to submit sheet record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}

	return nil
}
