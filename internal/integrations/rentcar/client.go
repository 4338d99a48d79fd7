// Package rentcar is the outbound JSON client for the car-rental backend, the
// single authority for every entity this service exposes. Each domain
// repository is a thin wrapper over one endpoint group of this client.
package rentcar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"rentacar/config"
	"rentacar/infras/otel"
	"rentacar/shared/constant"
	"rentacar/shared/failure"
)

const (
	otelScopeName = constant.OtelBackendScopeName
)

// errorEnvelope is the backend's documented error contract. Anything that
// doesn't match it degrades to a generic message.
type errorEnvelope struct {
	Message string `json:"message"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) *Client {
	return &Client{
		baseURL: cfg.Backend.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
		},
		otel: ot,
	}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, constant.Empty, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(payload), constant.ContentTypeJSON, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	return c.do(ctx, http.MethodPatch, path, nil, bytes.NewReader(payload), constant.ContentTypeJSON, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, constant.Empty, nil)
}

// PostMultipart uploads a file plus form fields, used by the image endpoints.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, fileName string, file []byte, out any) error {
	var buffer bytes.Buffer

	writer := multipart.NewWriter(&buffer)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write multipart field: %w", err)
		}
	}

	part, err := writer.CreateFormFile(constant.FormFile, fileName)
	if err != nil {
		return fmt.Errorf("failed to create multipart file: %w", err)
	}

	if _, err = part.Write(file); err != nil {
		return fmt.Errorf("failed to write multipart file: %w", err)
	}

	if err = writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, nil, &buffer, writer.FormDataContentType(), out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+"."+method+" "+path)
	defer scope.End()
	defer scope.TraceIfError(err)

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	scope.SetAttributes(map[string]any{
		"http.method": method,
		"http.url":    endpoint,
	})

	request, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create backend request: %w", err)
	}

	if contentType != constant.Empty {
		request.Header.Set(constant.RequestHeaderContentType, contentType)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("url", endpoint).Msg("backend request failed")

		return fmt.Errorf("backend request failed: %w", err)
	}
	defer response.Body.Close()

	scope.SetAttribute("http.status_code", response.StatusCode)

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return c.upstreamError(method, endpoint, response)
	}

	if out == nil {
		return nil
	}

	if err = json.NewDecoder(response.Body).Decode(out); err != nil {
		log.Error().Err(err).Str("url", endpoint).Msg("failed to decode backend response")

		return fmt.Errorf("failed to decode backend response: %w", err)
	}

	return nil
}

func (c *Client) upstreamError(method, endpoint string, response *http.Response) error {
	raw, readErr := io.ReadAll(io.LimitReader(response.Body, 1<<16))
	if readErr != nil {
		raw = nil
	}

	var envelope errorEnvelope

	message := fmt.Sprintf("unexpected response from rental backend (status %d)", response.StatusCode)
	if json.Unmarshal(raw, &envelope) == nil && envelope.Message != constant.Empty {
		message = envelope.Message
	}

	log.Warn().
		Int("status", response.StatusCode).
		Str("method", method).
		Str("url", endpoint).
		Str("message", message).
		Msg("backend returned an error")

	return failure.Upstream(response.StatusCode, message) //nolint:wrapcheck
}
