// File: client.go
// Title: JSON HTTP Client
// Description: Sends request entities and decodes JSON responses, turning
//              error statuses into structured errors.
// Author: bastawesy
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package httpx

import (
	"context"
	"io"
	"net/http"
	"time"

	ruerror "github.com/bastawesy/reactorutils/core/error"
	rulog "github.com/bastawesy/reactorutils/core/log"
	"github.com/bastawesy/reactorutils/utils/jsonx"
)

// maxErrorBody limits how much of an error response is kept
const maxErrorBody = 4 << 10

// ClientOptions configures a Client
type ClientOptions struct {
	Timeout         time.Duration // default: 30s
	ContentType     string        // default: ContentTypeJSON
	RequestIDHeader string        // default: HeaderRequestID
	Mapper          *jsonx.Mapper
	Transport       http.RoundTripper
	Logger          *rulog.Logger
}

// Client sends JSON requests
type Client struct {
	http            *http.Client
	contentType     string
	requestIDHeader string
	mapper          *jsonx.Mapper
	logger          *rulog.Logger
}

// NewClient creates a client from options
func NewClient(options ClientOptions) *Client {
	if options.Timeout == 0 {
		options.Timeout = 30 * time.Second
	}
	if options.ContentType == "" {
		options.ContentType = ContentTypeJSON
	}
	if options.RequestIDHeader == "" {
		options.RequestIDHeader = HeaderRequestID
	}
	if options.Mapper == nil {
		options.Mapper = jsonx.Default()
	}
	if options.Logger == nil {
		options.Logger = rulog.GetDefault()
	}

	return &Client{
		http:            &http.Client{Timeout: options.Timeout, Transport: options.Transport},
		contentType:     options.ContentType,
		requestIDHeader: options.RequestIDHeader,
		mapper:          options.Mapper,
		logger:          options.Logger.WithName("httpx"),
	}
}

// Entity returns an entity using the client's content type
func (c *Client) Entity(body any, headers map[string]string) *Entity {
	return newEntity(body, headers, c.contentType)
}

// Do sends entity (nil for an empty entity) and decodes a JSON response
// into out when out is not nil. Statuses of 400 and above fail with a
// code derived from the status.
func (c *Client) Do(ctx context.Context, method, url string, entity *Entity, out any) (int, error) {
	if entity == nil {
		entity = c.Entity(nil, nil)
	}

	req, err := entity.newRequest(ctx, method, url, c.mapper, c.requestIDHeader)
	if err != nil {
		return 0, err
	}
	requestID := req.Header.Get(c.requestIDHeader)
	logger := c.logger.WithRequestID(requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, ruerror.Wrap(err, "request failed").
			WithCode(ruerror.CodeInternal).
			WithOperation("httpx.Do").
			WithDetail("method", method).
			WithDetail("url", url).
			WithDetail("request_id", requestID)
	}
	defer resp.Body.Close()

	logger.Debug("response received", rulog.Fields{
		"method": method,
		"url":    url,
		"status": resp.StatusCode,
	})

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp.StatusCode, ruerror.New("unexpected response status "+resp.Status).
			WithCode(codeForStatus(resp.StatusCode)).
			WithOperation("httpx.Do").
			WithDetail("status", resp.StatusCode).
			WithDetail("url", url).
			WithDetail("request_id", requestID).
			WithDetail("body", string(body))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}

	if err := c.mapper.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return resp.StatusCode, ruerror.Wrap(err, "failed to decode response").
			WithCode(ruerror.CodeInvalidFormat).
			WithOperation("httpx.Do").
			WithDetail("url", url).
			WithDetail("request_id", requestID)
	}
	return resp.StatusCode, nil
}

func codeForStatus(status int) ruerror.Code {
	switch status {
	case http.StatusBadRequest:
		return ruerror.CodeValidationFailed
	case http.StatusNotFound:
		return ruerror.CodeNotFound
	case http.StatusNotAcceptable:
		return ruerror.CodeNotAcceptable
	case http.StatusConflict:
		return ruerror.CodeBusinessRule
	case http.StatusTooManyRequests:
		return ruerror.CodeQuotaExceeded
	default:
		return ruerror.CodeInternal
	}
}
