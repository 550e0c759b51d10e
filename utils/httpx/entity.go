// File: entity.go
// Title: Request Entities
// Description: Header and body pairs for outgoing JSON requests, with a
//              JSON content type set by default.
// Author: bastawesy
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package httpx

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"

	ruerror "github.com/bastawesy/reactorutils/core/error"
	"github.com/bastawesy/reactorutils/utils/jsonx"
	"github.com/bastawesy/reactorutils/utils/validationx"
)

const (
	// ContentTypeJSON is the default Content-Type of an Entity
	ContentTypeJSON = "application/json;charset=UTF-8"

	// HeaderRequestID carries the request correlation id
	HeaderRequestID = "X-Request-ID"
)

// Entity is the header and body of an outgoing request
type Entity struct {
	Header http.Header
	Body   any
}

// NewEntity returns an entity without body
func NewEntity() *Entity {
	return NewEntityWithBodyAndHeaders(nil, nil)
}

// NewEntityWithHeaders returns an entity without body carrying headers
func NewEntityWithHeaders(headers map[string]string) *Entity {
	return NewEntityWithBodyAndHeaders(nil, headers)
}

// NewEntityWithBody returns an entity carrying body
func NewEntityWithBody(body any) *Entity {
	return NewEntityWithBodyAndHeaders(body, nil)
}

// NewEntityWithBodyAndHeaders returns an entity with body and headers.
// Content-Type defaults to ContentTypeJSON; a supplied header of the same
// name replaces it.
func NewEntityWithBodyAndHeaders(body any, headers map[string]string) *Entity {
	return newEntity(body, headers, ContentTypeJSON)
}

func newEntity(body any, headers map[string]string, contentType string) *Entity {
	header := make(http.Header)
	header.Set("Content-Type", contentType)
	if validationx.IsNotBlankOrNull(headers) {
		for name, value := range headers {
			header.Set(name, value)
		}
	}
	return &Entity{Header: header, Body: body}
}

// NewRequest builds a request for the entity. The body is encoded with
// mapper (the default mapper when nil). A request id is generated unless
// the entity already has one.
func (e *Entity) NewRequest(ctx context.Context, method, url string, mapper *jsonx.Mapper) (*http.Request, error) {
	return e.newRequest(ctx, method, url, mapper, HeaderRequestID)
}

func (e *Entity) newRequest(ctx context.Context, method, url string, mapper *jsonx.Mapper, requestIDHeader string) (*http.Request, error) {
	if mapper == nil {
		mapper = jsonx.Default()
	}

	var body io.Reader
	if e.Body != nil {
		data, err := mapper.Marshal(e.Body)
		if err != nil {
			return nil, ruerror.Wrap(err, "failed to encode request body").
				WithCode(ruerror.CodeInvalidArgument).
				WithOperation("httpx.NewRequest").
				WithDetail("url", url)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, ruerror.Wrap(err, "failed to create request").
			WithCode(ruerror.CodeInvalidArgument).
			WithOperation("httpx.NewRequest").
			WithDetail("method", method).
			WithDetail("url", url)
	}

	req.Header = e.Header.Clone()
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	if requestIDHeader != "" && req.Header.Get(requestIDHeader) == "" {
		req.Header.Set(requestIDHeader, uuid.NewString())
	}
	return req, nil
}
