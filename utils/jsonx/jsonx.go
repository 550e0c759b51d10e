// File: jsonx.go
// Title: JSON Helpers
// Description: JSON encoding and decoding through an explicitly constructed
//              json-iterator mapper, with failures reported as absent results.
// Author: bastawesy
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package jsonx

import (
	"fmt"
	"io"
	"sync"

	jsoniter "github.com/json-iterator/go"

	ruerror "github.com/bastawesy/reactorutils/core/error"
	rulog "github.com/bastawesy/reactorutils/core/log"
	"github.com/bastawesy/reactorutils/utils/validationx"
)

// Mapper encodes and decodes JSON. It is safe for concurrent use.
type Mapper struct {
	api    jsoniter.API
	logger *rulog.Logger
}

// MapperOptions configures a Mapper
type MapperOptions struct {
	// SortMapKeys makes map encoding deterministic
	SortMapKeys bool
	// DisallowUnknownFields rejects input fields missing from the target
	DisallowUnknownFields bool
	// UseNumber decodes numbers into json.Number inside interface{} values
	UseNumber bool
	Logger    *rulog.Logger
}

// NewMapper creates a mapper compatible with encoding/json
func NewMapper() *Mapper {
	return NewMapperWithOptions(MapperOptions{SortMapKeys: true})
}

// NewMapperWithOptions creates a mapper from options
func NewMapperWithOptions(options MapperOptions) *Mapper {
	logger := options.Logger
	if logger == nil {
		logger = rulog.GetDefault()
	}

	return &Mapper{
		api: jsoniter.Config{
			EscapeHTML:             true,
			SortMapKeys:            options.SortMapKeys,
			ValidateJsonRawMessage: true,
			DisallowUnknownFields:  options.DisallowUnknownFields,
			UseNumber:              options.UseNumber,
		}.Froze(),
		logger: logger.WithName("jsonx"),
	}
}

var (
	defaultOnce   sync.Once
	defaultMapper *Mapper
)

// Default returns a package owned mapper, created on first use
func Default() *Mapper {
	defaultOnce.Do(func() {
		defaultMapper = NewMapper()
	})
	return defaultMapper
}

// Marshal encodes v
func (m *Mapper) Marshal(v interface{}) ([]byte, error) {
	data, err := m.api.Marshal(v)
	if err != nil {
		return nil, ruerror.Wrap(err, "failed to encode JSON").
			WithCode(ruerror.CodeInvalidFormat).
			WithOperation("jsonx.Marshal")
	}
	return data, nil
}

// Unmarshal decodes data into v
func (m *Mapper) Unmarshal(data []byte, v interface{}) error {
	if err := m.api.Unmarshal(data, v); err != nil {
		return ruerror.Wrap(err, "failed to decode JSON").
			WithCode(ruerror.CodeInvalidFormat).
			WithOperation("jsonx.Unmarshal")
	}
	return nil
}

// NewEncoder returns an encoder writing to w
func (m *Mapper) NewEncoder(w io.Writer) *jsoniter.Encoder {
	return m.api.NewEncoder(w)
}

// NewDecoder returns a decoder reading from r
func (m *Mapper) NewDecoder(r io.Reader) *jsoniter.Decoder {
	return m.api.NewDecoder(r)
}

// ToJSON encodes v. It reports false, after logging the error, when v
// cannot be encoded.
func (m *Mapper) ToJSON(v interface{}) (string, bool) {
	data, err := m.Marshal(v)
	if err != nil {
		m.logger.ErrorWithErr("failed to convert object to JSON", err, rulog.Fields{
			"type": typeName(v),
		})
		return "", false
	}
	return string(data), true
}

// ObjectAsString encodes v, returning "" for blank values and failures
func (m *Mapper) ObjectAsString(v interface{}) string {
	if validationx.IsBlankOrNull(v) {
		return ""
	}
	s, _ := m.ToJSON(v)
	return s
}

// FromJSON decodes data into a new T. It reports false, after logging the
// error, when data is not valid JSON for T.
func FromJSON[T any](m *Mapper, data string) (T, bool) {
	var out T
	if err := m.Unmarshal([]byte(data), &out); err != nil {
		m.logger.ErrorWithErr("could not create object from JSON", err, rulog.Fields{
			"type": typeName(out),
		})
		var zero T
		return zero, false
	}
	return out, true
}

// ToJSON encodes v with the default mapper
func ToJSON(v interface{}) (string, bool) {
	return Default().ToJSON(v)
}

// ObjectAsString encodes v with the default mapper
func ObjectAsString(v interface{}) string {
	return Default().ObjectAsString(v)
}

func typeName(v interface{}) string {
	return fmt.Sprintf("%T", v)
}
