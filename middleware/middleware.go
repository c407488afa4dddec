// Package middleware integrates the request validator with net/http
// handler chains.
//
// The middleware buffers the request body before validation so downstream
// handlers can read it again, maps each failure kind to an HTTP status
// code, and optionally logs rejected requests:
//
//	v, _ := reqvalidator.New(store)
//	handler := middleware.Validate(v, middleware.WithLogger(logger))(mux)
package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/gatewell/contractcheck/contract"
	"github.com/gatewell/contractcheck/internal/httperr"
	"github.com/gatewell/contractcheck/reqvalidator"
)

// ErrorHandler writes the response for a rejected request. The error carries
// its HTTP status code, retrievable in custom handlers via errors.As on
// *httperr.CodedError or by re-deriving it from the failure kind.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type config struct {
	logger     *zap.Logger
	onError    ErrorHandler
	bufferBody bool
}

// Option is a functional option for configuring the middleware.
type Option func(*config)

// WithLogger enables logging of rejected requests.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithErrorHandler replaces the default error response writer.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) {
		c.onError = h
	}
}

// WithoutBodyBuffering disables body buffering. Use only when downstream
// handlers never read the body, e.g. a pure gateway that proxies the
// original bytes from elsewhere.
func WithoutBodyBuffering() Option {
	return func(c *config) {
		c.bufferBody = false
	}
}

// Validate returns middleware that rejects requests failing validation
// against the contract. Status mapping:
//
//	MediaTypeError        406 Not Acceptable
//	MissingParameterError 400 Bad Request
//	ParameterValueError   400 Bad Request
//	MalformedBodyError    400 Bad Request
//	BodySchemaError       422 Unprocessable Entity
//	contract.ErrNotFound  404 Not Found
//	anything else         500 Internal Server Error
func Validate(v *reqvalidator.Validator, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		logger:     zap.NewNop(),
		bufferBody: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.onError == nil {
		cfg.onError = defaultErrorHandler
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.bufferBody && r.Body != nil {
				body, err := io.ReadAll(r.Body)
				if err != nil {
					cfg.onError(w, r, httperr.WithCode(err, http.StatusBadRequest))
					return
				}
				r.Body = io.NopCloser(bytes.NewReader(body))
				if err := v.ValidateRequest(reqvalidator.FromHTTP(r)); err != nil {
					cfg.reject(w, r, err)
					return
				}
				// Validation may have consumed the buffered body; rewind
				// for the next handler.
				r.Body = io.NopCloser(bytes.NewReader(body))
			} else {
				if err := v.ValidateRequest(reqvalidator.FromHTTP(r)); err != nil {
					cfg.reject(w, r, err)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (c *config) reject(w http.ResponseWriter, r *http.Request, err error) {
	coded := httperr.WithCode(err, statusFor(err))
	c.logger.Info("request rejected by contract validation",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", httperr.Code(coded)),
		zap.Error(err),
	)
	c.onError(w, r, coded)
}

// statusFor maps a validation failure to its HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, reqvalidator.ErrMediaType):
		return http.StatusNotAcceptable
	case errors.Is(err, reqvalidator.ErrMissingParameter),
		errors.Is(err, reqvalidator.ErrParameterValue),
		errors.Is(err, reqvalidator.ErrMalformedBody):
		return http.StatusBadRequest
	case errors.Is(err, reqvalidator.ErrBodySchema):
		return http.StatusUnprocessableEntity
	case errors.Is(err, contract.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	http.Error(w, err.Error(), httperr.Code(err))
}
