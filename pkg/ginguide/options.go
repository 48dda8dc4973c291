package ginguide

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/deepankarm/jsonguide/pkg/jsonguide/schema"
)

// Option configures an API
type Option func(*API)

// WithLogger sets the request logger
func WithLogger(logger *slog.Logger) Option {
	return func(api *API) {
		api.logger = logger
	}
}

// WithMaxTextBytes limits the size of the text a request may carry
func WithMaxTextBytes(n int) Option {
	return func(api *API) {
		api.maxTextBytes = n
	}
}

// WithSchema registers a named schema that requests can refer to
func WithSchema(name string, node *schema.Node) Option {
	return func(api *API) {
		api.schemas[name] = node
	}
}

// WithRegisterer sets where metrics are registered.
// Pass nil to disable metrics.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(api *API) {
		api.registerer = reg
	}
}

// WithDescription sets the API description shown in the OpenAPI document
func WithDescription(d string) Option {
	return func(api *API) {
		api.info.Description = d
	}
}
