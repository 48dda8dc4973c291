// Package ginguide serves the completion engine over HTTP with Gin.
//
// Example:
//
//	api := ginguide.New("capitals", "1.0",
//	    ginguide.WithSchema("capital", node),
//	    ginguide.WithLogger(logger),
//	)
//	router := gin.New()
//	api.Routes(router)
//	router.Run(":8080")
package ginguide

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/deepankarm/jsonguide/internal/logging"
	"github.com/deepankarm/jsonguide/pkg/jsonguide"
	"github.com/deepankarm/jsonguide/pkg/jsonguide/schema"
)

// DefaultMaxTextBytes is the text size limit when none is configured.
const DefaultMaxTextBytes = 1 << 20

// maxEnvelopeBytes bounds what a request body may carry besides the text,
// inline schema included.
const maxEnvelopeBytes = 256 << 10

// API holds the registered schemas and serves completions for them
type API struct {
	mu      sync.RWMutex
	schemas map[string]*schema.Node
	info    APIInfo

	logger       *slog.Logger
	maxTextBytes int
	registerer   prometheus.Registerer
	gatherer     prometheus.Gatherer
	metrics      *metrics
}

type APIInfo struct {
	Title       string
	Version     string
	Description string
}

// New creates an API. Metrics go to a private registry unless
// WithRegisterer says otherwise.
func New(title, version string, opts ...Option) *API {
	reg := prometheus.NewRegistry()
	api := &API{
		schemas:      make(map[string]*schema.Node),
		info:         APIInfo{Title: title, Version: version},
		logger:       logging.Discard(),
		maxTextBytes: DefaultMaxTextBytes,
		registerer:   reg,
	}
	for _, opt := range opts {
		opt(api)
	}
	api.gatherer, _ = api.registerer.(prometheus.Gatherer)
	api.metrics = newMetrics(api.registerer)
	return api
}

// Register adds or replaces a named schema
func (api *API) Register(name string, node *schema.Node) {
	api.mu.Lock()
	defer api.mu.Unlock()
	api.schemas[name] = node
}

// Schema looks up a named schema
func (api *API) Schema(name string) (*schema.Node, bool) {
	api.mu.RLock()
	defer api.mu.RUnlock()
	node, ok := api.schemas[name]
	return node, ok
}

// SchemaNames returns the registered names in sorted order
func (api *API) SchemaNames() []string {
	api.mu.RLock()
	defer api.mu.RUnlock()
	names := make([]string, 0, len(api.schemas))
	for name := range api.schemas {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Routes mounts the API on r
func (api *API) Routes(r gin.IRouter) {
	r.Use(api.observe())

	v1 := r.Group("/v1")
	v1.POST("/complete", api.handleComplete)
	v1.POST("/find-end", api.handleFindEnd)
	v1.POST("/preview", api.handlePreview)
	v1.GET("/schemas", api.handleListSchemas)
	v1.GET("/schemas/:name", api.handleGetSchema)

	r.GET("/openapi.json", api.OpenAPIHandler())
	r.GET("/docs", SwaggerUI("/openapi.json", api.info.Title))
	if api.gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(api.gatherer, promhttp.HandlerOpts{})))
	}
}

// TextRequest is the body shared by every engine endpoint. Exactly one of
// Schema and SchemaName selects the schema.
type TextRequest struct {
	Schema     json.RawMessage `json:"schema,omitempty" binding:"required_without=SchemaName"`
	SchemaName string          `json:"schema_name,omitempty" binding:"required_without=Schema,excluded_with=Schema"`
	Text       string          `json:"text"`
}

// FragmentResponse is one fragment of a completion
type FragmentResponse struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
	End  bool   `json:"end,omitempty"`
}

// CompleteResponse is the answer of /v1/complete
type CompleteResponse struct {
	Mode      string             `json:"mode"`
	Fragments []FragmentResponse `json:"fragments"`
	Wire      []string           `json:"wire"`
}

// FindEndResponse is the answer of /v1/find-end
type FindEndResponse struct {
	State  string `json:"state"`
	Offset int    `json:"offset"`
}

// NewCompleteResponse renders a completion for the wire
func NewCompleteResponse(c jsonguide.Completion) CompleteResponse {
	resp := CompleteResponse{
		Mode:      c.Mode().String(),
		Fragments: make([]FragmentResponse, 0, c.Len()),
		Wire:      c.Wire(),
	}
	if resp.Wire == nil {
		resp.Wire = []string{}
	}
	for _, f := range c.Fragments() {
		resp.Fragments = append(resp.Fragments, FragmentResponse{
			Kind: f.Kind().String(),
			Text: f.Text(),
			End:  f.Ends(),
		})
	}
	return resp
}

func (api *API) handleComplete(c *gin.Context) {
	req, node, ok := api.bind(c)
	if !ok {
		return
	}
	completion := jsonguide.Complete(req.Text, node)
	api.metrics.completions.WithLabelValues(completion.Mode().String()).Inc()
	c.JSON(http.StatusOK, NewCompleteResponse(completion))
}

func (api *API) handleFindEnd(c *gin.Context) {
	req, node, ok := api.bind(c)
	if !ok {
		return
	}
	pos := jsonguide.FindEnd(req.Text, node)
	c.JSON(http.StatusOK, FindEndResponse{State: pos.State.String(), Offset: pos.Offset})
}

func (api *API) handlePreview(c *gin.Context) {
	req, node, ok := api.bind(c)
	if !ok {
		return
	}
	preview, err := jsonguide.Preview(req.Text, node)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "preview failed"})
		return
	}
	c.JSON(http.StatusOK, preview)
}

func (api *API) handleListSchemas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"schemas": api.SchemaNames()})
}

func (api *API) handleGetSchema(c *gin.Context) {
	node, ok := api.Schema(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown schema", "details": c.Param("name")})
		return
	}
	c.JSON(http.StatusOK, node)
}

// bind decodes and validates the request and resolves its schema.
// Returns false if it has already sent an error response.
func (api *API) bind(c *gin.Context) (*TextRequest, *schema.Node, bool) {
	var req TextRequest
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, api.maxBodyBytes())
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		var tooLarge *http.MaxBytesError
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &tooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request too large", "details": gin.H{"limit": tooLarge.Limit}})
		case errors.As(err, &verrs):
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": fieldErrors(verrs)})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		}
		return nil, nil, false
	}

	if len(req.Text) > api.maxTextBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "text too long", "details": gin.H{"limit": api.maxTextBytes}})
		return nil, nil, false
	}

	if req.SchemaName != "" {
		node, ok := api.Schema(req.SchemaName)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown schema", "details": req.SchemaName})
			return nil, nil, false
		}
		return &req, node, true
	}

	node, err := schema.Parse(req.Schema)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schema", "details": err})
		return nil, nil, false
	}
	return &req, node, true
}

// maxBodyBytes is the body size limit. A text byte takes at most six bytes
// once escaped in JSON.
func (api *API) maxBodyBytes() int64 {
	return 6*int64(api.maxTextBytes) + maxEnvelopeBytes
}

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func fieldErrors(verrs validator.ValidationErrors) []fieldError {
	out := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}
