package ginguide

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/invopop/jsonschema"

	"github.com/deepankarm/jsonguide/pkg/jsonguide"
)

// endpointDoc describes one route in the OpenAPI document
type endpointDoc struct {
	Method    string
	Path      string
	Summary   string
	Request   reflect.Type
	Responses map[int]responseDoc
}

type responseDoc struct {
	Type        reflect.Type
	Description string
}

type errorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

type schemaList struct {
	Schemas []string `json:"schemas"`
}

func endpointDocs() []endpointDoc {
	textRequest := reflect.TypeFor[TextRequest]()
	errs := map[int]responseDoc{
		http.StatusBadRequest:            {reflect.TypeFor[errorBody](), "Invalid request or schema"},
		http.StatusNotFound:              {reflect.TypeFor[errorBody](), "Unknown schema name"},
		http.StatusRequestEntityTooLarge: {reflect.TypeFor[errorBody](), "Text or request body exceeds the configured limit"},
	}
	with := func(code int, r responseDoc) map[int]responseDoc {
		out := map[int]responseDoc{code: r}
		for k, v := range errs {
			out[k] = v
		}
		return out
	}

	return []endpointDoc{
		{
			Method:    http.MethodPost,
			Path:      "/v1/complete",
			Summary:   "Legal continuations of the text",
			Request:   textRequest,
			Responses: with(http.StatusOK, responseDoc{reflect.TypeFor[CompleteResponse](), "Completion"}),
		},
		{
			Method:    http.MethodPost,
			Path:      "/v1/find-end",
			Summary:   "Where the value described by the schema ends",
			Request:   textRequest,
			Responses: with(http.StatusOK, responseDoc{reflect.TypeFor[FindEndResponse](), "End position"}),
		},
		{
			Method:    http.MethodPost,
			Path:      "/v1/preview",
			Summary:   "Repair the text into a complete document",
			Request:   textRequest,
			Responses: with(http.StatusOK, responseDoc{reflect.TypeFor[jsonguide.PreviewResult](), "Repaired document"}),
		},
		{
			Method:    http.MethodGet,
			Path:      "/v1/schemas",
			Summary:   "Registered schema names",
			Responses: map[int]responseDoc{http.StatusOK: {reflect.TypeFor[schemaList](), "Schema names"}},
		},
		{
			Method:  http.MethodGet,
			Path:    "/v1/schemas/:name",
			Summary: "A registered schema",
			Responses: map[int]responseDoc{
				http.StatusOK:       {nil, "JSON Schema document"},
				http.StatusNotFound: {reflect.TypeFor[errorBody](), "Unknown schema name"},
			},
		},
	}
}

// OpenAPIHandler returns a handler that serves the OpenAPI document
func (api *API) OpenAPIHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, api.GenerateOpenAPI())
	}
}

// GenerateOpenAPI generates the OpenAPI 3.0 document for the routes
// mounted by Routes
func (api *API) GenerateOpenAPI() map[string]any {
	paths := make(map[string]any)
	for _, doc := range endpointDocs() {
		openAPIPath := ConvertGinPathToOpenAPI(doc.Path)
		pathItem, ok := paths[openAPIPath].(map[string]any)
		if !ok {
			pathItem = make(map[string]any)
			paths[openAPIPath] = pathItem
		}
		pathItem[strings.ToLower(doc.Method)] = buildOperation(doc, openAPIPath)
	}

	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":       api.info.Title,
			"version":     api.info.Version,
			"description": api.info.Description,
		},
		"paths": paths,
	}
}

func buildOperation(doc endpointDoc, openAPIPath string) map[string]any {
	operation := map[string]any{
		"summary": doc.Summary,
		"tags":    []string{"jsonguide"},
	}

	if names := ExtractPathParameters(openAPIPath); len(names) > 0 {
		params := make([]any, 0, len(names))
		for _, name := range names {
			params = append(params, map[string]any{
				"name":     name,
				"in":       "path",
				"required": true,
				"schema":   map[string]any{"type": "string"},
			})
		}
		operation["parameters"] = params
	}

	if doc.Request != nil {
		operation["requestBody"] = map[string]any{
			"required": true,
			"content": map[string]any{
				"application/json": map[string]any{"schema": schemaForType(doc.Request)},
			},
		}
	}

	responses := make(map[string]any, len(doc.Responses))
	for code, resp := range doc.Responses {
		body := map[string]any{"description": resp.Description}
		if resp.Type != nil {
			body["content"] = map[string]any{
				"application/json": map[string]any{"schema": schemaForType(resp.Type)},
			}
		}
		responses[strconv.Itoa(code)] = body
	}
	operation["responses"] = responses
	return operation
}

// schemaForType reflects t into an inline JSON schema without the $schema
// and $id keywords, which OpenAPI does not accept
func schemaForType(t reflect.Type) map[string]any {
	r := &jsonschema.Reflector{DoNotReference: true, Anonymous: true}
	data, err := json.Marshal(r.ReflectFromType(t))
	if err != nil {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]any{}
	}
	delete(out, "$schema")
	delete(out, "$id")
	return out
}

// ConvertGinPathToOpenAPI converts Gin path format to OpenAPI format
// e.g., /schemas/:name -> /schemas/{name}
func ConvertGinPathToOpenAPI(ginPath string) string {
	parts := strings.Split(ginPath, "/")
	for i, part := range parts {
		if name, ok := strings.CutPrefix(part, ":"); ok {
			parts[i] = "{" + name + "}"
		}
	}
	return strings.Join(parts, "/")
}

// ExtractPathParameters extracts parameter names from an OpenAPI path
// e.g., /schemas/{name} -> ["name"]
func ExtractPathParameters(path string) []string {
	var params []string
	for _, part := range strings.Split(path, "/") {
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			params = append(params, part[1:len(part)-1])
		}
	}
	return params
}
