package ginguide

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

var swaggerPage = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html>
<head>
    <link type="text/css" rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
    <title>{{.Title}}</title>
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
const ui = SwaggerUIBundle({
    url: {{.OpenAPIURL}},
    dom_id: '#swagger-ui',
    deepLinking: true,
})
</script>
</body>
</html>`))

// SwaggerUI returns a Gin handler that serves Swagger UI for the document
// at openAPIURL
func SwaggerUI(openAPIURL, title string) gin.HandlerFunc {
	data := struct{ OpenAPIURL, Title string }{openAPIURL, title}
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		if err := swaggerPage.Execute(c.Writer, data); err != nil {
			_ = c.Error(err)
		}
	}
}
