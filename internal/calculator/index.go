package calculator

import (
	"bytes"
	"html/template"
	"net/http"

	"calculator-service/internal/handlers"
	"calculator-service/internal/observability"

	"go.uber.org/zap"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>Calculator Microservice</title></head>
<body>
<h1>Calculator Microservice</h1>
<p>Available endpoints:</p>
<ul>
{{- range . }}
  <li><a href="{{ .ExampleURL }}">{{ .ExampleURL }}</a></li>
{{- end }}
</ul>
</body>
</html>
`))

// Index handles GET / with a page linking an example of every operation.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, Operations); err != nil {
		observability.LoggerWithTrace(h.logger, r.Context()).Error("rendering index page", zap.Error(err))
		handlers.WriteError(w, http.StatusInternalServerError, observability.InternalErrorMessage)
		return
	}
	handlers.WriteHTML(w, http.StatusOK, buf.Bytes())
}
