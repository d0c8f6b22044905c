package report

import (
	_ "embed"
	"html/template"
	"io"
)

//go:embed report.html.tmpl
var htmlSource string

var htmlTemplate = template.Must(template.New("report").Parse(htmlSource))

// WriteHTML renders a self-contained page with the summary and the table.
func WriteHTML(w io.Writer, rep Report) error {
	return htmlTemplate.Execute(w, rep)
}
