package render

import (
	"embed"
	"html/template"
	"io"
)

const PageTemplate = "page.gohtml"

//go:embed templates/*.gohtml
var templatesFS embed.FS

var templates = template.Must(template.New("").ParseFS(templatesFS, "templates/*.gohtml"))

// Render writes the whole page with the contests table
func Render(w io.Writer, table *Table) error {
	return templates.ExecuteTemplate(w, PageTemplate, table)
}
