package preview

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/maheshrc27/fluxora/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// RenderHTML renders the preview card as an HTML fragment.
func RenderHTML(platform models.Platform, content Content) (string, error) {
	p, err := Render(platform, content)
	if err != nil {
		return "", err
	}
	return p.HTML()
}

func (p Preview) HTML() (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "preview", p); err != nil {
		return "", err
	}
	return buf.String(), nil
}
