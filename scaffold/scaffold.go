// Package scaffold provides the embedded starter files written by
// `jxr-website init`.
package scaffold

import (
	"embed"
	"fmt"
	"io"
	"text/template"
)

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

// SiteData holds the template variables of site.yaml.tmpl.
type SiteData struct {
	Title   string
	Tagline string
	URL     string
	BaseURL string
	GitHub  string // GitHub user; empty omits the GitHub links
}

// WriteSiteConfig renders the starter site.yaml into w.
func WriteSiteConfig(w io.Writer, data SiteData) error {
	content, err := Templates.ReadFile("templates/site.yaml.tmpl")
	if err != nil {
		return fmt.Errorf("read site template: %w", err)
	}
	tmpl, err := template.New("site.yaml").Parse(string(content))
	if err != nil {
		return fmt.Errorf("parse site template: %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute site template: %w", err)
	}
	return nil
}
