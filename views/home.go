package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

const (
	homeDescription = "Description will go into a meta tag in <head />"
	introPath       = "/docs/intro"
	introLabel      = "快速了解我的个人情况 👤"
)

// HomepageHeader renders the hero banner with the site title, tagline and
// the call-to-action button.
func HomepageHeader(cfg SiteConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<header class="`)
		buf.WriteString(attr(cls("hero hero--primary", "heroBanner")))
		buf.WriteString(`"><div class="container"><h1 class="hero__title">`)
		buf.WriteString(text(cfg.Title))
		buf.WriteString(`</h1><p class="hero__subtitle">`)
		buf.WriteString(text(cfg.Tagline))
		buf.WriteString(`</p><div class="buttons">`)
		writeLink(&buf, cfg, introPath, introLabel, "button button--secondary button--lg")
		buf.WriteString(`</div></div></header>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Home is the full homepage: hero banner and feature grid inside Layout.
func Home(cfg SiteConfig, features []FeatureRecord) templ.Component {
	return Layout(cfg, HomeMeta(cfg), templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := HomepageHeader(cfg).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<main>"); err != nil {
			return err
		}
		if err := HomepageFeatures(cfg, features).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main>")
		return err
	}))
}

// HomeMeta is the head metadata of the homepage.
func HomeMeta(cfg SiteConfig) PageMeta {
	return PageMeta{
		Title:       "Hello from " + cfg.Title,
		Description: homeDescription,
		OGType:      "website",
	}
}
