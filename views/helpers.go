package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"
)

func text(s string) string { return templ.EscapeString(s) }

func attr(s string) string { return templ.EscapeString(s) }

// href sanitizes a URL the way templ does for href/src attributes: unsafe
// schemes such as javascript: are replaced before escaping.
func href(s string) string { return attr(string(templ.URL(s))) }

// BasePath returns cfg.BaseURL normalized to start and end with "/".
func BasePath(cfg SiteConfig) string {
	base := cfg.BaseURL
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

// PathURL prefixes an internal site path with the base path. Paths are
// emitted without a trailing slash, matching trailingSlash=false routing.
func PathURL(cfg SiteConfig, p string) string {
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return BasePath(cfg)
	}
	return path.Join(BasePath(cfg), p)
}

// AssetURL returns the served URL of a static asset such as an icon.
func AssetURL(cfg SiteConfig, asset string) string {
	if IsExternal(asset) {
		return asset
	}
	return PathURL(cfg, asset)
}

// AbsoluteURL joins the production origin with an internal path.
func AbsoluteURL(cfg SiteConfig, p string) string {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return PathURL(cfg, p)
	}
	u.Path = PathURL(cfg, p)
	return u.String()
}

// IsExternal reports whether target points outside the site: it carries a
// scheme or is protocol-relative.
func IsExternal(target string) bool {
	if strings.HasPrefix(target, "//") {
		return true
	}
	u, err := url.Parse(target)
	return err == nil && u.Scheme != ""
}

// cls joins the non-empty class names.
func cls(names ...string) string {
	var parts []string
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, " ")
}

// PageTitle composes the <title> value: "page | site", or the site title
// alone when the page has none.
func PageTitle(cfg SiteConfig, title string) string {
	title = strings.TrimSpace(title)
	if title == "" || title == cfg.Title {
		return cfg.Title
	}
	return title + " | " + cfg.Title
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Title,
		"url":      AbsoluteURL(cfg, ""),
	}
	if cfg.Tagline != "" {
		data["description"] = cfg.Tagline
	}
	if cfg.Lang != "" {
		data["inLanguage"] = cfg.Lang
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
