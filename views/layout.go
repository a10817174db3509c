package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

// Link renders an anchor. Internal targets are resolved against the base
// path; external ones open in a new tab.
func Link(cfg SiteConfig, target, label, class string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeLink(&buf, cfg, target, label, class)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeLink(buf *bytes.Buffer, cfg SiteConfig, target, label, class string) {
	buf.WriteString(`<a`)
	if class != "" {
		buf.WriteString(` class="`)
		buf.WriteString(attr(class))
		buf.WriteString(`"`)
	}
	buf.WriteString(` href="`)
	if IsExternal(target) {
		buf.WriteString(href(target))
		buf.WriteString(`" target="_blank" rel="noopener noreferrer">`)
	} else {
		buf.WriteString(href(PathURL(cfg, target)))
		buf.WriteString(`">`)
	}
	buf.WriteString(text(label))
	buf.WriteString(`</a>`)
}

func linkTarget(to, external string) string {
	if external != "" {
		return external
	}
	return to
}

// Layout wraps body in the full page shell: head metadata, navbar and footer.
func Layout(cfg SiteConfig, meta PageMeta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeHead(&buf, cfg, meta)
		buf.WriteString(`<body><div id="__site">`)
		writeNavbar(&buf, cfg)
		buf.WriteString(`<div class="main-wrapper">`)
		if body != nil {
			if err := body.Render(ctx, &buf); err != nil {
				return err
			}
		}
		buf.WriteString(`</div>`)
		writeFooter(&buf, cfg)
		buf.WriteString(`</div></body></html>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeHead(buf *bytes.Buffer, cfg SiteConfig, meta PageMeta) {
	title := PageTitle(cfg, meta.Title)
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}
	canonical := AbsoluteURL(cfg, meta.Path)

	buf.WriteString(`<!DOCTYPE html><html lang="`)
	buf.WriteString(attr(cfg.Lang))
	buf.WriteString(`"><head><meta charset="UTF-8">`)
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
	buf.WriteString(`<title>`)
	buf.WriteString(text(title))
	buf.WriteString(`</title>`)
	if meta.Description != "" {
		buf.WriteString(`<meta name="description" content="`)
		buf.WriteString(attr(meta.Description))
		buf.WriteString(`"><meta property="og:description" content="`)
		buf.WriteString(attr(meta.Description))
		buf.WriteString(`">`)
	}
	buf.WriteString(`<meta property="og:title" content="`)
	buf.WriteString(attr(title))
	buf.WriteString(`"><meta property="og:type" content="`)
	buf.WriteString(attr(ogType))
	buf.WriteString(`"><meta property="og:url" content="`)
	buf.WriteString(attr(canonical))
	buf.WriteString(`"><link rel="canonical" href="`)
	buf.WriteString(href(canonical))
	buf.WriteString(`">`)
	if cfg.Image != "" {
		image := cfg.Image
		if !IsExternal(image) {
			image = AbsoluteURL(cfg, image)
		}
		buf.WriteString(`<meta property="og:image" content="`)
		buf.WriteString(href(image))
		buf.WriteString(`"><meta name="twitter:card" content="summary_large_image"><meta name="twitter:image" content="`)
		buf.WriteString(href(image))
		buf.WriteString(`">`)
	}
	if cfg.Favicon != "" {
		buf.WriteString(`<link rel="icon" href="`)
		buf.WriteString(href(AssetURL(cfg, cfg.Favicon)))
		buf.WriteString(`">`)
	}
	buf.WriteString(`<link rel="stylesheet" href="`)
	buf.WriteString(href(AssetURL(cfg, "css/custom.css")))
	buf.WriteString(`"><script type="application/ld+json">`)
	buf.WriteString(WebsiteJsonLD(cfg))
	buf.WriteString(`</script></head>`)
}

func writeNavbar(buf *bytes.Buffer, cfg SiteConfig) {
	nav := cfg.Navbar
	buf.WriteString(`<nav class="navbar" aria-label="Main"><div class="navbar__inner"><div class="navbar__items">`)
	buf.WriteString(`<a class="navbar__brand" href="`)
	buf.WriteString(href(BasePath(cfg)))
	buf.WriteString(`">`)
	if nav.Logo.Src != "" {
		buf.WriteString(`<div class="navbar__logo"><img src="`)
		buf.WriteString(href(AssetURL(cfg, nav.Logo.Src)))
		buf.WriteString(`" alt="`)
		buf.WriteString(attr(nav.Logo.Alt))
		buf.WriteString(`"></div>`)
	}
	if nav.Title != "" {
		buf.WriteString(`<b class="navbar__title">`)
		buf.WriteString(text(nav.Title))
		buf.WriteString(`</b>`)
	}
	buf.WriteString(`</a>`)
	writeNavItems(buf, cfg, "left")
	buf.WriteString(`</div><div class="navbar__items navbar__items--right">`)
	writeNavItems(buf, cfg, "right")
	buf.WriteString(`</div></div></nav>`)
}

func writeNavItems(buf *bytes.Buffer, cfg SiteConfig, position string) {
	for _, item := range cfg.Navbar.Items {
		pos := item.Position
		if pos == "" {
			pos = "left"
		}
		if pos != position {
			continue
		}
		writeLink(buf, cfg, linkTarget(item.To, item.Href), item.Label, "navbar__item navbar__link")
	}
}

func writeFooter(buf *bytes.Buffer, cfg SiteConfig) {
	style := cfg.Footer.Style
	if style == "" {
		style = "light"
	}
	buf.WriteString(`<footer class="`)
	buf.WriteString(attr(cls("footer", "footer--"+style)))
	buf.WriteString(`"><div class="container"><div class="row footer__links">`)
	for _, group := range cfg.Footer.Links {
		buf.WriteString(`<div class="col footer__col"><div class="footer__title">`)
		buf.WriteString(text(group.Title))
		buf.WriteString(`</div><ul class="footer__items">`)
		for _, item := range group.Items {
			buf.WriteString(`<li class="footer__item">`)
			writeLink(buf, cfg, linkTarget(item.To, item.Href), item.Label, "footer__link-item")
			buf.WriteString(`</li>`)
		}
		buf.WriteString(`</ul></div>`)
	}
	buf.WriteString(`</div></div></footer>`)
}

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return Layout(cfg, PageMeta{Title: "Page Not Found"}, message(cfg,
		"Page Not Found",
		"We could not find what you were looking for.",
	))
}

// ServerError renders the 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	return Layout(cfg, PageMeta{Title: "Something went wrong"}, message(cfg,
		"Something went wrong",
		"The page failed to render. Please try again later.",
	))
}

func message(cfg SiteConfig, heading, body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<main class="container margin-vert--xl"><div class="row"><div class="col col--6 col--offset-3"><h1 class="hero__title">`)
		buf.WriteString(text(heading))
		buf.WriteString(`</h1><p>`)
		buf.WriteString(text(body))
		buf.WriteString(`</p><p>`)
		writeLink(&buf, cfg, "/", "Back to home", "button button--primary")
		buf.WriteString(`</p></div></div></main>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}
