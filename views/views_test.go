package views

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func testConfig() SiteConfig {
	return SiteConfig{
		Title:   "JXR's Blog",
		Tagline: "A blog about my life and experiences",
		Favicon: "img/favicon.svg",
		URL:     "https://J-jxr.github.io",
		BaseURL: "/jxr-website/",
		Lang:    "zh-Hans",
		Navbar: Navbar{
			Title: "JXR's Website",
			Logo:  Logo{Alt: "My Site Logo", Src: "img/logo.svg"},
			Items: []NavItem{
				{Label: "Docs", To: "/docs/intro", Position: "left"},
				{Label: "Blog", To: "/blog", Position: "left"},
				{Label: "GitHub", Href: "https://github.com/J-jxr", Position: "right"},
			},
		},
		Footer: Footer{
			Style: "dark",
			Links: []FooterGroup{
				{Title: "Docs", Items: []FooterLink{{Label: "Tutorial", To: "/docs/intro"}}},
				{Title: "More", Items: []FooterLink{{Label: "GitHub", Href: "https://github.com/facebook/docusaurus"}}},
			},
		},
	}
}

func renderString(t *testing.T, cmp templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, cmp.Render(context.Background(), &b))
	return b.String()
}

func parse(t *testing.T, cmp templ.Component) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(renderString(t, cmp)))
	require.NoError(t, err)
	return doc
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func byClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, f := range strings.Fields(attrOf(n, "class")) {
			if f == class {
				return true
			}
		}
		return false
	}
}

func attrOf(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func texts(nodes []*html.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, textOf(n))
	}
	return out
}
