package scaffold_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	website "github.com/J-jxr/jxr-website"
	"github.com/J-jxr/jxr-website/scaffold"
)

func loadRendered(t *testing.T, data scaffold.SiteData) website.Config {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, scaffold.WriteSiteConfig(&buf, data))

	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	cfg, err := website.LoadConfig(path)
	require.NoError(t, err)
	return cfg
}

func TestWriteSiteConfigRoundTrips(t *testing.T) {
	cfg := loadRendered(t, scaffold.SiteData{
		Title:   `Tom's "Notes"`,
		Tagline: "Things I learned",
		URL:     "https://tom.example.com",
		BaseURL: "/notes/",
		GitHub:  "tom",
	})

	require.NoError(t, cfg.Validate())
	assert.Equal(t, `Tom's "Notes"`, cfg.Site.Title)
	assert.Equal(t, `Tom's "Notes"`, cfg.Site.Navbar.Title)
	assert.Equal(t, "Things I learned", cfg.Site.Tagline)
	assert.Equal(t, "/notes/", cfg.Site.BaseURL)
	require.Len(t, cfg.Site.Navbar.Items, 3)
	assert.Equal(t, "https://github.com/tom", cfg.Site.Navbar.Items[2].Href)
	assert.Equal(t, "right", cfg.Site.Navbar.Items[2].Position)
}

func TestWriteSiteConfigWithoutGitHub(t *testing.T) {
	cfg := loadRendered(t, scaffold.SiteData{
		Title:   "Plain",
		Tagline: "t",
		URL:     "https://plain.example.com",
		BaseURL: "/",
	})

	require.Len(t, cfg.Site.Navbar.Items, 2)
	for _, group := range cfg.Site.Footer.Links {
		for _, item := range group.Items {
			assert.Empty(t, item.Href, "footer item %q", item.Label)
		}
	}
}

func TestWriteSiteConfigQuotesGitHubUser(t *testing.T) {
	cfg := loadRendered(t, scaffold.SiteData{
		Title:   "Quoted",
		Tagline: "t",
		URL:     "https://q.example.com",
		BaseURL: "/",
		GitHub:  `a"b`,
	})

	require.Len(t, cfg.Site.Navbar.Items, 3)
	assert.Equal(t, `https://github.com/a"b`, cfg.Site.Navbar.Items[2].Href)
}
