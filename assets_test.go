package website

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/J-jxr/jxr-website/views"
)

func TestEmbeddedAssetsResolveDefaultFeatures(t *testing.T) {
	require.NoError(t, ResolveIcons(StaticFS(), views.Features()))
	require.NoError(t, ResolveSiteAssets(StaticFS(), DefaultSiteConfig()))
}

func TestResolveIconsReportsEveryMissingIcon(t *testing.T) {
	fsys := fstest.MapFS{
		"img/a.svg": {Data: []byte("<svg/>")},
		"img/dir":   {Mode: fs.ModeDir | 0o755},
	}
	recs := []views.FeatureRecord{
		{Title: "ok", Icon: "img/a.svg"},
		{Title: "leading slash", Icon: "/img/a.svg"},
		{Title: "missing", Icon: "img/missing.svg"},
		{Title: "directory", Icon: "img/dir"},
		{Title: "empty"},
	}

	err := ResolveIcons(fsys, recs)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, `feature "missing"`)
	assert.Contains(t, msg, `feature "directory"`)
	assert.Contains(t, msg, `feature "empty"`)
	assert.NotContains(t, msg, `feature "ok"`)
	assert.NotContains(t, msg, `feature "leading slash"`)
}

func TestResolveSiteAssetsSkipsExternal(t *testing.T) {
	cfg := DefaultSiteConfig()
	cfg.Favicon = "https://cdn.example.com/favicon.ico"
	cfg.Navbar.Logo.Src = "img/nope.svg"

	err := ResolveSiteAssets(fstest.MapFS{}, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "navbar logo")
	assert.NotContains(t, err.Error(), "favicon")
}

func TestResolveSiteAssetsChecksSocialCard(t *testing.T) {
	cfg := DefaultSiteConfig()
	cfg.Image = "img/missing-card.png"

	err := ResolveSiteAssets(StaticFS(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "social card")
}
