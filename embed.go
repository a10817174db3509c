package website

import "embed"

// EmbeddedAssets contains the static assets shipped with the site:
// feature icons, logo, favicon and the stylesheet.
//
//go:embed static
var EmbeddedAssets embed.FS
