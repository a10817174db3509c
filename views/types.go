package views

// SiteConfig holds site-wide settings loaded from site.yaml and the
// environment. Every component receives it so nothing is hardcoded.
type SiteConfig struct {
	Title   string `yaml:"title" env:"SITE_TITLE"`
	Tagline string `yaml:"tagline" env:"SITE_TAGLINE"`
	Favicon string `yaml:"favicon"`
	// URL is the production origin without a path.
	URL     string `yaml:"url" env:"SITE_URL"`
	// BaseURL is the path prefix the site is served under. It starts and
	// ends with "/".
	BaseURL string `yaml:"base_url" env:"SITE_BASE_URL"`
	Lang    string `yaml:"lang" env:"SITE_LANG"`
	// Image is the social card shown by link previews (og:image).
	Image string `yaml:"image"`

	Navbar Navbar `yaml:"navbar"`
	Footer Footer `yaml:"footer"`
}

type Navbar struct {
	Title string    `yaml:"title"`
	Logo  Logo      `yaml:"logo"`
	Items []NavItem `yaml:"items"`
}

type Logo struct {
	Alt string `yaml:"alt"`
	Src string `yaml:"src"`
}

// NavItem is a navbar entry. Exactly one of To (internal path) or Href
// (external URL) is set.
type NavItem struct {
	Label    string `yaml:"label"`
	To       string `yaml:"to"`
	Href     string `yaml:"href"`
	Position string `yaml:"position"` // "left" or "right"
}

type Footer struct {
	Style string        `yaml:"style"` // "dark" or "light"
	Links []FooterGroup `yaml:"links"`
}

type FooterGroup struct {
	Title string       `yaml:"title"`
	Items []FooterLink `yaml:"items"`
}

type FooterLink struct {
	Label string `yaml:"label"`
	To    string `yaml:"to"`
	Href  string `yaml:"href"`
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	Path        string // path below BaseURL, used for canonical + og:url
	OGType      string // "website" or "article"
}

// FeatureRecord is one card of the homepage feature grid.
type FeatureRecord struct {
	Title       string
	Icon        string // asset path relative to the static root
	Description string
}
