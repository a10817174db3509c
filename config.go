package website

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/J-jxr/jxr-website/views"
)

// Config holds all configuration for the site server.
type Config struct {
	Site views.SiteConfig `yaml:"site"`

	Addr            string        `yaml:"addr" env:"ADDR" env-default:":3000"`
	LogLevel        string        `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LoadConfig reads the YAML file at path and applies environment overrides.
// An empty path reads the environment only. Fields left empty fall back to
// DefaultSiteConfig; navbar items and footer links fall back only when the
// key is absent, so `links: []` configures an empty footer.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	var err error
	if path == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("website: read config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// DefaultSiteConfig returns the configuration of JXR's Blog.
func DefaultSiteConfig() views.SiteConfig {
	return views.SiteConfig{
		Title:   "JXR's Blog",
		Tagline: "A blog about my life and experiences",
		Favicon: "img/favicon.svg",
		URL:     "https://J-jxr.github.io",
		BaseURL: "/jxr-website/",
		Lang:    "zh-Hans",
		Image:   "img/social-card.svg",
		Navbar: views.Navbar{
			Title: "JXR's Website",
			Logo:  views.Logo{Alt: "My Site Logo", Src: "img/logo.svg"},
			Items: []views.NavItem{
				{Label: "Docs", To: "/docs/intro", Position: "left"},
				{Label: "Blog", To: "/blog", Position: "left"},
				{Label: "GitHub", Href: "https://github.com/J-jxr", Position: "right"},
			},
		},
		Footer: views.Footer{
			Style: "dark",
			Links: []views.FooterGroup{
				{
					Title: "Docs",
					Items: []views.FooterLink{
						{Label: "Tutorial", To: "/docs/intro"},
					},
				},
				{
					Title: "Community",
					Items: []views.FooterLink{
						{Label: "Stack Overflow", Href: "https://stackoverflow.com/questions/tagged/docusaurus"},
						{Label: "Discord", Href: "https://discordapp.com/invite/docusaurus"},
						{Label: "X", Href: "https://x.com/docusaurus"},
					},
				},
				{
					Title: "More",
					Items: []views.FooterLink{
						{Label: "Blog", To: "/blog"},
						{Label: "GitHub", Href: "https://github.com/facebook/docusaurus"},
					},
				},
			},
		},
	}
}

func (c *Config) setDefaults() {
	def := DefaultSiteConfig()
	s := &c.Site
	if s.Title == "" {
		s.Title = def.Title
	}
	if s.Tagline == "" {
		s.Tagline = def.Tagline
	}
	if s.Favicon == "" {
		s.Favicon = def.Favicon
	}
	if s.URL == "" {
		s.URL = def.URL
	}
	if s.BaseURL == "" {
		s.BaseURL = def.BaseURL
	}
	if s.Lang == "" {
		s.Lang = def.Lang
	}
	if s.Image == "" {
		s.Image = def.Image
	}
	if s.Navbar.Title == "" {
		s.Navbar.Title = def.Navbar.Title
	}
	if s.Navbar.Logo.Src == "" {
		s.Navbar.Logo.Src = def.Navbar.Logo.Src
	}
	if s.Navbar.Logo.Alt == "" {
		s.Navbar.Logo.Alt = def.Navbar.Logo.Alt
	}
	// An explicitly empty list (items: []) is kept; only an absent one
	// takes the defaults.
	if s.Navbar.Items == nil {
		s.Navbar.Items = def.Navbar.Items
	}
	if s.Footer.Style == "" {
		s.Footer.Style = def.Footer.Style
	}
	if s.Footer.Links == nil {
		s.Footer.Links = def.Footer.Links
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// Validate checks the settings the server cannot start without.
func (c Config) Validate() error {
	u, err := url.Parse(c.Site.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("website: site url %q must be an absolute URL", c.Site.URL)
	}
	if u.Path != "" && u.Path != "/" {
		return fmt.Errorf("website: site url %q must not contain a path, use base_url", c.Site.URL)
	}
	base := c.Site.BaseURL
	if !strings.HasPrefix(base, "/") || !strings.HasSuffix(base, "/") {
		return fmt.Errorf("website: base url %q must start and end with /", base)
	}
	for _, item := range c.Site.Navbar.Items {
		if item.Position != "" && item.Position != "left" && item.Position != "right" {
			return fmt.Errorf("website: navbar item %q: unknown position %q", item.Label, item.Position)
		}
	}
	return nil
}
