package website

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/J-jxr/jxr-website/views"
)

// StaticFS returns the embedded static root (the directory holding img/ and css/).
func StaticFS() fs.FS {
	sub, err := fs.Sub(EmbeddedAssets, "static")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}

// ResolveIcons checks that every feature icon exists in fsys. All missing
// icons are reported together.
func ResolveIcons(fsys fs.FS, recs []views.FeatureRecord) error {
	var errs []error
	for _, rec := range recs {
		if err := resolveAsset(fsys, rec.Icon); err != nil {
			errs = append(errs, fmt.Errorf("feature %q: %w", rec.Title, err))
		}
	}
	return errors.Join(errs...)
}

// ResolveSiteAssets checks the favicon, social card and navbar logo
// referenced by cfg.
func ResolveSiteAssets(fsys fs.FS, cfg views.SiteConfig) error {
	var errs []error
	if cfg.Favicon != "" && !views.IsExternal(cfg.Favicon) {
		if err := resolveAsset(fsys, cfg.Favicon); err != nil {
			errs = append(errs, fmt.Errorf("favicon: %w", err))
		}
	}
	if cfg.Image != "" && !views.IsExternal(cfg.Image) {
		if err := resolveAsset(fsys, cfg.Image); err != nil {
			errs = append(errs, fmt.Errorf("social card: %w", err))
		}
	}
	if src := cfg.Navbar.Logo.Src; src != "" && !views.IsExternal(src) {
		if err := resolveAsset(fsys, src); err != nil {
			errs = append(errs, fmt.Errorf("navbar logo: %w", err))
		}
	}
	return errors.Join(errs...)
}

func resolveAsset(fsys fs.FS, name string) error {
	if name == "" {
		return errors.New("empty asset path")
	}
	clean := path.Clean(strings.TrimPrefix(name, "/"))
	if !fs.ValidPath(clean) {
		return fmt.Errorf("invalid asset path %q", name)
	}
	info, err := fs.Stat(fsys, clean)
	if err != nil {
		return fmt.Errorf("asset %q: %w", name, err)
	}
	if info.IsDir() {
		return fmt.Errorf("asset %q is a directory", name)
	}
	return nil
}
