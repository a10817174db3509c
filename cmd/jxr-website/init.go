package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	website "github.com/J-jxr/jxr-website"
	"github.com/J-jxr/jxr-website/scaffold"
)

func runInit(args []string, stdout io.Writer) error {
	def := website.DefaultSiteConfig()

	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(stdout)
	data := scaffold.SiteData{}
	fs.StringVar(&data.Title, "title", def.Title, "site title")
	fs.StringVar(&data.Tagline, "tagline", def.Tagline, "site tagline")
	fs.StringVar(&data.URL, "url", def.URL, "production origin")
	fs.StringVar(&data.BaseURL, "base-url", def.BaseURL, "path prefix the site is served under")
	fs.StringVar(&data.GitHub, "github", "", "GitHub user for navbar and footer links")
	if err := fs.Parse(args); err != nil {
		return err
	}

	outPath := "site.yaml"
	if fs.NArg() > 0 {
		outPath = fs.Arg(0)
	}

	// Refuse to overwrite an existing config.
	if _, err := os.Stat(outPath); err == nil {
		return fmt.Errorf("%s already exists", outPath)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	if err := scaffold.WriteSiteConfig(f, data); err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(stdout, "  created %s\n", outPath)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Next steps:")
	fmt.Fprintf(stdout, "  jxr-website serve -config %s\n", outPath)
	return nil
}
