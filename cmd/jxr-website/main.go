package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	website "github.com/J-jxr/jxr-website"
)

// version is set at build time via ldflags.
var version = "dev"

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err == nil {
		return
	}
	if !errors.Is(err, errUsage) {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}

// run dispatches a subcommand. It returns errUsage after printing the
// usage text for a missing or unknown command.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		printUsage(stdout)
		return errUsage
	}

	switch args[0] {
	case "serve":
		return runServe(ctx, args[1:], stdout)
	case "init":
		return runInit(args[1:], stdout)
	case "version":
		fmt.Fprintf(stdout, "jxr-website %s\n", version)
	case "help", "-h", "--help":
		printUsage(stdout)
	default:
		fmt.Fprintf(stdout, "Unknown command: %s\n\n", args[0])
		printUsage(stdout)
		return errUsage
	}
	return nil
}

func runServe(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stdout)
	configPath := fs.String("config", os.Getenv("CONFIG_PATH"), "path to site.yaml (env CONFIG_PATH)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := website.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	app := website.New(cfg)
	color.New(color.FgGreen, color.Bold).Fprintf(stdout, "%s\n", cfg.Site.Title)
	fmt.Fprintf(stdout, "  listening on %s, base path %s\n\n", cfg.Addr, cfg.Site.BaseURL)
	return app.Start(ctx)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `jxr-website - JXR's Blog homepage server

Usage:
  jxr-website <command> [arguments]

Commands:
  serve [-config site.yaml]   Start the HTTP server
  init [flags] [path]         Write a starter site.yaml
  version                     Print the version
  help                        Show this help message

Examples:
  jxr-website serve -config site.yaml
  jxr-website init -title "My Blog" -github my-user site.yaml`)
}
