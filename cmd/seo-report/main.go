// Command seo-report analyzes the blog posts and writes the SEO reports shown
// on the admin dashboard.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"
	flag "github.com/spf13/pflag"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/seo"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	flagSet := flag.NewFlagSet("seo-report", flag.ContinueOnError)
	flagSet.SetOutput(stderr)

	contentDir := flagSet.String("content", cfg.Content.BlogDir(), "Directory of blog posts to analyze")
	out := flagSet.String("out", cfg.SEO.ReportPath, "File the JSON reports are written to")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if info, err := os.Stat(*contentDir); err != nil || !info.IsDir() {
		fmt.Fprintf(stderr, "FATAL ERROR: Directory not found: '%s'. Check path.\n", *contentDir)
		return 1
	}

	fmt.Fprintf(stdout, "Starting analysis on content in: %s\n", *contentDir)

	reports, err := seo.AnalyzeDir(*contentDir)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if err := seo.WriteReports(*out, reports); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "\n✅ SEO analysis complete! Report saved to: %s (%d articles analyzed)\n", *out, len(reports))
	return 0
}
