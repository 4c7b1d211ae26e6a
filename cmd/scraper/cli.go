package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/pquin/tumblr-scraper/internal/collector"
	"github.com/pquin/tumblr-scraper/internal/config"
	"github.com/pquin/tumblr-scraper/internal/dashboard"
	"github.com/pquin/tumblr-scraper/internal/domain"
	"github.com/pquin/tumblr-scraper/internal/ingest"
	"github.com/pquin/tumblr-scraper/internal/storage"
	"github.com/pquin/tumblr-scraper/internal/tumblr"
)

const targetsFile = "input/blogs.csv"

// newApp creates the CLI application.
func newApp() *cli.App {
	return &cli.App{
		Name:  "tumblr-scraper",
		Usage: "Scrape Tumblr posts by tag, or by blog with keyword filters",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "tag", Usage: "Collect posts carrying this tag"},
			&cli.StringFlag{Name: "blog", Usage: "Blog identifier, e.g. example.tumblr.com"},
			&cli.StringSliceFlag{Name: "keywords", Aliases: []string{"k"}, Usage: "Keyword to match (repeatable)"},
			&cli.IntFlag{Name: "limit", Value: 50, Usage: "Maximum posts to collect"},
			&cli.StringFlag{Name: "output", Usage: "Output filename (default: timestamped)"},
			&cli.StringFlag{Name: "format", Value: "csv", Usage: "Output format: csv or json"},
		},
		Action: runScrape,
		Commands: []*cli.Command{
			dashboardCmd(),
		},
	}
}

func runScrape(c *cli.Context) error {
	format := c.String("format")
	if format != "csv" && format != "json" {
		return cli.Exit(fmt.Sprintf("unknown format %q (use csv or json)", format), 1)
	}

	cfg := config.Load()
	client, err := tumblr.NewFromConfig(cfg)
	if err != nil {
		// Not fatal: collection runs log the condition and return empty.
		slog.Warn("api client unavailable", "err", err)
	}

	col := collector.New(client, cfg)
	writer := &storage.Writer{Dir: cfg.OutputDir}
	ctx := context.Background()

	switch {
	case c.String("tag") != "":
		res := col.CollectByTag(ctx, c.String("tag"), c.Int("limit"))
		return save(writer, res, outputName(c), format)
	case c.String("blog") != "" && len(c.StringSlice("keywords")) > 0:
		res := col.CollectByBlog(ctx, c.String("blog"), c.StringSlice("keywords"), c.Int("limit"))
		return save(writer, res, outputName(c), format)
	default:
		return runBatch(ctx, col, writer, cfg, c.Int("limit"), format)
	}
}

// runBatch collects for every configured blog, writing one file per blog.
func runBatch(ctx context.Context, col *collector.Collector, writer *storage.Writer, cfg *config.Config, limit int, format string) error {
	targets := cfg.Targets
	if loaded, err := ingest.LoadTargets(targetsFile); err == nil && len(loaded) > 0 {
		targets = loaded
	}
	if len(targets) == 0 {
		slog.Warn("no batch targets configured")
		return nil
	}

	slog.Info("starting batch collection", "targets", len(targets))
	for _, t := range targets {
		res := col.CollectByBlog(ctx, t.Blog, t.Keywords, limit)
		name := strings.ReplaceAll(t.Blog, ".", "_") + "_posts." + format
		if err := save(writer, res, name, format); err != nil {
			return err
		}
	}
	return nil
}

func save(writer *storage.Writer, res domain.Result, filename, format string) error {
	slog.Info("collection finished", "count", len(res.Posts), "reason", res.Reason)

	var path string
	var err error
	if format == "json" {
		path, err = writer.WriteJSON(res.Posts, filename)
	} else {
		path, err = writer.WriteCSV(res.Posts, filename)
	}
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Println("No posts collected, nothing written")
		return nil
	}
	fmt.Printf("Saved %d posts to %s\n", len(res.Posts), path)
	return nil
}

func outputName(c *cli.Context) string {
	if o := c.String("output"); o != "" {
		return o
	}
	return fmt.Sprintf("tumblr_posts_%s.%s", time.Now().Format("20060102_150405"), c.String("format"))
}

func dashboardCmd() *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "Serve charts over a saved JSON run file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "data", Value: "output/tumblr_posts.json", Usage: "JSON run file to chart"},
			&cli.StringFlag{Name: "port", Value: defaultPort(), Usage: "HTTP port"},
		},
		Action: func(c *cli.Context) error {
			slog.Info("starting dashboard", "port", c.String("port"), "data", c.String("data"))
			return dashboard.StartServer(c.String("data"), c.String("port"))
		},
	}
}

func defaultPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
