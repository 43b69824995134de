package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/go-gh/v2/pkg/browser"
	"github.com/urfave/cli/v3"

	"github.com/altin/recipe-tui/internal/api"
	"github.com/altin/recipe-tui/internal/config"
	"github.com/altin/recipe-tui/internal/logging"
	"github.com/altin/recipe-tui/internal/tui"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

func main() {
	cmd := &cli.Command{
		Name:    "recipe-tui",
		Usage:   "Search TheMealDB recipes from the terminal",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to a YAML config file",
				Sources: cli.EnvVars("RECIPE_TUI_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "Recipe API base URL",
				Sources: cli.EnvVars("RECIPE_TUI_BASE_URL"),
			},
			&cli.StringFlag{
				Name:    "theme",
				Usage:   "Initial theme (light or dark)",
				Sources: cli.EnvVars("RECIPE_TUI_THEME"),
			},
			&cli.StringFlag{
				Name:    "detail-mode",
				Usage:   "fetch looks up the full recipe on select, summary shows the search result as-is",
				Sources: cli.EnvVars("RECIPE_TUI_DETAIL_MODE"),
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "Per-request timeout (0 disables)",
				Sources: cli.EnvVars("RECIPE_TUI_TIMEOUT"),
			},
			&cli.FloatFlag{
				Name:    "rate-limit",
				Usage:   "Maximum API requests per second (0 disables)",
				Sources: cli.EnvVars("RECIPE_TUI_RATE_LIMIT"),
			},
			&cli.DurationFlag{
				Name:    "cache-ttl",
				Usage:   "Cache API responses on disk for this long (0 disables)",
				Sources: cli.EnvVars("RECIPE_TUI_CACHE_TTL"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "Write logs to this file (default: discard)",
				Sources: cli.EnvVars("RECIPE_TUI_LOG_FILE"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("RECIPE_TUI_LOG_LEVEL"),
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	path, optional := cmd.String("config"), false
	if path == "" {
		path, optional = config.DefaultPath(), true
	}
	cfg, err := config.Load(path, optional)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()
	log.WithField("version", version).WithField("base_url", cfg.BaseURL).Info("starting")

	opts := api.Options{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		RateLimit: cfg.RateLimit,
		CacheTTL:  cfg.CacheTTL,
		UserAgent: "recipe-tui/" + version,
		Logger:    log,
	}
	client, err := api.NewClient(opts)
	if err != nil {
		return fmt.Errorf("create api client: %w", err)
	}

	app := tui.NewApp(cfg, client, browser.New("", io.Discard, io.Discard), log)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// applyFlags overrides file settings with flags or environment variables
// that were explicitly set.
func applyFlags(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet("base-url") {
		cfg.BaseURL = cmd.String("base-url")
	}
	if cmd.IsSet("theme") {
		cfg.Theme = cmd.String("theme")
	}
	if cmd.IsSet("detail-mode") {
		cfg.DetailMode = cmd.String("detail-mode")
	}
	if cmd.IsSet("timeout") {
		cfg.Timeout = cmd.Duration("timeout")
	}
	if cmd.IsSet("rate-limit") {
		cfg.RateLimit = cmd.Float("rate-limit")
	}
	if cmd.IsSet("cache-ttl") {
		cfg.CacheTTL = cmd.Duration("cache-ttl")
	}
	if cmd.IsSet("log-file") {
		cfg.LogFile = cmd.String("log-file")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
}
