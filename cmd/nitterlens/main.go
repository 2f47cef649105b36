// Command nitterlens analyzes public X profile timelines through a Nitter
// mirror: scrape, enrich, persist, and render summaries.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nitterlens/internal/app"
	"nitterlens/internal/config"
	"nitterlens/internal/dashboard"
	"nitterlens/internal/report"
	"nitterlens/internal/scheduler"
	"nitterlens/internal/scrape"
	"nitterlens/internal/store"
	"nitterlens/internal/viz"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		return fmt.Errorf("missing command")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	switch args[0] {
	case "init":
		return runInit(cfg, *configPath)
	case "analyze":
		if len(args) < 2 {
			return fmt.Errorf("usage: nitterlens analyze <handle> [handle...]")
		}
		return runAnalyze(cfg, logger, args[1:])
	case "serve":
		return runServe(cfg, logger)
	case "watch":
		return runWatch(cfg, logger)
	case "export":
		if len(args) != 2 {
			return fmt.Errorf("usage: nitterlens export <handle>")
		}
		return runExport(cfg, logger, args[1])
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func printUsage() {
	fmt.Println("Usage: nitterlens [-config path] <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  init                       Write a default config file")
	fmt.Println("  analyze <handle> [...]     Scrape and analyze one or more profiles")
	fmt.Println("  serve                      Run the web dashboard")
	fmt.Println("  watch                      Re-analyze tracked profiles on a schedule")
	fmt.Println("  export <handle>            Export a profile's stored records to CSV")
}

// newApp wires up the pipeline from config.
func newApp(cfg *config.Config, logger *slog.Logger) (*app.App, *store.Store, error) {
	st, err := store.Open(cfg.Storage.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	renderer := scrape.NewChromeRenderer(cfg.Scraping.Headless)
	scraper := scrape.New(renderer, cfg.Mirror.BaseURL, cfg.Scraping.Timeout(), logger)
	images := viz.New(cfg.Images.FontPath, logger)

	return app.New(cfg, scraper, st, images, logger), st, nil
}

func runInit(cfg *config.Config, path string) error {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Printf("Wrote config to %s\n", path)
	return nil
}

func runAnalyze(cfg *config.Config, logger *slog.Logger, handles []string) error {
	a, st, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summaries, failures := a.AnalyzeProfiles(ctx, handles)

	for _, s := range summaries {
		if s.TotalPosts == 0 {
			fmt.Printf("\nNo posts found for @%s.\n", s.Handle)
			continue
		}
		report.Write(os.Stdout, s)
	}
	for handle, err := range failures {
		if errors.Is(err, scrape.ErrFetchFailed) {
			fmt.Printf("\nFetch failed for @%s - the mirror did not render a timeline.\n", handle)
		} else {
			fmt.Printf("\nAnalysis failed for @%s: %v\n", handle, err)
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d profiles failed", len(failures), len(handles))
	}
	return nil
}

func runServe(cfg *config.Config, logger *slog.Logger) error {
	a, st, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	srv, err := dashboard.NewServer(cfg.Dashboard.ListenAddr, a, st,
		cfg.Storage.StaticDir, cfg.Storage.DataDir, logger)
	if err != nil {
		return fmt.Errorf("create dashboard: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runWatch(cfg *config.Config, logger *slog.Logger) error {
	if len(cfg.Watch.Handles) == 0 {
		return fmt.Errorf("no handles configured under [watch]")
	}

	a, st, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	sched, err := scheduler.New(cfg.Watch.Timezone, logger)
	if err != nil {
		return err
	}

	err = sched.AddJob("reanalyze", cfg.Watch.Schedule, func(ctx context.Context) error {
		_, failures := a.AnalyzeProfiles(ctx, cfg.Watch.Handles)
		if len(failures) > 0 {
			return fmt.Errorf("%d profiles failed", len(failures))
		}
		return nil
	})
	if err != nil {
		return err
	}

	sched.Start()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	<-sched.Stop().Done()
	return nil
}

func runExport(cfg *config.Config, logger *slog.Logger, handle string) error {
	st, err := store.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	handle = app.NormalizeHandle(handle)
	posts, err := st.GetPosts(handle)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		return fmt.Errorf("no stored records for @%s", handle)
	}

	path, err := store.ExportCSV(cfg.Storage.DataDir, handle, posts)
	if err != nil {
		return err
	}

	logger.Info("exported csv", "handle", handle, "records", len(posts))
	fmt.Printf("Exported %d records to %s\n", len(posts), path)
	return nil
}
