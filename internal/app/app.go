package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"nitterlens/internal/analyze"
	"nitterlens/internal/config"
	"nitterlens/internal/scrape"
	"nitterlens/internal/store"
	"nitterlens/internal/viz"
)

// App wires the scraper, store, and renderers into the analysis pipeline.
type App struct {
	cfg     *config.Config
	scraper *scrape.Scraper
	store   *store.Store
	images  *viz.Renderer
	limiter *rate.Limiter
	log     *slog.Logger

	// now is injected so enrichment is testable without wall-clock time.
	now func() time.Time
}

// New creates an App. The limiter paces fetches across profiles so a
// multi-handle run does not hammer the mirror.
func New(cfg *config.Config, scraper *scrape.Scraper, st *store.Store, images *viz.Renderer, log *slog.Logger) *App {
	interval := cfg.Scraping.FetchInterval()
	if interval <= 0 {
		interval = time.Second
	}
	return &App{
		cfg:     cfg,
		scraper: scraper,
		store:   st,
		images:  images,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		log:     log,
		now:     time.Now,
	}
}

// NormalizeHandle strips whitespace and a leading @ from a handle.
func NormalizeHandle(handle string) string {
	return strings.TrimPrefix(strings.TrimSpace(handle), "@")
}

// AnalyzeProfile runs the full pipeline for one handle: fetch and assemble
// the timeline, enrich the batch, persist it (SQLite and CSV), and render
// the analysis images. The returned error wraps scrape.ErrFetchFailed when
// the timeline never rendered; an empty timeline is a valid empty summary.
func (a *App) AnalyzeProfile(ctx context.Context, handle string) (analyze.Summary, error) {
	handle = NormalizeHandle(handle)
	if handle == "" {
		return analyze.Summary{}, fmt.Errorf("empty handle")
	}

	raw, err := a.scraper.FetchProfile(ctx, handle, a.cfg.Scraping.PostsPerProfile)
	if err != nil {
		return analyze.Summary{}, err
	}

	posts := analyze.Enrich(handle, raw, a.now())

	if err := a.store.SaveBatch(handle, posts); err != nil {
		return analyze.Summary{}, fmt.Errorf("save batch for %s: %w", handle, err)
	}
	if path, err := store.ExportCSV(a.cfg.Storage.DataDir, handle, posts); err != nil {
		a.log.Warn("csv export failed", "handle", handle, "error", err)
	} else {
		a.log.Info("exported csv", "handle", handle, "path", path)
	}

	summary := analyze.Summarize(handle, posts, a.cfg.Followers[handle])

	if len(posts) > 0 {
		if _, err := a.images.Heatmap(a.cfg.Storage.StaticDir, handle, summary); err != nil {
			a.log.Warn("heatmap render failed", "handle", handle, "error", err)
		}
		if _, err := a.images.WordCloud(a.cfg.Storage.StaticDir, handle, posts); err != nil {
			a.log.Warn("word cloud render failed", "handle", handle, "error", err)
		}
	}

	return summary, nil
}

// AnalyzeProfiles runs AnalyzeProfile for each handle in order, pacing the
// fetches. One handle failing does not stop the rest; failures are
// returned per handle.
func (a *App) AnalyzeProfiles(ctx context.Context, handles []string) ([]analyze.Summary, map[string]error) {
	summaries := make([]analyze.Summary, 0, len(handles))
	failures := make(map[string]error)

	for _, h := range handles {
		h = NormalizeHandle(h)
		if h == "" {
			continue
		}
		if err := a.limiter.Wait(ctx); err != nil {
			failures[h] = err
			continue
		}

		summary, err := a.AnalyzeProfile(ctx, h)
		if err != nil {
			a.log.Error("analysis failed", "handle", h, "error", err)
			failures[h] = err
			continue
		}
		summaries = append(summaries, summary)
	}

	return summaries, failures
}

// SummaryFor computes a summary from a handle's stored records, without
// fetching. Used by the dashboard.
func (a *App) SummaryFor(handle string) (analyze.Summary, error) {
	handle = NormalizeHandle(handle)
	posts, err := a.store.GetPosts(handle)
	if err != nil {
		return analyze.Summary{}, err
	}
	return analyze.Summarize(handle, posts, a.cfg.Followers[handle]), nil
}
