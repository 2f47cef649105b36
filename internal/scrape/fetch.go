package scrape

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"nitterlens/internal/metrics"
	"nitterlens/internal/types"
)

// ErrFetchFailed marks a fetch where the renderer never produced a timeline:
// navigation failed or the wait for timeline items timed out. Distinct from
// a profile that rendered fine but has no posts, which returns an empty
// batch and a nil error.
var ErrFetchFailed = errors.New("fetch failed")

// Scraper fetches a profile timeline through a Nitter mirror and assembles
// it into a raw record batch. It holds no per-fetch state, so one Scraper is
// safe to use from multiple goroutines.
type Scraper struct {
	renderer Renderer
	baseURL  string
	timeout  time.Duration
	log      *slog.Logger
}

// New creates a Scraper that fetches {baseURL}/{handle} pages.
func New(renderer Renderer, baseURL string, timeout time.Duration, log *slog.Logger) *Scraper {
	return &Scraper{
		renderer: renderer,
		baseURL:  strings.TrimRight(baseURL, "/"),
		timeout:  timeout,
		log:      log,
	}
}

// ProfileURL returns the mirror URL for a handle. A leading @ is stripped.
func (s *Scraper) ProfileURL(handle string) string {
	return s.baseURL + "/" + url.PathEscape(strings.TrimPrefix(handle, "@"))
}

// FetchProfile renders a profile's timeline and returns up to maxItems raw
// records in document order. The only error it returns wraps ErrFetchFailed;
// per-item problems are absorbed as skips.
func (s *Scraper) FetchProfile(ctx context.Context, handle string, maxItems int) ([]types.RawPost, error) {
	pageURL := s.ProfileURL(handle)
	s.log.Info("fetching profile", "handle", handle, "url", pageURL)

	start := time.Now()
	metrics.FetchRuns.Inc()

	nodes, err := s.renderer.Render(ctx, pageURL, s.timeout)
	metrics.ObserveFetchDuration(start)
	if err != nil {
		metrics.FetchFailures.Inc()
		return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailed, handle, err)
	}

	posts, skipped := assemble(nodes, maxItems)
	metrics.ItemsScraped.Add(float64(len(posts)))
	for reason, n := range skipped {
		metrics.AddSkipped(string(reason), n)
	}

	s.log.Info("assembled timeline batch",
		"handle", handle, "rendered", len(nodes), "kept", len(posts), "skipped", len(nodes)-len(posts))
	return posts, nil
}
