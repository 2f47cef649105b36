package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"nitterlens/internal/browser"
)

// ChromeRenderer renders Nitter timeline pages with headless Chrome and
// projects each timeline item into an ItemNode.
type ChromeRenderer struct {
	headless bool
}

// NewChromeRenderer creates a renderer. headless=false is useful when
// debugging a mirror that serves different markup to automation.
func NewChromeRenderer(headless bool) *ChromeRenderer {
	return &ChromeRenderer{headless: headless}
}

// Render navigates to url, waits for the timeline container, and returns the
// projected timeline items. A timeout waiting for the container or any
// navigation error is returned as-is; a rendered page with zero items
// returns an empty slice and no error.
func (r *ChromeRenderer) Render(ctx context.Context, url string, timeout time.Duration) ([]ItemNode, error) {
	opts := browser.Options(r.headless)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	browserCtx, timeoutCancel := context.WithTimeout(browserCtx, timeout)
	defer timeoutCancel()

	// Timeline dates are parsed against English month names, so ask the
	// mirror for an English page regardless of the host locale.
	if err := chromedp.Run(browserCtx,
		network.Enable(),
		network.SetExtraHTTPHeaders(network.Headers{"Accept-Language": "en-US,en;q=0.9"}),
		chromedp.Navigate(url),
		chromedp.WaitVisible(WaitForTimeline, chromedp.ByQuery),
	); err != nil {
		return nil, fmt.Errorf("failed to load timeline: %w", err)
	}

	var nodes []ItemNode
	if err := chromedp.Run(browserCtx,
		chromedp.Evaluate(projectItemsJS(), &nodes),
	); err != nil {
		return nil, fmt.Errorf("failed to project timeline items: %w", err)
	}

	return nodes, nil
}

// projectItemsJS builds the JavaScript that walks every timeline item and
// returns the region texts, stat elements, and media flag needed by the
// extractor. Only the stat elements expose raw markup, and only so the Go
// side can classify which metric each one carries.
func projectItemsJS() string {
	return fmt.Sprintf(`
		(function() {
			const items = document.querySelectorAll('%s');
			const results = [];

			items.forEach(el => {
				const regionText = (sel) => {
					const region = el.querySelector(sel);
					return region ? region.textContent : null;
				};

				const stats = [];
				el.querySelectorAll('%s').forEach(s => {
					stats.push({
						text: s.textContent ? s.textContent.trim() : '',
						markup: s.innerHTML || ''
					});
				});

				results.push({
					header: regionText('%s') || '',
					body: regionText('%s') || '',
					date: regionText('%s'),
					content: regionText('%s'),
					stats: stats,
					hasMedia: el.querySelectorAll('%s').length > 0
				});
			});

			return results;
		})()
	`, TimelineItem, ItemStats, ItemHeader, ItemBody, ItemDate, ItemContent, ItemMedia)
}
