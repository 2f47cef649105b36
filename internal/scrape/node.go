package scrape

import (
	"context"
	"time"
)

// ItemNode is the projection of one rendered timeline item. The renderer
// fills it from the DOM; everything downstream treats it as a read-only
// value. Date and Content are nil when the corresponding region was absent
// from the markup, which is distinct from present-but-empty.
type ItemNode struct {
	Header   string     `json:"header"`
	Body     string     `json:"body"`
	Date     *string    `json:"date"`
	Content  *string    `json:"content"`
	Stats    []StatNode `json:"stats"`
	HasMedia bool       `json:"hasMedia"`
}

// StatNode is one engagement stat element: its visible text and the raw
// markup used to classify which metric it represents.
type StatNode struct {
	Text   string `json:"text"`
	Markup string `json:"markup"`
}

// Renderer fetches a URL and renders its timeline items into ItemNodes.
// An error means the page could not be rendered or the timeline never
// appeared within the timeout. A rendered page with no items is a valid
// empty result, not an error.
type Renderer interface {
	Render(ctx context.Context, url string, timeout time.Duration) ([]ItemNode, error)
}
