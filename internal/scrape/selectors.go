package scrape

// Nitter DOM selectors.
// These are isolated here because Nitter instances drift between forks and
// versions. Update these when scraping breaks.

const (
	// Timeline selectors
	TimelineContainer = `.timeline`
	TimelineItem      = `.timeline-item`

	// Per-item region selectors
	ItemHeader  = `.tweet-header`
	ItemBody    = `.tweet-body`
	ItemDate    = `.tweet-date`
	ItemContent = `.tweet-content`
	ItemStats   = `.tweet-stats .icon-container`

	// Media selectors, any match marks the item as media-bearing
	ItemMedia = `.attachments img, .media img, .tweet-content img`
)

// Stat icon markers found in a stat element's raw markup. Which icon class
// is present decides which metric the element's visible text belongs to.
const (
	MarkerReply   = "icon-comment"
	MarkerRetweet = "icon-retweet"
	MarkerLike    = "icon-heart"
)

// Common wait conditions
const (
	WaitForTimeline = TimelineContainer
)
