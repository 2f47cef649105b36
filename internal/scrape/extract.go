package scrape

import (
	"strings"

	"nitterlens/internal/types"
)

// reshareMarker flags timeline items that are reshares of another author's
// post. Matched case-insensitively against header and body text.
const reshareMarker = "retweeted"

// SkipReason explains why a timeline item was dropped during extraction.
// SkipNone means the item produced a record.
type SkipReason string

const (
	SkipNone      SkipReason = ""
	SkipReshare   SkipReason = "reshare"
	SkipNoDate    SkipReason = "missing_date"
	SkipNoContent SkipReason = "missing_content"
)

// StatKind identifies which engagement metric a stat element carries.
type StatKind int

const (
	StatUnknown StatKind = iota
	StatReply
	StatRetweet
	StatLike
)

// classifyStat decides which metric a stat element represents from its raw
// markup, falling back to its visible label text. Unrecognized elements are
// StatUnknown and ignored by the extractor.
func classifyStat(markup, text string) StatKind {
	switch {
	case strings.Contains(markup, MarkerReply):
		return StatReply
	case strings.Contains(markup, MarkerRetweet):
		return StatRetweet
	case strings.Contains(markup, MarkerLike):
		return StatLike
	}
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "reply", "replies", "comment", "comments":
		return StatReply
	case "retweet", "retweets", "repost", "reposts":
		return StatRetweet
	case "like", "likes", "heart":
		return StatLike
	}
	return StatUnknown
}

// Extract turns one timeline item into a RawPost, or reports why the item
// was skipped. It is pure: a malformed item only ever skips itself, never
// the batch.
func Extract(n ItemNode) (types.RawPost, SkipReason) {
	header := strings.ToLower(n.Header)
	body := strings.ToLower(n.Body)
	if strings.Contains(header, reshareMarker) || strings.Contains(body, reshareMarker) {
		return types.RawPost{}, SkipReshare
	}

	if n.Date == nil {
		return types.RawPost{}, SkipNoDate
	}
	if n.Content == nil {
		return types.RawPost{}, SkipNoContent
	}

	post := types.RawPost{
		DateText: strings.TrimSpace(*n.Date),
		Content:  strings.TrimSpace(*n.Content),
		Replies:  "0",
		Retweets: "0",
		Likes:    "0",
		HasMedia: n.HasMedia,
	}

	for _, stat := range n.Stats {
		text := strings.TrimSpace(stat.Text)
		if text == "" {
			continue
		}
		switch classifyStat(stat.Markup, stat.Text) {
		case StatReply:
			post.Replies = text
		case StatRetweet:
			post.Retweets = text
		case StatLike:
			post.Likes = text
		}
	}

	return post, SkipNone
}

// Assemble runs the extractor over all timeline items in document order,
// drops skipped items, and truncates the result to the first maxItems
// records. Skipped items do not count toward the limit.
func Assemble(nodes []ItemNode, maxItems int) []types.RawPost {
	posts, _ := assemble(nodes, maxItems)
	return posts
}

func assemble(nodes []ItemNode, maxItems int) ([]types.RawPost, map[SkipReason]int) {
	posts := make([]types.RawPost, 0, len(nodes))
	skipped := make(map[SkipReason]int)
	if maxItems <= 0 {
		return posts, skipped
	}
	for _, n := range nodes {
		post, skip := Extract(n)
		if skip != SkipNone {
			skipped[skip]++
			continue
		}
		posts = append(posts, post)
		if len(posts) == maxItems {
			break
		}
	}
	return posts, skipped
}
