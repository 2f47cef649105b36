package analyze

import (
	"time"

	"nitterlens/internal/types"
)

// Enrich derives full records from a raw batch. It is a pure transform:
// the same raw batch and the same now always produce identical output, and
// nothing is mutated after construction.
func Enrich(handle string, raw []types.RawPost, now time.Time) []types.Post {
	posts := make([]types.Post, 0, len(raw))

	for _, r := range raw {
		replies, retweets, likes := NormalizeCounts(r.Replies, r.Retweets, r.Likes)
		f := ExtractFeatures(r.Content)

		p := types.Post{
			Handle:      handle,
			DateText:    r.DateText,
			Content:     r.Content,
			Replies:     replies,
			Retweets:    retweets,
			Likes:       likes,
			Engagement:  replies + retweets + likes,
			Hashtags:    f.Hashtags,
			Mentions:    f.Mentions,
			Links:       f.Links,
			WordCount:   f.WordCount,
			HasHashtags: len(f.Hashtags) > 0,
			HasMentions: len(f.Mentions) > 0,
			HasLinks:    len(f.Links) > 0,
			HasMedia:    r.HasMedia,
			ScrapedAt:   now,
		}

		if ts, ok := ResolveTime(r.DateText, now); ok {
			p.Datetime = ts
			p.DayOfWeek = ts.Weekday().String()
			p.Hour = ts.Hour()
		}

		posts = append(posts, p)
	}

	return posts
}
