package types

import "time"

// RawPost is one timeline item as lifted off the rendered page. Engagement
// counts are kept as the raw display strings ("1,234", "1.2K") because
// normalization is a separate pass over the whole batch.
type RawPost struct {
	DateText string `json:"date_text"`
	Content  string `json:"content"`
	Replies  string `json:"replies"`
	Retweets string `json:"retweets"`
	Likes    string `json:"likes"`
	HasMedia bool   `json:"has_media"`
}

// Post is a fully enriched record derived from a RawPost. Datetime is the
// zero time when the date text could not be resolved; DayOfWeek and Hour are
// only meaningful when Datetime is set.
type Post struct {
	Handle      string    `json:"handle"`
	DateText    string    `json:"date_text"`
	Content     string    `json:"content"`
	Datetime    time.Time `json:"datetime"`
	DayOfWeek   string    `json:"day_of_week"`
	Hour        int       `json:"hour"`
	Replies     int       `json:"replies"`
	Retweets    int       `json:"retweets"`
	Likes       int       `json:"likes"`
	Engagement  int       `json:"engagement"`
	Hashtags    []string  `json:"hashtags"`
	Mentions    []string  `json:"mentions"`
	Links       []string  `json:"links"`
	WordCount   int       `json:"word_count"`
	HasHashtags bool      `json:"has_hashtags"`
	HasMentions bool      `json:"has_mentions"`
	HasLinks    bool      `json:"has_links"`
	HasMedia    bool      `json:"has_media"`
	ScrapedAt   time.Time `json:"scraped_at"`
}

// HasDatetime reports whether the post's date text resolved to a point in
// time. Temporal aggregations must exclude posts where this is false.
func (p Post) HasDatetime() bool {
	return !p.Datetime.IsZero()
}
