package analyze

import (
	"reflect"
	"testing"
	"time"

	"nitterlens/internal/types"
)

func sampleRaw() []types.RawPost {
	return []types.RawPost{
		{
			DateText: "3h",
			Content:  "launch day #golang cc @team https://example.com/post",
			Replies:  "12",
			Retweets: "1,234",
			Likes:    "5.6K",
			HasMedia: true,
		},
		{
			DateText: "gibberish",
			Content:  "plain words only",
			Replies:  "0",
			Retweets: "0",
			Likes:    "0",
		},
	}
}

func TestEnrich(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	posts := Enrich("someone", sampleRaw(), now)

	if len(posts) != 2 {
		t.Fatalf("got %d posts", len(posts))
	}

	p := posts[0]
	if p.Handle != "someone" {
		t.Errorf("handle = %q", p.Handle)
	}
	if !p.Datetime.Equal(now.Add(-3 * time.Hour)) {
		t.Errorf("datetime = %v", p.Datetime)
	}
	if p.DayOfWeek != "Sunday" || p.Hour != 9 {
		t.Errorf("day/hour = %q/%d, want Sunday/9", p.DayOfWeek, p.Hour)
	}
	if p.Replies != 12 || p.Retweets != 1234 || p.Likes != 5600 {
		t.Errorf("counts = %d/%d/%d", p.Replies, p.Retweets, p.Likes)
	}
	if p.Engagement != 12+1234+5600 {
		t.Errorf("engagement = %d", p.Engagement)
	}
	if !p.HasHashtags || !p.HasMentions || !p.HasLinks || !p.HasMedia {
		t.Errorf("flags = %v/%v/%v/%v", p.HasHashtags, p.HasMentions, p.HasLinks, p.HasMedia)
	}
	if p.WordCount != 6 {
		t.Errorf("word count = %d, want 6", p.WordCount)
	}

	// Unparsable date leaves the zero time and no day/hour.
	q := posts[1]
	if q.HasDatetime() {
		t.Errorf("datetime should be unset, got %v", q.Datetime)
	}
	if q.DayOfWeek != "" {
		t.Errorf("day = %q, want empty", q.DayOfWeek)
	}
	if q.Engagement != 0 {
		t.Errorf("engagement = %d, want 0", q.Engagement)
	}
}

func TestEnrichIdempotent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	raw := sampleRaw()

	first := Enrich("someone", raw, now)
	second := Enrich("someone", raw, now)

	if !reflect.DeepEqual(first, second) {
		t.Error("re-running enrichment over the same raw batch changed the output")
	}
}

func TestEnrichEmptyBatch(t *testing.T) {
	posts := Enrich("someone", nil, time.Now())
	if len(posts) != 0 {
		t.Errorf("got %d posts from empty batch", len(posts))
	}
}
