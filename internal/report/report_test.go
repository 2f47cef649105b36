package report

import (
	"strings"
	"testing"
	"time"

	"nitterlens/internal/analyze"
	"nitterlens/internal/types"
)

func sampleSummary() analyze.Summary {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	posts := []types.Post{
		{
			Handle: "ana", DateText: "3h", Content: "launch day #go",
			Datetime: now.Add(-3 * time.Hour), DayOfWeek: "Sunday", Hour: 9,
			Replies: 5, Retweets: 10, Likes: 40, Engagement: 55,
			Hashtags: []string{"#go"}, HasHashtags: true, WordCount: 3,
		},
		{
			Handle: "ana", DateText: "45m", Content: "thanks @bob",
			Datetime: now.Add(-45 * time.Minute), DayOfWeek: "Sunday", Hour: 11,
			Replies: 1, Retweets: 0, Likes: 4, Engagement: 5,
			Mentions: []string{"@bob"}, HasMentions: true, WordCount: 2,
		},
	}
	return analyze.Summarize("ana", posts, 1000)
}

func TestWrite(t *testing.T) {
	var sb strings.Builder
	Write(&sb, sampleSummary())
	out := sb.String()

	for _, want := range []string{
		"Detailed Analysis for @ana:",
		"Total posts analyzed: 2",
		"Date range: 2025-06-15 to 2025-06-15",
		"Total engagement: 60",
		"Average engagement per post: 30.00",
		"Posts with hashtags: 50.0%",
		"Most Engaging Post:",
		"launch day #go",
		"Best days to post:",
		"Sunday: 30.00 avg engagement",
		"09:00: 55.00 avg engagement",
		"#go: 1 uses",
		"@bob: 1 mentions",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestWriteEmpty(t *testing.T) {
	var sb strings.Builder
	Write(&sb, analyze.Summarize("ana", nil, 0))
	out := sb.String()

	if !strings.Contains(out, "Total posts analyzed: 0") {
		t.Error("output missing zero post count")
	}
	if !strings.Contains(out, "Date range: N/A") {
		t.Error("output missing N/A date range")
	}
	if strings.Contains(out, "Engagement Metrics") {
		t.Error("empty summary should stop after activity section")
	}
}

func TestTopHoursOrdering(t *testing.T) {
	s := analyze.Summary{HourMeans: map[int]float64{9: 2.0, 11: 8.0, 14: 5.0, 20: 1.0}}
	got := topHours(s, 3)
	want := []int{11, 14, 9}
	if len(got) != len(want) {
		t.Fatalf("topHours = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("topHours = %v, want %v", got, want)
		}
	}
}
