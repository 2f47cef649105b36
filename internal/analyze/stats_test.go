package analyze

import (
	"testing"
	"time"

	"nitterlens/internal/types"
)

func enrichedBatch(t *testing.T) []types.Post {
	t.Helper()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) // Sunday

	raw := []types.RawPost{
		{DateText: "2h", Content: "#go release https://example.com/r", Replies: "10", Retweets: "20", Likes: "30", HasMedia: true},
		{DateText: "5h", Content: "quiet thoughts", Replies: "1", Retweets: "0", Likes: "2"},
		{DateText: "Jan 2, 2024 · 5:04 PM UTC", Content: "#go talk with @ana", Replies: "5", Retweets: "5", Likes: "5"},
		{DateText: "???", Content: "undated post #go", Replies: "100", Retweets: "0", Likes: "0"},
	}
	return Enrich("someone", raw, now)
}

func TestSummarizeBasics(t *testing.T) {
	s := Summarize("someone", enrichedBatch(t), 0)

	if s.TotalPosts != 4 {
		t.Errorf("total posts = %d", s.TotalPosts)
	}
	if s.TotalEngagement != 60+3+15+100 {
		t.Errorf("total engagement = %d", s.TotalEngagement)
	}
	if s.PeakEngagement != 100 {
		t.Errorf("peak = %d", s.PeakEngagement)
	}
	if s.AvgEngagement != 178.0/4 {
		t.Errorf("avg = %f", s.AvgEngagement)
	}
	if s.MediaPct != 25.0 {
		t.Errorf("media pct = %f", s.MediaPct)
	}
	if s.HashtagPct != 75.0 {
		t.Errorf("hashtag pct = %f", s.HashtagPct)
	}
	if s.EngagementRate != 0 {
		t.Errorf("engagement rate without followers = %f", s.EngagementRate)
	}
}

func TestSummarizeDateRangeExcludesUnresolved(t *testing.T) {
	s := Summarize("someone", enrichedBatch(t), 0)

	if !s.RangeValid {
		t.Fatal("range should be valid")
	}
	if s.RangeFrom.Year() != 2024 {
		t.Errorf("range from = %v", s.RangeFrom)
	}
	if s.RangeTo.Year() != 2025 {
		t.Errorf("range to = %v", s.RangeTo)
	}
}

func TestSummarizeBestTimes(t *testing.T) {
	s := Summarize("someone", enrichedBatch(t), 0)

	if !s.HasTimes {
		t.Fatal("expected temporal stats")
	}
	// Sunday posts average (60+3)/2 = 31.5; the 2024 post fell on a
	// Tuesday with 15. The undated 100-engagement post is excluded.
	if s.BestDay != "Sunday" {
		t.Errorf("best day = %q", s.BestDay)
	}
	if s.DayMeans["Sunday"] != 31.5 {
		t.Errorf("sunday mean = %f", s.DayMeans["Sunday"])
	}
	// 12:00 - 2h = hour 10 with 60 beats hour 7 with 3 and hour 17 with 15.
	if s.BestHour != 10 {
		t.Errorf("best hour = %d", s.BestHour)
	}
}

func TestSummarizeHeatmapPivot(t *testing.T) {
	s := Summarize("someone", enrichedBatch(t), 0)

	sunday := int(time.Sunday)
	if s.Heatmap[sunday][10] != 60 {
		t.Errorf("heatmap[Sun][10] = %f, want 60", s.Heatmap[sunday][10])
	}
	if s.HeatmapCounts[sunday][10] != 1 {
		t.Errorf("heatmap count = %d", s.HeatmapCounts[sunday][10])
	}

	var total int
	for d := 0; d < 7; d++ {
		for h := 0; h < 24; h++ {
			total += s.HeatmapCounts[d][h]
		}
	}
	if total != 3 {
		t.Errorf("heatmap samples = %d, want 3 (undated post excluded)", total)
	}
}

func TestSummarizeTopTags(t *testing.T) {
	s := Summarize("someone", enrichedBatch(t), 0)

	if len(s.TopHashtags) == 0 || s.TopHashtags[0].Text != "#go" || s.TopHashtags[0].Count != 3 {
		t.Errorf("top hashtags = %+v", s.TopHashtags)
	}
	if len(s.TopMentions) != 1 || s.TopMentions[0].Text != "@ana" {
		t.Errorf("top mentions = %+v", s.TopMentions)
	}
}

func TestSummarizeEngagementRate(t *testing.T) {
	s := Summarize("someone", enrichedBatch(t), 1000)

	want := (178.0 / 4) / 1000 * 100
	if s.EngagementRate != want {
		t.Errorf("engagement rate = %f, want %f", s.EngagementRate, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize("nobody", nil, 0)

	if s.TotalPosts != 0 || s.RangeValid || s.HasTimes {
		t.Errorf("unexpected summary for empty batch: %+v", s)
	}
	if s.TopByEngagement != nil {
		t.Error("top post should be nil for empty batch")
	}
}

func TestSummarizeTopPosts(t *testing.T) {
	s := Summarize("someone", enrichedBatch(t), 0)

	if s.TopByEngagement == nil || s.TopByEngagement.Engagement != 100 {
		t.Errorf("top by engagement = %+v", s.TopByEngagement)
	}
	if s.TopByLikes == nil || s.TopByLikes.Likes != 30 {
		t.Errorf("top by likes = %+v", s.TopByLikes)
	}
	if s.TopByRetweets == nil || s.TopByRetweets.Retweets != 20 {
		t.Errorf("top by retweets = %+v", s.TopByRetweets)
	}
	if s.TopByReplies == nil || s.TopByReplies.Replies != 100 {
		t.Errorf("top by replies = %+v", s.TopByReplies)
	}
}
