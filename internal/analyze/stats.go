package analyze

import (
	"sort"
	"time"

	"nitterlens/internal/types"
)

// WeekDays lists weekday names Monday first, the order used for grouped
// output and the heatmap rows.
var WeekDays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// TagCount pairs a hashtag or mention with how often it appeared.
type TagCount struct {
	Text  string
	Count int
}

// Summary holds the descriptive analytics for one profile's batch.
// Temporal fields exclude posts whose date text never resolved.
type Summary struct {
	Handle     string
	TotalPosts int

	// Date range over resolvable timestamps. RangeValid is false when no
	// post in the batch had a resolvable date.
	RangeFrom  time.Time
	RangeTo    time.Time
	RangeValid bool

	TotalEngagement int
	AvgEngagement   float64
	PeakEngagement  int
	// EngagementRate is avg engagement as a percentage of follower count,
	// 0 when the follower count is unknown.
	EngagementRate float64

	HashtagPct   float64
	MentionPct   float64
	LinkPct      float64
	MediaPct     float64
	AvgWordCount float64

	// Mean engagement grouped by posting time.
	DayMeans  map[string]float64
	HourMeans map[int]float64
	BestDay   string
	BestHour  int
	HasTimes  bool

	TopHashtags []TagCount
	TopMentions []TagCount

	// Best performing posts, nil when the batch is empty.
	TopByEngagement *types.Post
	TopByLikes      *types.Post
	TopByRetweets   *types.Post
	TopByReplies    *types.Post

	// Heatmap is mean engagement per (weekday, hour) cell, indexed by
	// time.Weekday. HeatmapCounts carries the sample size per cell.
	Heatmap       [7][24]float64
	HeatmapCounts [7][24]int
}

// Summarize computes descriptive analytics over an enriched batch.
// followerCount may be 0 when unknown.
func Summarize(handle string, posts []types.Post, followerCount int) Summary {
	s := Summary{
		Handle:     handle,
		TotalPosts: len(posts),
		DayMeans:   make(map[string]float64),
		HourMeans:  make(map[int]float64),
		BestHour:   -1,
	}
	if len(posts) == 0 {
		return s
	}

	var (
		hashtagPosts, mentionPosts, linkPosts, mediaPosts int
		totalWords                                        int
		daySums                                           = make(map[string]float64)
		dayCounts                                         = make(map[string]int)
		hourSums                                          = make(map[int]float64)
		hourCounts                                        = make(map[int]int)
		heatSums                                          [7][24]float64
	)

	for i := range posts {
		p := &posts[i]

		s.TotalEngagement += p.Engagement
		if p.Engagement > s.PeakEngagement {
			s.PeakEngagement = p.Engagement
		}
		totalWords += p.WordCount

		if p.HasHashtags {
			hashtagPosts++
		}
		if p.HasMentions {
			mentionPosts++
		}
		if p.HasLinks {
			linkPosts++
		}
		if p.HasMedia {
			mediaPosts++
		}

		if s.TopByEngagement == nil || p.Engagement > s.TopByEngagement.Engagement {
			s.TopByEngagement = p
		}
		if s.TopByLikes == nil || p.Likes > s.TopByLikes.Likes {
			s.TopByLikes = p
		}
		if s.TopByRetweets == nil || p.Retweets > s.TopByRetweets.Retweets {
			s.TopByRetweets = p
		}
		if s.TopByReplies == nil || p.Replies > s.TopByReplies.Replies {
			s.TopByReplies = p
		}

		if !p.HasDatetime() {
			continue
		}
		if !s.RangeValid || p.Datetime.Before(s.RangeFrom) {
			s.RangeFrom = p.Datetime
		}
		if !s.RangeValid || p.Datetime.After(s.RangeTo) {
			s.RangeTo = p.Datetime
		}
		s.RangeValid = true

		daySums[p.DayOfWeek] += float64(p.Engagement)
		dayCounts[p.DayOfWeek]++
		hourSums[p.Hour] += float64(p.Engagement)
		hourCounts[p.Hour]++

		wd := int(p.Datetime.Weekday())
		heatSums[wd][p.Hour] += float64(p.Engagement)
		s.HeatmapCounts[wd][p.Hour]++
	}

	n := float64(len(posts))
	s.AvgEngagement = float64(s.TotalEngagement) / n
	s.HashtagPct = float64(hashtagPosts) / n * 100
	s.MentionPct = float64(mentionPosts) / n * 100
	s.LinkPct = float64(linkPosts) / n * 100
	s.MediaPct = float64(mediaPosts) / n * 100
	s.AvgWordCount = float64(totalWords) / n
	if followerCount > 0 {
		s.EngagementRate = s.AvgEngagement / float64(followerCount) * 100
	}

	for _, day := range WeekDays {
		if dayCounts[day] == 0 {
			continue
		}
		mean := daySums[day] / float64(dayCounts[day])
		s.DayMeans[day] = mean
		if s.BestDay == "" || mean > s.DayMeans[s.BestDay] {
			s.BestDay = day
		}
	}
	for hour := 0; hour < 24; hour++ {
		if hourCounts[hour] == 0 {
			continue
		}
		mean := hourSums[hour] / float64(hourCounts[hour])
		s.HourMeans[hour] = mean
		if s.BestHour < 0 || mean > s.HourMeans[s.BestHour] {
			s.BestHour = hour
		}
	}
	s.HasTimes = s.BestDay != "" && s.BestHour >= 0

	for d := 0; d < 7; d++ {
		for h := 0; h < 24; h++ {
			if c := s.HeatmapCounts[d][h]; c > 0 {
				s.Heatmap[d][h] = heatSums[d][h] / float64(c)
			}
		}
	}

	s.TopHashtags = topTags(posts, func(p *types.Post) []string { return p.Hashtags }, 5)
	s.TopMentions = topTags(posts, func(p *types.Post) []string { return p.Mentions }, 5)

	return s
}

// topTags tallies tag frequencies across the batch and returns the top n,
// most frequent first, ties broken by first appearance.
func topTags(posts []types.Post, tags func(*types.Post) []string, n int) []TagCount {
	counts := make(map[string]int)
	var order []string

	for i := range posts {
		for _, t := range tags(&posts[i]) {
			if counts[t] == 0 {
				order = append(order, t)
			}
			counts[t]++
		}
	}
	if len(order) == 0 {
		return nil
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}

	top := make([]TagCount, len(order))
	for i, t := range order {
		top[i] = TagCount{Text: t, Count: counts[t]}
	}
	return top
}
