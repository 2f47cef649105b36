// Package report renders a profile summary as console text.
package report

import (
	"fmt"
	"io"
	"sort"

	"nitterlens/internal/analyze"
	"nitterlens/internal/types"
)

// Write prints a detailed analysis of one profile's summary to w.
func Write(w io.Writer, s analyze.Summary) {
	fmt.Fprintf(w, "\nDetailed Analysis for @%s:\n", s.Handle)

	fmt.Fprintf(w, "\n1. Post Activity\n")
	fmt.Fprintf(w, "Total posts analyzed: %d\n", s.TotalPosts)
	if s.RangeValid {
		fmt.Fprintf(w, "Date range: %s to %s\n",
			s.RangeFrom.Format("2006-01-02"), s.RangeTo.Format("2006-01-02"))
	} else {
		fmt.Fprintf(w, "Date range: N/A\n")
	}

	if s.TotalPosts == 0 {
		return
	}

	fmt.Fprintf(w, "\n2. Engagement Metrics\n")
	fmt.Fprintf(w, "Total engagement: %d\n", s.TotalEngagement)
	fmt.Fprintf(w, "Average engagement per post: %.2f\n", s.AvgEngagement)
	if s.EngagementRate > 0 {
		fmt.Fprintf(w, "Average engagement rate: %.2f%%\n", s.EngagementRate)
	}

	fmt.Fprintf(w, "\n3. Content Analysis\n")
	fmt.Fprintf(w, "Posts with hashtags: %.1f%%\n", s.HashtagPct)
	fmt.Fprintf(w, "Posts with mentions: %.1f%%\n", s.MentionPct)
	fmt.Fprintf(w, "Posts with links: %.1f%%\n", s.LinkPct)
	fmt.Fprintf(w, "Posts with media: %.1f%%\n", s.MediaPct)
	fmt.Fprintf(w, "Average word count: %.1f\n", s.AvgWordCount)

	if s.TopByEngagement != nil {
		fmt.Fprintf(w, "\n4. Best Performing Posts\n")
		fmt.Fprintf(w, "\nMost Engaging Post:\n")
		writePost(w, s.TopByEngagement)
	}

	if s.HasTimes {
		fmt.Fprintf(w, "\n5. Best Times to Post\n")
		fmt.Fprintf(w, "\nBest days to post:\n")
		for _, day := range topDays(s, 3) {
			fmt.Fprintf(w, "%s: %.2f avg engagement\n", day, s.DayMeans[day])
		}
		fmt.Fprintf(w, "\nBest hours to post (24h):\n")
		for _, hour := range topHours(s, 3) {
			fmt.Fprintf(w, "%02d:00: %.2f avg engagement\n", hour, s.HourMeans[hour])
		}
	}

	if len(s.TopHashtags) > 0 {
		fmt.Fprintf(w, "\n6. Top Hashtags:\n")
		for _, tc := range s.TopHashtags {
			fmt.Fprintf(w, "%s: %d uses\n", tc.Text, tc.Count)
		}
	}

	if len(s.TopMentions) > 0 {
		fmt.Fprintf(w, "\n7. Top Mentions:\n")
		for _, tc := range s.TopMentions {
			fmt.Fprintf(w, "%s: %d mentions\n", tc.Text, tc.Count)
		}
	}
}

func writePost(w io.Writer, p *types.Post) {
	fmt.Fprintf(w, "[%s] %s\n", p.DateText, p.Content)
	fmt.Fprintf(w, "Engagement: %d replies, %d retweets, %d likes\n",
		p.Replies, p.Retweets, p.Likes)
}

// topDays returns up to n day names sorted by mean engagement descending.
func topDays(s analyze.Summary, n int) []string {
	var days []string
	for _, day := range analyze.WeekDays {
		if _, ok := s.DayMeans[day]; ok {
			days = append(days, day)
		}
	}
	sort.SliceStable(days, func(i, j int) bool { return s.DayMeans[days[i]] > s.DayMeans[days[j]] })
	if len(days) > n {
		days = days[:n]
	}
	return days
}

// topHours returns up to n hours sorted by mean engagement descending.
func topHours(s analyze.Summary, n int) []int {
	var hours []int
	for h := 0; h < 24; h++ {
		if _, ok := s.HourMeans[h]; ok {
			hours = append(hours, h)
		}
	}
	sort.SliceStable(hours, func(i, j int) bool { return s.HourMeans[hours[i]] > s.HourMeans[hours[j]] })
	if len(hours) > n {
		hours = hours[:n]
	}
	return hours
}
