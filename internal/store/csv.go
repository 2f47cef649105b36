package store

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"nitterlens/internal/types"
)

// csvHeader names every enriched field, one column per field.
var csvHeader = []string{
	"Date", "Tweet", "Replies", "Retweets", "Likes", "HasMedia",
	"Datetime", "DayOfWeek", "Hour", "Engagement",
	"Hashtags", "Mentions", "Links", "WordCount",
	"HasHashtags", "HasMentions", "HasLinks",
}

// ExportCSV writes one row per record to {dir}/{handle}.csv and returns the
// file path. An unresolved datetime leaves the Datetime, DayOfWeek, and Hour
// columns empty.
func ExportCSV(dir, handle string, posts []types.Post) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, handle+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", err
	}

	for _, p := range posts {
		var datetime, day, hour string
		if p.HasDatetime() {
			datetime = p.Datetime.Format(time.RFC3339)
			day = p.DayOfWeek
			hour = strconv.Itoa(p.Hour)
		}

		row := []string{
			p.DateText,
			p.Content,
			strconv.Itoa(p.Replies),
			strconv.Itoa(p.Retweets),
			strconv.Itoa(p.Likes),
			strconv.FormatBool(p.HasMedia),
			datetime,
			day,
			hour,
			strconv.Itoa(p.Engagement),
			jsonList(p.Hashtags),
			jsonList(p.Mentions),
			jsonList(p.Links),
			strconv.Itoa(p.WordCount),
			strconv.FormatBool(p.HasHashtags),
			strconv.FormatBool(p.HasMentions),
			strconv.FormatBool(p.HasLinks),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return path, nil
}

func jsonList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(items)
	return string(b)
}
