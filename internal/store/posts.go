package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"nitterlens/internal/types"
)

// SaveBatch replaces the stored records for a handle with a fresh batch,
// preserving batch order. Each analysis run produces a full snapshot, so
// replace-on-write keeps the stored view consistent with the latest fetch.
func (s *Store) SaveBatch(handle string, posts []types.Post) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM posts WHERE handle = ?`, handle); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO posts (handle, seq, date_text, content, datetime, day_of_week, hour,
			replies, retweets, likes, engagement, hashtags, mentions, links,
			word_count, has_hashtags, has_mentions, has_links, has_media, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for seq, p := range posts {
		hashtagsJSON, _ := json.Marshal(p.Hashtags)
		mentionsJSON, _ := json.Marshal(p.Mentions)
		linksJSON, _ := json.Marshal(p.Links)

		var dt sql.NullTime
		var day sql.NullString
		var hour sql.NullInt64
		if p.HasDatetime() {
			dt = sql.NullTime{Time: p.Datetime, Valid: true}
			day = sql.NullString{String: p.DayOfWeek, Valid: true}
			hour = sql.NullInt64{Int64: int64(p.Hour), Valid: true}
		}

		if _, err := stmt.Exec(handle, seq, p.DateText, p.Content, dt, day, hour,
			p.Replies, p.Retweets, p.Likes, p.Engagement,
			string(hashtagsJSON), string(mentionsJSON), string(linksJSON),
			p.WordCount, p.HasHashtags, p.HasMentions, p.HasLinks, p.HasMedia,
			p.ScrapedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetPosts returns a handle's stored records in batch order.
func (s *Store) GetPosts(handle string) ([]types.Post, error) {
	rows, err := s.db.Query(`
		SELECT date_text, content, datetime, day_of_week, hour,
			replies, retweets, likes, engagement, hashtags, mentions, links,
			word_count, has_hashtags, has_mentions, has_links, has_media, scraped_at
		FROM posts
		WHERE handle = ?
		ORDER BY seq
	`, handle)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []types.Post
	for rows.Next() {
		var p types.Post
		var dt sql.NullTime
		var day sql.NullString
		var hour sql.NullInt64
		var hashtagsJSON, mentionsJSON, linksJSON string

		err := rows.Scan(&p.DateText, &p.Content, &dt, &day, &hour,
			&p.Replies, &p.Retweets, &p.Likes, &p.Engagement,
			&hashtagsJSON, &mentionsJSON, &linksJSON,
			&p.WordCount, &p.HasHashtags, &p.HasMentions, &p.HasLinks, &p.HasMedia,
			&p.ScrapedAt)
		if err != nil {
			return nil, err
		}

		p.Handle = handle
		if dt.Valid {
			p.Datetime = dt.Time
			p.DayOfWeek = day.String
			p.Hour = int(hour.Int64)
		}
		json.Unmarshal([]byte(hashtagsJSON), &p.Hashtags)
		json.Unmarshal([]byte(mentionsJSON), &p.Mentions)
		json.Unmarshal([]byte(linksJSON), &p.Links)

		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// Handles returns every handle with stored records, alphabetically.
func (s *Store) Handles() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT handle FROM posts ORDER BY handle`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var handles []string
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, err
		}
		handles = append(handles, h)
	}
	return handles, rows.Err()
}

// LastScrapedAt returns when a handle's stored batch was produced, or the
// zero time when nothing is stored.
func (s *Store) LastScrapedAt(handle string) (time.Time, error) {
	var at sql.NullTime
	err := s.db.QueryRow(`SELECT MAX(scraped_at) FROM posts WHERE handle = ?`, handle).Scan(&at)
	if err != nil {
		return time.Time{}, err
	}
	if !at.Valid {
		return time.Time{}, nil
	}
	return at.Time, nil
}

// DeleteHandle removes all stored records for a handle.
func (s *Store) DeleteHandle(handle string) error {
	_, err := s.db.Exec(`DELETE FROM posts WHERE handle = ?`, handle)
	return err
}
