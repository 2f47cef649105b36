package store

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store persists enriched records per profile handle.
type Store struct {
	db *sql.DB
}

// Open creates a Store backed by SQLite at dbPath, creating the schema if
// needed. Use ":memory:" for tests.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		handle TEXT NOT NULL,
		seq INTEGER NOT NULL,
		date_text TEXT NOT NULL,
		content TEXT NOT NULL,
		datetime DATETIME,
		day_of_week TEXT,
		hour INTEGER,
		replies INTEGER NOT NULL,
		retweets INTEGER NOT NULL,
		likes INTEGER NOT NULL,
		engagement INTEGER NOT NULL,
		hashtags TEXT,
		mentions TEXT,
		links TEXT,
		word_count INTEGER NOT NULL,
		has_hashtags BOOLEAN,
		has_mentions BOOLEAN,
		has_links BOOLEAN,
		has_media BOOLEAN,
		scraped_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_posts_handle ON posts(handle, seq);
	`

	_, err := s.db.Exec(schema)
	return err
}
