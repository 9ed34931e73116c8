package data

import (
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// Snapshot writes one session's fetched data into a local DuckDB file so an
// operator can run ad-hoc SQL against it. It is an export artifact; the
// session itself stays in memory and is discarded on reset.
type Snapshot struct {
	db *sql.DB
}

// OpenSnapshot creates (or opens) the snapshot database at path.
func OpenSnapshot(path string) (*Snapshot, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	return &Snapshot{db: db}, nil
}

func (s *Snapshot) Close() error {
	return s.db.Close()
}

// Write replaces the snapshot tables with the given session data.
func (s *Snapshot) Write(assets []Asset, languages []Language) error {
	statements := []string{
		`DROP TABLE IF EXISTS descriptions`,
		`DROP TABLE IF EXISTS assets`,
		`DROP TABLE IF EXISTS languages`,
		`CREATE TABLE languages (
			id VARCHAR PRIMARY KEY,
			name VARCHAR,
			codename VARCHAR,
			is_active BOOLEAN,
			is_default BOOLEAN
		)`,
		`CREATE TABLE assets (
			id VARCHAR PRIMARY KEY,
			file_name VARCHAR,
			title VARCHAR,
			type VARCHAR,
			size BIGINT,
			width INTEGER,
			height INTEGER,
			url VARCHAR
		)`,
		`CREATE TABLE descriptions (
			asset_id VARCHAR,
			language_id VARCHAR,
			description VARCHAR
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to prepare snapshot schema: %w", err)
		}
	}

	for _, lang := range languages {
		_, err := s.db.Exec(
			`INSERT INTO languages VALUES (?, ?, ?, ?, ?)`,
			lang.ID, lang.Name, lang.Codename, lang.IsActive, lang.IsDefault,
		)
		if err != nil {
			return fmt.Errorf("failed to write language %s: %w", lang.ID, err)
		}
	}

	for _, asset := range assets {
		_, err := s.db.Exec(
			`INSERT INTO assets VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			asset.ID, asset.FileName, asset.Title, asset.Type,
			asset.Size, asset.Width, asset.Height, asset.URL,
		)
		if err != nil {
			return fmt.Errorf("failed to write asset %s: %w", asset.ID, err)
		}
		for _, d := range asset.Descriptions {
			_, err := s.db.Exec(
				`INSERT INTO descriptions VALUES (?, ?, ?)`,
				asset.ID, d.LanguageID, d.Text,
			)
			if err != nil {
				return fmt.Errorf("failed to write description for %s: %w", asset.ID, err)
			}
		}
	}
	return nil
}
