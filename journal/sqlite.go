package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRender(r RenderRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO renders
		(id, path, format, width, height, bytes, sha256, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Path, r.Format, r.Width, r.Height, r.Bytes, r.SHA256, r.CreatedAt,
	)
	return err
}

// Renders orders by ID, which is a ULID and therefore time-sortable.
func (j *SQLiteJournal) Renders(limit int) ([]RenderRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := j.db.Query(`
		SELECT id, path, format, width, height, bytes, sha256, created_at
		FROM renders
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RenderRecord
	for rows.Next() {
		var r RenderRecord
		if err := rows.Scan(
			&r.ID,
			&r.Path,
			&r.Format,
			&r.Width,
			&r.Height,
			&r.Bytes,
			&r.SHA256,
			&r.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
