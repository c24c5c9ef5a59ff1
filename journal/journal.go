// journal/journal.go
package journal

import (
	"fmt"
	"time"

	"github.com/zentry/appicon/config"
)

// RenderRecord describes one artifact written by a render.
type RenderRecord struct {
	ID        string
	Path      string
	Format    string // "png" or "ico"
	Width     int
	Height    int
	Bytes     int64
	SHA256    string
	CreatedAt time.Time
}

// Journal keeps a history of renders.
type Journal interface {
	RecordRender(RenderRecord) error
	// Renders returns records newest first; limit <= 0 returns all of them.
	Renders(limit int) ([]RenderRecord, error)
	Close() error
}

// Open selects a journal by cfg.Type: "none" (or empty), "csv" or "sqlite".
func Open(cfg config.JournalConfig) (Journal, error) {
	switch cfg.Type {
	case "", "none":
		return Nop{}, nil
	case "csv":
		return NewCSV(cfg.Path)
	case "sqlite":
		return NewSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown journal type %q", cfg.Type)
	}
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordRender(RenderRecord) error { return nil }

func (Nop) Renders(int) ([]RenderRecord, error) { return nil, nil }

func (Nop) Close() error { return nil }

func newestFirst(recs []RenderRecord, limit int) []RenderRecord {
	out := make([]RenderRecord, 0, len(recs))
	for i := len(recs) - 1; i >= 0; i-- {
		out = append(out, recs[i])
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
