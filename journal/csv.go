package journal

import (
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
)

// csvRow is the on-disk shape of a RenderRecord.
type csvRow struct {
	ID        string `csv:"id"`
	Path      string `csv:"path"`
	Format    string `csv:"format"`
	Width     int    `csv:"width"`
	Height    int    `csv:"height"`
	Bytes     int64  `csv:"bytes"`
	SHA256    string `csv:"sha256"`
	CreatedAt string `csv:"created_at"`
}

// CSVJournal appends one row per render to a single file. The header is
// written once, when the file is empty.
type CSVJournal struct {
	path string
	f    *os.File
}

func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return &CSVJournal{path: path, f: f}, nil
}

func (j *CSVJournal) RecordRender(r RenderRecord) error {
	info, err := j.f.Stat()
	if err != nil {
		return err
	}

	rows := []csvRow{{
		ID:        r.ID,
		Path:      r.Path,
		Format:    r.Format,
		Width:     r.Width,
		Height:    r.Height,
		Bytes:     r.Bytes,
		SHA256:    r.SHA256,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}}

	if info.Size() == 0 {
		return gocsv.Marshal(&rows, j.f)
	}
	return gocsv.MarshalWithoutHeaders(&rows, j.f)
}

func (j *CSVJournal) Renders(limit int) ([]RenderRecord, error) {
	f, err := os.Open(j.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return nil, nil
	}

	var rows []csvRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("read %s: %w", j.path, err)
	}

	recs := make([]RenderRecord, 0, len(rows))
	for _, row := range rows {
		ts, err := time.Parse(time.RFC3339Nano, row.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("render %s: created_at: %w", row.ID, err)
		}
		recs = append(recs, RenderRecord{
			ID:        row.ID,
			Path:      row.Path,
			Format:    row.Format,
			Width:     row.Width,
			Height:    row.Height,
			Bytes:     row.Bytes,
			SHA256:    row.SHA256,
			CreatedAt: ts,
		})
	}
	return newestFirst(recs, limit), nil
}

func (j *CSVJournal) Close() error {
	return j.f.Close()
}
