// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS renders (
	id TEXT PRIMARY KEY,
	path TEXT NOT NULL,
	format TEXT NOT NULL,
	width INTEGER NOT NULL,
	height INTEGER NOT NULL,
	bytes INTEGER NOT NULL,
	sha256 TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_renders_created_at ON renders(created_at);
`
