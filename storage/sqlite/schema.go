package sqlite

import (
	"context"
	"strings"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS entries (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	word        TEXT NOT NULL,
	word_class  TEXT NOT NULL,
	definitions TEXT NOT NULL DEFAULT '[]',
	variations  TEXT NOT NULL DEFAULT '[]',
	stems       TEXT NOT NULL DEFAULT '[]',
	inserted_at INTEGER NOT NULL,
	updated_at  INTEGER NOT NULL,
	revision    INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS examples (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	entry_id         INTEGER NOT NULL,
	position         INTEGER NOT NULL,
	igbo             TEXT NOT NULL DEFAULT '',
	english          TEXT NOT NULL DEFAULT '',
	associated_words TEXT NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_examples_entry ON examples(entry_id, position);

CREATE TABLE IF NOT EXISTS corpus_meta (
	key   TEXT PRIMARY KEY,
	value INTEGER NOT NULL
);

INSERT OR IGNORE INTO corpus_meta (key, value) VALUES ('revision', 0);
`

// InitSchema creates the tables used by Repository if they do not exist.
func InitSchema(ctx context.Context, db executor) error {
	for _, s := range strings.Split(schemaSQL, ";") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
