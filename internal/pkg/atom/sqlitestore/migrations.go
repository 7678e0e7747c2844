package sqlitestore

import "fmt"

type migration struct {
	Version     int
	Description string
	SQL         string
}

var migrations = []migration{
	{
		Version:     1,
		Description: "atoms: interned node and link table",
		SQL: `
CREATE TABLE atoms (
    handle     INTEGER PRIMARY KEY AUTOINCREMENT,
    type       INTEGER NOT NULL,
    is_link    INTEGER NOT NULL,
    name       TEXT NOT NULL DEFAULT '',
    struct_key TEXT NOT NULL UNIQUE
);

CREATE TABLE atom_children (
    parent_handle INTEGER NOT NULL REFERENCES atoms(handle),
    position      INTEGER NOT NULL,
    child_handle  INTEGER NOT NULL REFERENCES atoms(handle),
    PRIMARY KEY (parent_handle, position)
);

CREATE INDEX idx_atom_children_parent ON atom_children(parent_handle);
`,
	},
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_versions (
			version     INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at  INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_versions: %w", err)
	}

	for _, m := range migrations {
		var count int
		err := s.db.QueryRow("SELECT COUNT(*) FROM schema_versions WHERE version = ?", m.Version).Scan(&count)
		if err != nil {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}
		if count > 0 {
			continue
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.Version, err)
		}
		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO schema_versions (version, description) VALUES (?, ?)",
			m.Version, m.Description,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
	}
	return nil
}
