package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"diario/internal/domain"
	"diario/internal/ports"
)

const schemaVersion = "1"

// Index implements ports.TagIndex using SQLite. It is a derived,
// disposable view of the journal snapshot: rebuilt wholesale after loads
// and mutations, queried for tag search and usage statistics.
type Index struct {
	db     *sql.DB
	dbPath string
}

// Ensure Index implements TagIndex
var _ ports.TagIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index database at dbPath.
func (idx *Index) Open(dbPath string) error {
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	idx.dbPath = dbPath

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in a single batch
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS tags (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			created_at TEXT NOT NULL,
			position INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS day_tags (
			date TEXT NOT NULL,
			tag_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			PRIMARY KEY (date, tag_id, kind)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_tags_kind ON tags(kind);
		CREATE INDEX IF NOT EXISTS idx_day_tags_tag ON day_tags(tag_id);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	var version string
	db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	if version != "" && version != schemaVersion {
		// Stale layout; drop the derived data and let the next rebuild
		// repopulate it.
		if _, err := db.Exec(`DELETE FROM tags; DELETE FROM day_tags;`); err != nil {
			db.Close()
			return fmt.Errorf("failed to reset stale index: %w", err)
		}
	}
	if _, err := db.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`,
		schemaVersion,
	); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}
	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// RebuildFrom replaces the index contents with the given snapshot.
func (idx *Index) RebuildFrom(snap domain.Snapshot) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tags`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM day_tags`); err != nil {
		return err
	}

	for i, item := range snap.CatalogItems {
		_, err := tx.Exec(
			`INSERT INTO tags (id, name, kind, created_at, position) VALUES (?, ?, ?, ?, ?)`,
			item.ID, item.Name, string(item.Kind), item.CreatedAt.Format(time.RFC3339), i,
		)
		if err != nil {
			return fmt.Errorf("failed to index tag %s: %w", item.ID, err)
		}
	}

	for date, day := range snap.DayLogsByDate {
		for _, id := range day.SymptomIDs {
			if _, err := tx.Exec(
				`INSERT OR IGNORE INTO day_tags (date, tag_id, kind) VALUES (?, ?, ?)`,
				date, id, string(domain.KindSymptom),
			); err != nil {
				return fmt.Errorf("failed to index day %s: %w", date, err)
			}
		}
		for _, id := range day.FoodIDs {
			if _, err := tx.Exec(
				`INSERT OR IGNORE INTO day_tags (date, tag_id, kind) VALUES (?, ?, ?)`,
				date, id, string(domain.KindFood),
			); err != nil {
				return fmt.Errorf("failed to index day %s: %w", date, err)
			}
		}
	}

	return tx.Commit()
}

// SearchTags returns catalog items of the given kind whose name contains
// query, case-insensitively, ordered by name.
func (idx *Index) SearchTags(kind domain.ItemKind, query string) ([]domain.CatalogItem, error) {
	rows, err := idx.db.Query(
		`SELECT id, name, kind, created_at FROM tags
		 WHERE kind = ? AND name LIKE ? ESCAPE '\'
		 ORDER BY name`,
		string(kind), "%"+escapeLike(query)+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search tags: %w", err)
	}
	defer rows.Close()

	var items []domain.CatalogItem
	for rows.Next() {
		item, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// TagUsage returns, for every tag of the given kind, the number of days
// referencing it, most used first.
func (idx *Index) TagUsage(kind domain.ItemKind) ([]domain.TagUsage, error) {
	rows, err := idx.db.Query(
		`SELECT t.id, t.name, t.kind, t.created_at, COUNT(d.date) AS days
		 FROM tags t
		 LEFT JOIN day_tags d ON d.tag_id = t.id AND d.kind = t.kind
		 WHERE t.kind = ?
		 GROUP BY t.id
		 ORDER BY days DESC, t.name`,
		string(kind),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tag usage: %w", err)
	}
	defer rows.Close()

	var usage []domain.TagUsage
	for rows.Next() {
		var (
			item      domain.CatalogItem
			kindStr   string
			createdAt string
			days      int
		)
		if err := rows.Scan(&item.ID, &item.Name, &kindStr, &createdAt, &days); err != nil {
			return nil, fmt.Errorf("failed to scan tag usage: %w", err)
		}
		item.Kind = domain.ItemKind(kindStr)
		item.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		usage = append(usage, domain.TagUsage{Item: item, Days: days})
	}
	return usage, rows.Err()
}

func scanTag(rows *sql.Rows) (domain.CatalogItem, error) {
	var (
		item      domain.CatalogItem
		kindStr   string
		createdAt string
	)
	if err := rows.Scan(&item.ID, &item.Name, &kindStr, &createdAt); err != nil {
		return domain.CatalogItem{}, fmt.Errorf("failed to scan tag: %w", err)
	}
	item.Kind = domain.ItemKind(kindStr)
	item.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return item, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}
