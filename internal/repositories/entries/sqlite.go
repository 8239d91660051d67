package entries

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/monju/internal/dbx"
	"github.com/dmitrijs2005/monju/internal/filex"
	"github.com/dmitrijs2005/monju/internal/migrations"
	"github.com/dmitrijs2005/monju/internal/models"

	_ "modernc.org/sqlite"
)

// SQLiteRepository keeps the collection in the entries table of a SQLite
// database. Tags are stored as a JSON array in a text column.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// OpenSQLite opens (creating if needed) the database file at path and
// applies the schema.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if _, err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (r *SQLiteRepository) Load(ctx context.Context) ([]models.Entry, error) {
	query := `SELECT id, topic, text, tags, votes, created_at FROM entries ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	result := []models.Entry{}
	for rows.Next() {
		var (
			e    models.Entry
			tags string
		)
		if err := rows.Scan(&e.ID, &e.Topic, &e.Text, &tags, &e.Votes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		if err := json.Unmarshal([]byte(tags), &e.Tags); err != nil {
			return nil, fmt.Errorf("entry #%d: bad tags: %w", e.ID, err)
		}
		e.Normalize()
		result = append(result, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, entries []models.Entry) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
			return fmt.Errorf("failed to clear entries: %w", err)
		}

		query := `INSERT INTO entries (id, topic, text, tags, votes, created_at) VALUES (?, ?, ?, ?, ?, ?)`
		for _, e := range entries {
			tags, err := json.Marshal(nonNil(e.Tags))
			if err != nil {
				return fmt.Errorf("entry #%d: encode tags: %w", e.ID, err)
			}
			if _, err := tx.ExecContext(ctx, query, e.ID, e.Topic, e.Text, string(tags), e.Votes, e.CreatedAt); err != nil {
				return fmt.Errorf("failed to insert entry #%d: %w", e.ID, err)
			}
		}
		return nil
	})
}

// Close releases the database handle.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
