package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/pablasso/watodo/internal/task"

	_ "modernc.org/sqlite"
)

const sqliteFileName = "tasks.db"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS tasks (
    position INTEGER PRIMARY KEY,
    description TEXT NOT NULL,
    start_time TEXT,
    end_time TEXT,
    completed INTEGER NOT NULL DEFAULT 0,
    tags TEXT NOT NULL DEFAULT ''
);
`

// SQLiteStore keeps the task list in a SQLite database. The position column
// preserves display order.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load() ([]task.Task, error) {
	rows, err := s.db.Query(`
		SELECT description, start_time, end_time, completed, tags
		FROM tasks
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var (
			t          task.Task
			start, end sql.NullString
			tags       string
		)
		if err := rows.Scan(&t.Description, &start, &end, &t.Completed, &tags); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		if t.Start, err = parseNullTime(start); err != nil {
			return nil, err
		}
		if t.End, err = parseNullTime(end); err != nil {
			return nil, err
		}
		if tags != "" {
			t.Tags = strings.Split(tags, ",")
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}
	return tasks, nil
}

// Save rewrites the table inside one transaction.
func (s *SQLiteStore) Save(tasks []task.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO tasks (position, description, start_time, end_time, completed, tags)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range tasks {
		_, err := stmt.Exec(i, t.Description, formatNullTime(t.Start), formatNullTime(t.End), t.Completed, strings.Join(t.Tags, ","))
		if err != nil {
			return fmt.Errorf("failed to insert task %q: %w", t.Description, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tasks: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func formatNullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339Nano), Valid: true}
}

func parseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s.String)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored time %q: %w", s.String, err)
	}
	return &t, nil
}
