package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/webdiag/internal/domain"
	"github.com/doeshing/webdiag/internal/ports"
)

// SQLiteStore persists run summaries in a SQLite database. When the database
// cannot be opened it degrades to a jsonl FileStore next to it.
type SQLiteStore struct {
	path string

	once     sync.Once
	db       *sql.DB
	fallback *FileStore
	mu       sync.Mutex
}

// NewSQLiteStore prepares a store at path. Nothing touches the disk until the
// first call.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) open() {
	s.once.Do(func() {
		if err := os.MkdirAll(filepath.Dir(s.path), domain.DirectoryPermissions); err != nil {
			s.fallback = NewFileStore(fallbackPath(s.path))
			return
		}
		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			s.fallback = NewFileStore(fallbackPath(s.path))
			return
		}
		if err := initSchema(db); err != nil {
			_ = db.Close()
			s.fallback = NewFileStore(fallbackPath(s.path))
			return
		}
		s.db = db
	})
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT,
		timestamp TEXT,
		base_path TEXT,
		issues INTEGER,
		warnings INTEGER,
		info INTEGER,
		solutions INTEGER,
		partial INTEGER
	);`)
	return err
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.RunRecord) error {
	s.open()
	if s.db == nil {
		return s.fallback.Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO runs
		(id, timestamp, base_path, issues, warnings, info, solutions, partial)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Timestamp.Format(time.RFC3339Nano),
		record.BasePath,
		record.Issues,
		record.Warnings,
		record.Info,
		record.Solutions,
		boolToInt(record.Partial),
	)
	if err != nil {
		return fmt.Errorf("save run %s: %w", record.ID, err)
	}
	return nil
}

// Records returns the newest runs first. A limit of zero returns all.
func (s *SQLiteStore) Records(limit int) ([]domain.RunRecord, error) {
	s.open()
	if s.db == nil {
		return s.fallback.Records(limit)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT id, timestamp, base_path, issues, warnings, info, solutions, partial FROM runs ORDER BY seq DESC")
	var args []interface{}
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.RunRecord
	for rows.Next() {
		var rec domain.RunRecord
		var ts string
		var partial int
		if err := rows.Scan(&rec.ID, &ts, &rec.BasePath, &rec.Issues, &rec.Warnings, &rec.Info, &rec.Solutions, &partial); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Partial = partial == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all history entries.
func (s *SQLiteStore) Clear() error {
	s.open()
	if s.db == nil {
		return s.fallback.Clear()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM runs")
	return err
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the backing path actually in use, opening the store first so
// a fallback is reported as such.
func (s *SQLiteStore) Path() string {
	s.open()
	if s.fallback != nil {
		return s.fallback.Path()
	}
	return s.path
}

func fallbackPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".jsonl"
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.RunHistoryRepository = (*SQLiteStore)(nil)
