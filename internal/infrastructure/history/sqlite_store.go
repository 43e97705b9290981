package history

import (
	"database/sql"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/kneto/nlcmd/internal/domain"
	"github.com/kneto/nlcmd/internal/pkg/filesystem"
	"github.com/kneto/nlcmd/internal/ports"
)

// SQLiteStore persists history in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the ~/.nlcmd/history/history.db
// database. On open or schema failure it degrades to the jsonl store at
// the same directory.
func NewSQLiteStore() *SQLiteStore {
	return NewSQLiteStoreAt(filepath.Join(filesystem.UserHome(), ".nlcmd", "history", "history.db"))
}

// NewSQLiteStoreAt opens a store at an explicit path, for tests.
func NewSQLiteStoreAt(path string) *SQLiteStore {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS attempts (
		id TEXT PRIMARY KEY,
		timestamp TEXT,
		input TEXT,
		command TEXT,
		description TEXT,
		category TEXT,
		safe INTEGER,
		outcome TEXT,
		exit_code INTEGER,
		execution_time_ms INTEGER
	);`)
	return err
}

func (s *SQLiteStore) fallback() *FileStore {
	return NewFileStoreAt(strings.TrimSuffix(s.path, ".db") + ".jsonl")
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.HistoryRecord) error {
	if s.db == nil {
		return s.fallback().Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO attempts
		(id, timestamp, input, command, description, category, safe, outcome, exit_code, execution_time_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Timestamp.Format(time.RFC3339),
		record.Input,
		record.Command,
		record.Description,
		string(record.Category),
		boolToInt(record.Safe),
		string(record.Outcome),
		record.ExitCode,
		record.ExecutionTimeMS,
	)
	return err
}

// Records returns history entries, newest first (limit/search optional).
func (s *SQLiteStore) Records(limit int, search string) ([]domain.HistoryRecord, error) {
	if s.db == nil {
		return s.fallback().Records(limit, search)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT id, timestamp, input, command, description, category, safe, outcome, exit_code, execution_time_ms FROM attempts")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE input LIKE ? OR command LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY datetime(timestamp) DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.HistoryRecord
	for rows.Next() {
		var rec domain.HistoryRecord
		var ts, category, outcome string
		var safe int
		if err := rows.Scan(&rec.ID, &ts, &rec.Input, &rec.Command, &rec.Description, &category, &safe, &outcome, &rec.ExitCode, &rec.ExecutionTimeMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Category = domain.Category(category)
		rec.Outcome = domain.Outcome(outcome)
		rec.Safe = safe == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all history entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback().Clear()
	}
	_, err := s.db.Exec("DELETE FROM attempts")
	return err
}

// ExportJSON writes the attempts table to a jsonl file.
func (s *SQLiteStore) ExportJSON(dest string) error {
	records, err := s.Records(0, "")
	if err != nil {
		return err
	}
	return writeJSONL(dest, records)
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
