// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     store
// Description: SQLite backed history of evaluations
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"math"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	mdwerror "github.com/msto63/cardano/foundation/core/error"
	mdwerrors "github.com/msto63/cardano/foundation/core/errors"
	"github.com/msto63/cardano/foundation/utils/cmplxx"
)

// MaxQueryLimit bounds the page size of Query
const MaxQueryLimit = 1000

// Result kinds stored with each entry
const (
	ResultComplex = "complex"
	ResultScalar  = "scalar"
	ResultBool    = "bool"
)

// Entry is one recorded evaluation. Failed evaluations carry an error code
// and message instead of a result.
type Entry struct {
	ID        string           `json:"id"`
	Timestamp time.Time        `json:"timestamp"`
	RequestID string           `json:"request_id,omitempty"`
	Operation string           `json:"operation"`
	Operands  []cmplxx.Complex `json:"operands"`
	Scalar    *float64         `json:"scalar,omitempty"`

	ResultKind   string          `json:"result_kind,omitempty"`
	Result       *cmplxx.Complex `json:"result,omitempty"`
	ScalarResult *float64        `json:"scalar_result,omitempty"`
	Rendered     string          `json:"rendered,omitempty"`

	ErrorCode    string        `json:"error_code,omitempty"`
	ErrorMessage string        `json:"error_message,omitempty"`
	Duration     time.Duration `json:"duration"`
}

// Failed reports whether the evaluation returned an error
func (e *Entry) Failed() bool {
	return e.ErrorCode != "" || e.ErrorMessage != ""
}

// MarshalJSON writes NaN and infinite scalars as "NaN", "+Inf" and "-Inf"
func (e Entry) MarshalJSON() ([]byte, error) {
	type plain Entry
	return json.Marshal(struct {
		plain
		Scalar       interface{} `json:"scalar,omitempty"`
		ScalarResult interface{} `json:"scalar_result,omitempty"`
	}{plain(e), JSONNumber(e.Scalar), JSONNumber(e.ScalarResult)})
}

// JSONNumber returns f for JSON encoding: nil for nil, a string for NaN and
// infinities, the number otherwise
func JSONNumber(f *float64) interface{} {
	switch {
	case f == nil:
		return nil
	case math.IsNaN(*f) || math.IsInf(*f, 0):
		return strconv.FormatFloat(*f, 'g', -1, 64)
	default:
		return *f
	}
}

// Filter defines criteria for history queries
type Filter struct {
	Operation  string
	ErrorsOnly bool
	Since      time.Time
	Limit      int
	Offset     int
}

// Store defines the interface for evaluation history persistence
type Store interface {
	Record(ctx context.Context, entry *Entry) error
	Query(ctx context.Context, filter Filter) ([]*Entry, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	CountByOperation(ctx context.Context) (map[string]int64, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// Config holds configuration for the SQLite store
type Config struct {
	Path string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Path: "./data/history.db",
	}
}

// NewSQLiteStore opens or creates the history database
func NewSQLiteStore(cfg Config) (*SQLiteStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, dbError("open", err)
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, dbError("open", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, dbError("init_schema", err)
	}

	return store, nil
}

func dbError(operation string, cause error) *mdwerror.Error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleStore).
		Operation(operation).
		Cause(cause).
		Build()
}

// initSchema creates the necessary tables
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS evaluations (
		id TEXT PRIMARY KEY,
		timestamp DATETIME NOT NULL,
		request_id TEXT,
		operation TEXT NOT NULL,
		operands TEXT NOT NULL,
		scalar TEXT,
		result_kind TEXT,
		result TEXT,
		scalar_result TEXT,
		rendered TEXT,
		error_code TEXT,
		error_message TEXT,
		duration_ns INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_evaluations_timestamp ON evaluations(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_evaluations_operation ON evaluations(operation);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores entry, assigning an ID and timestamp when missing
func (s *SQLiteStore) Record(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	entry.Timestamp = entry.Timestamp.UTC()

	operands := entry.Operands
	if operands == nil {
		operands = []cmplxx.Complex{}
	}
	operandsJSON, err := json.Marshal(operands)
	if err != nil {
		return dbError("record", err)
	}

	var resultJSON sql.NullString
	if entry.Result != nil {
		raw, err := json.Marshal(entry.Result)
		if err != nil {
			return dbError("record", err)
		}
		resultJSON = sql.NullString{String: string(raw), Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO evaluations (id, timestamp, request_id, operation, operands, scalar,
			result_kind, result, scalar_result, rendered, error_code, error_message, duration_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Timestamp, nullString(entry.RequestID), entry.Operation, string(operandsJSON),
		floatText(entry.Scalar), nullString(entry.ResultKind), resultJSON, floatText(entry.ScalarResult),
		nullString(entry.Rendered), nullString(entry.ErrorCode), nullString(entry.ErrorMessage),
		entry.Duration.Nanoseconds())

	if err != nil {
		return dbError("record", err)
	}

	return nil
}

// where builds the WHERE clause shared by Query and Count
func (f Filter) where() (string, []interface{}) {
	clause := " WHERE 1=1"
	var args []interface{}

	if f.Operation != "" {
		clause += " AND operation = ? COLLATE NOCASE"
		args = append(args, f.Operation)
	}
	if f.ErrorsOnly {
		clause += " AND (error_code IS NOT NULL OR error_message IS NOT NULL)"
	}
	if !f.Since.IsZero() {
		clause += " AND timestamp >= ?"
		args = append(args, f.Since.UTC())
	}
	return clause, args
}

// Query retrieves entries newest first
func (s *SQLiteStore) Query(ctx context.Context, filter Filter) ([]*Entry, error) {
	if filter.Limit < 0 || filter.Limit > MaxQueryLimit {
		return nil, mdwerrors.OutOfRange(mdwerrors.ModuleStore, "query", filter.Limit, 0, MaxQueryLimit)
	}
	if filter.Offset < 0 {
		return nil, mdwerrors.OutOfRange(mdwerrors.ModuleStore, "query", filter.Offset, 0, "unbounded")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	where, args := filter.where()
	query := `SELECT id, timestamp, request_id, operation, operands, scalar, result_kind, result,
		scalar_result, rendered, error_code, error_message, duration_ns FROM evaluations` + where +
		" ORDER BY timestamp DESC, rowid DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		query += " LIMIT -1"
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError("query", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, dbError("query", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("query", err)
	}

	return entries, nil
}

func scanEntry(rows *sql.Rows) (*Entry, error) {
	var (
		entry                   Entry
		operands                string
		durationNS              int64
		scalar, scalarResult    sql.NullString
		requestID, resultKind   sql.NullString
		result, rendered        sql.NullString
		errorCode, errorMessage sql.NullString
	)

	if err := rows.Scan(&entry.ID, &entry.Timestamp, &requestID, &entry.Operation, &operands,
		&scalar, &resultKind, &result, &scalarResult, &rendered, &errorCode, &errorMessage,
		&durationNS); err != nil {
		return nil, err
	}

	err := json.Unmarshal([]byte(operands), &entry.Operands)
	if err != nil {
		return nil, err
	}
	if result.Valid {
		var z cmplxx.Complex
		if err := json.Unmarshal([]byte(result.String), &z); err != nil {
			return nil, err
		}
		entry.Result = &z
	}
	if entry.Scalar, err = parseFloatText(scalar); err != nil {
		return nil, err
	}
	if entry.ScalarResult, err = parseFloatText(scalarResult); err != nil {
		return nil, err
	}

	entry.RequestID = requestID.String
	entry.ResultKind = resultKind.String
	entry.Rendered = rendered.String
	entry.ErrorCode = errorCode.String
	entry.ErrorMessage = errorMessage.String
	entry.Duration = time.Duration(durationNS)

	return &entry, nil
}

// Count returns the number of entries matching filter, ignoring paging
func (s *SQLiteStore) Count(ctx context.Context, filter Filter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	where, args := filter.where()
	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM evaluations"+where, args...).Scan(&count); err != nil {
		return 0, dbError("count", err)
	}
	return count, nil
}

// CountByOperation returns the number of entries per operation
func (s *SQLiteStore) CountByOperation(ctx context.Context) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT operation, COUNT(*) FROM evaluations GROUP BY operation`)
	if err != nil {
		return nil, dbError("stats", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var op string
		var n int64
		if err := rows.Scan(&op, &n); err != nil {
			return nil, dbError("stats", err)
		}
		counts[op] = n
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("stats", err)
	}
	return counts, nil
}

// Prune deletes entries older than olderThan
func (s *SQLiteStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan).UTC()

	result, err := s.db.ExecContext(ctx, `DELETE FROM evaluations WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, dbError("prune", err)
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Ping verifies the database is reachable
func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return dbError("ping", err)
	}
	return nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// floatText stores real values as text. SQLite turns a NaN REAL into NULL,
// and NaN or infinite results must survive the round trip.
func floatText(f *float64) sql.NullString {
	if f == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: strconv.FormatFloat(*f, 'g', -1, 64), Valid: true}
}

func parseFloatText(s sql.NullString) (*float64, error) {
	if !s.Valid {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s.String, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
