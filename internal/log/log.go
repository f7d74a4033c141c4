// Package log provides audit logging for stockviz validations.
// Logs are stored in ~/.stockviz/log/stockviz-log.db and record every check,
// query and config change made through the CLI or the MCP server.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("check:symbol", "check").
//		Field("symbol").
//		Value(s).
//		Write(err)
//
//	log.Event("query:build", "query").
//		Detail("interactive", true).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "check:date",
// "core:config", "mcp:stockviz_check".
//
// A rejected input is recorded as a failed entry with the rejection reason
// in the error column.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var (
	global  *Logger
	mu      sync.Mutex
	session = uuid.NewString()
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "check:symbol", "mcp:stockviz_query"
	Action string // verb: check, query, get, set, list
	Field  string // input field validated, if any
	Value  string // input value as given

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether the input was accepted
	Error   string         // rejection or failure message
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "check:date")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:stockviz_check")
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Field sets which input field the operation validated.
func (b *Builder) Field(name string) *Builder {
	b.entry.Field = name
	return b
}

// Value sets the raw input value.
//
// Inputs are tickers, menu digits and dates, none of them sensitive. Config
// values are not passed here.
func (b *Builder) Value(v string) *Builder {
	b.entry.Value = v
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Example:
//
//	log.Event("query:build", "query").
//		Detail("interactive", true).
//		Detail("days", q.Days())
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db, session: session}
	if wd, err := os.Getwd(); err == nil {
		global.project = hash(wd)
	}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir is hashed; the path itself is never stored.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Session returns the identifier shared by all entries from this process.
func Session() string {
	return session
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
