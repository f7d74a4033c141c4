package log

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDB points the logger at a database under t.TempDir().
func useTempDB(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	t.Cleanup(func() {
		Close()
		dbPathFunc = origDBPath
	})
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", DBPath())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLogger(t *testing.T) {
	useTempDB(t)

	t.Run("open and close", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		SetProject("/test/project")

		Log(Entry{
			Source:  "check:symbol",
			Action:  "check",
			Field:   "symbol",
			Value:   "AAPL",
			Success: true,
		})

		db := openDB(t)

		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM log").Scan(&count))
		assert.Equal(t, 1, count)

		var source, action, field, value, project, sess string
		var success int
		err := db.QueryRow("SELECT source, action, field, value, project, session, success FROM log WHERE id = 1").
			Scan(&source, &action, &field, &value, &project, &sess, &success)
		require.NoError(t, err)
		assert.Equal(t, "check:symbol", source)
		assert.Equal(t, "check", action)
		assert.Equal(t, "symbol", field)
		assert.Equal(t, "AAPL", value)
		assert.Equal(t, hash("/test/project"), project)
		assert.Equal(t, Session(), sess)
		assert.Equal(t, 1, success)
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()

		// Should not panic
		Log(Entry{Source: "test:cmd", Action: "test", Success: true})
	})

	t.Run("open is idempotent", func(t *testing.T) {
		require.NoError(t, Open())
		require.NoError(t, Open())
		Close()
	})
}

func TestBuilder(t *testing.T) {
	useTempDB(t)

	t.Run("rejected input", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("check:date", "check").
			Field("date").
			Value("2023-02-30").
			Write(errors.New("invalid date: day out of range"))

		var success int
		var field, errMsg string
		err := openDB(t).QueryRow("SELECT field, success, error FROM log ORDER BY id DESC LIMIT 1").
			Scan(&field, &success, &errMsg)
		require.NoError(t, err)
		assert.Equal(t, "date", field)
		assert.Equal(t, 0, success)
		assert.Equal(t, "invalid date: day out of range", errMsg)
	})

	t.Run("detail", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("query:build", "query").
			Detail("interactive", true).
			Detail("days", 31).
			Write(nil)

		var detail string
		var field sql.NullString
		err := openDB(t).QueryRow("SELECT field, detail FROM log ORDER BY id DESC LIMIT 1").Scan(&field, &detail)
		require.NoError(t, err)
		assert.False(t, field.Valid, "unset field should be NULL")
		assert.JSONEq(t, `{"interactive": true, "days": 31}`, detail)
	})
}

func TestHash(t *testing.T) {
	h1 := hash("/home/user/project")
	h2 := hash("/home/user/project")
	h3 := hash("/home/user/other")

	assert.Equal(t, h1, h2, "same input should produce same hash")
	assert.NotEqual(t, h1, h3, "different input should produce different hash")
	assert.Len(t, h1, 16, "BLAKE2b-64 should produce 16 hex chars")
}

func TestSession(t *testing.T) {
	_, err := uuid.Parse(Session())
	assert.NoError(t, err)
	assert.Equal(t, Session(), Session())
}

func TestDBPath(t *testing.T) {
	origDBPath := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = origDBPath }()

	t.Run("home", func(t *testing.T) {
		t.Setenv("STOCKVIZ_LOG_DB", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".stockviz", "log", "stockviz-log.db"), DBPath())
	})

	t.Run("env override", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "audit.db")
		t.Setenv("STOCKVIZ_LOG_DB", p)
		assert.Equal(t, p, DBPath())
	})
}
