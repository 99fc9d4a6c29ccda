// ABOUTME: Shared helpers for storage tests.
// ABOUTME: Provides a temp-dir database and a settable clock.
package storage

import (
	"path/filepath"
	"testing"
	"time"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// setupTestDB creates a test database in a temp directory.
func setupTestDB(t *testing.T, opts ...Option) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "productivity.db")
	db, err := Open(dbPath, opts...)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// setupClockedDB opens a test database whose clock starts at start.
func setupClockedDB(t *testing.T, start time.Time) (*DB, *testClock) {
	t.Helper()
	clock := &testClock{now: start}
	return setupTestDB(t, WithClock(clock.Now)), clock
}
