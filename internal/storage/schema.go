// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tasks, habits, habit_logs, mood_entries, and goals tables.
package storage

// initSchema creates the database schema if it does not exist.
// Timestamps are fixed-width UTC strings so they sort lexically;
// calendar dates are YYYY-MM-DD.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		priority TEXT NOT NULL DEFAULT 'medium',
		status TEXT NOT NULL DEFAULT 'pending',
		due_date TEXT,
		created_at TEXT NOT NULL,
		completed_at TEXT
	);

	CREATE TABLE IF NOT EXISTS habits (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		frequency TEXT NOT NULL DEFAULT 'daily',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS habit_logs (
		id TEXT PRIMARY KEY,
		habit_id TEXT NOT NULL,
		logged_date TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 1,
		UNIQUE (habit_id, logged_date),
		FOREIGN KEY (habit_id) REFERENCES habits(id)
	);

	CREATE TABLE IF NOT EXISTS mood_entries (
		id TEXT PRIMARY KEY,
		mood_score INTEGER NOT NULL,
		mood_emoji TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		sentiment_score REAL NOT NULL DEFAULT 0,
		logged_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		target_value REAL NOT NULL,
		current_value REAL NOT NULL DEFAULT 0,
		unit TEXT NOT NULL DEFAULT '',
		deadline TEXT,
		status TEXT NOT NULL DEFAULT 'active',
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);
	CREATE INDEX IF NOT EXISTS idx_tasks_created ON tasks(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed_at);
	CREATE INDEX IF NOT EXISTS idx_habit_logs_date ON habit_logs(logged_date);
	CREATE INDEX IF NOT EXISTS idx_mood_logged ON mood_entries(logged_at DESC);
	CREATE INDEX IF NOT EXISTS idx_goals_status ON goals(status);
	`

	_, err := d.db.Exec(schema)
	return err
}
