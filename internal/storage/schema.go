package storage

// Timestamps are TEXT in timeLayout so that ORDER BY on them is chronological.
const sqliteSchemaSQL = `
CREATE TABLE IF NOT EXISTS notes (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS habits (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	name           TEXT NOT NULL,
	description    TEXT,
	current_streak INTEGER NOT NULL DEFAULT 0,
	longest_streak INTEGER NOT NULL DEFAULT 0,
	created_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS habit_logs (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	habit_id  INTEGER NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
	date      TEXT NOT NULL,
	completed INTEGER NOT NULL,
	UNIQUE(habit_id, date)
);

CREATE INDEX IF NOT EXISTS idx_habit_logs_date ON habit_logs(date);

CREATE TABLE IF NOT EXISTS transactions (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	title    TEXT NOT NULL,
	amount   TEXT NOT NULL,
	type     TEXT NOT NULL CHECK (type IN ('income', 'expense')),
	category TEXT NOT NULL,
	date     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS checklists (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS checklist_items (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	checklist_id INTEGER NOT NULL REFERENCES checklists(id) ON DELETE CASCADE,
	title        TEXT NOT NULL,
	completed    INTEGER NOT NULL DEFAULT 0,
	position     INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_checklist_items_checklist ON checklist_items(checklist_id);

CREATE TABLE IF NOT EXISTS goals (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	title            TEXT NOT NULL,
	description      TEXT,
	target_value     TEXT,
	current_value    TEXT NOT NULL DEFAULT '0',
	unit             TEXT,
	status           TEXT NOT NULL DEFAULT 'not_started',
	start_date       TEXT NOT NULL,
	target_date      TEXT,
	motivation_media TEXT NOT NULL DEFAULT '[]',
	created_at       TEXT NOT NULL
);
`
