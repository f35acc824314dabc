package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/starford/lifetrack/internal/models"
)

// timeLayout is fixed-width so that stored timestamps sort lexically.
const timeLayout = "2006-01-02 15:04:05.000000000-07:00"

// SQLite implements Store on a SQLite database file.
type SQLite struct {
	conn *sql.DB
	now  func() time.Time
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens (or creates) the database at path and applies the schema.
func OpenSQLite(path string, opts ...Option) (*SQLite, error) {
	o := buildOptions(opts)
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("storage: open db: %w", err)
	}
	// One connection serializes writers, so a streak recompute never
	// observes a half-applied log write.
	conn.SetMaxOpenConns(1)
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("storage: ping: %w", err)
	}
	if _, err := conn.Exec(sqliteSchemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("storage: apply schema: %w", err)
	}
	return &SQLite{conn: conn, now: o.now}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.conn.Close()
}

type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

func (s *SQLite) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: commit: %w", err)
	}
	return nil
}

func queryAll[T any](ctx context.Context, q queryer, scan func(scanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query: %w", err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: scan: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func queryOne[T any](ctx context.Context, q queryer, scan func(scanner) (T, error), kind string, id int64, query string) (T, error) {
	v, err := scan(q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return v, notFound(kind, id)
	}
	if err != nil {
		return v, fmt.Errorf("storage: get %s %d: %w", kind, id, err)
	}
	return v, nil
}

func execDelete(ctx context.Context, q queryer, kind string, id int64, query string) error {
	res, err := q.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("storage: delete %s %d: %w", kind, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: delete %s %d: %w", kind, id, err)
	}
	if n == 0 {
		return notFound(kind, id)
	}
	return nil
}

func insertID(ctx context.Context, q queryer, query string, args ...any) (int64, error) {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("storage: insert: %w", err)
	}
	return res.LastInsertId()
}

func ts(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTS(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

func nullTS(t *time.Time) any {
	if t == nil {
		return nil
	}
	return ts(*t)
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

// Notes

const noteColumns = `id, title, content, created_at, updated_at`

func scanNote(sc scanner) (models.Note, error) {
	var n models.Note
	var created, updated string
	if err := sc.Scan(&n.ID, &n.Title, &n.Content, &created, &updated); err != nil {
		return n, err
	}
	var err error
	if n.CreatedAt, err = parseTS(created); err != nil {
		return n, err
	}
	n.UpdatedAt, err = parseTS(updated)
	return n, err
}

func (s *SQLite) Notes(ctx context.Context) ([]models.Note, error) {
	return queryAll(ctx, s.conn, scanNote, `SELECT `+noteColumns+` FROM notes ORDER BY updated_at DESC, id DESC`)
}

func (s *SQLite) Note(ctx context.Context, id int64) (models.Note, error) {
	return queryOne(ctx, s.conn, scanNote, "note", id, `SELECT `+noteColumns+` FROM notes WHERE id = ?`)
}

func (s *SQLite) CreateNote(ctx context.Context, in models.NoteInput) (models.Note, error) {
	n := models.NewNote(in, s.now())
	id, err := insertID(ctx, s.conn,
		`INSERT INTO notes (title, content, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		n.Title, n.Content, ts(n.CreatedAt), ts(n.UpdatedAt))
	if err != nil {
		return models.Note{}, err
	}
	return s.Note(ctx, id)
}

func (s *SQLite) UpdateNote(ctx context.Context, id int64, p models.NotePatch) (models.Note, error) {
	var n models.Note
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		if n, err = queryOne(ctx, tx, scanNote, "note", id, `SELECT `+noteColumns+` FROM notes WHERE id = ?`); err != nil {
			return err
		}
		p.Apply(&n, s.now())
		_, err = tx.ExecContext(ctx, `UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?`,
			n.Title, n.Content, ts(n.UpdatedAt), id)
		return err
	})
	if err != nil {
		return models.Note{}, err
	}
	return s.Note(ctx, id)
}

func (s *SQLite) DeleteNote(ctx context.Context, id int64) error {
	return execDelete(ctx, s.conn, "note", id, `DELETE FROM notes WHERE id = ?`)
}

// SearchNotes filters in Go so that case folding matches the in-memory
// backend; SQLite's lower() only folds ASCII.
func (s *SQLite) SearchNotes(ctx context.Context, query string) ([]models.Note, error) {
	all, err := s.Notes(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	out := []models.Note{}
	for _, n := range all {
		if matchesNote(n, q) {
			out = append(out, n)
		}
	}
	return out, nil
}

// Habits

const habitColumns = `id, name, description, current_streak, longest_streak, created_at`

func scanHabit(sc scanner) (models.Habit, error) {
	var h models.Habit
	var desc sql.NullString
	var created string
	if err := sc.Scan(&h.ID, &h.Name, &desc, &h.CurrentStreak, &h.LongestStreak, &created); err != nil {
		return h, err
	}
	h.Description = stringPtr(desc)
	var err error
	h.CreatedAt, err = parseTS(created)
	return h, err
}

func (s *SQLite) Habits(ctx context.Context) ([]models.Habit, error) {
	return queryAll(ctx, s.conn, scanHabit, `SELECT `+habitColumns+` FROM habits ORDER BY created_at DESC, id DESC`)
}

func (s *SQLite) Habit(ctx context.Context, id int64) (models.Habit, error) {
	return queryOne(ctx, s.conn, scanHabit, "habit", id, `SELECT `+habitColumns+` FROM habits WHERE id = ?`)
}

func (s *SQLite) CreateHabit(ctx context.Context, in models.HabitInput) (models.Habit, error) {
	h := models.NewHabit(in, s.now())
	id, err := insertID(ctx, s.conn,
		`INSERT INTO habits (name, description, created_at) VALUES (?, ?, ?)`,
		h.Name, nullString(h.Description), ts(h.CreatedAt))
	if err != nil {
		return models.Habit{}, err
	}
	return s.Habit(ctx, id)
}

func (s *SQLite) UpdateHabit(ctx context.Context, id int64, p models.HabitPatch) (models.Habit, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		h, err := queryOne(ctx, tx, scanHabit, "habit", id, `SELECT `+habitColumns+` FROM habits WHERE id = ?`)
		if err != nil {
			return err
		}
		p.Apply(&h)
		_, err = tx.ExecContext(ctx, `UPDATE habits SET name = ?, description = ? WHERE id = ?`,
			h.Name, nullString(h.Description), id)
		return err
	})
	if err != nil {
		return models.Habit{}, err
	}
	return s.Habit(ctx, id)
}

func (s *SQLite) DeleteHabit(ctx context.Context, id int64) error {
	return execDelete(ctx, s.conn, "habit", id, `DELETE FROM habits WHERE id = ?`)
}

// Habit logs

const habitLogColumns = `id, habit_id, date, completed`

func scanHabitLog(sc scanner) (models.HabitLog, error) {
	var l models.HabitLog
	err := sc.Scan(&l.ID, &l.HabitID, &l.Date, &l.Completed)
	return l, err
}

func (s *SQLite) HabitLogs(ctx context.Context, habitID int64) ([]models.HabitLog, error) {
	return queryAll(ctx, s.conn, scanHabitLog,
		`SELECT `+habitLogColumns+` FROM habit_logs WHERE habit_id = ? ORDER BY date DESC`, habitID)
}

func (s *SQLite) HabitLogsForDate(ctx context.Context, date string) ([]models.HabitLog, error) {
	return queryAll(ctx, s.conn, scanHabitLog,
		`SELECT `+habitLogColumns+` FROM habit_logs WHERE date = ? ORDER BY habit_id`, date)
}

func (s *SQLite) UpsertHabitLog(ctx context.Context, in models.HabitLogInput) (models.HabitLog, error) {
	completed := in.Completed != nil && *in.Completed
	var log models.HabitLog
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := queryOne(ctx, tx, scanHabit, "habit", in.HabitID, `SELECT `+habitColumns+` FROM habits WHERE id = ?`); err != nil {
			return err
		}
		row := tx.QueryRowContext(ctx, `
			INSERT INTO habit_logs (habit_id, date, completed) VALUES (?, ?, ?)
			ON CONFLICT(habit_id, date) DO UPDATE SET completed = excluded.completed
			RETURNING `+habitLogColumns, in.HabitID, in.Date, completed)
		var err error
		if log, err = scanHabitLog(row); err != nil {
			return fmt.Errorf("storage: upsert habit log: %w", err)
		}
		return s.recomputeStreaks(ctx, tx, in.HabitID)
	})
	if err != nil {
		return models.HabitLog{}, err
	}
	return log, nil
}

func (s *SQLite) DeleteHabitLog(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		l, err := queryOne(ctx, tx, scanHabitLog, "habit log", id, `SELECT `+habitLogColumns+` FROM habit_logs WHERE id = ?`)
		if err != nil {
			return err
		}
		if err := execDelete(ctx, tx, "habit log", id, `DELETE FROM habit_logs WHERE id = ?`); err != nil {
			return err
		}
		return s.recomputeStreaks(ctx, tx, l.HabitID)
	})
}

func (s *SQLite) recomputeStreaks(ctx context.Context, tx *sql.Tx, habitID int64) error {
	logs, err := queryAll(ctx, tx, scanHabitLog,
		`SELECT `+habitLogColumns+` FROM habit_logs WHERE habit_id = ? ORDER BY date DESC`, habitID)
	if err != nil {
		return err
	}
	st := streaksFor(logs, s.now())
	if _, err := tx.ExecContext(ctx, `UPDATE habits SET current_streak = ?, longest_streak = ? WHERE id = ?`,
		st.Current, st.Longest, habitID); err != nil {
		return fmt.Errorf("storage: update streaks: %w", err)
	}
	return nil
}

// Transactions

const transactionColumns = `id, title, amount, type, category, date`

func scanTransaction(sc scanner) (models.Transaction, error) {
	var t models.Transaction
	var date string
	if err := sc.Scan(&t.ID, &t.Title, &t.Amount, &t.Type, &t.Category, &date); err != nil {
		return t, err
	}
	var err error
	t.Date, err = parseTS(date)
	return t, err
}

func (s *SQLite) Transactions(ctx context.Context) ([]models.Transaction, error) {
	return queryAll(ctx, s.conn, scanTransaction, `SELECT `+transactionColumns+` FROM transactions ORDER BY date DESC, id DESC`)
}

func (s *SQLite) Transaction(ctx context.Context, id int64) (models.Transaction, error) {
	return queryOne(ctx, s.conn, scanTransaction, "transaction", id, `SELECT `+transactionColumns+` FROM transactions WHERE id = ?`)
}

func (s *SQLite) CreateTransaction(ctx context.Context, in models.TransactionInput) (models.Transaction, error) {
	t := models.NewTransaction(in, s.now())
	id, err := insertID(ctx, s.conn,
		`INSERT INTO transactions (title, amount, type, category, date) VALUES (?, ?, ?, ?, ?)`,
		t.Title, t.Amount.String(), string(t.Type), t.Category, ts(t.Date))
	if err != nil {
		return models.Transaction{}, err
	}
	return s.Transaction(ctx, id)
}

func (s *SQLite) UpdateTransaction(ctx context.Context, id int64, p models.TransactionPatch) (models.Transaction, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		t, err := queryOne(ctx, tx, scanTransaction, "transaction", id, `SELECT `+transactionColumns+` FROM transactions WHERE id = ?`)
		if err != nil {
			return err
		}
		p.Apply(&t)
		_, err = tx.ExecContext(ctx,
			`UPDATE transactions SET title = ?, amount = ?, type = ?, category = ?, date = ? WHERE id = ?`,
			t.Title, t.Amount.String(), string(t.Type), t.Category, ts(t.Date), id)
		return err
	})
	if err != nil {
		return models.Transaction{}, err
	}
	return s.Transaction(ctx, id)
}

func (s *SQLite) DeleteTransaction(ctx context.Context, id int64) error {
	return execDelete(ctx, s.conn, "transaction", id, `DELETE FROM transactions WHERE id = ?`)
}

// Checklists

const (
	checklistColumns     = `id, title, created_at`
	checklistItemColumns = `id, checklist_id, title, completed, position`
)

func scanChecklist(sc scanner) (models.Checklist, error) {
	var c models.Checklist
	var created string
	if err := sc.Scan(&c.ID, &c.Title, &created); err != nil {
		return c, err
	}
	var err error
	c.CreatedAt, err = parseTS(created)
	return c, err
}

func scanChecklistItem(sc scanner) (models.ChecklistItem, error) {
	var it models.ChecklistItem
	err := sc.Scan(&it.ID, &it.ChecklistID, &it.Title, &it.Completed, &it.Order)
	return it, err
}

func (s *SQLite) Checklists(ctx context.Context) ([]models.ChecklistWithItems, error) {
	lists, err := queryAll(ctx, s.conn, scanChecklist,
		`SELECT `+checklistColumns+` FROM checklists ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	items, err := queryAll(ctx, s.conn, scanChecklistItem,
		`SELECT `+checklistItemColumns+` FROM checklist_items ORDER BY checklist_id, position, id`)
	if err != nil {
		return nil, err
	}
	byList := make(map[int64][]models.ChecklistItem, len(lists))
	for _, it := range items {
		byList[it.ChecklistID] = append(byList[it.ChecklistID], it)
	}
	out := make([]models.ChecklistWithItems, len(lists))
	for i, c := range lists {
		its := byList[c.ID]
		if its == nil {
			its = []models.ChecklistItem{}
		}
		out[i] = models.ChecklistWithItems{Checklist: c, Items: its}
	}
	return out, nil
}

func (s *SQLite) Checklist(ctx context.Context, id int64) (models.ChecklistWithItems, error) {
	c, err := queryOne(ctx, s.conn, scanChecklist, "checklist", id, `SELECT `+checklistColumns+` FROM checklists WHERE id = ?`)
	if err != nil {
		return models.ChecklistWithItems{}, err
	}
	items, err := s.ChecklistItems(ctx, id)
	if err != nil {
		return models.ChecklistWithItems{}, err
	}
	return models.ChecklistWithItems{Checklist: c, Items: items}, nil
}

func (s *SQLite) CreateChecklist(ctx context.Context, in models.ChecklistInput) (models.Checklist, error) {
	c := models.NewChecklist(in, s.now())
	id, err := insertID(ctx, s.conn, `INSERT INTO checklists (title, created_at) VALUES (?, ?)`, c.Title, ts(c.CreatedAt))
	if err != nil {
		return models.Checklist{}, err
	}
	return queryOne(ctx, s.conn, scanChecklist, "checklist", id, `SELECT `+checklistColumns+` FROM checklists WHERE id = ?`)
}

func (s *SQLite) UpdateChecklist(ctx context.Context, id int64, p models.ChecklistPatch) (models.Checklist, error) {
	var c models.Checklist
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		if c, err = queryOne(ctx, tx, scanChecklist, "checklist", id, `SELECT `+checklistColumns+` FROM checklists WHERE id = ?`); err != nil {
			return err
		}
		p.Apply(&c)
		_, err = tx.ExecContext(ctx, `UPDATE checklists SET title = ? WHERE id = ?`, c.Title, id)
		return err
	})
	if err != nil {
		return models.Checklist{}, err
	}
	return c, nil
}

func (s *SQLite) DeleteChecklist(ctx context.Context, id int64) error {
	return execDelete(ctx, s.conn, "checklist", id, `DELETE FROM checklists WHERE id = ?`)
}

// Checklist items

func (s *SQLite) ChecklistItems(ctx context.Context, checklistID int64) ([]models.ChecklistItem, error) {
	return queryAll(ctx, s.conn, scanChecklistItem,
		`SELECT `+checklistItemColumns+` FROM checklist_items WHERE checklist_id = ? ORDER BY position, id`, checklistID)
}

func (s *SQLite) ChecklistItem(ctx context.Context, id int64) (models.ChecklistItem, error) {
	return queryOne(ctx, s.conn, scanChecklistItem, "checklist item", id,
		`SELECT `+checklistItemColumns+` FROM checklist_items WHERE id = ?`)
}

func (s *SQLite) CreateChecklistItem(ctx context.Context, in models.ChecklistItemInput) (models.ChecklistItem, error) {
	it := models.NewChecklistItem(in)
	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := queryOne(ctx, tx, scanChecklist, "checklist", in.ChecklistID, `SELECT `+checklistColumns+` FROM checklists WHERE id = ?`); err != nil {
			return err
		}
		var err error
		id, err = insertID(ctx, tx,
			`INSERT INTO checklist_items (checklist_id, title, completed, position) VALUES (?, ?, ?, ?)`,
			it.ChecklistID, it.Title, it.Completed, it.Order)
		return err
	})
	if err != nil {
		return models.ChecklistItem{}, err
	}
	return s.ChecklistItem(ctx, id)
}

func (s *SQLite) UpdateChecklistItem(ctx context.Context, id int64, p models.ChecklistItemPatch) (models.ChecklistItem, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		it, err := queryOne(ctx, tx, scanChecklistItem, "checklist item", id,
			`SELECT `+checklistItemColumns+` FROM checklist_items WHERE id = ?`)
		if err != nil {
			return err
		}
		p.Apply(&it)
		_, err = tx.ExecContext(ctx, `UPDATE checklist_items SET title = ?, completed = ?, position = ? WHERE id = ?`,
			it.Title, it.Completed, it.Order, id)
		return err
	})
	if err != nil {
		return models.ChecklistItem{}, err
	}
	return s.ChecklistItem(ctx, id)
}

func (s *SQLite) DeleteChecklistItem(ctx context.Context, id int64) error {
	return execDelete(ctx, s.conn, "checklist item", id, `DELETE FROM checklist_items WHERE id = ?`)
}

// Goals

const goalColumns = `id, title, description, target_value, current_value, unit, status,
	start_date, target_date, motivation_media, created_at`

func scanGoal(sc scanner) (models.Goal, error) {
	var (
		g                  models.Goal
		desc, unit, target sql.NullString
		targetDate         sql.NullString
		start, created     string
		media              string
	)
	if err := sc.Scan(&g.ID, &g.Title, &desc, &target, &g.CurrentValue, &unit, &g.Status,
		&start, &targetDate, &media, &created); err != nil {
		return g, err
	}
	g.Description = stringPtr(desc)
	g.Unit = stringPtr(unit)
	if target.Valid {
		v, err := decimal.NewFromString(target.String)
		if err != nil {
			return g, err
		}
		g.TargetValue = &v
	}
	var err error
	if g.StartDate, err = parseTS(start); err != nil {
		return g, err
	}
	if targetDate.Valid {
		t, err := parseTS(targetDate.String)
		if err != nil {
			return g, err
		}
		g.TargetDate = &t
	}
	if g.CreatedAt, err = parseTS(created); err != nil {
		return g, err
	}
	if err := json.Unmarshal([]byte(media), &g.MotivationMedia); err != nil {
		return g, err
	}
	if g.MotivationMedia == nil {
		g.MotivationMedia = []string{}
	}
	return g, nil
}

func goalArgs(g models.Goal) ([]any, error) {
	media, err := json.Marshal(g.MotivationMedia)
	if err != nil {
		return nil, fmt.Errorf("storage: encode media: %w", err)
	}
	var target sql.NullString
	if g.TargetValue != nil {
		target = sql.NullString{String: g.TargetValue.String(), Valid: true}
	}
	return []any{
		g.Title, nullString(g.Description), target, g.CurrentValue.String(), nullString(g.Unit),
		string(g.Status), ts(g.StartDate), nullTS(g.TargetDate), string(media),
	}, nil
}

func (s *SQLite) Goals(ctx context.Context) ([]models.Goal, error) {
	return queryAll(ctx, s.conn, scanGoal, `SELECT `+goalColumns+` FROM goals ORDER BY created_at DESC, id DESC`)
}

func (s *SQLite) Goal(ctx context.Context, id int64) (models.Goal, error) {
	return queryOne(ctx, s.conn, scanGoal, "goal", id, `SELECT `+goalColumns+` FROM goals WHERE id = ?`)
}

func (s *SQLite) CreateGoal(ctx context.Context, in models.GoalInput) (models.Goal, error) {
	g := models.NewGoal(in, s.now())
	args, err := goalArgs(g)
	if err != nil {
		return models.Goal{}, err
	}
	id, err := insertID(ctx, s.conn, `
		INSERT INTO goals (title, description, target_value, current_value, unit, status,
			start_date, target_date, motivation_media, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, append(args, ts(g.CreatedAt))...)
	if err != nil {
		return models.Goal{}, err
	}
	return s.Goal(ctx, id)
}

func (s *SQLite) UpdateGoal(ctx context.Context, id int64, p models.GoalPatch) (models.Goal, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		g, err := queryOne(ctx, tx, scanGoal, "goal", id, `SELECT `+goalColumns+` FROM goals WHERE id = ?`)
		if err != nil {
			return err
		}
		p.Apply(&g)
		args, err := goalArgs(g)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			UPDATE goals SET title = ?, description = ?, target_value = ?, current_value = ?, unit = ?,
				status = ?, start_date = ?, target_date = ?, motivation_media = ?
			WHERE id = ?`, append(args, id)...)
		return err
	})
	if err != nil {
		return models.Goal{}, err
	}
	return s.Goal(ctx, id)
}

func (s *SQLite) DeleteGoal(ctx context.Context, id int64) error {
	return execDelete(ctx, s.conn, "goal", id, `DELETE FROM goals WHERE id = ?`)
}
