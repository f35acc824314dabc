package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/starford/lifetrack/internal/apperr"
	"github.com/starford/lifetrack/internal/models"
)

// Memory implements Store with in-process maps. All data is lost when the
// process exits. A single id counter is shared by every entity kind.
type Memory struct {
	mu     sync.RWMutex
	now    func() time.Time
	nextID int64

	notes          map[int64]models.Note
	habits         map[int64]models.Habit
	habitLogs      map[int64]models.HabitLog
	transactions   map[int64]models.Transaction
	checklists     map[int64]models.Checklist
	checklistItems map[int64]models.ChecklistItem
	goals          map[int64]models.Goal
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory(opts ...Option) *Memory {
	o := buildOptions(opts)
	return &Memory{
		now:            o.now,
		nextID:         1,
		notes:          make(map[int64]models.Note),
		habits:         make(map[int64]models.Habit),
		habitLogs:      make(map[int64]models.HabitLog),
		transactions:   make(map[int64]models.Transaction),
		checklists:     make(map[int64]models.Checklist),
		checklistItems: make(map[int64]models.ChecklistItem),
		goals:          make(map[int64]models.Goal),
	}
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }

// id must be called with the write lock held.
func (m *Memory) id() int64 {
	id := m.nextID
	m.nextID++
	return id
}

func notFound(kind string, id int64) error {
	return fmt.Errorf("storage: %s %d: %w", kind, id, apperr.ErrNotFound)
}

func values[T any](src map[int64]T) []T {
	out := make([]T, 0, len(src))
	for _, v := range src {
		out = append(out, v)
	}
	return out
}

// newestFirst orders by timestamp descending; ids break ties so that later
// inserts come first.
func newestFirst[T any](items []T, key func(T) (time.Time, int64)) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return idi > idj
	})
}

// Notes

func (m *Memory) Notes(_ context.Context) ([]models.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := values(m.notes)
	newestFirst(out, func(n models.Note) (time.Time, int64) { return n.UpdatedAt, n.ID })
	return out, nil
}

func (m *Memory) Note(_ context.Context, id int64) (models.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.notes[id]
	if !ok {
		return models.Note{}, notFound("note", id)
	}
	return n, nil
}

func (m *Memory) CreateNote(_ context.Context, in models.NoteInput) (models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := models.NewNote(in, m.now())
	n.ID = m.id()
	m.notes[n.ID] = n
	return n, nil
}

func (m *Memory) UpdateNote(_ context.Context, id int64, p models.NotePatch) (models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[id]
	if !ok {
		return models.Note{}, notFound("note", id)
	}
	p.Apply(&n, m.now())
	m.notes[id] = n
	return n, nil
}

func (m *Memory) DeleteNote(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.notes[id]; !ok {
		return notFound("note", id)
	}
	delete(m.notes, id)
	return nil
}

func (m *Memory) SearchNotes(ctx context.Context, query string) ([]models.Note, error) {
	all, err := m.Notes(ctx)
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

func (m *Memory) Habits(_ context.Context) ([]models.Habit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := values(m.habits)
	newestFirst(out, func(h models.Habit) (time.Time, int64) { return h.CreatedAt, h.ID })
	return out, nil
}

func (m *Memory) Habit(_ context.Context, id int64) (models.Habit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.habits[id]
	if !ok {
		return models.Habit{}, notFound("habit", id)
	}
	return h, nil
}

func (m *Memory) CreateHabit(_ context.Context, in models.HabitInput) (models.Habit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h := models.NewHabit(in, m.now())
	h.ID = m.id()
	m.habits[h.ID] = h
	return h, nil
}

func (m *Memory) UpdateHabit(_ context.Context, id int64, p models.HabitPatch) (models.Habit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.habits[id]
	if !ok {
		return models.Habit{}, notFound("habit", id)
	}
	p.Apply(&h)
	m.habits[id] = h
	return h, nil
}

func (m *Memory) DeleteHabit(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.habits[id]; !ok {
		return notFound("habit", id)
	}
	for logID, l := range m.habitLogs {
		if l.HabitID == id {
			delete(m.habitLogs, logID)
		}
	}
	delete(m.habits, id)
	return nil
}

// Habit logs

func (m *Memory) HabitLogs(_ context.Context, habitID int64) ([]models.HabitLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.logsOf(habitID), nil
}

// logsOf returns the habit's logs ordered by date descending. Callers hold the lock.
func (m *Memory) logsOf(habitID int64) []models.HabitLog {
	out := []models.HabitLog{}
	for _, l := range m.habitLogs {
		if l.HabitID == habitID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

func (m *Memory) HabitLogsForDate(_ context.Context, date string) ([]models.HabitLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.HabitLog{}
	for _, l := range m.habitLogs {
		if l.Date == date {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].HabitID < out[j].HabitID })
	return out, nil
}

func (m *Memory) UpsertHabitLog(_ context.Context, in models.HabitLogInput) (models.HabitLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.habits[in.HabitID]; !ok {
		return models.HabitLog{}, notFound("habit", in.HabitID)
	}

	completed := in.Completed != nil && *in.Completed
	var log models.HabitLog
	found := false
	for _, l := range m.habitLogs {
		if l.HabitID == in.HabitID && l.Date == in.Date {
			log, found = l, true
			break
		}
	}
	if !found {
		log = models.HabitLog{ID: m.id(), HabitID: in.HabitID, Date: in.Date}
	}
	log.Completed = completed
	m.habitLogs[log.ID] = log

	m.recomputeStreaks(in.HabitID)
	return log, nil
}

func (m *Memory) DeleteHabitLog(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.habitLogs[id]
	if !ok {
		return notFound("habit log", id)
	}
	delete(m.habitLogs, id)
	m.recomputeStreaks(l.HabitID)
	return nil
}

// recomputeStreaks must be called with the write lock held.
func (m *Memory) recomputeStreaks(habitID int64) {
	h, ok := m.habits[habitID]
	if !ok {
		return
	}
	s := streaksFor(m.logsOf(habitID), m.now())
	h.CurrentStreak = s.Current
	h.LongestStreak = s.Longest
	m.habits[habitID] = h
}

// Transactions

func (m *Memory) Transactions(_ context.Context) ([]models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := values(m.transactions)
	newestFirst(out, func(t models.Transaction) (time.Time, int64) { return t.Date, t.ID })
	return out, nil
}

func (m *Memory) Transaction(_ context.Context, id int64) (models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.transactions[id]
	if !ok {
		return models.Transaction{}, notFound("transaction", id)
	}
	return t, nil
}

func (m *Memory) CreateTransaction(_ context.Context, in models.TransactionInput) (models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := models.NewTransaction(in, m.now())
	t.ID = m.id()
	m.transactions[t.ID] = t
	return t, nil
}

func (m *Memory) UpdateTransaction(_ context.Context, id int64, p models.TransactionPatch) (models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.transactions[id]
	if !ok {
		return models.Transaction{}, notFound("transaction", id)
	}
	p.Apply(&t)
	m.transactions[id] = t
	return t, nil
}

func (m *Memory) DeleteTransaction(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transactions[id]; !ok {
		return notFound("transaction", id)
	}
	delete(m.transactions, id)
	return nil
}

// Checklists

func (m *Memory) Checklists(_ context.Context) ([]models.ChecklistWithItems, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	lists := values(m.checklists)
	newestFirst(lists, func(c models.Checklist) (time.Time, int64) { return c.CreatedAt, c.ID })
	out := make([]models.ChecklistWithItems, len(lists))
	for i, c := range lists {
		out[i] = models.ChecklistWithItems{Checklist: c, Items: m.itemsOf(c.ID)}
	}
	return out, nil
}

func (m *Memory) Checklist(_ context.Context, id int64) (models.ChecklistWithItems, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.checklists[id]
	if !ok {
		return models.ChecklistWithItems{}, notFound("checklist", id)
	}
	return models.ChecklistWithItems{Checklist: c, Items: m.itemsOf(id)}, nil
}

func (m *Memory) CreateChecklist(_ context.Context, in models.ChecklistInput) (models.Checklist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := models.NewChecklist(in, m.now())
	c.ID = m.id()
	m.checklists[c.ID] = c
	return c, nil
}

func (m *Memory) UpdateChecklist(_ context.Context, id int64, p models.ChecklistPatch) (models.Checklist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.checklists[id]
	if !ok {
		return models.Checklist{}, notFound("checklist", id)
	}
	p.Apply(&c)
	m.checklists[id] = c
	return c, nil
}

func (m *Memory) DeleteChecklist(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.checklists[id]; !ok {
		return notFound("checklist", id)
	}
	for itemID, it := range m.checklistItems {
		if it.ChecklistID == id {
			delete(m.checklistItems, itemID)
		}
	}
	delete(m.checklists, id)
	return nil
}

// Checklist items

func (m *Memory) ChecklistItems(_ context.Context, checklistID int64) ([]models.ChecklistItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.itemsOf(checklistID), nil
}

// itemsOf returns the checklist's items by ascending order. Callers hold the lock.
func (m *Memory) itemsOf(checklistID int64) []models.ChecklistItem {
	out := []models.ChecklistItem{}
	for _, it := range m.checklistItems {
		if it.ChecklistID == checklistID {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (m *Memory) ChecklistItem(_ context.Context, id int64) (models.ChecklistItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	it, ok := m.checklistItems[id]
	if !ok {
		return models.ChecklistItem{}, notFound("checklist item", id)
	}
	return it, nil
}

func (m *Memory) CreateChecklistItem(_ context.Context, in models.ChecklistItemInput) (models.ChecklistItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.checklists[in.ChecklistID]; !ok {
		return models.ChecklistItem{}, notFound("checklist", in.ChecklistID)
	}
	it := models.NewChecklistItem(in)
	it.ID = m.id()
	m.checklistItems[it.ID] = it
	return it, nil
}

func (m *Memory) UpdateChecklistItem(_ context.Context, id int64, p models.ChecklistItemPatch) (models.ChecklistItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.checklistItems[id]
	if !ok {
		return models.ChecklistItem{}, notFound("checklist item", id)
	}
	p.Apply(&it)
	m.checklistItems[id] = it
	return it, nil
}

func (m *Memory) DeleteChecklistItem(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.checklistItems[id]; !ok {
		return notFound("checklist item", id)
	}
	delete(m.checklistItems, id)
	return nil
}

// Goals

func (m *Memory) Goals(_ context.Context) ([]models.Goal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := values(m.goals)
	newestFirst(out, func(g models.Goal) (time.Time, int64) { return g.CreatedAt, g.ID })
	return out, nil
}

func (m *Memory) Goal(_ context.Context, id int64) (models.Goal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.goals[id]
	if !ok {
		return models.Goal{}, notFound("goal", id)
	}
	return g, nil
}

func (m *Memory) CreateGoal(_ context.Context, in models.GoalInput) (models.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g := models.NewGoal(in, m.now())
	g.ID = m.id()
	m.goals[g.ID] = g
	return g, nil
}

func (m *Memory) UpdateGoal(_ context.Context, id int64, p models.GoalPatch) (models.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.goals[id]
	if !ok {
		return models.Goal{}, notFound("goal", id)
	}
	p.Apply(&g)
	m.goals[id] = g
	return g, nil
}

func (m *Memory) DeleteGoal(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.goals[id]; !ok {
		return notFound("goal", id)
	}
	delete(m.goals, id)
	return nil
}
