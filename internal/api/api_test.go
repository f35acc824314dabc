package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/starford/lifetrack/internal/storage"
	"github.com/starford/lifetrack/internal/testutil"
	"github.com/starford/lifetrack/internal/tracker"
)

var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

// testEnv builds a router over an in-memory store with a fixed clock.
// A non-empty authToken switches on token mode.
func testEnv(t *testing.T, authToken string) (*tracker.Service, http.Handler) {
	t.Helper()
	clock := testutil.NewClock(testNow)
	store := storage.NewMemory(storage.WithClock(clock.Now))
	return newEnv(t, store, clock, authToken != "", authToken, nil)
}

func newEnv(t *testing.T, store storage.Store, clock *testutil.Clock, authEnabled bool, token string, sseHandler http.Handler) (*tracker.Service, http.Handler) {
	t.Helper()
	t.Cleanup(func() { store.Close() })
	svc := tracker.New(store, tracker.WithClock(clock.Now))
	return svc, NewRouter(svc, authEnabled, token, sseHandler)
}

func do(t *testing.T, router http.Handler, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func TestCreateAndGetNote(t *testing.T) {
	_, router := testEnv(t, "")

	w := do(t, router, http.MethodPost, "/notes", map[string]string{"title": "Hello", "content": "World"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	created := decode[map[string]any](t, w)
	for _, key := range []string{"id", "title", "content", "createdAt", "updatedAt"} {
		if _, ok := created[key]; !ok {
			t.Errorf("response lacks %q: %v", key, created)
		}
	}

	w = do(t, router, http.MethodGet, "/notes/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	got := decode[map[string]any](t, w)
	if got["title"] != "Hello" || got["content"] != "World" {
		t.Errorf("got %v", got)
	}
}

func TestUpdateNoteKeepsOtherFields(t *testing.T) {
	_, router := testEnv(t, "")
	do(t, router, http.MethodPost, "/notes", map[string]string{"title": "a", "content": "body"})

	w := do(t, router, http.MethodPatch, "/notes/1", map[string]string{"title": "b"})
	if w.Code != http.StatusOK {
		t.Fatalf("patch status = %d, body = %s", w.Code, w.Body.String())
	}
	got := decode[map[string]any](t, w)
	if got["title"] != "b" || got["content"] != "body" {
		t.Errorf("got %v", got)
	}
}

func TestDeleteNote(t *testing.T) {
	_, router := testEnv(t, "")
	do(t, router, http.MethodPost, "/notes", map[string]string{"title": "bye"})

	w := do(t, router, http.MethodDelete, "/notes/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	if msg := decode[MessageResponse](t, w).Message; msg != "Note deleted successfully" {
		t.Errorf("message = %q", msg)
	}

	w = do(t, router, http.MethodDelete, "/notes/1", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete = %d, want 404", w.Code)
	}
	if msg := decode[MessageResponse](t, w).Message; msg != "Note not found" {
		t.Errorf("message = %q", msg)
	}
}

func TestNotFoundLeavesOthersAlone(t *testing.T) {
	_, router := testEnv(t, "")
	do(t, router, http.MethodPost, "/notes", map[string]string{"title": "keep", "content": "me"})

	tests := []struct {
		method, path string
		body         any
	}{
		{http.MethodGet, "/notes/99", nil},
		{http.MethodPatch, "/notes/99", map[string]string{"title": "x"}},
		{http.MethodDelete, "/notes/99", nil},
		{http.MethodGet, "/habits/99", nil},
		{http.MethodPatch, "/goals/99", map[string]string{"title": "x"}},
		{http.MethodDelete, "/checklist-items/99", nil},
		{http.MethodDelete, "/habit-logs/99", nil},
		{http.MethodGet, "/checklists/99/items", nil},
	}
	for _, tt := range tests {
		w := do(t, router, tt.method, tt.path, tt.body)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s %s = %d, want 404", tt.method, tt.path, w.Code)
		}
		if !strings.Contains(w.Body.String(), `"message"`) {
			t.Errorf("%s %s body = %s, want a message", tt.method, tt.path, w.Body.String())
		}
	}

	notes := decode[[]map[string]any](t, do(t, router, http.MethodGet, "/notes", nil))
	if len(notes) != 1 || notes[0]["content"] != "me" {
		t.Errorf("notes = %v", notes)
	}
}

func TestBadRequests(t *testing.T) {
	_, router := testEnv(t, "")

	tests := []struct {
		name         string
		method, path string
		body         any
	}{
		{"non-numeric id", http.MethodGet, "/notes/abc", nil},
		{"zero id", http.MethodDelete, "/goals/0", nil},
		{"malformed json", http.MethodPost, "/notes", `{"title":`},
		{"missing title", http.MethodPost, "/notes", map[string]string{"content": "x"}},
		{"bad transaction type", http.MethodPost, "/transactions", map[string]any{
			"title": "x", "amount": "1.00", "type": "refund", "category": "c",
		}},
		{"bad amount", http.MethodPost, "/transactions", `{"title":"x","amount":"lots","type":"income","category":"c"}`},
		{"bad log date", http.MethodPost, "/habit-logs", map[string]any{"habitId": 1, "date": "2024-13-01", "completed": true}},
		{"bad date route", http.MethodGet, "/habit-logs/date/today", nil},
		{"search without q", http.MethodGet, "/notes/search", nil},
		{"bad goal status", http.MethodPost, "/goals", map[string]any{"title": "x", "status": "done"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, tt.method, tt.path, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body = %s", w.Code, w.Body.String())
			}
			if decode[MessageResponse](t, w).Message == "" {
				t.Error("empty message")
			}
		})
	}
}

func TestSearchNotes(t *testing.T) {
	_, router := testEnv(t, "")
	do(t, router, http.MethodPost, "/notes", map[string]string{"title": "Go tips", "content": "channels"})
	do(t, router, http.MethodPost, "/notes", map[string]string{"title": "Recipes", "content": "GO to the market"})
	do(t, router, http.MethodPost, "/notes", map[string]string{"title": "Misc", "content": "nothing"})

	w := do(t, router, http.MethodGet, "/notes/search?q=go", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("search status = %d", w.Code)
	}
	if got := decode[[]map[string]any](t, w); len(got) != 2 {
		t.Errorf("got %d results, want 2", len(got))
	}
}

func TestHabitLogFlow(t *testing.T) {
	_, router := testEnv(t, "")
	w := do(t, router, http.MethodPost, "/habits", map[string]string{"name": "Meditate"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create habit = %d", w.Code)
	}
	habitID := int64(decode[map[string]any](t, w)["id"].(float64))

	for _, d := range []string{"2024-03-15", "2024-03-14", "2024-03-13"} {
		w := do(t, router, http.MethodPost, "/habit-logs", map[string]any{"habitId": habitID, "date": d, "completed": true})
		if w.Code != http.StatusCreated {
			t.Fatalf("log %s = %d, body = %s", d, w.Code, w.Body.String())
		}
	}
	// Same day again is an update, not a second log.
	do(t, router, http.MethodPost, "/habit-logs", map[string]any{"habitId": habitID, "date": "2024-03-15", "completed": true})

	habit := decode[map[string]any](t, do(t, router, http.MethodGet, "/habits/1", nil))
	if habit["currentStreak"] != float64(3) || habit["longestStreak"] != float64(3) {
		t.Errorf("streaks = %v/%v, want 3/3", habit["currentStreak"], habit["longestStreak"])
	}

	logs := decode[[]map[string]any](t, do(t, router, http.MethodGet, "/habits/1/logs", nil))
	if len(logs) != 3 {
		t.Fatalf("got %d logs, want 3", len(logs))
	}
	if logs[0]["date"] != "2024-03-15" {
		t.Errorf("first log date = %v, want newest", logs[0]["date"])
	}

	today := decode[[]map[string]any](t, do(t, router, http.MethodGet, "/habit-logs/date/2024-03-14", nil))
	if len(today) != 1 {
		t.Errorf("logs for date = %d, want 1", len(today))
	}

	if w := do(t, router, http.MethodDelete, "/habits/1", nil); w.Code != http.StatusOK {
		t.Fatalf("delete habit = %d", w.Code)
	}
	logs = decode[[]map[string]any](t, do(t, router, http.MethodGet, "/habits/1/logs", nil))
	if len(logs) != 0 {
		t.Errorf("logs after cascade = %d, want 0", len(logs))
	}
}

func TestLogHabitUnknownHabit(t *testing.T) {
	_, router := testEnv(t, "")
	w := do(t, router, http.MethodPost, "/habit-logs", map[string]any{"habitId": 5, "date": "2024-03-15", "completed": true})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestChecklistWithItems(t *testing.T) {
	_, router := testEnv(t, "")
	w := do(t, router, http.MethodPost, "/checklists", map[string]string{"title": "Packing"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create checklist = %d", w.Code)
	}
	for i, title := range []string{"socks", "passport"} {
		w := do(t, router, http.MethodPost, "/checklist-items", map[string]any{
			"checklistId": 1, "title": title, "order": 1 - i,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("create item = %d, body = %s", w.Code, w.Body.String())
		}
	}
	do(t, router, http.MethodPatch, "/checklist-items/3", map[string]any{"completed": true})

	type item struct {
		Title     string `json:"title"`
		Completed bool   `json:"completed"`
	}
	list := decode[struct {
		Title string `json:"title"`
		Items []item `json:"items"`
	}](t, do(t, router, http.MethodGet, "/checklists/1", nil))
	if len(list.Items) != 2 || list.Items[0].Title != "passport" || !list.Items[0].Completed {
		t.Errorf("items = %+v, want passport (done) first", list.Items)
	}

	items := decode[[]item](t, do(t, router, http.MethodGet, "/checklists/1/items", nil))
	if len(items) != 2 {
		t.Errorf("items endpoint returned %d", len(items))
	}

	do(t, router, http.MethodDelete, "/checklists/1", nil)
	if w := do(t, router, http.MethodGet, "/checklist-items/3", nil); w.Code != http.StatusNotFound {
		t.Errorf("item after checklist delete = %d, want 404", w.Code)
	}
}

func TestGoalProgress(t *testing.T) {
	_, router := testEnv(t, "")
	w := do(t, router, http.MethodPost, "/goals", map[string]any{
		"title": "Read books", "targetValue": "12", "currentValue": "3", "unit": "books",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create goal = %d, body = %s", w.Code, w.Body.String())
	}
	g := decode[map[string]any](t, w)
	if g["progress"] != float64(25) || g["status"] != "not_started" {
		t.Errorf("goal = %v", g)
	}
	if media, ok := g["motivationMedia"].([]any); !ok || len(media) != 0 {
		t.Errorf("motivationMedia = %v, want []", g["motivationMedia"])
	}

	w = do(t, router, http.MethodPatch, "/goals/1", map[string]any{"currentValue": "30", "status": "completed"})
	if got := decode[map[string]any](t, w); got["progress"] != float64(100) || got["unit"] != "books" {
		t.Errorf("patched goal = %v", got)
	}
}

func TestDashboardStats(t *testing.T) {
	clock := testutil.NewClock(testNow)
	store := testutil.TestSQLite(t, storage.WithClock(clock.Now))
	_, router := newEnv(t, store, clock, false, "", nil)

	do(t, router, http.MethodPost, "/notes", map[string]string{"title": "n"})
	do(t, router, http.MethodPost, "/habits", map[string]string{"name": "h1"})
	do(t, router, http.MethodPost, "/habits", map[string]string{"name": "h2"})
	do(t, router, http.MethodPost, "/habit-logs", map[string]any{"habitId": 2, "date": "2024-03-15", "completed": true})
	do(t, router, http.MethodPost, "/transactions", map[string]any{
		"title": "salary", "amount": "1000.00", "type": "income", "category": "work",
	})
	do(t, router, http.MethodPost, "/transactions", map[string]any{
		"title": "groceries", "amount": "250.50", "type": "expense", "category": "food", "date": "2024-03-02",
	})
	do(t, router, http.MethodPost, "/transactions", map[string]any{
		"title": "old", "amount": "99.99", "type": "income", "category": "misc", "date": "2024-02-28T12:00:00Z",
	})
	do(t, router, http.MethodPost, "/goals", map[string]any{"title": "g", "status": "completed"})

	w := do(t, router, http.MethodGet, "/dashboard/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats = %d, body = %s", w.Code, w.Body.String())
	}
	got := decode[struct {
		TotalNotes           int             `json:"totalNotes"`
		HabitsCompletedToday string          `json:"habitsCompletedToday"`
		MonthlyBalance       decimal.Decimal `json:"monthlyBalance"`
		GoalsProgress        string          `json:"goalsProgress"`
	}](t, w)
	if got.TotalNotes != 1 || got.HabitsCompletedToday != "1/2" || got.GoalsProgress != "1/1" {
		t.Errorf("stats = %+v", got)
	}
	if !got.MonthlyBalance.Equal(decimal.RequireFromString("749.50")) {
		t.Errorf("monthlyBalance = %s, want 749.50", got.MonthlyBalance)
	}

	txs := decode[[]map[string]any](t, do(t, router, http.MethodGet, "/transactions", nil))
	if len(txs) != 3 || txs[0]["title"] != "salary" || txs[2]["title"] != "old" {
		t.Errorf("transactions not newest first: %v", txs)
	}
}

func TestNotificationsEndpoint(t *testing.T) {
	_, router := testEnv(t, "")
	do(t, router, http.MethodPost, "/goals", map[string]any{"title": "late", "targetDate": "2024-03-01"})

	w := do(t, router, http.MethodGet, "/notifications", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	got := decode[[]map[string]any](t, w)
	if len(got) != 1 || got[0]["priority"] != "high" {
		t.Errorf("notifications = %v", got)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	_, router := testEnv(t, "secret123")

	w := do(t, router, http.MethodPost, "/notes", map[string]string{"title": "auth"}, "Authorization", "Bearer secret123")
	if w.Code != http.StatusCreated {
		t.Errorf("authed create = %d, want 201", w.Code)
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	_, router := testEnv(t, "secret123")

	w := do(t, router, http.MethodGet, "/notes", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthed = %d, want 401", w.Code)
	}
}

func TestAuthMiddleware_WrongToken(t *testing.T) {
	_, router := testEnv(t, "secret123")

	w := do(t, router, http.MethodGet, "/notes", nil, "Authorization", "Bearer wrong")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong token = %d, want 401", w.Code)
	}
}

func TestAuthMiddleware_Disabled(t *testing.T) {
	_, router := testEnv(t, "")

	w := do(t, router, http.MethodGet, "/notes", nil)
	if w.Code != http.StatusOK {
		t.Errorf("no auth = %d, want 200", w.Code)
	}
}

// SSE endpoint auth tests.

func TestSSEEvents_AuthProtected(t *testing.T) {
	router := testEnvWithSSE(t, true, "secret")

	w := do(t, router, http.MethodGet, "/events", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("SSE no auth = %d, want 401", w.Code)
	}
}

func TestSSEEvents_ValidToken(t *testing.T) {
	router := testEnvWithSSE(t, true, "tok")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	req.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code == http.StatusUnauthorized {
		t.Error("SSE with valid token should not 401")
	}
}

// testEnvWithSSE creates a router with a dummy SSE handler to test auth on /events.
func testEnvWithSSE(t *testing.T, authEnabled bool, token string) http.Handler {
	t.Helper()

	// Minimal SSE handler stub: writes headers and blocks until context done.
	sseHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		<-r.Context().Done()
	})

	clock := testutil.NewClock(testNow)
	_, router := newEnv(t, storage.NewMemory(storage.WithClock(clock.Now)), clock, authEnabled, token, sseHandler)
	return router
}
