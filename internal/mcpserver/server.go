// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes lifetrack tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/shopspring/decimal"

	"github.com/starford/lifetrack/internal/apperr"
	"github.com/starford/lifetrack/internal/models"
	"github.com/starford/lifetrack/internal/stats"
	"github.com/starford/lifetrack/internal/tracker"
)

const dashboardURI = "lifetrack://dashboard"

// Server wraps the MCP server with lifetrack tools.
type Server struct {
	mcp *server.MCPServer
	svc *tracker.Service
}

// New creates a new MCP server with all lifetrack tools registered.
func New(svc *tracker.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"lifetrack",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("search_notes",
		mcp.WithDescription("Case-insensitive substring search over note titles and contents."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Text to look for")),
	), s.searchNotes)

	s.mcp.AddTool(mcp.NewTool("create_note",
		mcp.WithDescription("Create a new note."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Note title")),
		mcp.WithString("content", mcp.Description("Note body")),
	), s.createNote)

	s.mcp.AddTool(mcp.NewTool("list_habits",
		mcp.WithDescription("List habits with their current and longest streaks."),
	), s.listHabits)

	s.mcp.AddTool(mcp.NewTool("log_habit",
		mcp.WithDescription("Mark a habit as done (or not done) for a day. "+
			"Replaces any earlier entry for that day and refreshes the streaks."),
		mcp.WithNumber("habit_id", mcp.Required(), mcp.Description("Habit ID")),
		mcp.WithString("date", mcp.Description("Day as YYYY-MM-DD; defaults to today")),
		mcp.WithBoolean("completed", mcp.Description("Whether the habit was done; defaults to true")),
	), s.logHabit)

	s.mcp.AddTool(mcp.NewTool("dashboard_stats",
		mcp.WithDescription("Notes count, habits completed today, this month's balance and completed goals."),
	), s.dashboardStats)

	s.mcp.AddTool(mcp.NewTool("list_goals",
		mcp.WithDescription("List goals with their completion percentage."),
	), s.listGoals)

	s.mcp.AddTool(mcp.NewTool("add_transaction",
		mcp.WithDescription("Record an income or an expense."),
		mcp.WithString("title", mcp.Required(), mcp.Description("What the money was for")),
		mcp.WithString("amount", mcp.Required(), mcp.Description("Non-negative decimal amount, e.g. 12.50")),
		mcp.WithString("type", mcp.Required(), mcp.Enum(string(models.TransactionIncome), string(models.TransactionExpense))),
		mcp.WithString("category", mcp.Required(), mcp.Description("Free-form category")),
		mcp.WithString("date", mcp.Description("RFC 3339 timestamp or YYYY-MM-DD; defaults to now")),
	), s.addTransaction)

	s.mcp.AddTool(mcp.NewTool("add_goal_media",
		mcp.WithDescription("Attach a motivational image or video to a goal. "+
			"Accepts an http(s) URL or a base64 data URI (max 10 MB)."),
		mcp.WithNumber("goal_id", mcp.Required(), mcp.Description("Goal ID")),
		mcp.WithString("url", mcp.Required(), mcp.Description("http(s) URL or data: URI")),
		mcp.WithBoolean("embed", mcp.Description("Download an http(s) URL and store it inline")),
	), s.addGoalMedia)

	s.mcp.AddTool(mcp.NewTool("get_conventions",
		mcp.WithDescription("Returns the data conventions (dates, amounts, statuses) used by the tools."),
	), s.getConventions)

	s.mcp.AddResource(
		mcp.NewResource(dashboardURI, "Dashboard",
			mcp.WithResourceDescription("Current dashboard statistics as JSON."),
			mcp.WithMIMEType("application/json"),
		),
		s.readDashboardResource,
	)

	s.mcp.AddResource(
		mcp.NewResource(conventionsURI, "Data Conventions",
			mcp.WithResourceDescription("Formats and enums accepted by lifetrack tools."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readConventionsResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(out)), nil
}

// toolError turns expected failures into tool-level errors the model can
// read; anything else becomes a protocol error.
func toolError(err error) (*mcp.CallToolResult, error) {
	if errors.Is(err, apperr.ErrInvalid) || errors.Is(err, apperr.ErrNotFound) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return nil, err
}

func (s *Server) searchNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	notes, err := s.svc.SearchNotes(ctx, query)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(notes)
}

func (s *Server) createNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	n, err := s.svc.CreateNote(ctx, models.NoteInput{
		Title:   title,
		Content: req.GetString("content", ""),
	})
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("created note %d", n.ID)), nil
}

func (s *Server) listHabits(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	habits, err := s.svc.Habits(ctx)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(habits)
}

func (s *Server) logHabit(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireFloat("habit_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	completed := req.GetBool("completed", true)
	l, err := s.svc.LogHabit(ctx, models.HabitLogInput{
		HabitID:   int64(id),
		Date:      req.GetString("date", s.svc.Today()),
		Completed: &completed,
	})
	if err != nil {
		return toolError(err)
	}
	h, err := s.svc.Habit(ctx, l.HabitID)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(map[string]any{"log": l, "habit": h})
}

func (s *Server) dashboardStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := s.svc.Dashboard(ctx)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(st)
}

// goalSummary reports media by count; inline entries can be megabytes of base64.
type goalSummary struct {
	models.Goal
	MediaCount int `json:"motivationMedia"`
	Progress   int `json:"progress"`
}

func (s *Server) listGoals(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	goals, err := s.svc.Goals(ctx)
	if err != nil {
		return toolError(err)
	}
	out := make([]goalSummary, len(goals))
	for i, g := range goals {
		out[i] = goalSummary{Goal: g, MediaCount: len(g.MotivationMedia), Progress: stats.GoalProgress(g)}
	}
	return jsonResult(out)
}

func (s *Server) addTransaction(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rawAmount, err := req.RequireString("amount")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid amount %q", rawAmount)), nil
	}
	typ, err := req.RequireString("type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	category, err := req.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	in := models.TransactionInput{
		Title:    title,
		Amount:   &amount,
		Type:     models.TransactionType(typ),
		Category: category,
	}
	if raw := req.GetString("date", ""); raw != "" {
		d, err := models.ParseTimestamp(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		in.Date = models.NewTimestamp(d)
	}

	t, err := s.svc.CreateTransaction(ctx, in)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(t)
}

func (s *Server) getConventions(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(Conventions), nil
}

func (s *Server) readDashboardResource(ctx context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	st, err := s.svc.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(st)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      dashboardURI,
			MIMEType: "application/json",
			Text:     string(out),
		},
	}, nil
}

func (s *Server) readConventionsResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      conventionsURI,
			MIMEType: "text/markdown",
			Text:     Conventions,
		},
	}, nil
}
