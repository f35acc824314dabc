// Package tracker is the application service behind the HTTP and MCP
// surfaces. It validates input, forwards it to the entity store, derives
// dashboard figures and announces every successful change.
package tracker

import (
	"context"
	"time"

	"github.com/starford/lifetrack/internal/models"
	"github.com/starford/lifetrack/internal/stats"
	"github.com/starford/lifetrack/internal/storage"
)

// Entity kinds used in change events.
const (
	KindNote          = "note"
	KindHabit         = "habit"
	KindHabitLog      = "habit-log"
	KindTransaction   = "transaction"
	KindChecklist     = "checklist"
	KindChecklistItem = "checklist-item"
	KindGoal          = "goal"
)

// Change actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Publisher receives a notification after every successful mutation.
type Publisher interface {
	PublishChange(kind, action string, id int64)
}

// Service coordinates validation, storage and change notification.
type Service struct {
	store storage.Store
	now   func() time.Time
	loc   *time.Location
	pub   Publisher
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source. It should be the same clock the store uses.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the time zone that decides the current calendar day and month.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithPublisher sets the change listener.
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.pub = p }
}

// New creates a Service over store.
func New(store storage.Store, opts ...Option) *Service {
	s := &Service{store: store, now: time.Now, loc: time.UTC}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the current time in the service's location.
func (s *Service) Now() time.Time {
	return s.now().In(s.loc)
}

// Today returns the current calendar day in the service's location.
func (s *Service) Today() string {
	return models.Day(s.Now())
}

func (s *Service) publish(kind, action string, id int64) {
	if s.pub != nil {
		s.pub.PublishChange(kind, action, id)
	}
}

// Dashboard computes the dashboard rollup from the current store contents.
func (s *Service) Dashboard(ctx context.Context) (stats.DashboardStats, error) {
	now := s.Now()
	notes, err := s.store.Notes(ctx)
	if err != nil {
		return stats.DashboardStats{}, err
	}
	habits, err := s.store.Habits(ctx)
	if err != nil {
		return stats.DashboardStats{}, err
	}
	todayLogs, err := s.store.HabitLogsForDate(ctx, models.Day(now))
	if err != nil {
		return stats.DashboardStats{}, err
	}
	txs, err := s.store.Transactions(ctx)
	if err != nil {
		return stats.DashboardStats{}, err
	}
	goals, err := s.store.Goals(ctx)
	if err != nil {
		return stats.DashboardStats{}, err
	}
	return stats.Dashboard(stats.DashboardInput{
		Notes:        notes,
		Habits:       habits,
		TodayLogs:    todayLogs,
		Transactions: txs,
		Goals:        goals,
	}, now), nil
}

// Notifications derives reminders from goals and checklists.
func (s *Service) Notifications(ctx context.Context) ([]stats.Notification, error) {
	goals, err := s.store.Goals(ctx)
	if err != nil {
		return nil, err
	}
	checklists, err := s.store.Checklists(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Notifications(goals, checklists, s.Now()), nil
}
