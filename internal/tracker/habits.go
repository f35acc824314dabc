package tracker

import (
	"context"

	"github.com/starford/lifetrack/internal/models"
)

func (s *Service) Habits(ctx context.Context) ([]models.Habit, error) {
	return s.store.Habits(ctx)
}

func (s *Service) Habit(ctx context.Context, id int64) (models.Habit, error) {
	return s.store.Habit(ctx, id)
}

func (s *Service) CreateHabit(ctx context.Context, in models.HabitInput) (models.Habit, error) {
	if err := validateHabitInput(&in); err != nil {
		return models.Habit{}, err
	}
	h, err := s.store.CreateHabit(ctx, in)
	if err != nil {
		return models.Habit{}, err
	}
	s.publish(KindHabit, ActionCreated, h.ID)
	return h, nil
}

func (s *Service) UpdateHabit(ctx context.Context, id int64, p models.HabitPatch) (models.Habit, error) {
	if err := validateHabitPatch(&p); err != nil {
		return models.Habit{}, err
	}
	h, err := s.store.UpdateHabit(ctx, id, p)
	if err != nil {
		return models.Habit{}, err
	}
	s.publish(KindHabit, ActionUpdated, id)
	return h, nil
}

// DeleteHabit removes the habit together with its logs.
func (s *Service) DeleteHabit(ctx context.Context, id int64) error {
	if err := s.store.DeleteHabit(ctx, id); err != nil {
		return err
	}
	s.publish(KindHabit, ActionDeleted, id)
	return nil
}

// HabitLogs lists a habit's logs, newest day first. An unknown habit has no logs.
func (s *Service) HabitLogs(ctx context.Context, habitID int64) ([]models.HabitLog, error) {
	return s.store.HabitLogs(ctx, habitID)
}

// HabitLogsForDate lists every habit's log for one YYYY-MM-DD day.
func (s *Service) HabitLogsForDate(ctx context.Context, date string) ([]models.HabitLog, error) {
	if err := validateDay(date); err != nil {
		return nil, err
	}
	return s.store.HabitLogsForDate(ctx, date)
}

// LogHabit records whether a habit was done on a day, replacing any earlier
// log for that day, and refreshes the habit's streaks.
func (s *Service) LogHabit(ctx context.Context, in models.HabitLogInput) (models.HabitLog, error) {
	if err := validateHabitLogInput(&in); err != nil {
		return models.HabitLog{}, err
	}
	l, err := s.store.UpsertHabitLog(ctx, in)
	if err != nil {
		return models.HabitLog{}, err
	}
	s.publish(KindHabitLog, ActionUpdated, l.ID)
	s.publish(KindHabit, ActionUpdated, l.HabitID)
	return l, nil
}

func (s *Service) DeleteHabitLog(ctx context.Context, id int64) error {
	if err := s.store.DeleteHabitLog(ctx, id); err != nil {
		return err
	}
	s.publish(KindHabitLog, ActionDeleted, id)
	return nil
}
