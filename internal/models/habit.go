package models

import "time"

// Habit is a recurring daily activity. The streak fields are derived from its logs.
type Habit struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	CurrentStreak int       `json:"currentStreak"`
	LongestStreak int       `json:"longestStreak"`
	CreatedAt     time.Time `json:"createdAt"`
}

// HabitInput is the payload for creating a habit.
type HabitInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// HabitPatch carries the fields of a partial habit update.
type HabitPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// NewHabit builds a habit with zero streaks.
func NewHabit(in HabitInput, now time.Time) Habit {
	return Habit{
		Name:        in.Name,
		Description: emptyToNil(in.Description),
		CreatedAt:   now,
	}
}

// Apply merges the patch into h.
func (p HabitPatch) Apply(h *Habit) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Description != nil {
		h.Description = emptyToNil(p.Description)
	}
}

// HabitLog records whether a habit was completed on one calendar day.
// There is at most one log per (HabitID, Date).
type HabitLog struct {
	ID        int64  `json:"id"`
	HabitID   int64  `json:"habitId"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// HabitLogInput is the payload for recording a habit log.
type HabitLogInput struct {
	HabitID   int64  `json:"habitId"`
	Date      string `json:"date"`
	Completed *bool  `json:"completed"`
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
