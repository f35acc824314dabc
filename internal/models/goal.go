package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalNotStarted GoalStatus = "not_started"
	GoalInProgress GoalStatus = "in_progress"
	GoalCompleted  GoalStatus = "completed"
	GoalOnHold     GoalStatus = "on_hold"
)

// GoalStatuses lists every valid status.
var GoalStatuses = []GoalStatus{GoalNotStarted, GoalInProgress, GoalCompleted, GoalOnHold}

// Goal is a measurable objective. Progress is CurrentValue / TargetValue.
type Goal struct {
	ID              int64            `json:"id"`
	Title           string           `json:"title"`
	Description     *string          `json:"description"`
	TargetValue     *decimal.Decimal `json:"targetValue"`
	CurrentValue    decimal.Decimal  `json:"currentValue"`
	Unit            *string          `json:"unit"`
	Status          GoalStatus       `json:"status"`
	StartDate       time.Time        `json:"startDate"`
	TargetDate      *time.Time       `json:"targetDate"`
	MotivationMedia []string         `json:"motivationMedia"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// GoalInput is the payload for creating a goal.
type GoalInput struct {
	Title           string           `json:"title"`
	Description     *string          `json:"description"`
	TargetValue     *decimal.Decimal `json:"targetValue"`
	CurrentValue    *decimal.Decimal `json:"currentValue"`
	Unit            *string          `json:"unit"`
	Status          GoalStatus       `json:"status"`
	StartDate       *Timestamp       `json:"startDate"`
	TargetDate      *Timestamp       `json:"targetDate"`
	MotivationMedia []string         `json:"motivationMedia"`
}

// GoalPatch carries the fields of a partial goal update.
type GoalPatch struct {
	Title           *string          `json:"title"`
	Description     *string          `json:"description"`
	TargetValue     *decimal.Decimal `json:"targetValue"`
	CurrentValue    *decimal.Decimal `json:"currentValue"`
	Unit            *string          `json:"unit"`
	Status          *GoalStatus      `json:"status"`
	StartDate       *Timestamp       `json:"startDate"`
	TargetDate      *Timestamp       `json:"targetDate"`
	MotivationMedia *[]string        `json:"motivationMedia"`
}

// NewGoal builds a goal, defaulting status to not_started, the current
// value to zero and the start date to now.
func NewGoal(in GoalInput, now time.Time) Goal {
	g := Goal{
		Title:           in.Title,
		Description:     emptyToNil(in.Description),
		TargetValue:     in.TargetValue,
		CurrentValue:    decimal.Zero,
		Unit:            emptyToNil(in.Unit),
		Status:          in.Status,
		StartDate:       now,
		TargetDate:      timeOrNil(in.TargetDate),
		MotivationMedia: in.MotivationMedia,
		CreatedAt:       now,
	}
	if in.CurrentValue != nil {
		g.CurrentValue = *in.CurrentValue
	}
	if g.Status == "" {
		g.Status = GoalNotStarted
	}
	if in.StartDate != nil {
		g.StartDate = in.StartDate.Time
	}
	if g.MotivationMedia == nil {
		g.MotivationMedia = []string{}
	}
	return g
}

// Apply merges the patch into g.
func (p GoalPatch) Apply(g *Goal) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Description != nil {
		g.Description = emptyToNil(p.Description)
	}
	if p.TargetValue != nil {
		v := *p.TargetValue
		g.TargetValue = &v
	}
	if p.CurrentValue != nil {
		g.CurrentValue = *p.CurrentValue
	}
	if p.Unit != nil {
		g.Unit = emptyToNil(p.Unit)
	}
	if p.Status != nil {
		g.Status = *p.Status
	}
	if p.StartDate != nil {
		g.StartDate = p.StartDate.Time
	}
	if p.TargetDate != nil {
		g.TargetDate = timeOrNil(p.TargetDate)
	}
	if p.MotivationMedia != nil {
		g.MotivationMedia = append([]string{}, (*p.MotivationMedia)...)
	}
}
