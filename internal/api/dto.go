package api

import (
	"github.com/starford/lifetrack/internal/models"
	"github.com/starford/lifetrack/internal/stats"
)

// GoalResponse is a goal with its completion percentage (0-100).
type GoalResponse struct {
	models.Goal
	Progress int `json:"progress" example:"42"`
}

func newGoalResponse(g models.Goal) GoalResponse {
	return GoalResponse{Goal: g, Progress: stats.GoalProgress(g)}
}
