package tracker

import (
	"context"

	"github.com/starford/lifetrack/internal/models"
)

func (s *Service) Goals(ctx context.Context) ([]models.Goal, error) {
	return s.store.Goals(ctx)
}

func (s *Service) Goal(ctx context.Context, id int64) (models.Goal, error) {
	return s.store.Goal(ctx, id)
}

func (s *Service) CreateGoal(ctx context.Context, in models.GoalInput) (models.Goal, error) {
	if err := validateGoalInput(&in); err != nil {
		return models.Goal{}, err
	}
	g, err := s.store.CreateGoal(ctx, in)
	if err != nil {
		return models.Goal{}, err
	}
	s.publish(KindGoal, ActionCreated, g.ID)
	return g, nil
}

func (s *Service) UpdateGoal(ctx context.Context, id int64, p models.GoalPatch) (models.Goal, error) {
	if err := validateGoalPatch(&p); err != nil {
		return models.Goal{}, err
	}
	g, err := s.store.UpdateGoal(ctx, id, p)
	if err != nil {
		return models.Goal{}, err
	}
	s.publish(KindGoal, ActionUpdated, id)
	return g, nil
}

func (s *Service) DeleteGoal(ctx context.Context, id int64) error {
	if err := s.store.DeleteGoal(ctx, id); err != nil {
		return err
	}
	s.publish(KindGoal, ActionDeleted, id)
	return nil
}
