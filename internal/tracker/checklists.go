package tracker

import (
	"context"

	"github.com/starford/lifetrack/internal/models"
)

func (s *Service) Checklists(ctx context.Context) ([]models.ChecklistWithItems, error) {
	return s.store.Checklists(ctx)
}

func (s *Service) Checklist(ctx context.Context, id int64) (models.ChecklistWithItems, error) {
	return s.store.Checklist(ctx, id)
}

func (s *Service) CreateChecklist(ctx context.Context, in models.ChecklistInput) (models.Checklist, error) {
	if err := validateChecklistInput(&in); err != nil {
		return models.Checklist{}, err
	}
	c, err := s.store.CreateChecklist(ctx, in)
	if err != nil {
		return models.Checklist{}, err
	}
	s.publish(KindChecklist, ActionCreated, c.ID)
	return c, nil
}

func (s *Service) UpdateChecklist(ctx context.Context, id int64, p models.ChecklistPatch) (models.Checklist, error) {
	if err := validateChecklistPatch(&p); err != nil {
		return models.Checklist{}, err
	}
	c, err := s.store.UpdateChecklist(ctx, id, p)
	if err != nil {
		return models.Checklist{}, err
	}
	s.publish(KindChecklist, ActionUpdated, id)
	return c, nil
}

func (s *Service) DeleteChecklist(ctx context.Context, id int64) error {
	if err := s.store.DeleteChecklist(ctx, id); err != nil {
		return err
	}
	s.publish(KindChecklist, ActionDeleted, id)
	return nil
}

// ChecklistItems lists the items of a checklist in display order.
func (s *Service) ChecklistItems(ctx context.Context, checklistID int64) ([]models.ChecklistItem, error) {
	if _, err := s.store.Checklist(ctx, checklistID); err != nil {
		return nil, err
	}
	return s.store.ChecklistItems(ctx, checklistID)
}

func (s *Service) ChecklistItem(ctx context.Context, id int64) (models.ChecklistItem, error) {
	return s.store.ChecklistItem(ctx, id)
}

func (s *Service) CreateChecklistItem(ctx context.Context, in models.ChecklistItemInput) (models.ChecklistItem, error) {
	if err := validateChecklistItemInput(&in); err != nil {
		return models.ChecklistItem{}, err
	}
	it, err := s.store.CreateChecklistItem(ctx, in)
	if err != nil {
		return models.ChecklistItem{}, err
	}
	s.publish(KindChecklistItem, ActionCreated, it.ID)
	return it, nil
}

func (s *Service) UpdateChecklistItem(ctx context.Context, id int64, p models.ChecklistItemPatch) (models.ChecklistItem, error) {
	if err := validateChecklistItemPatch(&p); err != nil {
		return models.ChecklistItem{}, err
	}
	it, err := s.store.UpdateChecklistItem(ctx, id, p)
	if err != nil {
		return models.ChecklistItem{}, err
	}
	s.publish(KindChecklistItem, ActionUpdated, id)
	return it, nil
}

func (s *Service) DeleteChecklistItem(ctx context.Context, id int64) error {
	if err := s.store.DeleteChecklistItem(ctx, id); err != nil {
		return err
	}
	s.publish(KindChecklistItem, ActionDeleted, id)
	return nil
}
