package tracker

import (
	"context"

	"github.com/starford/lifetrack/internal/models"
)

func (s *Service) Notes(ctx context.Context) ([]models.Note, error) {
	return s.store.Notes(ctx)
}

func (s *Service) Note(ctx context.Context, id int64) (models.Note, error) {
	return s.store.Note(ctx, id)
}

// SearchNotes returns the notes whose title or content contains q, ignoring case.
func (s *Service) SearchNotes(ctx context.Context, q string) ([]models.Note, error) {
	if err := requireQuery(q); err != nil {
		return nil, err
	}
	return s.store.SearchNotes(ctx, q)
}

func (s *Service) CreateNote(ctx context.Context, in models.NoteInput) (models.Note, error) {
	if err := validateNoteInput(&in); err != nil {
		return models.Note{}, err
	}
	n, err := s.store.CreateNote(ctx, in)
	if err != nil {
		return models.Note{}, err
	}
	s.publish(KindNote, ActionCreated, n.ID)
	return n, nil
}

func (s *Service) UpdateNote(ctx context.Context, id int64, p models.NotePatch) (models.Note, error) {
	if err := validateNotePatch(&p); err != nil {
		return models.Note{}, err
	}
	n, err := s.store.UpdateNote(ctx, id, p)
	if err != nil {
		return models.Note{}, err
	}
	s.publish(KindNote, ActionUpdated, id)
	return n, nil
}

func (s *Service) DeleteNote(ctx context.Context, id int64) error {
	if err := s.store.DeleteNote(ctx, id); err != nil {
		return err
	}
	s.publish(KindNote, ActionDeleted, id)
	return nil
}
