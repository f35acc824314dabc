package tracker

import (
	"context"

	"github.com/starford/lifetrack/internal/models"
)

func (s *Service) Transactions(ctx context.Context) ([]models.Transaction, error) {
	return s.store.Transactions(ctx)
}

func (s *Service) Transaction(ctx context.Context, id int64) (models.Transaction, error) {
	return s.store.Transaction(ctx, id)
}

func (s *Service) CreateTransaction(ctx context.Context, in models.TransactionInput) (models.Transaction, error) {
	if err := validateTransactionInput(&in); err != nil {
		return models.Transaction{}, err
	}
	t, err := s.store.CreateTransaction(ctx, in)
	if err != nil {
		return models.Transaction{}, err
	}
	s.publish(KindTransaction, ActionCreated, t.ID)
	return t, nil
}

func (s *Service) UpdateTransaction(ctx context.Context, id int64, p models.TransactionPatch) (models.Transaction, error) {
	if err := validateTransactionPatch(&p); err != nil {
		return models.Transaction{}, err
	}
	t, err := s.store.UpdateTransaction(ctx, id, p)
	if err != nil {
		return models.Transaction{}, err
	}
	s.publish(KindTransaction, ActionUpdated, id)
	return t, nil
}

func (s *Service) DeleteTransaction(ctx context.Context, id int64) error {
	if err := s.store.DeleteTransaction(ctx, id); err != nil {
		return err
	}
	s.publish(KindTransaction, ActionDeleted, id)
	return nil
}
