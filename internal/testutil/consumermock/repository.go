package consumermock

import (
	"context"
	"errors"

	domain "lendcore/internal/domain/consumer"
)

var errUnimplemented = errors.New("consumermock: method not implemented")

// Repo is a function-backed mock that satisfies consumer.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, c *domain.Consumer) error
	GetByConsumerIDFn func(ctx context.Context, consumerID string) (*domain.Consumer, error)
	SaveFn            func(ctx context.Context, c *domain.Consumer) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, c *domain.Consumer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByConsumerID(ctx context.Context, consumerID string) (*domain.Consumer, error) {
	if m.GetByConsumerIDFn != nil {
		return m.GetByConsumerIDFn(ctx, consumerID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, c *domain.Consumer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}
