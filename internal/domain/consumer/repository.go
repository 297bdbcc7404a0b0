package consumer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Consumer) error
	GetByConsumerID(ctx context.Context, consumerID string) (*Consumer, error)
	Save(ctx context.Context, c *Consumer) error
}
