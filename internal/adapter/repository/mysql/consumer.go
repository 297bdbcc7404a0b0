package mysql

import (
	"context"

	consumerDomain "lendcore/internal/domain/consumer"

	"gorm.io/gorm"
)

type ConsumerRepository struct{ db *gorm.DB }

func NewConsumerRepository(db *gorm.DB) *ConsumerRepository { return &ConsumerRepository{db: db} }

func (r *ConsumerRepository) Create(ctx context.Context, c *consumerDomain.Consumer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ConsumerRepository) Save(ctx context.Context, c *consumerDomain.Consumer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ConsumerRepository) GetByConsumerID(ctx context.Context, consumerID string) (*consumerDomain.Consumer, error) {
	var out consumerDomain.Consumer
	res := r.db.WithContext(ctx).Where("consumer_id = ?", consumerID).First(&out)
	return &out, res.Error
}
