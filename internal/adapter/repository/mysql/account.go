package mysql

import (
	"context"

	accountDomain "lendcore/internal/domain/account"

	"gorm.io/gorm"
)

type PrincipalAccountRepository struct{ db *gorm.DB }

func NewPrincipalAccountRepository(db *gorm.DB) *PrincipalAccountRepository {
	return &PrincipalAccountRepository{db: db}
}

func (r *PrincipalAccountRepository) Create(ctx context.Context, a *accountDomain.PrincipalAccount) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *PrincipalAccountRepository) GetByConsumerID(ctx context.Context, consumerID string) (*accountDomain.PrincipalAccount, error) {
	var out accountDomain.PrincipalAccount
	res := r.db.WithContext(ctx).Where("consumer_id = ?", consumerID).First(&out)
	return &out, res.Error
}

type VendorAccountRepository struct{ db *gorm.DB }

func NewVendorAccountRepository(db *gorm.DB) *VendorAccountRepository {
	return &VendorAccountRepository{db: db}
}

func (r *VendorAccountRepository) Create(ctx context.Context, a *accountDomain.VendorLinkedAccount) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *VendorAccountRepository) Save(ctx context.Context, a *accountDomain.VendorLinkedAccount) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *VendorAccountRepository) GetByConsumerVendor(ctx context.Context, consumerID, vendorID string) (*accountDomain.VendorLinkedAccount, error) {
	var out accountDomain.VendorLinkedAccount
	res := r.db.WithContext(ctx).
		Where("consumer_id = ? AND vendor_id = ?", consumerID, vendorID).
		First(&out)
	return &out, res.Error
}

func (r *VendorAccountRepository) ListByConsumerID(ctx context.Context, consumerID string) ([]accountDomain.VendorLinkedAccount, error) {
	var out []accountDomain.VendorLinkedAccount
	res := r.db.WithContext(ctx).
		Where("consumer_id = ?", consumerID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
