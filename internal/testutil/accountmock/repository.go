package accountmock

import (
	"context"
	"errors"

	domain "lendcore/internal/domain/account"
)

var errUnimplemented = errors.New("accountmock: method not implemented")

// PrincipalRepo is a function-backed mock satisfying account.PrincipalRepository.
type PrincipalRepo struct {
	CreateFn          func(ctx context.Context, a *domain.PrincipalAccount) error
	GetByConsumerIDFn func(ctx context.Context, consumerID string) (*domain.PrincipalAccount, error)
}

var _ domain.PrincipalRepository = (*PrincipalRepo)(nil)

func (m *PrincipalRepo) Create(ctx context.Context, a *domain.PrincipalAccount) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *PrincipalRepo) GetByConsumerID(ctx context.Context, consumerID string) (*domain.PrincipalAccount, error) {
	if m.GetByConsumerIDFn != nil {
		return m.GetByConsumerIDFn(ctx, consumerID)
	}
	return nil, errUnimplemented
}

// VendorRepo is a function-backed mock satisfying account.VendorRepository.
type VendorRepo struct {
	CreateFn              func(ctx context.Context, a *domain.VendorLinkedAccount) error
	GetByConsumerVendorFn func(ctx context.Context, consumerID, vendorID string) (*domain.VendorLinkedAccount, error)
	ListByConsumerIDFn    func(ctx context.Context, consumerID string) ([]domain.VendorLinkedAccount, error)
	SaveFn                func(ctx context.Context, a *domain.VendorLinkedAccount) error
}

var _ domain.VendorRepository = (*VendorRepo)(nil)

func (m *VendorRepo) Create(ctx context.Context, a *domain.VendorLinkedAccount) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *VendorRepo) GetByConsumerVendor(ctx context.Context, consumerID, vendorID string) (*domain.VendorLinkedAccount, error) {
	if m.GetByConsumerVendorFn != nil {
		return m.GetByConsumerVendorFn(ctx, consumerID, vendorID)
	}
	return nil, errUnimplemented
}

func (m *VendorRepo) ListByConsumerID(ctx context.Context, consumerID string) ([]domain.VendorLinkedAccount, error) {
	if m.ListByConsumerIDFn != nil {
		return m.ListByConsumerIDFn(ctx, consumerID)
	}
	return nil, errUnimplemented
}

func (m *VendorRepo) Save(ctx context.Context, a *domain.VendorLinkedAccount) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}
