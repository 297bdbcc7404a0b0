package account

import "context"

type PrincipalRepository interface {
	Create(ctx context.Context, a *PrincipalAccount) error
	GetByConsumerID(ctx context.Context, consumerID string) (*PrincipalAccount, error)
}

type VendorRepository interface {
	Create(ctx context.Context, a *VendorLinkedAccount) error
	GetByConsumerVendor(ctx context.Context, consumerID, vendorID string) (*VendorLinkedAccount, error)
	ListByConsumerID(ctx context.Context, consumerID string) ([]VendorLinkedAccount, error)
	Save(ctx context.Context, a *VendorLinkedAccount) error
}
