// Package account provisions principal and vendor-linked accounts with
// idempotent create semantics: concurrent callers with the same natural
// key converge on one row, and nobody sees a uniqueness error.
package account

import (
	"context"
	"errors"
	"fmt"

	domain "lendcore/internal/domain/account"
	"lendcore/internal/domain/sentinel"
	"lendcore/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	principals domain.PrincipalRepository
	vendors    domain.VendorRepository
}

func NewUsecase(principals domain.PrincipalRepository, vendors domain.VendorRepository) *Usecase {
	return &Usecase{principals: principals, vendors: vendors}
}

// EnsurePrincipalAccount returns the consumer's principal account,
// creating it if absent. Policy: idempotent-return on duplicate, for the
// explicit endpoint and the onboarding fan-out alike.
//
// Lookup, create, reconcile: if the create loses a race on the
// consumer_id unique index, re-read once and return the winner. A
// reconciling read that finds nothing is a store anomaly (ErrIntegrity),
// not a reason to loop.
func (u *Usecase) EnsurePrincipalAccount(ctx context.Context, consumerID string) (*PrincipalAccountDTO, error) {
	if len(consumerID) != 32 {
		return nil, errors.New("invalid consumer id")
	}

	existing, err := u.principals.GetByConsumerID(ctx, consumerID)
	switch {
	case err == nil:
		return principalDTO(existing), nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	a := &domain.PrincipalAccount{
		AccountID:  id.NewID32(),
		ConsumerID: consumerID,
		Type:       domain.TypePrimary,
		Status:     domain.PrincipalActive,
	}
	err = u.principals.Create(ctx, a)
	if err == nil {
		return principalDTO(a), nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	winner, err := u.principals.GetByConsumerID(ctx, consumerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: principal account for consumer %s vanished after duplicate-key create", sentinel.ErrIntegrity, consumerID)
	}
	if err != nil {
		return nil, err
	}
	return principalDTO(winner), nil
}

// LinkVendorAccount is EnsurePrincipalAccount over the (consumer, vendor)
// composite key; many pairs per consumer, one row per pair.
func (u *Usecase) LinkVendorAccount(ctx context.Context, consumerID, vendorID string) (*VendorAccountDTO, error) {
	if len(consumerID) != 32 || vendorID == "" {
		return nil, errors.New("invalid consumer or vendor id")
	}

	existing, err := u.vendors.GetByConsumerVendor(ctx, consumerID, vendorID)
	switch {
	case err == nil:
		return vendorDTO(existing), nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	a := &domain.VendorLinkedAccount{
		AccountID:  id.NewID32(),
		ConsumerID: consumerID,
		VendorID:   vendorID,
		Status:     domain.VendorActive,
	}
	err = u.vendors.Create(ctx, a)
	if err == nil {
		return vendorDTO(a), nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	winner, err := u.vendors.GetByConsumerVendor(ctx, consumerID, vendorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: vendor account (%s, %s) vanished after duplicate-key create", sentinel.ErrIntegrity, consumerID, vendorID)
	}
	if err != nil {
		return nil, err
	}
	return vendorDTO(winner), nil
}

// UpdateVendorStatus enforces the vendor lifecycle: ARCHIVED is terminal.
func (u *Usecase) UpdateVendorStatus(ctx context.Context, consumerID, vendorID string, status domain.VendorStatus) (*VendorAccountDTO, error) {
	switch status {
	case domain.VendorActive, domain.VendorDisabled, domain.VendorArchived:
	default:
		return nil, fmt.Errorf("unknown vendor account status %q", status)
	}

	a, err := u.vendors.GetByConsumerVendor(ctx, consumerID, vendorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: vendor account (%s, %s)", sentinel.ErrNotFound, consumerID, vendorID)
	}
	if err != nil {
		return nil, err
	}

	if a.Status.Terminal() && status != a.Status {
		return nil, fmt.Errorf("%w: vendor account is %s", sentinel.ErrConflict, a.Status)
	}
	if a.Status == status {
		return vendorDTO(a), nil
	}

	a.Status = status
	if err := u.vendors.Save(ctx, a); err != nil {
		return nil, err
	}
	return vendorDTO(a), nil
}

func (u *Usecase) ListVendorAccounts(ctx context.Context, consumerID string) ([]VendorAccountDTO, error) {
	rows, err := u.vendors.ListByConsumerID(ctx, consumerID)
	if err != nil {
		return nil, err
	}
	out := make([]VendorAccountDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *vendorDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) GetPrincipalAccount(ctx context.Context, consumerID string) (*PrincipalAccountDTO, error) {
	a, err := u.principals.GetByConsumerID(ctx, consumerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: principal account for consumer %s", sentinel.ErrNotFound, consumerID)
	}
	if err != nil {
		return nil, err
	}
	return principalDTO(a), nil
}

func principalDTO(a *domain.PrincipalAccount) *PrincipalAccountDTO {
	return &PrincipalAccountDTO{
		AccountID:  a.AccountID,
		ConsumerID: a.ConsumerID,
		Type:       string(a.Type),
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt,
	}
}

func vendorDTO(a *domain.VendorLinkedAccount) *VendorAccountDTO {
	return &VendorAccountDTO{
		AccountID:  a.AccountID,
		ConsumerID: a.ConsumerID,
		VendorID:   a.VendorID,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt,
	}
}
