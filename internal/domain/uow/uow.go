package uow

import (
	"context"

	"lendcore/internal/domain/account"
	"lendcore/internal/domain/consumer"
	"lendcore/internal/domain/loanapp"
)

// Repos bundles transaction-bound repositories handed to a WithinTx
// closure. Everything done through them commits or rolls back together.
type Repos struct {
	Consumers    consumer.Repository
	Principals   account.PrincipalRepository
	Vendors      account.VendorRepository
	Applications loanapp.Repository
	Decisions    loanapp.DecisionRepository
}

type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
