package loanapp

import "context"

type Repository interface {
	Create(ctx context.Context, a *LoanApplication) error
	GetByApplicationID(ctx context.Context, applicationID string) (*LoanApplication, error)
	// GetByApplicationIDForUpdate locks the row for the transaction's
	// duration so concurrent deciders serialize.
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*LoanApplication, error)
	GetPendingByConsumerID(ctx context.Context, consumerID string) (*LoanApplication, error)
	Save(ctx context.Context, a *LoanApplication) error
}

// DecisionRepository is append-only: decisions are never updated or
// deleted once written.
type DecisionRepository interface {
	Create(ctx context.Context, d *LoanApplicationDecision) error
	GetByApplicationAndType(ctx context.Context, applicationID uint64, decision Decision) (*LoanApplicationDecision, error)
	ListByApplicationID(ctx context.Context, applicationID uint64) ([]LoanApplicationDecision, error)
}
