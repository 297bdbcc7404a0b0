package loanappmock

import (
	"context"
	"errors"

	domain "lendcore/internal/domain/loanapp"
)

var errUnimplemented = errors.New("loanappmock: method not implemented")

// Repo is a function-backed mock satisfying loanapp.Repository.
type Repo struct {
	CreateFn                      func(ctx context.Context, a *domain.LoanApplication) error
	GetByApplicationIDFn          func(ctx context.Context, applicationID string) (*domain.LoanApplication, error)
	GetByApplicationIDForUpdateFn func(ctx context.Context, applicationID string) (*domain.LoanApplication, error)
	GetPendingByConsumerIDFn      func(ctx context.Context, consumerID string) (*domain.LoanApplication, error)
	SaveFn                        func(ctx context.Context, a *domain.LoanApplication) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, a *domain.LoanApplication) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.LoanApplication, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*domain.LoanApplication, error) {
	if m.GetByApplicationIDForUpdateFn != nil {
		return m.GetByApplicationIDForUpdateFn(ctx, applicationID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetPendingByConsumerID(ctx context.Context, consumerID string) (*domain.LoanApplication, error) {
	if m.GetPendingByConsumerIDFn != nil {
		return m.GetPendingByConsumerIDFn(ctx, consumerID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, a *domain.LoanApplication) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

// DecisionRepo is a function-backed mock satisfying loanapp.DecisionRepository.
type DecisionRepo struct {
	CreateFn                  func(ctx context.Context, d *domain.LoanApplicationDecision) error
	GetByApplicationAndTypeFn func(ctx context.Context, applicationID uint64, decision domain.Decision) (*domain.LoanApplicationDecision, error)
	ListByApplicationIDFn     func(ctx context.Context, applicationID uint64) ([]domain.LoanApplicationDecision, error)
}

var _ domain.DecisionRepository = (*DecisionRepo)(nil)

func (m *DecisionRepo) Create(ctx context.Context, d *domain.LoanApplicationDecision) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *DecisionRepo) GetByApplicationAndType(ctx context.Context, applicationID uint64, decision domain.Decision) (*domain.LoanApplicationDecision, error) {
	if m.GetByApplicationAndTypeFn != nil {
		return m.GetByApplicationAndTypeFn(ctx, applicationID, decision)
	}
	return nil, errUnimplemented
}

func (m *DecisionRepo) ListByApplicationID(ctx context.Context, applicationID uint64) ([]domain.LoanApplicationDecision, error) {
	if m.ListByApplicationIDFn != nil {
		return m.ListByApplicationIDFn(ctx, applicationID)
	}
	return nil, errUnimplemented
}
