package mysql

import (
	"context"

	loanappDomain "lendcore/internal/domain/loanapp"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanApplicationRepository struct{ db *gorm.DB }

func NewLoanApplicationRepository(db *gorm.DB) *LoanApplicationRepository {
	return &LoanApplicationRepository{db: db}
}

func (r *LoanApplicationRepository) Create(ctx context.Context, a *loanappDomain.LoanApplication) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *LoanApplicationRepository) Save(ctx context.Context, a *loanappDomain.LoanApplication) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *LoanApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*loanappDomain.LoanApplication, error) {
	var out loanappDomain.LoanApplication
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *LoanApplicationRepository) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*loanappDomain.LoanApplication, error) {
	q := r.db.WithContext(ctx)
	// sqlite (tests) has no FOR UPDATE; its writes serialize anyway.
	if q.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out loanappDomain.LoanApplication
	res := q.Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *LoanApplicationRepository) GetPendingByConsumerID(ctx context.Context, consumerID string) (*loanappDomain.LoanApplication, error) {
	var out loanappDomain.LoanApplication
	res := r.db.WithContext(ctx).
		Where("consumer_id = ? AND status = ?", consumerID, loanappDomain.StatusPending).
		Order("status_updated_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}

type DecisionRepository struct{ db *gorm.DB }

func NewDecisionRepository(db *gorm.DB) *DecisionRepository { return &DecisionRepository{db: db} }

func (r *DecisionRepository) Create(ctx context.Context, d *loanappDomain.LoanApplicationDecision) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DecisionRepository) GetByApplicationAndType(ctx context.Context, applicationID uint64, decision loanappDomain.Decision) (*loanappDomain.LoanApplicationDecision, error) {
	var out loanappDomain.LoanApplicationDecision
	res := r.db.WithContext(ctx).
		Where("application_id = ? AND decision = ?", applicationID, decision).
		First(&out)
	return &out, res.Error
}

func (r *DecisionRepository) ListByApplicationID(ctx context.Context, applicationID uint64) ([]loanappDomain.LoanApplicationDecision, error) {
	var out []loanappDomain.LoanApplicationDecision
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
