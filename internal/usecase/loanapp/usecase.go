// Package loanapp drives the loan-application lifecycle:
// PENDING -> {APPROVED, REJECTED} by staff, PENDING -> CANCELLED by the
// submitter. Terminal states are never left, the decision audit trail is
// append-only, and an approval publishes exactly one event per commit.
package loanapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "lendcore/internal/domain/loanapp"
	"lendcore/internal/domain/sentinel"
	"lendcore/internal/domain/uow"
	"lendcore/internal/event"
	"lendcore/pkg/id"

	"gorm.io/gorm"
)

// Publisher is the slice of the event relay this usecase needs.
type Publisher interface {
	Publish(ctx context.Context, t event.Type, payload any)
}

type Usecase struct {
	apps      domain.Repository
	decisions domain.DecisionRepository
	uow       uow.UnitOfWork
	relay     Publisher
}

func NewUsecase(apps domain.Repository, decisions domain.DecisionRepository, tx uow.UnitOfWork, relay Publisher) *Usecase {
	return &Usecase{apps: apps, decisions: decisions, uow: tx, relay: relay}
}

// Submit opens a PENDING application. A consumer holds at most one
// PENDING application: the pre-check gives the friendly error, the
// unique pending_key index settles the race.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*ApplicationDTO, error) {
	if len(in.ConsumerID) != 32 || in.RequestedAmount <= 0 || in.TermMonths <= 0 {
		return nil, errors.New("invalid input")
	}

	pending, err := u.apps.GetPendingByConsumerID(ctx, in.ConsumerID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: consumer %s already has pending application %s", sentinel.ErrConflict, in.ConsumerID, pending.ApplicationID)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	pendingKey := in.ConsumerID
	a := &domain.LoanApplication{
		ApplicationID:   id.NewID32(),
		ConsumerID:      in.ConsumerID,
		Status:          domain.StatusPending,
		PendingKey:      &pendingKey,
		RequestedAmount: in.RequestedAmount,
		TermMonths:      in.TermMonths,
		StatusUpdatedAt: time.Now().UTC(),
	}
	if err := u.apps.Create(ctx, a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// concurrent submit won between the pre-check and our insert
			return nil, fmt.Errorf("%w: consumer %s already has a pending application", sentinel.ErrConflict, in.ConsumerID)
		}
		return nil, err
	}
	return applicationDTO(a), nil
}

// Cancel is the submitter-only side exit, available while PENDING.
func (u *Usecase) Cancel(ctx context.Context, applicationID, consumerID string) (*ApplicationDTO, error) {
	var dto *ApplicationDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Applications.GetByApplicationIDForUpdate(ctx, applicationID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: application %s", sentinel.ErrNotFound, applicationID)
		}
		if err != nil {
			return err
		}
		// ownership reported as not-found so cancel cannot probe
		// other consumers' applications
		if a.ConsumerID != consumerID {
			return fmt.Errorf("%w: application %s", sentinel.ErrNotFound, applicationID)
		}
		if a.Status != domain.StatusPending {
			return fmt.Errorf("%w: application is %s", sentinel.ErrConflict, a.Status)
		}

		a.Status = domain.StatusCancelled
		a.PendingKey = nil
		a.StatusUpdatedAt = time.Now().UTC()
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto = applicationDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Decide settles a PENDING application. Decision row and status flip
// commit in one transaction; the (application_id, decision) unique index
// and the row lock serialize concurrent submissions, so the loser
// surfaces ErrConflict and never overwrites the winner.
//
// The approval event is published after commit, at least once. A crash
// between commit and publish leaves a gap for downstream reconciliation
// rather than rolling back the decision.
func (u *Usecase) Decide(ctx context.Context, in DecideInput) (*DecisionDTO, error) {
	decision := domain.Decision(in.Decision)
	if !decision.Valid() {
		return nil, fmt.Errorf("unknown decision %q", in.Decision)
	}
	if len(in.StaffID) != 32 {
		return nil, errors.New("invalid staff id")
	}
	if len(in.Reason) > domain.MaxReasonLen {
		return nil, fmt.Errorf("reason exceeds %d characters", domain.MaxReasonLen)
	}

	var (
		dto      *DecisionDTO
		approval *event.ApprovalGranted
	)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Applications.GetByApplicationIDForUpdate(ctx, in.ApplicationID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: application %s", sentinel.ErrNotFound, in.ApplicationID)
		}
		if err != nil {
			return err
		}

		if a.Status != domain.StatusPending {
			return fmt.Errorf("%w: application already decided (%s)", sentinel.ErrConflict, a.Status)
		}

		if _, err := r.Decisions.GetByApplicationAndType(ctx, a.ID, decision); err == nil {
			return fmt.Errorf("%w: %s decision already recorded", sentinel.ErrConflict, decision)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		d := &domain.LoanApplicationDecision{
			DecisionID:    id.NewID32(),
			ApplicationID: a.ID,
			Decision:      decision,
			StaffID:       in.StaffID,
			Reason:        in.Reason,
		}
		if err := r.Decisions.Create(ctx, d); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: %s decision already recorded", sentinel.ErrConflict, decision)
			}
			return err
		}

		now := time.Now().UTC()
		a.Status = decision.Status()
		a.PendingKey = nil
		a.StatusUpdatedAt = now
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		if decision == domain.DecisionApproved {
			approval = &event.ApprovalGranted{
				ApplicationID: a.ApplicationID,
				ConsumerID:    a.ConsumerID,
				Amount:        a.RequestedAmount,
				StaffID:       in.StaffID,
				ApprovedAt:    now,
			}
		}
		dto = &DecisionDTO{
			DecisionID:    d.DecisionID,
			ApplicationID: a.ApplicationID,
			Decision:      string(d.Decision),
			StaffID:       d.StaffID,
			Reason:        d.Reason,
			DecidedAt:     now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if approval != nil {
		u.relay.Publish(ctx, event.TypeApprovalGranted, *approval)
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, applicationID string) (*ApplicationDTO, error) {
	a, err := u.apps.GetByApplicationID(ctx, applicationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: application %s", sentinel.ErrNotFound, applicationID)
	}
	if err != nil {
		return nil, err
	}
	return applicationDTO(a), nil
}

// Decisions returns the append-only audit trail for one application.
func (u *Usecase) Decisions(ctx context.Context, applicationID string) ([]DecisionDTO, error) {
	a, err := u.apps.GetByApplicationID(ctx, applicationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: application %s", sentinel.ErrNotFound, applicationID)
	}
	if err != nil {
		return nil, err
	}

	rows, err := u.decisions.ListByApplicationID(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	out := make([]DecisionDTO, 0, len(rows))
	for _, d := range rows {
		out = append(out, DecisionDTO{
			DecisionID:    d.DecisionID,
			ApplicationID: a.ApplicationID,
			Decision:      string(d.Decision),
			StaffID:       d.StaffID,
			Reason:        d.Reason,
			DecidedAt:     d.CreatedAt,
		})
	}
	return out, nil
}

func applicationDTO(a *domain.LoanApplication) *ApplicationDTO {
	return &ApplicationDTO{
		ApplicationID:   a.ApplicationID,
		ConsumerID:      a.ConsumerID,
		Status:          string(a.Status),
		RequestedAmount: a.RequestedAmount,
		TermMonths:      a.TermMonths,
		CreatedAt:       a.CreatedAt,
	}
}
