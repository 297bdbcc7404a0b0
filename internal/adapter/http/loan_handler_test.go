package http

import (
	"context"
	"encoding/json"
	"fmt"
	stdhttp "net/http"
	"testing"

	domain "lendcore/internal/domain/loanapp"
	"lendcore/internal/domain/uow"
	"lendcore/internal/event"
	"lendcore/internal/testutil/loanappmock"
	"lendcore/internal/testutil/uowmock"
	uc "lendcore/internal/usecase/loanapp"
	"lendcore/pkg/id"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type noopRelay struct{}

func (noopRelay) Publish(ctx context.Context, t event.Type, payload any) {}

func newLoanEcho(apps *loanappmock.Repo, decisions *loanappmock.DecisionRepo) *echo.Echo {
	e := newEchoWithValidator()
	u := uc.NewUsecase(apps, decisions, uowmock.Passthrough(uow.Repos{Applications: apps, Decisions: decisions}), noopRelay{})
	h := NewLoanHandler(u)
	e.POST("/loan-applications", h.Submit)
	e.GET("/loan-applications/:application_id", h.Get)
	e.POST("/loan-applications/:application_id/cancel", h.Cancel)
	e.POST("/loan-applications/:application_id/decisions", h.Decide)
	e.GET("/loan-applications/:application_id/decisions", h.ListDecisions)
	return e
}

func TestSubmit_Created(t *testing.T) {
	apps := &loanappmock.Repo{
		GetPendingByConsumerIDFn: func(ctx context.Context, cid string) (*domain.LoanApplication, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, a *domain.LoanApplication) error { return nil },
	}
	e := newLoanEcho(apps, &loanappmock.DecisionRepo{})

	body := map[string]any{"consumer_id": id.NewID32(), "requested_amount": 10000.0, "term_months": 12}
	rec := doReq(t, e, stdhttp.MethodPost, "/loan-applications", mustJSON(t, body))

	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", rec.Code, rec.Body.String())
	}
	var dto uc.ApplicationDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dto.Status != "PENDING" || dto.RequestedAmount != 10000 {
		t.Fatalf("dto = %+v", dto)
	}
}

func TestSubmit_PendingConflictIs409(t *testing.T) {
	consumerID := id.NewID32()
	apps := &loanappmock.Repo{
		GetPendingByConsumerIDFn: func(ctx context.Context, cid string) (*domain.LoanApplication, error) {
			return &domain.LoanApplication{ApplicationID: id.NewID32(), ConsumerID: consumerID, Status: domain.StatusPending}, nil
		},
	}
	e := newLoanEcho(apps, &loanappmock.DecisionRepo{})

	body := map[string]any{"consumer_id": consumerID, "requested_amount": 500.0, "term_months": 6}
	rec := doReq(t, e, stdhttp.MethodPost, "/loan-applications", mustJSON(t, body))

	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409 (%s)", rec.Code, rec.Body.String())
	}
}

func TestSubmit_ValidationFailureIs422(t *testing.T) {
	e := newLoanEcho(&loanappmock.Repo{}, &loanappmock.DecisionRepo{})

	body := map[string]any{"consumer_id": "NOT-HEX", "requested_amount": 10.999, "term_months": 0}
	rec := doReq(t, e, stdhttp.MethodPost, "/loan-applications", mustJSON(t, body))

	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (%s)", rec.Code, rec.Body.String())
	}
	resp := decodeErr(t, rec)
	if !containsFieldMsg(resp.Details, "consumer_id", "hex") {
		t.Fatalf("missing consumer_id detail: %+v", resp.Details)
	}
	if !containsFieldMsg(resp.Details, "requested_amount", "decimal") {
		t.Fatalf("missing requested_amount detail: %+v", resp.Details)
	}
}

func TestGetApplication_NotFoundIs404(t *testing.T) {
	apps := &loanappmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, appID string) (*domain.LoanApplication, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	e := newLoanEcho(apps, &loanappmock.DecisionRepo{})

	rec := doReq(t, e, stdhttp.MethodGet, "/loan-applications/"+id.NewID32(), nil)
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDecide_OK(t *testing.T) {
	consumerID := id.NewID32()
	appID := id.NewID32()
	key := consumerID
	apps := &loanappmock.Repo{
		GetByApplicationIDForUpdateFn: func(ctx context.Context, aid string) (*domain.LoanApplication, error) {
			return &domain.LoanApplication{ID: 7, ApplicationID: appID, ConsumerID: consumerID, Status: domain.StatusPending, PendingKey: &key, RequestedAmount: 10000}, nil
		},
	}
	decisions := &loanappmock.DecisionRepo{
		GetByApplicationAndTypeFn: func(ctx context.Context, aid uint64, d domain.Decision) (*domain.LoanApplicationDecision, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	e := newLoanEcho(apps, decisions)

	body := map[string]any{"decision": "APPROVED", "staff_id": id.NewID32(), "reason": "verified"}
	rec := doReq(t, e, stdhttp.MethodPost, fmt.Sprintf("/loan-applications/%s/decisions", appID), mustJSON(t, body))

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	var dto uc.DecisionDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dto.Decision != "APPROVED" || dto.ApplicationID != appID {
		t.Fatalf("dto = %+v", dto)
	}
}

func TestDecide_AlreadyDecidedIs409(t *testing.T) {
	apps := &loanappmock.Repo{
		GetByApplicationIDForUpdateFn: func(ctx context.Context, aid string) (*domain.LoanApplication, error) {
			return &domain.LoanApplication{ID: 7, ApplicationID: aid, Status: domain.StatusApproved}, nil
		},
	}
	e := newLoanEcho(apps, &loanappmock.DecisionRepo{})

	body := map[string]any{"decision": "REJECTED", "staff_id": id.NewID32()}
	rec := doReq(t, e, stdhttp.MethodPost, "/loan-applications/"+id.NewID32()+"/decisions", mustJSON(t, body))

	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409 (%s)", rec.Code, rec.Body.String())
	}
	resp := decodeErr(t, rec)
	if resp.Error == "" {
		t.Fatal("empty error message")
	}
}

func TestDecide_UnknownDecisionIs422(t *testing.T) {
	e := newLoanEcho(&loanappmock.Repo{}, &loanappmock.DecisionRepo{})

	body := map[string]any{"decision": "MAYBE", "staff_id": id.NewID32()}
	rec := doReq(t, e, stdhttp.MethodPost, "/loan-applications/"+id.NewID32()+"/decisions", mustJSON(t, body))

	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestCancel_OK(t *testing.T) {
	consumerID := id.NewID32()
	key := consumerID
	apps := &loanappmock.Repo{
		GetByApplicationIDForUpdateFn: func(ctx context.Context, aid string) (*domain.LoanApplication, error) {
			return &domain.LoanApplication{ID: 9, ApplicationID: aid, ConsumerID: consumerID, Status: domain.StatusPending, PendingKey: &key}, nil
		},
		SaveFn: func(ctx context.Context, a *domain.LoanApplication) error { return nil },
	}
	e := newLoanEcho(apps, &loanappmock.DecisionRepo{})

	body := map[string]any{"consumer_id": consumerID}
	rec := doReq(t, e, stdhttp.MethodPost, "/loan-applications/"+id.NewID32()+"/cancel", mustJSON(t, body))

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	var dto uc.ApplicationDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dto.Status != "CANCELLED" {
		t.Fatalf("dto = %+v", dto)
	}
}

func TestListDecisions_OK(t *testing.T) {
	apps := &loanappmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, aid string) (*domain.LoanApplication, error) {
			return &domain.LoanApplication{ID: 4, ApplicationID: aid, Status: domain.StatusApproved}, nil
		},
	}
	decisions := &loanappmock.DecisionRepo{
		ListByApplicationIDFn: func(ctx context.Context, aid uint64) ([]domain.LoanApplicationDecision, error) {
			return []domain.LoanApplicationDecision{
				{DecisionID: id.NewID32(), ApplicationID: aid, Decision: domain.DecisionApproved, StaffID: id.NewID32(), Reason: "verified"},
			}, nil
		},
	}
	e := newLoanEcho(apps, decisions)

	rec := doReq(t, e, stdhttp.MethodGet, "/loan-applications/"+id.NewID32()+"/decisions", nil)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	var dtos []uc.DecisionDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dtos); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(dtos) != 1 || dtos[0].Decision != "APPROVED" {
		t.Fatalf("dtos = %+v", dtos)
	}
}
