package http

import (
	"net/http"

	"lendcore/internal/usecase/loanapp"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loanapp.Usecase }

func NewLoanHandler(uc *loanapp.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type submitApplicationReq struct {
	ConsumerID      string  `json:"consumer_id"      validate:"required,hex32"`
	RequestedAmount float64 `json:"requested_amount" validate:"required,gt=0,dec2"`
	TermMonths      int     `json:"term_months"      validate:"required,gte=1"`
}

func (h *LoanHandler) Submit(c echo.Context) error {
	var req submitApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Submit(c.Request().Context(), loanapp.SubmitInput(req))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("application_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type cancelReq struct {
	ConsumerID string `json:"consumer_id" validate:"required,hex32"`
}

func (h *LoanHandler) Cancel(c echo.Context) error {
	var req cancelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Cancel(c.Request().Context(), c.Param("application_id"), req.ConsumerID)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type decideReq struct {
	Decision string `json:"decision" validate:"required,oneof=APPROVED REJECTED"`
	StaffID  string `json:"staff_id" validate:"required,hex32"`
	Reason   string `json:"reason"   validate:"max=500"`
}

func (h *LoanHandler) Decide(c echo.Context) error {
	var req decideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Decide(c.Request().Context(), loanapp.DecideInput{
		ApplicationID: c.Param("application_id"),
		Decision:      req.Decision,
		StaffID:       req.StaffID,
		Reason:        req.Reason,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListDecisions(c echo.Context) error {
	dtos, err := h.uc.Decisions(c.Request().Context(), c.Param("application_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
