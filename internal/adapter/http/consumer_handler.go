package http

import (
	"net/http"

	"lendcore/internal/usecase/onboarding"

	"github.com/labstack/echo/v4"
)

type ConsumerHandler struct{ uc *onboarding.Usecase }

func NewConsumerHandler(uc *onboarding.Usecase) *ConsumerHandler { return &ConsumerHandler{uc: uc} }

type onboardReq struct {
	FullName    string `json:"full_name"      validate:"required"`
	Email       string `json:"email"          validate:"required,email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"  validate:"omitempty,datetime=2006-01-02"`

	NationalID     string   `json:"national_id"     validate:"required"`
	DocumentNumber string   `json:"document_number"`
	EmployerName   string   `json:"employer_name"`
	MonthlyIncome  string   `json:"monthly_income"`
	IncomeSource   string   `json:"income_source"`
	Vendors        []string `json:"vendors"`
}

func (h *ConsumerHandler) Onboard(c echo.Context) error {
	var req onboardReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Onboard(c.Request().Context(), onboarding.OnboardInput(req))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ConsumerHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("consumer_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ConsumerHandler) UpdateProfile(c echo.Context) error {
	var req onboarding.UpdateProfileInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.UpdateProfile(c.Request().Context(), c.Param("consumer_id"), req)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ConsumerHandler) Archive(c echo.Context) error {
	if err := h.uc.Archive(c.Request().Context(), c.Param("consumer_id")); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
