package http

import (
	"net/http"

	accountDomain "lendcore/internal/domain/account"
	"lendcore/internal/usecase/account"

	"github.com/labstack/echo/v4"
)

type AccountHandler struct{ uc *account.Usecase }

func NewAccountHandler(uc *account.Usecase) *AccountHandler { return &AccountHandler{uc: uc} }

// EnsurePrincipal provisions the principal account on demand. Creation is
// idempotent: a repeated call returns the existing account with 200
// instead of conflicting.
func (h *AccountHandler) EnsurePrincipal(c echo.Context) error {
	dto, err := h.uc.EnsurePrincipalAccount(c.Request().Context(), c.Param("consumer_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AccountHandler) GetPrincipal(c echo.Context) error {
	dto, err := h.uc.GetPrincipalAccount(c.Request().Context(), c.Param("consumer_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type linkVendorReq struct {
	VendorID string `json:"vendor_id" validate:"required,max=64"`
}

func (h *AccountHandler) LinkVendor(c echo.Context) error {
	var req linkVendorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.LinkVendorAccount(c.Request().Context(), c.Param("consumer_id"), req.VendorID)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AccountHandler) ListVendors(c echo.Context) error {
	dtos, err := h.uc.ListVendorAccounts(c.Request().Context(), c.Param("consumer_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

type vendorStatusReq struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE DISABLED ARCHIVED"`
}

func (h *AccountHandler) UpdateVendorStatus(c echo.Context) error {
	var req vendorStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.UpdateVendorStatus(c.Request().Context(),
		c.Param("consumer_id"), c.Param("vendor_id"), accountDomain.VendorStatus(req.Status))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
