package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/services"
)

// DebtHandler handles debt ledger requests.
type DebtHandler struct {
	debtService services.DebtServicer
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtService services.DebtServicer) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// CreateDebtRequest represents the request payload for creating a debt
type CreateDebtRequest struct {
	CreditorRef string `json:"creditor_ref" binding:"required"`
	DebtorRef   string `json:"debtor_ref" binding:"required"`
	Description string `json:"description" binding:"max=500"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
}

// CreateDebt handles the creation of a new debt
func (h *DebtHandler) CreateDebt(c *gin.Context) {
	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	debt, err := h.debtService.CreateDebt(req.CreditorRef, req.DebtorRef, req.Description, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"debt": debt})
}

// GetDebtByID returns a debt with its payment history
func (h *DebtHandler) GetDebtByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	debt, payments, err := h.debtService.GetDebtByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debt": debt, "payments": payments})
}

// GetDebts returns all debts, optionally filtered by status
func (h *DebtHandler) GetDebts(c *gin.Context) {
	var status *models.DebtStatus
	if q := c.Query("status"); q != "" {
		s := models.DebtStatus(q)
		if s != models.DebtStatusOpen && s != models.DebtStatusSettled {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be open or settled"))
			return
		}
		status = &s
	}

	debts, err := h.debtService.ListDebts(status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debts": debts})
}

// RecordPaymentRequest represents the request payload for recording a payment
type RecordPaymentRequest struct {
	Amount int64   `json:"amount" binding:"required,gt=0"`
	Date   *string `json:"date"`
}

// RecordPayment handles appending a payment to a debt
func (h *DebtHandler) RecordPayment(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var date time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := parseFlexibleTime(*req.Date)
		if parseErr != nil {
			respondWithError(c, parseErr)
			return
		}
		date = parsed
	}

	debt, dirty, err := h.debtService.RecordPayment(id, req.Amount, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"debt": debt, "dirty": dirty})
}

// DeletePayment handles removing a payment and reversing its contribution
func (h *DebtHandler) DeletePayment(c *gin.Context) {
	id, err := pathID(c, "paymentID")
	if err != nil {
		respondWithError(c, err)
		return
	}

	debt, dirty, err := h.debtService.DeletePayment(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debt": debt, "dirty": dirty})
}

// SettleDebt marks a debt as settled
func (h *DebtHandler) SettleDebt(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	debt, dirty, err := h.debtService.SettleDebt(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debt": debt, "dirty": dirty})
}
