package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "tally/internal/errors"
	"tally/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateBudgetRequest represents the request payload for creating a budget
type CreateBudgetRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	CategoryID  string  `json:"category_id" binding:"required"`
	Amount      int64   `json:"amount" binding:"required,gt=0"`
	Month       string  `json:"month" binding:"omitempty,month_token"`
	PeriodStart *string `json:"period_start"`
	PeriodEnd   *string `json:"period_end"`
}

// CreateBudget handles the creation of a new budget
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var periodStart, periodEnd *time.Time
	if req.PeriodStart != nil && *req.PeriodStart != "" {
		parsed, parseErr := parseFlexibleTime(*req.PeriodStart)
		if parseErr != nil {
			respondWithError(c, parseErr)
			return
		}
		periodStart = &parsed
	}
	if req.PeriodEnd != nil && *req.PeriodEnd != "" {
		parsed, parseErr := parseFlexibleTime(*req.PeriodEnd)
		if parseErr != nil {
			respondWithError(c, parseErr)
			return
		}
		periodEnd = &parsed
	}

	budget, err := h.budgetService.CreateBudget(req.Name, req.CategoryID, req.Amount, req.Month, periodStart, periodEnd)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetBudgetByID returns a single budget with its recomputed progress
func (h *BudgetHandler) GetBudgetByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudgetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	progress, err := h.budgetService.GetBudgetProgress(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget, "progress": progress})
}

// GetBudgets returns all budgets, optionally filtered by active flag
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	var isActive *bool
	switch c.Query("is_active") {
	case "true":
		v := true
		isActive = &v
	case "false":
		v := false
		isActive = &v
	}

	budgets, err := h.budgetService.ListBudgets(isActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// UpdateBudgetRequest represents the request payload for updating a budget
type UpdateBudgetRequest struct {
	Name   string  `json:"name" binding:"omitempty,max=100"`
	Amount *int64  `json:"amount" binding:"omitempty,gt=0"`
	Month  *string `json:"month" binding:"omitempty,month_token"`
}

// UpdateBudget handles updating a budget
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.UpdateBudget(id, req.Name, req.Amount, req.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget handles deleting a budget
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteBudget(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// RecomputeSpent returns the freshly recomputed spent amount for a budget
func (h *BudgetHandler) RecomputeSpent(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	spent, err := h.budgetService.RecomputeSpent(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget_id": id, "spent": spent})
}
