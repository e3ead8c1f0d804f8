package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tally/internal/errors"
	"tally/internal/services"
)

// GoalHandler handles savings goal requests.
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoalRequest represents the request payload for creating a goal
type CreateGoalRequest struct {
	OwnerRef     string `json:"owner_ref" binding:"required"`
	Name         string `json:"name" binding:"required,max=100"`
	TargetAmount int64  `json:"target_amount" binding:"required,gt=0"`
	Priority     int    `json:"priority"`
}

// CreateGoal handles the creation of a new savings goal
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.CreateGoal(req.OwnerRef, req.Name, req.TargetAmount, req.Priority)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// GetGoalByID returns a single goal
func (h *GoalHandler) GetGoalByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goalService.GetGoalByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// GetGoals returns all goals, optionally filtered by owner
func (h *GoalHandler) GetGoals(c *gin.Context) {
	goals, err := h.goalService.GetOwnerGoals(c.Query("owner_ref"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// UpdateGoalRequest represents the request payload for updating a goal
type UpdateGoalRequest struct {
	Name         string `json:"name" binding:"omitempty,max=100"`
	TargetAmount *int64 `json:"target_amount" binding:"omitempty,gt=0"`
	Priority     *int   `json:"priority"`
}

// UpdateGoal handles updating a goal's name, target, or priority
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.UpdateGoal(id, req.Name, req.TargetAmount, req.Priority)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// DepositRequest represents the request payload for a goal deposit
type DepositRequest struct {
	FromAccountID string `json:"from_account_id" binding:"required"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
}

// Deposit handles moving money from an account into a goal
func (h *GoalHandler) Deposit(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, dirty, err := h.goalService.Deposit(id, req.FromAccountID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal, "dirty": dirty})
}

// DeleteGoalRequest names the account that receives the goal's refund.
type DeleteGoalRequest struct {
	RefundAccountID string `json:"refund_account_id" binding:"required"`
}

// DeleteGoal handles refunding and destroying a goal
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req DeleteGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "refund_account_id is required"))
		return
	}

	dirty, err := h.goalService.DeleteGoal(id, req.RefundAccountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dirty": dirty})
}
