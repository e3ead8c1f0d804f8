package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/services"
)

// BillHandler handles shared bill requests.
type BillHandler struct {
	billService services.BillServicer
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billService services.BillServicer) *BillHandler {
	return &BillHandler{billService: billService}
}

// CreateBillRequest represents the request payload for creating a bill.
// Either members (equal split) or shares (custom split) must be supplied.
type CreateBillRequest struct {
	OwnerRef    string                      `json:"owner_ref" binding:"required"`
	Description string                      `json:"description" binding:"max=500"`
	TotalAmount int64                       `json:"total_amount" binding:"required,gt=0"`
	MemberRefs  []string                    `json:"member_refs"`
	Shares      []services.ParticipantShare `json:"shares"`
}

// CreateBill handles the creation of a new bill with an equal or custom split
func (h *BillHandler) CreateBill(c *gin.Context) {
	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if len(req.MemberRefs) > 0 && len(req.Shares) > 0 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "provide either member_refs or shares, not both"))
		return
	}

	var err error
	var bill *models.Bill
	var participants []models.BillParticipant
	if len(req.Shares) > 0 {
		bill, participants, err = h.billService.CreateBillCustomSplit(req.OwnerRef, req.Description, req.TotalAmount, req.Shares)
	} else {
		bill, participants, err = h.billService.CreateBillEqualSplit(req.OwnerRef, req.Description, req.TotalAmount, req.MemberRefs)
	}
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bill": bill, "participants": participants})
}

// GetBillByID returns a bill with its participants
func (h *BillHandler) GetBillByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bill, participants, err := h.billService.GetBillByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill, "participants": participants})
}

// GetBills returns all bills, optionally filtered by owner
func (h *BillHandler) GetBills(c *gin.Context) {
	bills, err := h.billService.GetOwnerBills(c.Query("owner_ref"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bills": bills})
}

// MarkParticipantPaid flags a participant as paid and settles the bill when
// everyone has paid
func (h *BillHandler) MarkParticipantPaid(c *gin.Context) {
	id, err := pathID(c, "participantID")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bill, dirty, err := h.billService.MarkParticipantPaid(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill, "dirty": dirty})
}

// CancelBill moves a pending bill to cancelled
func (h *BillHandler) CancelBill(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bill, dirty, err := h.billService.CancelBill(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill, "dirty": dirty})
}
