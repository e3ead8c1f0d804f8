package services

import (
	"time"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/store"
)

// splitTolerance is how far a custom split's sum may drift from the bill
// total before the split is rejected, in cents.
const splitTolerance = 1

// billService is the bill settlement state machine. Settlement is
// informational: marking a participant paid never moves an account balance,
// money movement happens through the transaction and debt flows.
type billService struct {
	bills        store.BillStore
	participants store.BillParticipantStore
}

// NewBillService creates a new BillServicer.
func NewBillService(bills store.BillStore, participants store.BillParticipantStore) BillServicer {
	return &billService{bills: bills, participants: participants}
}

// splitEqually allocates totalAmount across heads using largest-remainder
// allocation in cents: everyone gets total/heads, and the first total%heads
// shares carry one extra cent, so the shares always sum to exactly the
// total.
func splitEqually(totalAmount int64, heads int) []int64 {
	base := totalAmount / int64(heads)
	remainder := totalAmount % int64(heads)

	shares := make([]int64, heads)
	for i := range shares {
		shares[i] = base
		if int64(i) < remainder {
			shares[i]++
		}
	}
	return shares
}

// CreateBillEqualSplit creates a bill split evenly across the owner and the
// given members.
func (s *billService) CreateBillEqualSplit(ownerRef, description string, totalAmount int64, memberRefs []string) (*models.Bill, []models.BillParticipant, error) {
	if totalAmount <= 0 {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "bill total must be greater than zero")
	}
	if len(memberRefs) == 0 {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one member is required")
	}

	// The owner is a participant too: heads = member count + 1.
	refs := append([]string{ownerRef}, memberRefs...)
	amounts := splitEqually(totalAmount, len(refs))

	shares := make([]ParticipantShare, len(refs))
	for i, ref := range refs {
		shares[i] = ParticipantShare{UserRef: ref, Amount: amounts[i]}
	}

	return s.createBill(ownerRef, description, totalAmount, shares)
}

// CreateBillCustomSplit creates a bill with caller-supplied shares. The
// shares must sum to the bill total within one cent; otherwise the split is
// rejected before anything is written.
func (s *billService) CreateBillCustomSplit(ownerRef, description string, totalAmount int64, shares []ParticipantShare) (*models.Bill, []models.BillParticipant, error) {
	if totalAmount <= 0 {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "bill total must be greater than zero")
	}
	if len(shares) == 0 {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one participant share is required")
	}

	var sum int64
	for _, share := range shares {
		if share.Amount < 0 {
			return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "participant amounts cannot be negative")
		}
		sum += share.Amount
	}

	diff := sum - totalAmount
	if diff < -splitTolerance || diff > splitTolerance {
		return nil, nil, apperrors.ErrSplitMismatch
	}

	return s.createBill(ownerRef, description, totalAmount, shares)
}

// createBill writes the bill record and then one participant record per
// share. A participant write that fails after the bill has committed is a
// PartialFailure: the bill exists with an incomplete participant set.
func (s *billService) createBill(ownerRef, description string, totalAmount int64, shares []ParticipantShare) (*models.Bill, []models.BillParticipant, error) {
	bill := &models.Bill{
		OwnerRef:    ownerRef,
		Description: description,
		TotalAmount: totalAmount,
		Status:      models.BillStatusPending,
	}
	if err := s.bills.Create(bill); err != nil {
		return nil, nil, err
	}

	participants := make([]models.BillParticipant, 0, len(shares))
	for i, share := range shares {
		participant := models.BillParticipant{
			BillID:  bill.ID,
			UserRef: share.UserRef,
			Amount:  share.Amount,
		}
		if err := s.participants.Create(&participant); err != nil {
			completed := []string{"write bill record"}
			for j := 0; j < i; j++ {
				completed = append(completed, "write participant record "+shares[j].UserRef)
			}
			return nil, nil, apperrors.NewPartialFailure("create bill", completed,
				"write participant record "+share.UserRef, err)
		}
		participants = append(participants, participant)
	}

	return bill, participants, nil
}

// GetBillByID retrieves a bill with its participants.
func (s *billService) GetBillByID(billID string) (*models.Bill, []models.BillParticipant, error) {
	bill, err := s.bills.Get(billID)
	if err != nil {
		return nil, nil, err
	}
	participants, err := s.participants.ListByBill(bill.ID)
	if err != nil {
		return nil, nil, err
	}
	return bill, participants, nil
}

// GetOwnerBills retrieves all bills created by an owner.
func (s *billService) GetOwnerBills(ownerRef string) ([]models.Bill, error) {
	return s.bills.List(ownerRef)
}

// MarkParticipantPaid flags one participant as paid and, within the same
// operation, recomputes whether every participant is paid to decide the
// pending-to-settled transition. The derivation is never deferred to a later
// read.
func (s *billService) MarkParticipantPaid(participantID string) (*models.Bill, *DirtySet, error) {
	participant, err := s.participants.Get(participantID)
	if err != nil {
		return nil, nil, err
	}

	bill, err := s.bills.Get(participant.BillID)
	if err != nil {
		return nil, nil, err
	}
	if bill.Status == models.BillStatusCancelled {
		return nil, nil, apperrors.ErrBillNotPending
	}

	if !participant.IsPaid {
		now := time.Now()
		participant.IsPaid = true
		participant.PaidAt = &now
		if err := s.participants.Update(participant); err != nil {
			return nil, nil, err
		}
	}

	participants, err := s.participants.ListByBill(bill.ID)
	if err != nil {
		return nil, nil, apperrors.NewPartialFailure("mark participant paid",
			[]string{"update participant record"}, "recompute settlement state", err)
	}

	allPaid := true
	for _, p := range participants {
		if !p.IsPaid {
			allPaid = false
			break
		}
	}

	if allPaid && bill.Status == models.BillStatusPending {
		now := time.Now()
		bill.Status = models.BillStatusSettled
		bill.SettledAt = &now
		if err := s.bills.Update(bill); err != nil {
			return nil, nil, apperrors.NewPartialFailure("mark participant paid",
				[]string{"update participant record"}, "update bill status", err)
		}
	}

	dirty := NewDirtySet()
	dirty.AddBill(bill.ID)
	return bill, dirty, nil
}

// CancelBill moves a pending bill to the cancelled terminal state.
func (s *billService) CancelBill(billID string) (*models.Bill, *DirtySet, error) {
	bill, err := s.bills.Get(billID)
	if err != nil {
		return nil, nil, err
	}
	if bill.Status != models.BillStatusPending {
		return nil, nil, apperrors.ErrBillNotPending
	}

	bill.Status = models.BillStatusCancelled
	if err := s.bills.Update(bill); err != nil {
		return nil, nil, err
	}

	dirty := NewDirtySet()
	dirty.AddBill(bill.ID)
	return bill, dirty, nil
}
