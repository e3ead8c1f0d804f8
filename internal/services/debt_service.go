package services

import (
	"time"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/store"
)

// debtService is the debt ledger: it accumulates payments into a debt's paid
// total and reverses them when a payment is deleted.
type debtService struct {
	debts    store.DebtStore
	payments store.DebtPaymentStore
}

// NewDebtService creates a new DebtServicer.
func NewDebtService(debts store.DebtStore, payments store.DebtPaymentStore) DebtServicer {
	return &debtService{debts: debts, payments: payments}
}

// CreateDebt records a new debt between two parties.
func (s *debtService) CreateDebt(creditorRef, debtorRef, description string, amount int64) (*models.Debt, error) {
	if creditorRef == "" || debtorRef == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "creditor and debtor are required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "debt amount must be greater than zero")
	}

	debt := &models.Debt{
		CreditorRef: creditorRef,
		DebtorRef:   debtorRef,
		Description: description,
		Amount:      amount,
		Status:      models.DebtStatusOpen,
	}
	if err := s.debts.Create(debt); err != nil {
		return nil, err
	}
	return debt, nil
}

// GetDebtByID retrieves a debt with its payment history.
func (s *debtService) GetDebtByID(debtID string) (*models.Debt, []models.DebtPayment, error) {
	debt, err := s.debts.Get(debtID)
	if err != nil {
		return nil, nil, err
	}
	payments, err := s.payments.ListByDebt(debt.ID)
	if err != nil {
		return nil, nil, err
	}
	return debt, payments, nil
}

// ListDebts retrieves debts, optionally filtered by status.
func (s *debtService) ListDebts(status *models.DebtStatus) ([]models.Debt, error) {
	return s.debts.List(status)
}

// RecordPayment appends a payment and adds its amount to the debt's paid
// total. A payment that would push the total past the debt amount is
// rejected outright, never silently clamped.
func (s *debtService) RecordPayment(debtID string, amount int64, date time.Time) (*models.Debt, *DirtySet, error) {
	if amount <= 0 {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "payment amount must be greater than zero")
	}

	debt, err := s.debts.Get(debtID)
	if err != nil {
		return nil, nil, err
	}

	if debt.PaidAmount+amount > debt.Amount {
		return nil, nil, apperrors.ErrOverpayment
	}

	if date.IsZero() {
		date = time.Now()
	}

	payment := &models.DebtPayment{
		DebtID: debt.ID,
		Amount: amount,
		Date:   date,
	}
	if err := s.payments.Create(payment); err != nil {
		return nil, nil, err
	}

	debt.PaidAmount += amount
	if err := s.debts.Update(debt); err != nil {
		return nil, nil, apperrors.NewPartialFailure("record debt payment",
			[]string{"append payment record"}, "update debt paid total", err)
	}

	dirty := NewDirtySet()
	dirty.AddDebt(debt.ID)
	return debt, dirty, nil
}

// DeletePayment reverses a payment's contribution to the debt's paid total,
// floored at zero, then deletes the payment record. If the reversal fails,
// the record is kept so the balance-adjusting intent is not lost.
func (s *debtService) DeletePayment(paymentID string) (*models.Debt, *DirtySet, error) {
	payment, err := s.payments.Get(paymentID)
	if err != nil {
		return nil, nil, err
	}

	debt, err := s.debts.Get(payment.DebtID)
	if err != nil {
		return nil, nil, err
	}

	debt.PaidAmount -= payment.Amount
	if debt.PaidAmount < 0 {
		debt.PaidAmount = 0
	}
	if err := s.debts.Update(debt); err != nil {
		return nil, nil, err
	}

	if err := s.payments.Delete(payment.ID); err != nil {
		return nil, nil, apperrors.NewPartialFailure("delete debt payment",
			[]string{"reverse debt paid total"}, "delete payment record", err)
	}

	dirty := NewDirtySet()
	dirty.AddDebt(debt.ID)
	return debt, dirty, nil
}

// SettleDebt marks a debt settled. This is deliberately an explicit action:
// paid_amount reaching the debt amount never transitions the status by
// itself.
func (s *debtService) SettleDebt(debtID string) (*models.Debt, *DirtySet, error) {
	debt, err := s.debts.Get(debtID)
	if err != nil {
		return nil, nil, err
	}

	debt.Status = models.DebtStatusSettled
	if err := s.debts.Update(debt); err != nil {
		return nil, nil, err
	}

	dirty := NewDirtySet()
	dirty.AddDebt(debt.ID)
	return debt, dirty, nil
}
