package store

import (
	"errors"

	"gorm.io/gorm"

	apperrors "tally/internal/errors"
	"tally/internal/models"
)

// debtStore is the GORM-backed DebtStore.
type debtStore struct {
	db *gorm.DB
}

func (s *debtStore) Create(debt *models.Debt) error {
	if err := s.db.Create(debt).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *debtStore) Get(id string) (*models.Debt, error) {
	var debt models.Debt
	if err := s.db.Where("id = ?", id).First(&debt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDebtNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &debt, nil
}

func (s *debtStore) List(status *models.DebtStatus) ([]models.Debt, error) {
	q := s.db.Model(&models.Debt{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var debts []models.Debt
	if err := q.Order("created_at DESC").Find(&debts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return debts, nil
}

func (s *debtStore) Update(debt *models.Debt) error {
	if err := s.db.Save(debt).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// debtPaymentStore is the GORM-backed DebtPaymentStore.
type debtPaymentStore struct {
	db *gorm.DB
}

func (s *debtPaymentStore) Create(payment *models.DebtPayment) error {
	if err := s.db.Create(payment).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *debtPaymentStore) Get(id string) (*models.DebtPayment, error) {
	var payment models.DebtPayment
	if err := s.db.Where("id = ?", id).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDebtPaymentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &payment, nil
}

func (s *debtPaymentStore) ListByDebt(debtID string) ([]models.DebtPayment, error) {
	var payments []models.DebtPayment
	if err := s.db.Where("debt_id = ?", debtID).Order("date").Find(&payments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return payments, nil
}

func (s *debtPaymentStore) Delete(id string) error {
	if err := s.db.Where("id = ?", id).Delete(&models.DebtPayment{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
