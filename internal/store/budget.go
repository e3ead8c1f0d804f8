package store

import (
	"errors"

	"gorm.io/gorm"

	apperrors "tally/internal/errors"
	"tally/internal/models"
)

// budgetStore is the GORM-backed BudgetStore.
type budgetStore struct {
	db *gorm.DB
}

func (s *budgetStore) Create(budget *models.Budget) error {
	if err := s.db.Create(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *budgetStore) Get(id string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("id = ?", id).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

func (s *budgetStore) List(isActive *bool) ([]models.Budget, error) {
	q := s.db.Model(&models.Budget{})
	if isActive != nil {
		q = q.Where("is_active = ?", *isActive)
	}

	var budgets []models.Budget
	if err := q.Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

func (s *budgetStore) ListByCategory(categoryID string) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := s.db.Where("category_id = ? AND is_active = ?", categoryID, true).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

func (s *budgetStore) Update(budget *models.Budget) error {
	if err := s.db.Save(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *budgetStore) Delete(id string) error {
	if err := s.db.Where("id = ?", id).Delete(&models.Budget{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
