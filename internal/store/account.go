package store

import (
	"errors"

	"gorm.io/gorm"

	apperrors "tally/internal/errors"
	"tally/internal/models"
)

// accountStore is the GORM-backed AccountStore.
type accountStore struct {
	db *gorm.DB
}

func (s *accountStore) Create(account *models.Account) error {
	if err := s.db.Create(account).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *accountStore) Get(id string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ? AND is_active = ?", id, true).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

func (s *accountStore) List(ownerRef string) ([]models.Account, error) {
	var accounts []models.Account
	q := s.db.Where("is_active = ?", true)
	if ownerRef != "" {
		q = q.Where("owner_ref = ?", ownerRef)
	}
	if err := q.Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return accounts, nil
}

func (s *accountStore) Update(account *models.Account) error {
	if err := s.db.Save(account).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *accountStore) UpdateBalance(id string, balance int64) error {
	if err := s.db.Model(&models.Account{}).Where("id = ?", id).Update("balance", balance).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *accountStore) Delete(id string) error {
	if err := s.db.Where("id = ?", id).Delete(&models.Account{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
