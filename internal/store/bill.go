package store

import (
	"errors"

	"gorm.io/gorm"

	apperrors "tally/internal/errors"
	"tally/internal/models"
)

// billStore is the GORM-backed BillStore.
type billStore struct {
	db *gorm.DB
}

func (s *billStore) Create(bill *models.Bill) error {
	if err := s.db.Create(bill).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *billStore) Get(id string) (*models.Bill, error) {
	var bill models.Bill
	if err := s.db.Where("id = ?", id).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBillNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &bill, nil
}

func (s *billStore) List(ownerRef string) ([]models.Bill, error) {
	q := s.db.Model(&models.Bill{})
	if ownerRef != "" {
		q = q.Where("owner_ref = ?", ownerRef)
	}

	var bills []models.Bill
	if err := q.Order("created_at DESC").Find(&bills).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bills, nil
}

func (s *billStore) Update(bill *models.Bill) error {
	if err := s.db.Save(bill).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// billParticipantStore is the GORM-backed BillParticipantStore.
type billParticipantStore struct {
	db *gorm.DB
}

func (s *billParticipantStore) Create(participant *models.BillParticipant) error {
	if err := s.db.Create(participant).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *billParticipantStore) Get(id string) (*models.BillParticipant, error) {
	var participant models.BillParticipant
	if err := s.db.Where("id = ?", id).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBillParticipantNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &participant, nil
}

func (s *billParticipantStore) ListByBill(billID string) ([]models.BillParticipant, error) {
	var participants []models.BillParticipant
	if err := s.db.Where("bill_id = ?", billID).Order("created_at").Find(&participants).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return participants, nil
}

func (s *billParticipantStore) Update(participant *models.BillParticipant) error {
	if err := s.db.Save(participant).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
