package store

import (
	"errors"

	"gorm.io/gorm"

	apperrors "tally/internal/errors"
	"tally/internal/models"
)

// goalStore is the GORM-backed GoalStore.
type goalStore struct {
	db *gorm.DB
}

func (s *goalStore) Create(goal *models.Goal) error {
	if err := s.db.Create(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *goalStore) Get(id string) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("id = ?", id).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

func (s *goalStore) List(ownerRef string) ([]models.Goal, error) {
	q := s.db.Model(&models.Goal{})
	if ownerRef != "" {
		q = q.Where("owner_ref = ?", ownerRef)
	}

	var goals []models.Goal
	if err := q.Order("priority DESC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

func (s *goalStore) Update(goal *models.Goal) error {
	if err := s.db.Save(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *goalStore) Delete(id string) error {
	if err := s.db.Where("id = ?", id).Delete(&models.Goal{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// goalDepositStore is the GORM-backed GoalDepositStore.
type goalDepositStore struct {
	db *gorm.DB
}

func (s *goalDepositStore) Create(deposit *models.GoalDeposit) error {
	if err := s.db.Create(deposit).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *goalDepositStore) ListByGoal(goalID string) ([]models.GoalDeposit, error) {
	var deposits []models.GoalDeposit
	if err := s.db.Where("goal_id = ?", goalID).Order("date").Find(&deposits).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return deposits, nil
}

func (s *goalDepositStore) DeleteByGoal(goalID string) error {
	if err := s.db.Where("goal_id = ?", goalID).Delete(&models.GoalDeposit{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
