package dbmodels

import (
	"recruiting-backend/models"

	"github.com/pkg/errors"
)

type Candidate struct {
	BaseModel
	Name           string                 `gorm:"type:varchar(255)"`
	Email          string                 `gorm:"type:varchar(255)"`
	Phone          string                 `gorm:"type:varchar(50)"`
	RequisitionID  *string                `gorm:"type:varchar(36);index"`
	Status         models.CandidateStatus `gorm:"type:varchar(20);index"`
	CurrentPhaseID string                 `gorm:"type:varchar(36);index"`
}

func (c Candidate) Validate() error {
	if c.Name == "" {
		return errors.New("не указано имя кандидата")
	}
	if c.Email == "" {
		return errors.New("не указан email кандидата")
	}
	if c.CurrentPhaseID == "" {
		return errors.New("не указан этап кандидата")
	}
	return nil
}

// IsAllowStatusChange - смена статуса моделирует выбытие кандидата, принятый кандидат не меняет статус
func (c Candidate) IsAllowStatusChange(newStatus models.CandidateStatus) (bool, error) {
	if !newStatus.IsValid() {
		return false, errors.New("неизвестный статус")
	}
	if c.Status == newStatus {
		return false, nil
	}
	switch c.Status {
	case models.CandidateStatusPlaced:
		return false, errors.New("смена статуса недоступна, кандидат уже принят")
	case models.CandidateStatusWithdrawn:
		if newStatus != models.CandidateStatusActive {
			return false, errors.New("выбывшего кандидата можно только вернуть в процесс")
		}
	}
	return true, nil
}
