package candidatestore

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"recruiting-backend/lib/utils/errs"
	"recruiting-backend/models"
	dbmodels "recruiting-backend/models/db"
)

type Provider interface {
	CreateBatch(ctx context.Context, list []dbmodels.Candidate) error
	MovePhase(ctx context.Context, id, fromPhaseID, toPhaseID string, updatedAt time.Time) error
	UpdateStatus(ctx context.Context, id string, from, to models.CandidateStatus, updatedAt time.Time) error
	GetByID(ctx context.Context, id string) (*dbmodels.Candidate, error)
	ListByRequisition(ctx context.Context, requisitionID string) ([]dbmodels.Candidate, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// CreateBatch - все записи пакета создаются в одной транзакции
func (i impl) CreateBatch(ctx context.Context, list []dbmodels.Candidate) error {
	if len(list) == 0 {
		return nil
	}
	return i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).
			Create(&list).
			Error
	})
}

// MovePhase - перемещение с проверкой текущего этапа, если этап уже изменен - ErrStaleState
func (i impl) MovePhase(ctx context.Context, id, fromPhaseID, toPhaseID string, updatedAt time.Time) error {
	tx := i.db.WithContext(ctx).
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Where("current_phase_id = ?", fromPhaseID).
		Updates(map[string]interface{}{
			"current_phase_id": toPhaseID,
			"updated_at":       updatedAt,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errs.ErrStaleState
	}
	return nil
}

func (i impl) UpdateStatus(ctx context.Context, id string, from, to models.CandidateStatus, updatedAt time.Time) error {
	tx := i.db.WithContext(ctx).
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Where("status = ?", from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": updatedAt,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errs.ErrStaleState
	}
	return nil
}

func (i impl) GetByID(ctx context.Context, id string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.WithContext(ctx).
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByRequisition(ctx context.Context, requisitionID string) ([]dbmodels.Candidate, error) {
	list := []dbmodels.Candidate{}
	tx := i.db.WithContext(ctx).
		Model(&dbmodels.Candidate{})
	if requisitionID != "" {
		tx = tx.Where("requisition_id = ?", requisitionID)
	}
	err := tx.Order("created_at asc").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
