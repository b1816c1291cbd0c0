package requisitionstore

import (
	"context"

	indicatorsapimodels "recruiting-backend/models/api/indicators"
	dbmodels "recruiting-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	// ListForIndicators - неконфиденциальные заявки. Фильтр по уровню должности
	// применяется при расчете, тк неизвестный уровень считается operativo.
	ListForIndicators(ctx context.Context, filter indicatorsapimodels.IndicatorFilter) (list []dbmodels.Requisition, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) ListForIndicators(ctx context.Context, filter indicatorsapimodels.IndicatorFilter) (list []dbmodels.Requisition, err error) {
	list = []dbmodels.Requisition{}
	tx := i.db.WithContext(ctx).
		Model(dbmodels.Requisition{}).
		Where("confidential = ?", false)
	if filter.CompanyID != "" {
		tx = tx.Where("company_id = ?", filter.CompanyID)
	}
	if filter.Recruiter != "" {
		tx = tx.Where("assigned_recruiter = ?", filter.Recruiter)
	}
	if len(filter.Statuses) != 0 {
		tx = tx.Where("status in (?)", filter.Statuses)
	}
	if filter.DateFrom != nil {
		tx = tx.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		tx = tx.Where("created_at <= ?", *filter.DateTo)
	}
	err = tx.
		Order("created_at asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
