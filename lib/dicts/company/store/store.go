package store

import (
	"context"

	"gorm.io/gorm"
	dbmodels "recruiting-backend/models/db"
)

type Provider interface {
	// ListActive - справочник активных компаний, упорядочен по названию
	ListActive(ctx context.Context) (list []dbmodels.Company, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) ListActive(ctx context.Context) (list []dbmodels.Company, err error) {
	list = []dbmodels.Company{}
	err = i.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
