package phasestore

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbmodels "recruiting-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, rec dbmodels.Phase) (id string, err error)
	List(ctx context.Context) (list []dbmodels.Phase, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec dbmodels.Phase) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	err = i.db.WithContext(ctx).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(ctx context.Context) (list []dbmodels.Phase, err error) {
	list = []dbmodels.Phase{}
	err = i.db.WithContext(ctx).
		Order("phase_order asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
