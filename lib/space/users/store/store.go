package spaceusersstore

import (
	"context"

	"recruiting-backend/models"
	dbmodels "recruiting-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	// ListRecruiters - активные пользователи с ролью рекрутера
	ListRecruiters(ctx context.Context) (list []dbmodels.SpaceUser, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) ListRecruiters(ctx context.Context) (list []dbmodels.SpaceUser, err error) {
	list = []dbmodels.SpaceUser{}
	err = i.db.WithContext(ctx).
		Model(dbmodels.SpaceUser{}).
		Where("role = ?", models.RecruiterRole).
		Where("is_active = ?", true).
		Order("first_name asc, last_name asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
