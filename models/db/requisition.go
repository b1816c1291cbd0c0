package dbmodels

import (
	"recruiting-backend/lib/utils/helpers"
	"recruiting-backend/models"
	"time"
)

type Requisition struct {
	BaseModel
	CompanyID         *string                  `gorm:"type:varchar(36);index:idx_company"`
	Company           *Company                 `gorm:"foreignKey:CompanyID"`
	AssignedRecruiter string                   `gorm:"type:varchar(255);index"` // ид или ФИО рекрутера
	VacancyName       string                   `gorm:"type:varchar(255)"`
	CargoType         string                   `gorm:"type:varchar(50)"`
	Status            models.RequisitionStatus `gorm:"type:varchar(20);index"`
	RequisitionType   string                   `gorm:"type:varchar(50)"`
	Confidential      bool
	ClosedDate        *time.Time
}

func (r Requisition) IsIntern() bool {
	return r.RequisitionType == models.RequisitionTypeIntern
}

// ClosingDays - срок закрытия в сутках, ok=false если заявка не закрыта или нет дат
func (r Requisition) ClosingDays() (days float64, ok bool) {
	if !r.Status.IsClosed() || r.CreatedAt.IsZero() || r.ClosedDate == nil || r.ClosedDate.IsZero() {
		return 0, false
	}
	return helpers.DaysBetween(r.CreatedAt, *r.ClosedDate), true
}
