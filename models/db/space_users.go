package dbmodels

import (
	"fmt"
	"recruiting-backend/models"
	"strings"
)

type SpaceUser struct {
	BaseModel
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	Email       string `gorm:"type:varchar(255)"`
	IsActive    bool
	PhoneNumber string          `gorm:"type:varchar(15)"`
	Role        models.UserRole `gorm:"type:varchar(50)"`
}

func (r SpaceUser) GetFullName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", r.FirstName, r.LastName))
}
