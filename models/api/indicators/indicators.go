package indicatorsapimodels

import (
	"math"
	"recruiting-backend/models"
	"time"

	"github.com/pkg/errors"
)

type Counters struct {
	OpenVacancies   int `json:"vacantes_abiertas"`
	ClosedVacancies int `json:"vacantes_cerradas"`
}

type CargoCounters struct {
	Operativo    int `json:"operativo"`
	Coordinacion int `json:"coordinacion"`
	Jefatura     int `json:"jefatura"`
	Gerencia     int `json:"gerencia"`
}

// ClosingStats - статистика срока закрытия в сутках, nil если закрытых заявок за год нет
type ClosingStats struct {
	AvgClosingTime *float64 `json:"avgClosingTime"`
	MinClosingTime *float64 `json:"minClosingTime"`
	MaxClosingTime *float64 `json:"maxClosingTime"`
}

// RoundDays - округление срока закрытия до десятых для отчетов
func RoundDays(value *float64) *float64 {
	if value == nil {
		return nil
	}
	rounded := math.Round(*value*10) / 10
	return &rounded
}

type CompanyIndicatorRow struct {
	CompanyName string `json:"company_name"`
	Counters
	CargoCounters
	ClosingStats
}

type RecruiterIndicatorRow struct {
	RecruiterName string `json:"recruiter_name"`
	Counters
	CargoCounters
	ClosingStats
}

type InternIndicatorRow struct {
	RecruiterName string `json:"recruiter_name"`
	Counters
}

type IndicatorsView struct {
	Companies  []CompanyIndicatorRow   `json:"companies"`
	Recruiters []RecruiterIndicatorRow `json:"recruiters"`
	Interns    []InternIndicatorRow    `json:"interns"`
}

type IndicatorFilter struct {
	CompanyID string                     `json:"company_id"`
	Recruiter string                     `json:"recruiter"`
	CargoType string                     `json:"cargo_type"`
	Statuses  []models.RequisitionStatus `json:"statuses"`
	DateFrom  *time.Time                 `json:"date_from"`
	DateTo    *time.Time                 `json:"date_to"`
}

func (f IndicatorFilter) Validate() error {
	if f.DateFrom != nil && f.DateTo != nil && f.DateTo.Before(*f.DateFrom) {
		return errors.New("дата окончания периода раньше даты начала")
	}
	for _, status := range f.Statuses {
		switch status {
		case models.RequisitionStatusOpen, models.RequisitionStatusClosed, models.RequisitionStatusPaused:
		default:
			return errors.Errorf("неизвестный статус заявки: %v", status)
		}
	}
	return nil
}
