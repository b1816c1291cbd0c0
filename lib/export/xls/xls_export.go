package xlsexport

import (
	"bytes"

	indicatorsapimodels "recruiting-backend/models/api/indicators"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportIndicators(view indicatorsapimodels.IndicatorsView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const (
	CompaniesSheet  = "Empresas"
	RecruitersSheet = "Reclutadores"
	InternsSheet    = "Pasantes"
)

var (
	companyHeaders   = []string{"Empresa", "Vacantes abiertas", "Vacantes cerradas", "Operativo", "Coordinación", "Jefatura", "Gerencia", "Tiempo promedio (días)", "Tiempo mínimo (días)", "Tiempo máximo (días)"}
	recruiterHeaders = []string{"Reclutador", "Vacantes abiertas", "Vacantes cerradas", "Operativo", "Coordinación", "Jefatura", "Gerencia", "Tiempo promedio (días)", "Tiempo mínimo (días)", "Tiempo máximo (días)"}
	internHeaders    = []string{"Reclutador", "Vacantes abiertas", "Vacantes cerradas"}
)

func (i impl) ExportIndicators(view indicatorsapimodels.IndicatorsView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	if err := f.SetSheetName("Sheet1", CompaniesSheet); err != nil {
		return nil, errors.Wrap(err, "ошибка создания листа в xlsx")
	}
	for _, sheet := range []string{RecruitersSheet, InternsSheet} {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, errors.Wrap(err, "ошибка создания листа в xlsx")
		}
	}

	companyRows := make([][]interface{}, 0, len(view.Companies))
	for _, rec := range view.Companies {
		companyRows = append(companyRows, indicatorValues(rec.CompanyName, rec.Counters, rec.CargoCounters, rec.ClosingStats))
	}
	if err := writeSheet(f, CompaniesSheet, companyHeaders, companyRows); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования листа компаний в xlsx")
	}

	recruiterRows := make([][]interface{}, 0, len(view.Recruiters))
	for _, rec := range view.Recruiters {
		recruiterRows = append(recruiterRows, indicatorValues(rec.RecruiterName, rec.Counters, rec.CargoCounters, rec.ClosingStats))
	}
	if err := writeSheet(f, RecruitersSheet, recruiterHeaders, recruiterRows); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования листа рекрутеров в xlsx")
	}

	internRows := make([][]interface{}, 0, len(view.Interns))
	for _, rec := range view.Interns {
		internRows = append(internRows, []interface{}{rec.RecruiterName, rec.OpenVacancies, rec.ClosedVacancies})
	}
	if err := writeSheet(f, InternsSheet, internHeaders, internRows); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования листа стажеров в xlsx")
	}
	return f.WriteToBuffer()
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}) error {
	row, err := writeHeader(f, sheet, 0, headers, 20)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	if err = applyDataCellStyle(f, sheet, 1, row+1, len(headers), row+len(rows)); err != nil {
		return err
	}
	for _, values := range rows {
		row++
		if err = writeRow(f, sheet, row, values...); err != nil {
			return err
		}
	}
	return nil
}

// indicatorValues - пустая статистика остается пустой ячейкой, а не нулем
func indicatorValues(name string, counters indicatorsapimodels.Counters, cargo indicatorsapimodels.CargoCounters, stats indicatorsapimodels.ClosingStats) []interface{} {
	values := []interface{}{
		name,
		counters.OpenVacancies,
		counters.ClosedVacancies,
		cargo.Operativo,
		cargo.Coordinacion,
		cargo.Jefatura,
		cargo.Gerencia,
	}
	for _, days := range []*float64{stats.AvgClosingTime, stats.MinClosingTime, stats.MaxClosingTime} {
		if rounded := indicatorsapimodels.RoundDays(days); rounded != nil {
			values = append(values, *rounded)
		} else {
			values = append(values, nil)
		}
	}
	return values
}
