package pdfexport

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	indicatorsapimodels "recruiting-backend/models/api/indicators"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

var (
	indicatorHeaders = []string{"", "Abiertas", "Cerradas", "Operativo", "Coord.", "Jefatura", "Gerencia", "Prom. días", "Mín. días", "Máx. días"}
	indicatorWidths  = []float64{62, 22, 22, 22, 22, 22, 22, 24, 24, 24}
	internHeaders    = []string{"Reclutador", "Abiertas", "Cerradas"}
	internWidths     = []float64{62, 22, 22}
)

// GenerateIndicators формирует отчет по показателям подбора: компании, рекрутеры и стажеры
func GenerateIndicators(view indicatorsapimodels.IndicatorsView, generatedAt time.Time) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateIndicators panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Indicadores de reclutamiento", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr("Indicadores de reclutamiento"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, tr("Generado: "+generatedAt.Format("02.01.2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	companyRows := make([][]string, 0, len(view.Companies))
	for _, rec := range view.Companies {
		companyRows = append(companyRows, indicatorCells(rec.CompanyName, rec.Counters, rec.CargoCounters, rec.ClosingStats))
	}
	writeTable(pdf, tr, "Empresas", withFirst(indicatorHeaders, "Empresa"), indicatorWidths, companyRows)

	recruiterRows := make([][]string, 0, len(view.Recruiters))
	for _, rec := range view.Recruiters {
		recruiterRows = append(recruiterRows, indicatorCells(rec.RecruiterName, rec.Counters, rec.CargoCounters, rec.ClosingStats))
	}
	writeTable(pdf, tr, "Reclutadores", withFirst(indicatorHeaders, "Reclutador"), indicatorWidths, recruiterRows)

	internRows := make([][]string, 0, len(view.Interns))
	for _, rec := range view.Interns {
		internRows = append(internRows, []string{rec.RecruiterName, strconv.Itoa(rec.OpenVacancies), strconv.Itoa(rec.ClosedVacancies)})
	}
	writeTable(pdf, tr, "Pasantes", internHeaders, internWidths, internRows)

	if pdf.Error() != nil {
		return nil, errors.Wrap(pdf.Error(), "ошибка формирования pdf")
	}
	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования pdf")
	}
	return buf.Bytes(), nil
}

func writeTable(pdf *fpdf.Fpdf, tr func(string) string, title string, headers []string, widths []float64, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for idx, header := range headers {
		pdf.CellFormat(widths[idx], 7, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		for idx, value := range row {
			align := "R"
			if idx == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[idx], 6, tr(value), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}

func withFirst(headers []string, first string) []string {
	return append([]string{first}, headers[1:]...)
}

func indicatorCells(name string, counters indicatorsapimodels.Counters, cargo indicatorsapimodels.CargoCounters, stats indicatorsapimodels.ClosingStats) []string {
	return []string{
		name,
		strconv.Itoa(counters.OpenVacancies),
		strconv.Itoa(counters.ClosedVacancies),
		strconv.Itoa(cargo.Operativo),
		strconv.Itoa(cargo.Coordinacion),
		strconv.Itoa(cargo.Jefatura),
		strconv.Itoa(cargo.Gerencia),
		formatDays(stats.AvgClosingTime),
		formatDays(stats.MinClosingTime),
		formatDays(stats.MaxClosingTime),
	}
}

func formatDays(value *float64) string {
	rounded := indicatorsapimodels.RoundDays(value)
	if rounded == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *rounded)
}
