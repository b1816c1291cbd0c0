package models

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type RequisitionStatus string

const (
	RequisitionStatusOpen   RequisitionStatus = "open"
	RequisitionStatusClosed RequisitionStatus = "closed"
	RequisitionStatusPaused RequisitionStatus = "paused"
)

func (s RequisitionStatus) IsOpen() bool {
	return s == RequisitionStatusOpen
}

func (s RequisitionStatus) IsClosed() bool {
	return s == RequisitionStatusClosed
}

// RequisitionTypeIntern - заявки на стажеров считаются отдельно
const RequisitionTypeIntern = "pasante"

type CargoType string

const (
	CargoOperativo    CargoType = "operativo"
	CargoCoordinacion CargoType = "coordinacion"
	CargoJefatura     CargoType = "jefatura"
	CargoGerencia     CargoType = "gerencia"
)

var cargoTypes = map[string]CargoType{
	string(CargoOperativo):    CargoOperativo,
	string(CargoCoordinacion): CargoCoordinacion,
	string(CargoJefatura):     CargoJefatura,
	string(CargoGerencia):     CargoGerencia,
}

// ParseCargoType сопоставляет уровень должности без учета регистра и диакритики.
// Неизвестные значения считаются operativo.
func ParseCargoType(value string) CargoType {
	if cargo, ok := cargoTypes[foldCargo(value)]; ok {
		return cargo
	}
	return CargoOperativo
}

func foldCargo(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, value)
	if err != nil {
		return value
	}
	return folded
}
