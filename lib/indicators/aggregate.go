package indicators

import (
	"time"

	"recruiting-backend/models"
	indicatorsapimodels "recruiting-backend/models/api/indicators"
	dbmodels "recruiting-backend/models/db"
)

const (
	NoCompanyName  = "Sin empresa"
	UnassignedName = "Sin asignar"
)

type keyKind int

const (
	keyKnown keyKind = iota
	keyUnassigned
	keyNoCompany
)

// accountKey - строка показателей: сущность из справочника или служебная корзина
type accountKey struct {
	kind keyKind
	id   string
}

func knownKey(id string) accountKey {
	return accountKey{kind: keyKnown, id: id}
}

var (
	unassignedKey = accountKey{kind: keyUnassigned}
	noCompanyKey  = accountKey{kind: keyNoCompany}
)

type account struct {
	name     string
	counters indicatorsapimodels.Counters
	cargo    indicatorsapimodels.CargoCounters
	samples  []float64 // срок закрытия в сутках
}

func (a *account) add(rec dbmodels.Requisition, now time.Time) {
	if !rec.Status.IsOpen() {
		a.counters.ClosedVacancies++
		// год закрытия считается в часовом поясе расчета
		if days, ok := rec.ClosingDays(); ok && rec.ClosedDate.In(now.Location()).Year() == now.Year() {
			a.samples = append(a.samples, days)
		}
		return
	}
	a.counters.OpenVacancies++
	switch models.ParseCargoType(rec.CargoType) {
	case models.CargoCoordinacion:
		a.cargo.Coordinacion++
	case models.CargoJefatura:
		a.cargo.Jefatura++
	case models.CargoGerencia:
		a.cargo.Gerencia++
	default:
		a.cargo.Operativo++
	}
}

func (a *account) addCounters(rec dbmodels.Requisition) {
	if rec.Status.IsOpen() {
		a.counters.OpenVacancies++
	} else {
		a.counters.ClosedVacancies++
	}
}

func (a *account) stats() indicatorsapimodels.ClosingStats {
	if len(a.samples) == 0 {
		return indicatorsapimodels.ClosingStats{}
	}
	sum, minDays, maxDays := 0.0, a.samples[0], a.samples[0]
	for _, days := range a.samples {
		sum += days
		minDays = min(minDays, days)
		maxDays = max(maxDays, days)
	}
	avg := sum / float64(len(a.samples))
	return indicatorsapimodels.ClosingStats{
		AvgClosingTime: &avg,
		MinClosingTime: &minDays,
		MaxClosingTime: &maxDays,
	}
}

// ledger хранит строки в порядке появления: сначала справочник, затем служебные корзины
type ledger struct {
	order    []accountKey
	accounts map[accountKey]*account
}

func newLedger() *ledger {
	return &ledger{accounts: map[accountKey]*account{}}
}

func (l *ledger) get(key accountKey, name string) *account {
	if acc, ok := l.accounts[key]; ok {
		return acc
	}
	acc := &account{name: name}
	l.accounts[key] = acc
	l.order = append(l.order, key)
	return acc
}

func (l *ledger) each(fn func(acc *account)) {
	for _, key := range l.order {
		fn(l.accounts[key])
	}
}

type recruiterIndex struct {
	byID   map[string]dbmodels.SpaceUser
	byName map[string]dbmodels.SpaceUser
}

func newRecruiterIndex(recruiters []dbmodels.SpaceUser) recruiterIndex {
	index := recruiterIndex{
		byID:   make(map[string]dbmodels.SpaceUser, len(recruiters)),
		byName: make(map[string]dbmodels.SpaceUser, len(recruiters)),
	}
	for _, rec := range recruiters {
		index.byID[rec.ID] = rec
		if _, ok := index.byName[rec.GetFullName()]; !ok {
			index.byName[rec.GetFullName()] = rec
		}
	}
	return index
}

// resolve ищет рекрутера сначала по ид, затем по ФИО
func (r recruiterIndex) resolve(assigned string) (accountKey, string) {
	if rec, ok := r.byID[assigned]; ok {
		return knownKey(rec.ID), rec.GetFullName()
	}
	if rec, ok := r.byName[assigned]; ok {
		return knownKey(rec.ID), rec.GetFullName()
	}
	return unassignedKey, UnassignedName
}

// Aggregate сворачивает заявки в строки показателей по компаниям, рекрутерам и стажерам.
// Компании и рекрутеры из справочников попадают в результат даже без заявок.
// Статистика срока закрытия считается только по заявкам, закрытым в текущем году.
func Aggregate(requisitions []dbmodels.Requisition, companies []dbmodels.Company, recruiters []dbmodels.SpaceUser, now time.Time) indicatorsapimodels.IndicatorsView {
	companyLedger := newLedger()
	for _, rec := range companies {
		companyLedger.get(knownKey(rec.ID), rec.Name)
	}
	recruiterLedger := newLedger()
	for _, rec := range recruiters {
		recruiterLedger.get(knownKey(rec.ID), rec.GetFullName())
	}
	internLedger := newLedger()
	index := newRecruiterIndex(recruiters)

	for _, rec := range requisitions {
		companyKey, companyName := noCompanyKey, NoCompanyName
		if rec.CompanyID != nil {
			if _, ok := companyLedger.accounts[knownKey(*rec.CompanyID)]; ok {
				companyKey, companyName = knownKey(*rec.CompanyID), ""
			}
		}
		companyLedger.get(companyKey, companyName).add(rec, now)

		recruiterKey, recruiterName := index.resolve(rec.AssignedRecruiter)
		recruiterLedger.get(recruiterKey, recruiterName).add(rec, now)

		if rec.IsIntern() {
			internLedger.get(recruiterKey, recruiterName).addCounters(rec)
		}
	}

	result := indicatorsapimodels.IndicatorsView{
		Companies:  make([]indicatorsapimodels.CompanyIndicatorRow, 0, len(companyLedger.order)),
		Recruiters: make([]indicatorsapimodels.RecruiterIndicatorRow, 0, len(recruiterLedger.order)),
		Interns:    make([]indicatorsapimodels.InternIndicatorRow, 0, len(internLedger.order)),
	}
	companyLedger.each(func(acc *account) {
		result.Companies = append(result.Companies, indicatorsapimodels.CompanyIndicatorRow{
			CompanyName:   acc.name,
			Counters:      acc.counters,
			CargoCounters: acc.cargo,
			ClosingStats:  acc.stats(),
		})
	})
	recruiterLedger.each(func(acc *account) {
		result.Recruiters = append(result.Recruiters, indicatorsapimodels.RecruiterIndicatorRow{
			RecruiterName: acc.name,
			Counters:      acc.counters,
			CargoCounters: acc.cargo,
			ClosingStats:  acc.stats(),
		})
	})
	internLedger.each(func(acc *account) {
		result.Interns = append(result.Interns, indicatorsapimodels.InternIndicatorRow{
			RecruiterName: acc.name,
			Counters:      acc.counters,
		})
	})
	return result
}
