package indicators

import (
	"context"
	"testing"
	"time"

	"recruiting-backend/lib/utils/errs"
	"recruiting-backend/models"
	indicatorsapimodels "recruiting-backend/models/api/indicators"
	dbmodels "recruiting-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func company(id, name string) dbmodels.Company {
	rec := dbmodels.Company{Name: name, IsActive: true}
	rec.ID = id
	return rec
}

func recruiter(id, firstName, lastName string) dbmodels.SpaceUser {
	rec := dbmodels.SpaceUser{FirstName: firstName, LastName: lastName, IsActive: true, Role: models.RecruiterRole}
	rec.ID = id
	return rec
}

func requisition(companyID *string, assigned string, status models.RequisitionStatus, cargo string, created time.Time, closed *time.Time) dbmodels.Requisition {
	rec := dbmodels.Requisition{
		CompanyID:         companyID,
		AssignedRecruiter: assigned,
		CargoType:         cargo,
		Status:            status,
		ClosedDate:        closed,
	}
	rec.CreatedAt = created
	return rec
}

func ptr[T any](v T) *T {
	return &v
}

func TestAggregate(t *testing.T) {
	companies := []dbmodels.Company{company("c1", "Acme"), company("c2", "Globex")}
	recruiters := []dbmodels.SpaceUser{recruiter("u1", "Maria", "Lopez"), recruiter("u2", "Jose", "Perez")}

	t.Run(`closing time of ten days`, func(t *testing.T) {
		list := []dbmodels.Requisition{
			requisition(ptr("c1"), "Maria Lopez", models.RequisitionStatusClosed, "operativo", date(2024, 1, 1), ptr(date(2024, 1, 11))),
		}
		result := Aggregate(list, companies, recruiters, now)
		require.Equal(t, "Acme", result.Companies[0].CompanyName)
		require.Equal(t, 1, result.Companies[0].ClosedVacancies)
		require.Equal(t, 10.0, *result.Companies[0].AvgClosingTime)
		require.Equal(t, 10.0, *result.Companies[0].MinClosingTime)
		require.Equal(t, 10.0, *result.Companies[0].MaxClosingTime)
		require.Equal(t, "Maria Lopez", result.Recruiters[0].RecruiterName)
		require.Equal(t, 10.0, *result.Recruiters[0].AvgClosingTime)
	})

	t.Run(`closed in prior year counted without statistics`, func(t *testing.T) {
		list := []dbmodels.Requisition{
			requisition(ptr("c1"), "u1", models.RequisitionStatusClosed, "operativo", date(2023, 1, 1), ptr(date(2023, 3, 1))),
		}
		result := Aggregate(list, companies, recruiters, now)
		require.Equal(t, 1, result.Companies[0].ClosedVacancies)
		require.Nil(t, result.Companies[0].AvgClosingTime)
		require.Nil(t, result.Companies[0].MinClosingTime)
		require.Nil(t, result.Companies[0].MaxClosingTime)
	})

	t.Run(`closing year follows location of now`, func(t *testing.T) {
		santiago := time.FixedZone("CLT", -3*60*60)
		localNow := time.Date(2024, 1, 15, 12, 0, 0, 0, santiago)
		// 2024-01-01 01:00 UTC это еще 2023-12-31 по местному времени
		closedUTC := time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC)
		list := []dbmodels.Requisition{
			requisition(ptr("c1"), "u1", models.RequisitionStatusClosed, "operativo", date(2023, 12, 1), &closedUTC),
		}
		result := Aggregate(list, companies, recruiters, localNow)
		require.Equal(t, 1, result.Companies[0].ClosedVacancies)
		require.Nil(t, result.Companies[0].AvgClosingTime)

		// 2023-12-31 23:00 по местному времени уже 2024 год в UTC
		closedLocal := time.Date(2023, 12, 31, 23, 0, 0, 0, santiago)
		list = []dbmodels.Requisition{
			requisition(ptr("c1"), "u1", models.RequisitionStatusClosed, "operativo", date(2023, 12, 1), &closedLocal),
		}
		result = Aggregate(list, companies, recruiters, time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
		require.NotNil(t, result.Companies[0].AvgClosingTime)
	})

	t.Run(`company without requisitions has zero row`, func(t *testing.T) {
		result := Aggregate(nil, []dbmodels.Company{company("c1", "Acme")}, nil, now)
		require.Equal(t, []indicatorsapimodels.CompanyIndicatorRow{{CompanyName: "Acme"}}, result.Companies)
		require.Nil(t, result.Companies[0].AvgClosingTime)
		require.Empty(t, result.Recruiters)
		require.Empty(t, result.Interns)
	})

	t.Run(`every requisition counted once`, func(t *testing.T) {
		list := []dbmodels.Requisition{
			requisition(ptr("c1"), "u1", models.RequisitionStatusOpen, "gerencia", date(2024, 2, 1), nil),
			requisition(ptr("c2"), "Jose Perez", models.RequisitionStatusPaused, "jefatura", date(2024, 2, 1), nil),
			requisition(nil, "", models.RequisitionStatusOpen, "", date(2024, 2, 1), nil),
			requisition(ptr("deleted"), "someone else", models.RequisitionStatusClosed, "operativo", date(2024, 2, 1), ptr(date(2024, 2, 3))),
			requisition(ptr("c1"), "u2", models.RequisitionStatusClosed, "operativo", date(2024, 2, 1), nil),
		}
		result := Aggregate(list, companies, recruiters, now)

		companyTotal := 0
		for _, row := range result.Companies {
			companyTotal += row.OpenVacancies + row.ClosedVacancies
		}
		require.Equal(t, len(list), companyTotal)
		recruiterTotal := 0
		for _, row := range result.Recruiters {
			recruiterTotal += row.OpenVacancies + row.ClosedVacancies
		}
		require.Equal(t, len(list), recruiterTotal)

		// справочник в исходном порядке, служебные корзины в конце
		require.Len(t, result.Companies, 3)
		require.Equal(t, "Acme", result.Companies[0].CompanyName)
		require.Equal(t, "Globex", result.Companies[1].CompanyName)
		require.Equal(t, NoCompanyName, result.Companies[2].CompanyName)
		require.Equal(t, 1, result.Companies[2].OpenVacancies)
		require.Equal(t, 1, result.Companies[2].ClosedVacancies)
		require.Equal(t, 2.0, *result.Companies[2].AvgClosingTime)

		require.Len(t, result.Recruiters, 3)
		require.Equal(t, UnassignedName, result.Recruiters[2].RecruiterName)
		require.Equal(t, 2, result.Recruiters[2].OpenVacancies+result.Recruiters[2].ClosedVacancies)

		// приостановленная заявка считается не открытой
		require.Equal(t, 0, result.Companies[1].OpenVacancies)
		require.Equal(t, 1, result.Companies[1].ClosedVacancies)
		require.Nil(t, result.Companies[1].AvgClosingTime)
	})

	t.Run(`cargo type breakdown`, func(t *testing.T) {
		list := []dbmodels.Requisition{
			requisition(ptr("c1"), "u1", models.RequisitionStatusOpen, "Coordinación", date(2024, 2, 1), nil),
			requisition(ptr("c1"), "u1", models.RequisitionStatusOpen, "COORDINACION", date(2024, 2, 1), nil),
			requisition(ptr("c1"), "u1", models.RequisitionStatusOpen, "director", date(2024, 2, 1), nil),
			requisition(ptr("c1"), "u1", models.RequisitionStatusOpen, "Jefatura", date(2024, 2, 1), nil),
			requisition(ptr("c1"), "u1", models.RequisitionStatusClosed, "gerencia", date(2024, 2, 1), nil),
		}
		result := Aggregate(list, companies, recruiters, now)
		row := result.Companies[0]
		require.Equal(t, indicatorsapimodels.CargoCounters{Operativo: 1, Coordinacion: 2, Jefatura: 1}, row.CargoCounters)
		require.Equal(t, indicatorsapimodels.Counters{OpenVacancies: 4, ClosedVacancies: 1}, row.Counters)
	})

	t.Run(`statistics over several samples`, func(t *testing.T) {
		list := []dbmodels.Requisition{
			requisition(ptr("c1"), "u1", models.RequisitionStatusClosed, "", date(2024, 1, 1), ptr(date(2024, 1, 3))),
			requisition(ptr("c1"), "u1", models.RequisitionStatusClosed, "", date(2024, 1, 1), ptr(date(2024, 1, 1).Add(12*time.Hour))),
			requisition(ptr("c1"), "u1", models.RequisitionStatusClosed, "", date(2024, 1, 1), ptr(date(2024, 1, 7))),
		}
		row := Aggregate(list, companies, recruiters, now).Companies[0]
		require.InDelta(t, 8.5/3, *row.AvgClosingTime, 1e-9)
		require.Equal(t, 0.5, *row.MinClosingTime)
		require.Equal(t, 6.0, *row.MaxClosingTime)
	})

	t.Run(`interns only for recruiters with intern requisitions`, func(t *testing.T) {
		intern := requisition(ptr("c1"), "u2", models.RequisitionStatusOpen, "operativo", date(2024, 2, 1), nil)
		intern.RequisitionType = models.RequisitionTypeIntern
		closedIntern := requisition(ptr("c1"), "Jose Perez", models.RequisitionStatusClosed, "operativo", date(2024, 1, 1), ptr(date(2024, 1, 11)))
		closedIntern.RequisitionType = models.RequisitionTypeIntern
		regular := requisition(ptr("c1"), "u1", models.RequisitionStatusOpen, "operativo", date(2024, 2, 1), nil)

		result := Aggregate([]dbmodels.Requisition{intern, closedIntern, regular}, companies, recruiters, now)
		require.Equal(t, []indicatorsapimodels.InternIndicatorRow{
			{RecruiterName: "Jose Perez", Counters: indicatorsapimodels.Counters{OpenVacancies: 1, ClosedVacancies: 1}},
		}, result.Interns)
		require.Equal(t, 3, result.Companies[0].OpenVacancies+result.Companies[0].ClosedVacancies)
	})
}

type fakeRequisitionStore struct {
	list  []dbmodels.Requisition
	err   error
	block bool
}

func (f *fakeRequisitionStore) ListForIndicators(ctx context.Context, filter indicatorsapimodels.IndicatorFilter) ([]dbmodels.Requisition, error) {
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.list, f.err
}

type fakeCompanyStore struct {
	list []dbmodels.Company
	err  error
}

func (f *fakeCompanyStore) ListActive(ctx context.Context) ([]dbmodels.Company, error) {
	return f.list, f.err
}

type fakeUsersStore struct {
	list []dbmodels.SpaceUser
	err  error
}

func (f *fakeUsersStore) ListRecruiters(ctx context.Context) ([]dbmodels.SpaceUser, error) {
	return f.list, f.err
}

func getInstance(requisitions *fakeRequisitionStore, companies *fakeCompanyStore, users *fakeUsersStore) *impl {
	i := NewInstance(requisitions, companies, users, nil, time.Second).(*impl)
	i.now = func() time.Time { return now }
	return i
}

func TestIndicators(t *testing.T) {
	t.Run(`parallel fetch and fold`, func(t *testing.T) {
		i := getInstance(
			&fakeRequisitionStore{list: []dbmodels.Requisition{
				requisition(ptr("c1"), "u1", models.RequisitionStatusOpen, "gerencia", date(2024, 2, 1), nil),
				requisition(ptr("c1"), "u1", models.RequisitionStatusOpen, "operativo", date(2024, 2, 1), nil),
			}},
			&fakeCompanyStore{list: []dbmodels.Company{company("c1", "Acme")}},
			&fakeUsersStore{list: []dbmodels.SpaceUser{recruiter("u1", "Maria", "Lopez")}},
		)
		result, err := i.Indicators(context.TODO(), indicatorsapimodels.IndicatorFilter{})
		require.Nil(t, err)
		require.Equal(t, 2, result.Companies[0].OpenVacancies)
		require.Equal(t, 2, result.Recruiters[0].OpenVacancies)

		result, err = i.Indicators(context.TODO(), indicatorsapimodels.IndicatorFilter{CargoType: "Gerencia"})
		require.Nil(t, err)
		require.Equal(t, 1, result.Companies[0].OpenVacancies)
		require.Equal(t, 1, result.Companies[0].Gerencia)
	})

	t.Run(`any fetch failure fails whole run`, func(t *testing.T) {
		fetchErr := errors.New("connection refused")
		cases := []struct {
			name string
			inst *impl
		}{
			{"requisitions", getInstance(&fakeRequisitionStore{err: fetchErr}, &fakeCompanyStore{}, &fakeUsersStore{})},
			{"companies", getInstance(&fakeRequisitionStore{}, &fakeCompanyStore{err: fetchErr}, &fakeUsersStore{})},
			{"recruiters", getInstance(&fakeRequisitionStore{}, &fakeCompanyStore{}, &fakeUsersStore{err: fetchErr})},
		}
		for _, tc := range cases {
			result, err := tc.inst.Indicators(context.TODO(), indicatorsapimodels.IndicatorFilter{})
			require.True(t, errors.Is(err, errs.ErrGateway), tc.name)
			require.Empty(t, result.Companies, tc.name)
			require.Empty(t, result.Recruiters, tc.name)
			require.Empty(t, result.Interns, tc.name)
		}
	})

	t.Run(`timeout`, func(t *testing.T) {
		i := getInstance(&fakeRequisitionStore{block: true}, &fakeCompanyStore{}, &fakeUsersStore{})
		i.timeout = 10 * time.Millisecond
		_, err := i.Indicators(context.TODO(), indicatorsapimodels.IndicatorFilter{})
		require.True(t, errors.Is(err, errs.ErrTimeout))
		require.True(t, errors.Is(err, errs.ErrGateway))
	})

	t.Run(`invalid filter`, func(t *testing.T) {
		i := getInstance(&fakeRequisitionStore{}, &fakeCompanyStore{}, &fakeUsersStore{})
		_, err := i.Indicators(context.TODO(), indicatorsapimodels.IndicatorFilter{
			DateFrom: ptr(date(2024, 2, 1)),
			DateTo:   ptr(date(2024, 1, 1)),
		})
		require.True(t, errors.Is(err, errs.ErrValidation))
	})
}
