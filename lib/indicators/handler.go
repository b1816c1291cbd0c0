package indicators

import (
	"bytes"
	"context"
	"time"

	"recruiting-backend/db"
	companystore "recruiting-backend/lib/dicts/company/store"
	pdfexport "recruiting-backend/lib/export/pdf"
	xlsexport "recruiting-backend/lib/export/xls"
	requisitionstore "recruiting-backend/lib/requisition/store"
	spaceusersstore "recruiting-backend/lib/space/users/store"
	"recruiting-backend/lib/utils/errs"
	"recruiting-backend/lib/utils/helpers"
	initchecker "recruiting-backend/lib/utils/init-checker"
	"recruiting-backend/models"
	indicatorsapimodels "recruiting-backend/models/api/indicators"
	dbmodels "recruiting-backend/models/db"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Provider interface {
	Indicators(ctx context.Context, filter indicatorsapimodels.IndicatorFilter) (indicatorsapimodels.IndicatorsView, error)
	ExportToXls(ctx context.Context, filter indicatorsapimodels.IndicatorFilter) (*bytes.Buffer, error)
	ExportToPdf(ctx context.Context, filter indicatorsapimodels.IndicatorFilter) ([]byte, error)
}

var Instance Provider

func NewHandler(timeout time.Duration) {
	initchecker.CheckInit(
		"xlsexport", xlsexport.Instance,
	)
	Instance = NewInstance(
		requisitionstore.NewInstance(db.DB),
		companystore.NewInstance(db.DB),
		spaceusersstore.NewInstance(db.DB),
		xlsexport.Instance,
		timeout,
	)
}

func NewInstance(requisitionStore requisitionstore.Provider, companyStore companystore.Provider,
	usersStore spaceusersstore.Provider, xls xlsexport.Provider, timeout time.Duration) Provider {
	return &impl{
		requisitionStore: requisitionStore,
		companyStore:     companyStore,
		usersStore:       usersStore,
		xls:              xls,
		timeout:          timeout,
		now:              time.Now,
	}
}

type impl struct {
	requisitionStore requisitionstore.Provider
	companyStore     companystore.Provider
	usersStore       spaceusersstore.Provider
	xls              xlsexport.Provider
	timeout          time.Duration
	now              func() time.Time
}

func (i *impl) Indicators(ctx context.Context, filter indicatorsapimodels.IndicatorFilter) (indicatorsapimodels.IndicatorsView, error) {
	logger := log.WithField("module", "indicators")
	if err := filter.Validate(); err != nil {
		return indicatorsapimodels.IndicatorsView{}, errs.Validation(err.Error())
	}
	ctx, cancel := helpers.WithTimeout(ctx, i.timeout)
	defer cancel()

	var (
		requisitions []dbmodels.Requisition
		companies    []dbmodels.Company
		recruiters   []dbmodels.SpaceUser
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		requisitions, err = i.requisitionStore.ListForIndicators(gctx, filter)
		return errs.Gateway(err, "ошибка получения списка заявок")
	})
	g.Go(func() (err error) {
		companies, err = i.companyStore.ListActive(gctx)
		return errs.Gateway(err, "ошибка получения справочника компаний")
	})
	g.Go(func() (err error) {
		recruiters, err = i.usersStore.ListRecruiters(gctx)
		return errs.Gateway(err, "ошибка получения списка рекрутеров")
	})
	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("ошибка расчета показателей подбора")
		return indicatorsapimodels.IndicatorsView{}, err
	}

	if filter.CargoType != "" {
		requisitions = filterCargo(requisitions, models.ParseCargoType(filter.CargoType))
	}
	result := Aggregate(requisitions, companies, recruiters, i.now())
	logger.
		WithField("requisition_count", len(requisitions)).
		WithField("company_count", len(companies)).
		WithField("recruiter_count", len(recruiters)).
		Debug("показатели подбора рассчитаны")
	return result, nil
}

func (i *impl) ExportToXls(ctx context.Context, filter indicatorsapimodels.IndicatorFilter) (*bytes.Buffer, error) {
	view, err := i.Indicators(ctx, filter)
	if err != nil {
		return nil, err
	}
	return i.xls.ExportIndicators(view)
}

func (i *impl) ExportToPdf(ctx context.Context, filter indicatorsapimodels.IndicatorFilter) ([]byte, error) {
	view, err := i.Indicators(ctx, filter)
	if err != nil {
		return nil, err
	}
	return pdfexport.GenerateIndicators(view, i.now())
}

func filterCargo(list []dbmodels.Requisition, cargo models.CargoType) []dbmodels.Requisition {
	result := make([]dbmodels.Requisition, 0, len(list))
	for _, rec := range list {
		if models.ParseCargoType(rec.CargoType) == cargo {
			result = append(result, rec)
		}
	}
	return result
}
