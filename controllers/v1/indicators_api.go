package apiv1

import (
	"bytes"
	"fmt"
	"time"

	"recruiting-backend/controllers"
	"recruiting-backend/lib/indicators"
	apimodels "recruiting-backend/models/api"
	indicatorsapimodels "recruiting-backend/models/api/indicators"

	"github.com/gofiber/fiber/v2"
)

type indicatorsApiController struct {
	controllers.BaseAPIController
}

func InitIndicatorsApiRouters(app *fiber.App) {
	controller := indicatorsApiController{}
	app.Route("indicators", func(router fiber.Router) {
		router.Put("", controller.indicators)
		router.Put("export_xls", controller.exportXls)
		router.Put("export_pdf", controller.exportPdf)
	})
}

// @Summary Показатели подбора
// @Tags Показатели
// @Description Открытые и закрытые вакансии и срок закрытия по компаниям, рекрутерам и стажерам
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 indicatorsapimodels.IndicatorFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=indicatorsapimodels.IndicatorsView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @Failure 504 {object} apimodels.Response
// @router /api/v1/space/indicators [put]
func (c *indicatorsApiController) indicators(ctx *fiber.Ctx) error {
	payload, err := c.filter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := indicators.Instance.Indicators(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка расчета показателей подбора")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Показатели подбора. Выгрузить в Excel
// @Tags Показатели
// @Description Листы компаний, рекрутеров и стажеров
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	indicatorsapimodels.IndicatorFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/space/indicators/export_xls [put]
func (c *indicatorsApiController) exportXls(ctx *fiber.Ctx) error {
	payload, err := c.filter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := indicators.Instance.ExportToXls(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки показателей подбора в Excel")
	}
	fileName := fmt.Sprintf("indicators-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Показатели подбора. Выгрузить в PDF
// @Tags Показатели
// @Description Отчет по компаниям, рекрутерам и стажерам
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	indicatorsapimodels.IndicatorFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/space/indicators/export_pdf [put]
func (c *indicatorsApiController) exportPdf(ctx *fiber.Ctx) error {
	payload, err := c.filter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := indicators.Instance.ExportToPdf(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки показателей подбора в PDF")
	}
	fileName := fmt.Sprintf("indicators-%v.pdf", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(bytes.NewReader(data))
}

// filter - пустое тело запроса означает расчет без фильтров
func (c *indicatorsApiController) filter(ctx *fiber.Ctx) (indicatorsapimodels.IndicatorFilter, error) {
	var payload indicatorsapimodels.IndicatorFilter
	if len(ctx.Body()) != 0 {
		if err := c.BodyParser(ctx, &payload); err != nil {
			return payload, err
		}
	}
	if err := payload.Validate(); err != nil {
		return payload, err
	}
	return payload, nil
}
