package apiv1

import (
	"recruiting-backend/controllers"
	"recruiting-backend/lib/phase"
	"recruiting-backend/middleware"
	"recruiting-backend/models"
	apimodels "recruiting-backend/models/api"
	pipelineapimodels "recruiting-backend/models/api/pipeline"

	"github.com/gofiber/fiber/v2"
)

type phaseApiController struct {
	controllers.BaseAPIController
}

func InitPhaseApiRouters(app *fiber.App) {
	controller := phaseApiController{}
	app.Route("phases", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("reload", middleware.RoleRequired(models.SpaceAdminRole), controller.reload)
	})
}

// @Summary Этапы подбора
// @Tags Этапы подбора
// @Description Этапы подбора по возрастанию порядка
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]pipelineapimodels.PhaseView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/phases [get]
func (c *phaseApiController) list(ctx *fiber.Ctx) error {
	list := phase.Instance.List()
	result := make([]pipelineapimodels.PhaseView, 0, len(list))
	for _, rec := range list {
		result = append(result, pipelineapimodels.PhaseConvert(rec))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Перечитать этапы подбора
// @Tags Этапы подбора
// @Description Полная перезагрузка этапов из БД. При ошибке остаются ранее загруженные этапы
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]pipelineapimodels.PhaseView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/space/phases/reload [post]
func (c *phaseApiController) reload(ctx *fiber.Ctx) error {
	if err := phase.Instance.Load(ctx.UserContext()); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки этапов подбора")
	}
	return c.list(ctx)
}
