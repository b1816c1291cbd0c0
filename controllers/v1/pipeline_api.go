package apiv1

import (
	"recruiting-backend/controllers"
	"recruiting-backend/lib/pipeline"
	apimodels "recruiting-backend/models/api"
	pipelineapimodels "recruiting-backend/models/api/pipeline"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type pipelineApiController struct {
	controllers.BaseAPIController
}

func InitPipelineApiRouters(app *fiber.App) {
	controller := pipelineApiController{}
	app.Route("pipeline", func(router fiber.Router) {
		router.Get("", controller.board)
		router.Post("load", controller.load)
		router.Post("candidates", controller.register)
		router.Put("candidates/:id/move", controller.move)
		router.Put("candidates/:id/status", controller.changeStatus)
		router.Put("phases/:id/reorder", controller.reorder)
	})
}

// @Summary Воронка кандидатов
// @Tags Воронка
// @Description Этапы по порядку с кандидатами заявки в порядке отображения. Без заявки - кандидаты, не привязанные к заявке
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   requisition_id		query	string	false	"requisition ID"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.BoardView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/pipeline [get]
func (c *pipelineApiController) board(ctx *fiber.Ctx) error {
	return c.sendBoard(ctx, ctx.Query("requisition_id"))
}

func (c *pipelineApiController) sendBoard(ctx *fiber.Ctx, requisitionID string) error {
	data, err := pipeline.Instance.Board(requisitionID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения воронки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Загрузить воронку
// @Tags Воронка
// @Description Загрузка кандидатов заявки из БД, без заявки загружаются все кандидаты
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 pipelineapimodels.LoadRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.BoardView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @Failure 504 {object} apimodels.Response
// @router /api/v1/space/pipeline/load [post]
func (c *pipelineApiController) load(ctx *fiber.Ctx) error {
	var payload pipelineapimodels.LoadRequest
	if len(ctx.Body()) != 0 {
		if err := c.BodyParser(ctx, &payload); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
	}
	if err := pipeline.Instance.Load(ctx.UserContext(), payload.RequisitionID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки воронки")
	}
	return c.sendBoard(ctx, payload.RequisitionID)
}

// @Summary Добавить кандидата
// @Tags Воронка
// @Description Ручная регистрация кандидата. Без этапа кандидат попадает на входной этап
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 pipelineapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @Failure 504 {object} apimodels.Response
// @router /api/v1/space/pipeline/candidates [post]
func (c *pipelineApiController) register(ctx *fiber.Ctx) error {
	var payload pipelineapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := pipeline.Instance.Register(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(pipelineapimodels.CandidateConvert(rec)))
}

// @Summary Переместить кандидата на этап
// @Tags Воронка
// @Description Перемещение выполняется, только если кандидат все еще на этапе from_phase_id, иначе 409
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  				    true         "candidate ID"
// @Param	body body	 pipelineapimodels.MoveRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @Failure 504 {object} apimodels.Response
// @router /api/v1/space/pipeline/candidates/{id}/move [put]
func (c *pipelineApiController) move(ctx *fiber.Ctx) error {
	id, err := c.candidateID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload pipelineapimodels.MoveRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = pipeline.Instance.MoveCandidate(ctx.UserContext(), id, payload.FromPhaseID, payload.ToPhaseID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("candidate_id", id), err, "Ошибка перемещения кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Изменить статус кандидата
// @Tags Воронка
// @Description Выбытие (withdrawn), возврат в процесс (active) или принятие (placed)
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  				    true         "candidate ID"
// @Param	body body	 pipelineapimodels.StatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @Failure 504 {object} apimodels.Response
// @router /api/v1/space/pipeline/candidates/{id}/status [put]
func (c *pipelineApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.candidateID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload pipelineapimodels.StatusRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = pipeline.Instance.ChangeStatus(ctx.UserContext(), id, payload.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("candidate_id", id), err, "Ошибка смены статуса кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Изменить порядок кандидатов на этапе
// @Tags Воронка
// @Description Порядок отображения на доске заявки requisition_id, не сохраняется в БД
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  				    true         "phase ID"
// @Param	body body	 pipelineapimodels.ReorderRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/pipeline/phases/{id}/reorder [put]
func (c *pipelineApiController) reorder(ctx *fiber.Ctx) error {
	phaseID := ctx.Params("id")
	var payload pipelineapimodels.ReorderRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := pipeline.Instance.ReorderWithinPhase(payload.RequisitionID, phaseID, payload.FromIndex, payload.ToIndex)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("phase_id", phaseID), err, "Ошибка изменения порядка кандидатов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *pipelineApiController) candidateID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if err := uuid.Validate(id); err != nil {
		return "", errors.New("некорректный идентификатор кандидата")
	}
	return id, nil
}
