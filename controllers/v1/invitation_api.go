package apiv1

import (
	"recruiting-backend/controllers"
	"recruiting-backend/lib/invitation"
	apimodels "recruiting-backend/models/api"
	invitationapimodels "recruiting-backend/models/api/invitation"
	pipelineapimodels "recruiting-backend/models/api/pipeline"

	"github.com/gofiber/fiber/v2"
)

type invitationApiController struct {
	controllers.BaseAPIController
}

func InitInvitationApiRouters(app *fiber.App) {
	controller := invitationApiController{}
	app.Route("invitations", func(router fiber.Router) {
		router.Post("", controller.invite)
	})
}

// @Summary Пригласить кандидатов
// @Tags Приглашения
// @Description Кандидаты создаются на входном этапе воронки. Записи без имени или email пропускаются и учитываются в skipped
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 invitationapimodels.InviteRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=invitationapimodels.InviteResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @Failure 504 {object} apimodels.Response
// @router /api/v1/space/invitations [post]
func (c *invitationApiController) invite(ctx *fiber.Ctx) error {
	var payload invitationapimodels.InviteRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := invitation.Instance.Invite(ctx.UserContext(), payload.Invitations, payload.RequisitionID)
	if err != nil {
		logger := c.GetLogger(ctx).WithField("requisition_id", payload.RequisitionID)
		return c.SendError(ctx, logger, err, "Ошибка приглашения кандидатов")
	}
	response := invitationapimodels.InviteResponse{
		Candidates: make([]pipelineapimodels.CandidateView, 0, len(result.Candidates)),
		Created:    len(result.Candidates),
		Skipped:    result.Skipped,
	}
	for _, rec := range result.Candidates {
		response.Candidates = append(response.Candidates, pipelineapimodels.CandidateConvert(rec))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(response))
}
