package controllers

import (
	"recruiting-backend/lib/utils/errs"
	authutils "recruiting-backend/lib/utils/auth-utils"
	apimodels "recruiting-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
	if userID := authutils.GetUserID(ctx); userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}

// SendError отвечает статусом по типу ошибки. Текст известных ошибок отдается клиенту,
// для остальных только msg.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	status := ErrorStatus(err)
	if status >= fiber.StatusInternalServerError {
		logger.WithError(err).Error(msg)
	} else {
		logger.WithError(err).Warn(msg)
	}
	if errs.IsKnown(err) {
		return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(status).JSON(apimodels.NewError(msg))
}

func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, errs.ErrStaleState):
		return fiber.StatusConflict
	case errors.Is(err, errs.ErrConfiguration):
		return fiber.StatusInternalServerError
	case errors.Is(err, errs.ErrTimeout):
		return fiber.StatusGatewayTimeout
	case errors.Is(err, errs.ErrGateway):
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}
