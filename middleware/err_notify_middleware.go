package middleware

import (
	"encoding/json"
	"net/http"

	botnotify "recruiting-backend/lib/utils/bot-notify"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	log "github.com/sirupsen/logrus"
)

// ErrNotify отправляет во внешний канал сведения об ответах с кодом 5xx
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if addr == "" || statusCode < http.StatusInternalServerError {
			return err
		}

		var data struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		if unmErr := json.Unmarshal(c.Response().Body(), &data); unmErr != nil {
			log.WithError(unmErr).Warn("error unmarshalling response body in middleware")
		}
		msg := data.Message
		if msg == "" {
			msg = string(c.Response().Body())
		}
		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		go botnotify.SendError(addr, botnotify.ErrorEvent{
			Code:   statusCode,
			Method: utils.CopyString(c.Method()),
			Path:   utils.CopyString(path),
			Error:  msg,
		})
		return err
	}
}
