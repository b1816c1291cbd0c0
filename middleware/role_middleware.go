package middleware

import (
	authutils "recruiting-backend/lib/utils/auth-utils"
	"recruiting-backend/models"
	apimodels "recruiting-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

func GetUserID(ctx *fiber.Ctx) string {
	return authutils.GetUserID(ctx)
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	return authutils.GetRole(ctx)
}

// RoleRequired пропускает запрос только для перечисленных ролей
func RoleRequired(roles ...models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		role := GetUserRole(ctx)
		for _, allowed := range roles {
			if role == allowed {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
	}
}
