package authutils

import (
	"time"

	"recruiting-backend/config"
	"recruiting-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// GetToken выпускает токен доступа. Вход пользователей выполняет внешний сервис,
// токен нужен для служебных клиентов и тестов.
func GetToken(userID, name string, role models.UserRole) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name": name,
		"sub":  userID,
		"role": string(role),
		"exp":  time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

func GetUserID(ctx *fiber.Ctx) string {
	if sub, ok := GetClaims(ctx)["sub"].(string); ok {
		return sub
	}
	return ""
}

func GetRole(ctx *fiber.Ctx) models.UserRole {
	if role, ok := GetClaims(ctx)["role"].(string); ok {
		return models.UserRole(role)
	}
	return ""
}
