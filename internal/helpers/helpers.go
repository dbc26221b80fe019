package helpers

import (
	"context"
	"fmt"

	"github.com/fitlife/loyalty/internal/logger"
	"github.com/go-chi/jwtauth/v5"
)

// GetUsername - извлекает имя пользователя из контекста JWT токена
func GetUsername(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	login, ok := claims["username"].(string)
	if !ok {
		logger.Warn("Undefined username from token")
		return "", fmt.Errorf("undefined username")
	}
	return login, nil
}

// IsAdmin - извлекает признак администратора из контекста JWT токена
func IsAdmin(context context.Context) bool {
	_, claims, _ := jwtauth.FromContext(context)
	isAdmin, ok := claims["is_admin"].(bool)
	return ok && isAdmin
}
