// Package middlewarectx содержит HTTP middleware для аутентификации
// и авторизации запросов.
//
// JWTMiddleware проверяет наличие и валидность токена доступа в заголовке
// Authorization, разрешает его в пользователя хранилища и в случае успеха
// добавляет пользователя-принципала в контекст запроса.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized, а для
// деактивированной учетной записи — HTTP 403 Forbidden.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/hrms-core/internal/http/response"
	"github.com/magabrotheeeer/hrms-core/internal/lib/sl"
	"github.com/magabrotheeeer/hrms-core/internal/models"
	"github.com/magabrotheeeer/hrms-core/internal/services/auth"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// PrincipalKey — ключ для пользователя-принципала в контексте.
const PrincipalKey Key = "principal"

// Authenticator описывает интерфейс сервиса для проверки токена доступа.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// Principal извлекает аутентифицированного пользователя из контекста запроса.
func Principal(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(PrincipalKey).(*models.User)
	return user, ok
}

// JWTMiddleware возвращает HTTP middleware, который проверяет токен доступа
// в заголовке Authorization.
//
// Если токен валиден и учетная запись активна, добавляет пользователя
// в контекст запроса, иначе возвращает 401 Unauthorized или 403 Forbidden.
func JWTMiddleware(authService Authenticator, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			user, err := authService.Authenticate(r.Context(), tokenStr)
			if err != nil {
				if errors.Is(err, auth.ErrInactiveUser) {
					log.Error("inactive user", sl.Err(err))
					w.WriteHeader(http.StatusForbidden)
					render.JSON(w, r, response.Error("inactive user"))
					return
				}
				log.Error("invalid or expired token", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			ctx := context.WithValue(r.Context(), PrincipalKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
