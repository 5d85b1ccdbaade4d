package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/hrms-core/internal/http/response"
)

// RequireRoles возвращает HTTP middleware, который пропускает запрос только
// если роль принципала точно совпадает с одной из разрешенных.
//
// Иерархии ролей нет: "Super Admin" не проходит проверку на "Admin".
// Ставится после JWTMiddleware: без принципала в контексте — 401.
func RequireRoles(log *slog.Logger, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireRoles"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			user, ok := Principal(r.Context())
			if !ok {
				log.Error("principal missing in request context")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}

			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			log.Error("not enough permissions",
				slog.String("email", user.Email),
				slog.String("role", user.Role),
			)
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("not enough permissions"))
		})
	}
}
