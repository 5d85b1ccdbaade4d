// Package hrms собирает приложение: хранилище, миграции, сервисы,
// маршрутизация и HTTP-сервер с корректным завершением.
package hrms

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/hrms-core/internal/http/handlers/auth/login"
	companyread "github.com/magabrotheeeer/hrms-core/internal/http/handlers/company/read"
	companyupdate "github.com/magabrotheeeer/hrms-core/internal/http/handlers/company/update"
	projectlist "github.com/magabrotheeeer/hrms-core/internal/http/handlers/project/list"
	projectupsert "github.com/magabrotheeeer/hrms-core/internal/http/handlers/project/upsert"
	usercreate "github.com/magabrotheeeer/hrms-core/internal/http/handlers/user/create"
	userlist "github.com/magabrotheeeer/hrms-core/internal/http/handlers/user/list"
	userme "github.com/magabrotheeeer/hrms-core/internal/http/handlers/user/me"
	userupdate "github.com/magabrotheeeer/hrms-core/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/hrms-core/internal/http/middlewarectx"
	"github.com/magabrotheeeer/hrms-core/internal/models"
	authservice "github.com/magabrotheeeer/hrms-core/internal/services/auth"
	companyservice "github.com/magabrotheeeer/hrms-core/internal/services/company"
	projectservice "github.com/magabrotheeeer/hrms-core/internal/services/project"
	userservice "github.com/magabrotheeeer/hrms-core/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *authservice.Service,
	userService *userservice.Service,
	companyService *companyservice.Service,
	projectService *projectservice.Service,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.CORS(),
	)

	// Открытые конечные точки
	r.Post("/token", login.New(logger, authService).ServeHTTP)
	r.Post("/users/", usercreate.New(logger, authService).ServeHTTP)

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(authService, logger))

		r.Get("/users/me/", userme.New(logger).ServeHTTP)
		r.Get("/users/", userlist.New(logger, userService).ServeHTTP)
		r.Put("/users/{id}", userupdate.New(logger, userService).ServeHTTP)

		r.Get("/company/", companyread.New(logger, companyService).ServeHTTP)
		r.With(middlewarectx.RequireRoles(logger, models.RoleSuperAdmin)).
			Put("/company/", companyupdate.New(logger, companyService).ServeHTTP)

		r.Get("/projects/", projectlist.New(logger, projectService).ServeHTTP)
		r.With(middlewarectx.RequireRoles(logger, models.RoleSuperAdmin, models.RoleAdmin)).
			Put("/projects/{id}", projectupsert.New(logger, projectService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
