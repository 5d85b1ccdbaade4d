// Package me реализует HTTP-обработчик чтения профиля текущего сотрудника.
package me

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/hrms-core/internal/http/middlewarectx"
	"github.com/magabrotheeeer/hrms-core/internal/http/response"
)

// Handler обрабатывает HTTP-запросы профиля текущего сотрудника.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Профиль текущего сотрудника
// @Description Возвращает пользователя, которому принадлежит токен доступа.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User "Текущий сотрудник"
// @Failure 401 {object} response.ErrorResponse "Невалидный токен"
// @Failure 403 {object} response.ErrorResponse "Учетная запись деактивирована"
// @Router /users/me/ [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.me"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.Principal(r.Context())
	if !ok {
		log.Error("principal missing in request context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("missing or invalid authorization header"))
		return
	}

	log.Info("current user resolved", slog.String("email", user.Email))
	render.JSON(w, r, user)
}
