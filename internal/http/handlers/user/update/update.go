// Package update реализует HTTP-обработчик частичного обновления сотрудника.
//
// Обновляются только поля, присутствующие в теле запроса: отсутствующее
// поле означает "оставить прежнее значение". Email и пароль через этот
// эндпоинт не меняются.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/hrms-core/internal/http/response"
	"github.com/magabrotheeeer/hrms-core/internal/lib/sl"
	"github.com/magabrotheeeer/hrms-core/internal/models"
	"github.com/magabrotheeeer/hrms-core/internal/storage"
)

// Handler обрабатывает HTTP-запросы обновления сотрудника.
type Handler struct {
	log         *slog.Logger
	userService Service
}

// Service описывает интерфейс бизнес-логики обновления сотрудника.
type Service interface {
	Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, userService Service) *Handler {
	return &Handler{
		log:         log,
		userService: userService,
	}
}

// ServeHTTP godoc
// @Summary Обновление сотрудника
// @Description Частично обновляет сотрудника: меняются только переданные поля.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Id сотрудника"
// @Param request body models.UserUpdate true "Обновляемые поля"
// @Success 200 {object} models.User "Итоговое состояние сотрудника"
// @Failure 400 {object} response.ErrorResponse "Некорректный id или JSON"
// @Failure 401 {object} response.ErrorResponse "Невалидный токен"
// @Failure 404 {object} response.ErrorResponse "Сотрудник не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /users/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("invalid user id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid user id"))
		return
	}

	var req models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	updated, err := h.userService.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Error("user not found", slog.Int64("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to update user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update user"))
		return
	}

	log.Info("user updated", slog.Int64("id", updated.ID))
	render.JSON(w, r, updated)
}
