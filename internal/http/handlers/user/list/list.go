// Package list реализует HTTP-обработчик постраничного списка сотрудников.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/hrms-core/internal/http/response"
	"github.com/magabrotheeeer/hrms-core/internal/lib/sl"
	"github.com/magabrotheeeer/hrms-core/internal/models"
)

// Значения по умолчанию для параметров страницы.
const (
	defaultSkip  = 0
	defaultLimit = 100
)

// Handler обрабатывает HTTP-запросы списка сотрудников.
type Handler struct {
	log         *slog.Logger
	userService Service
}

// Service описывает интерфейс бизнес-логики списка сотрудников.
type Service interface {
	List(ctx context.Context, offset, limit int) ([]*models.User, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, userService Service) *Handler {
	return &Handler{
		log:         log,
		userService: userService,
	}
}

// ServeHTTP godoc
// @Summary Список сотрудников
// @Description Возвращает страницу сотрудников в порядке возрастания id.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Смещение" default(0)
// @Param limit query int false "Размер страницы" default(100)
// @Success 200 {array} models.User "Сотрудники"
// @Failure 401 {object} response.ErrorResponse "Невалидный токен"
// @Failure 422 {object} response.ErrorResponse "Некорректные параметры страницы"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /users/ [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	skip, err := queryInt(r, "skip", defaultSkip)
	if err != nil {
		log.Error("invalid skip parameter", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("invalid skip parameter"))
		return
	}
	limit, err := queryInt(r, "limit", defaultLimit)
	if err != nil {
		log.Error("invalid limit parameter", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("invalid limit parameter"))
		return
	}
	if skip < 0 || limit < 0 {
		log.Error("negative page parameters",
			slog.Int("skip", skip), slog.Int("limit", limit))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("page parameters must be non-negative"))
		return
	}

	users, err := h.userService.List(r.Context(), skip, limit)
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list users"))
		return
	}

	log.Info("users listed", slog.Int("count", len(users)))
	render.JSON(w, r, users)
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
