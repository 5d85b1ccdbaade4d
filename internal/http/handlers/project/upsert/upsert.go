// Package upsert реализует HTTP-обработчик создания и обновления проекта.
//
// Запрос PUT по id: существующий проект перезаписывается, отсутствующий
// создается. Id из пути имеет приоритет над id из тела запроса.
// Доступ для ролей "Super Admin" и "Admin", проверка выполняется
// на уровне маршрутизации.
package upsert

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/hrms-core/internal/http/response"
	"github.com/magabrotheeeer/hrms-core/internal/lib/sl"
	"github.com/magabrotheeeer/hrms-core/internal/models"
)

// Request — входные данные проекта.
type Request struct {
	Name     string          `json:"name" validate:"required"`
	Location models.Location `json:"location"`
}

// Handler обрабатывает HTTP-запросы создания и обновления проекта.
type Handler struct {
	log            *slog.Logger
	projectService Service
	validate       *validator.Validate
}

// Service описывает интерфейс бизнес-логики проектов.
type Service interface {
	Upsert(ctx context.Context, id string, project models.Project) (*models.Project, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, projectService Service) *Handler {
	return &Handler{
		log:            log,
		projectService: projectService,
		validate:       validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создание или обновление проекта
// @Description Перезаписывает проект по id, отсутствующий проект создается. Требуется роль "Super Admin" или "Admin".
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Id проекта"
// @Param request body Request true "Данные проекта"
// @Success 200 {object} models.Project "Итоговое состояние проекта"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Невалидный токен"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /projects/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.upsert"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("id", id))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	project, err := h.projectService.Upsert(r.Context(), id, models.Project{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		log.Error("failed to upsert project", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to upsert project"))
		return
	}

	log.Info("project upserted", slog.String("id", project.ID))
	render.JSON(w, r, project)
}
