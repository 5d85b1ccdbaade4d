// Package list реализует HTTP-обработчик списка проектных площадок.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/hrms-core/internal/http/response"
	"github.com/magabrotheeeer/hrms-core/internal/lib/sl"
	"github.com/magabrotheeeer/hrms-core/internal/models"
)

// Handler обрабатывает HTTP-запросы списка проектов.
type Handler struct {
	log            *slog.Logger
	projectService Service
}

// Service описывает интерфейс бизнес-логики списка проектов.
type Service interface {
	List(ctx context.Context) ([]*models.Project, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, projectService Service) *Handler {
	return &Handler{
		log:            log,
		projectService: projectService,
	}
}

// ServeHTTP godoc
// @Summary Список проектов
// @Description Возвращает все проектные площадки в порядке возрастания id.
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Project "Проекты"
// @Failure 401 {object} response.ErrorResponse "Невалидный токен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /projects/ [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	projects, err := h.projectService.List(r.Context())
	if err != nil {
		log.Error("failed to list projects", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list projects"))
		return
	}

	log.Info("projects listed", slog.Int("count", len(projects)))
	render.JSON(w, r, projects)
}
