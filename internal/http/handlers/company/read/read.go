// Package read реализует HTTP-обработчик чтения профиля компании.
package read

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

// Handler обрабатывает HTTP-запросы чтения профиля компании.
type Handler struct {
	log            *slog.Logger
	companyService Service
}

// Service описывает интерфейс бизнес-логики профиля компании.
type Service interface {
	Get(ctx context.Context) (*models.Company, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, companyService Service) *Handler {
	return &Handler{
		log:            log,
		companyService: companyService,
	}
}

// ServeHTTP godoc
// @Summary Профиль компании
// @Description Возвращает профиль компании. Если профиль еще не создавался, создает запись по умолчанию.
// @Tags Company
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Company "Профиль компании"
// @Failure 401 {object} response.ErrorResponse "Невалидный токен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /company/ [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.company.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	company, err := h.companyService.Get(r.Context())
	if err != nil {
		log.Error("failed to get company profile", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get company profile"))
		return
	}

	log.Info("company profile resolved", slog.String("name", company.Name))
	render.JSON(w, r, company)
}
