// Package update реализует HTTP-обработчик обновления профиля компании.
//
// Профиль перезаписывается целиком. Доступ только для роли "Super Admin",
// проверка выполняется на уровне маршрутизации.
package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/hrms-core/internal/http/response"
	"github.com/magabrotheeeer/hrms-core/internal/lib/sl"
	"github.com/magabrotheeeer/hrms-core/internal/models"
)

// Request — входные данные профиля компании.
type Request struct {
	Name     string          `json:"name" validate:"required"`
	Address  string          `json:"address" validate:"required"`
	Location models.Location `json:"location"`
}

// Handler обрабатывает HTTP-запросы обновления профиля компании.
type Handler struct {
	log            *slog.Logger
	companyService Service
	validate       *validator.Validate
}

// Service описывает интерфейс бизнес-логики профиля компании.
type Service interface {
	Update(ctx context.Context, company models.Company) (*models.Company, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, companyService Service) *Handler {
	return &Handler{
		log:            log,
		companyService: companyService,
		validate:       validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновление профиля компании
// @Description Перезаписывает профиль компании целиком. Требуется роль "Super Admin".
// @Tags Company
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body Request true "Профиль компании"
// @Success 200 {object} models.Company "Итоговый профиль"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Невалидный токен"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /company/ [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.company.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	updated, err := h.companyService.Update(r.Context(), models.Company{
		Name:     req.Name,
		Address:  req.Address,
		Location: req.Location,
	})
	if err != nil {
		log.Error("failed to update company profile", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update company profile"))
		return
	}

	log.Info("company profile updated", slog.String("name", updated.Name))
	render.JSON(w, r, updated)
}
