// Package create реализует HTTP-обработчик регистрации нового сотрудника.
//
// Эндпоинт открытый: токен не требуется. Пароль хешируется на уровне
// сервиса, повторная регистрация email дает 400.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/hrms-core/internal/http/response"
	"github.com/magabrotheeeer/hrms-core/internal/lib/sl"
	"github.com/magabrotheeeer/hrms-core/internal/models"
	"github.com/magabrotheeeer/hrms-core/internal/storage"
)

// Request — входные данные для регистрации сотрудника.
type Request struct {
	Email            string          `json:"email" validate:"required,email"`
	Name             string          `json:"name" validate:"required"`
	Role             string          `json:"role"`
	Password         string          `json:"password" validate:"required"`
	HiringDate       *models.Date    `json:"hiring_date"`
	ProbationEnd     *models.Date    `json:"probation_end"`
	WorkStartTime    *models.DayTime `json:"work_start_time"`
	WorkEndTime      *models.DayTime `json:"work_end_time"`
	WorkWeek         []string        `json:"work_week"`
	AllowedLocations []string        `json:"allowed_locations"`
}

// Handler обрабатывает HTTP-запросы регистрации сотрудников.
type Handler struct {
	log         *slog.Logger
	authService Service
	validate    *validator.Validate
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, user models.User, rawPassword string) (*models.User, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, authService Service) *Handler {
	return &Handler{
		log:         log,
		authService: authService,
		validate:    validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Регистрация сотрудника
// @Description Создает нового сотрудника. Пустая роль заменяется на "Employee".
// @Tags Users
// @Accept json
// @Produce json
// @Param request body Request true "Данные сотрудника"
// @Success 201 {object} models.User "Созданный сотрудник"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или занятый email"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /users/ [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.create"

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
	log.Info("request body decoded", slog.String("email", req.Email))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user := models.User{
		Email:            req.Email,
		Name:             req.Name,
		Role:             req.Role,
		HiringDate:       req.HiringDate,
		ProbationEnd:     req.ProbationEnd,
		WorkStartTime:    req.WorkStartTime,
		WorkEndTime:      req.WorkEndTime,
		WorkWeek:         req.WorkWeek,
		AllowedLocations: req.AllowedLocations,
	}

	created, err := h.authService.Register(r.Context(), user, req.Password)
	if err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			log.Error("email already registered", slog.String("email", req.Email))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("email already registered"))
			return
		}
		log.Error("registration failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to register user"))
		return
	}

	log.Info("user created", slog.Int64("id", created.ID), slog.String("email", created.Email))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, created)
}
