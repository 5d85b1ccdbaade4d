// Package login реализует HTTP-обработчик для запросов аутентификации пользователей.
//
// Запрос принимается формой в стиле OAuth2 password flow: поля username и password,
// где username — это email пользователя. При успешной аутентификации возвращается
// JSON с токеном доступа; неверные учетные данные дают единый ответ 401
// без уточнения причины.
package login

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/hrms-core/internal/http/response"
	"github.com/magabrotheeeer/hrms-core/internal/lib/sl"
)

// Request — структура входных данных для авторизации.
type Request struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Response — структура ответа с токеном доступа.
type Response struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}

// Handler обрабатывает HTTP-запросы для авторизации.
type Handler struct {
	log         *slog.Logger        // Логгер для записи операций и ошибок
	authService Service             // Сервис аутентификации
	validate    *validator.Validate // Валидатор для проверки входных данных
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// New создает новый экземпляр Handler с указанными логгером и сервисом аутентификации.
func New(log *slog.Logger, authService Service) *Handler {
	return &Handler{
		log:         log,
		authService: authService,
		validate:    validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Авторизация пользователя
// @Description Аутентифицирует пользователя по email и паролю. Возвращает токен доступа.
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email пользователя"
// @Param password formData string true "Пароль"
// @Success 200 {object} Response "Успешная авторизация"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /token [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse request form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request form"))
		return
	}

	req := Request{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("incorrect email or password"))
		return
	}

	log.Info("login success", slog.String("email", req.Username))
	render.JSON(w, r, Response{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
