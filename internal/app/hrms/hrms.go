package hrms

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/hrms-core/internal/config"
	"github.com/magabrotheeeer/hrms-core/internal/lib/jwt"
	"github.com/magabrotheeeer/hrms-core/internal/migrations"
	authservice "github.com/magabrotheeeer/hrms-core/internal/services/auth"
	companyservice "github.com/magabrotheeeer/hrms-core/internal/services/company"
	projectservice "github.com/magabrotheeeer/hrms-core/internal/services/project"
	userservice "github.com/magabrotheeeer/hrms-core/internal/services/user"
	"github.com/magabrotheeeer/hrms-core/internal/storage/postgres"
)

// App инкапсулирует HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *postgres.Storage
}

// New создает приложение: подключается к базе, применяет миграции
// и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := postgres.New(ctx, cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(cfg.StorageConnectionString, "./migrations"); err != nil {
		return nil, err
	}

	jwtMaker, err := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.Algorithm, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	authService := authservice.New(db, jwtMaker)
	userService := userservice.New(db)
	companyService := companyservice.New(db)
	projectService := projectservice.New(db)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, authService, userService, companyService, projectService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до отмены контекста
// или ошибки сервера. При отмене контекста выполняется graceful shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.Close()
		return err
	}
}
