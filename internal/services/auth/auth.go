// Package auth содержит бизнес-логику регистрации, входа и аутентификации
// пользователей: хеширование паролей, выпуск и проверка токенов доступа,
// разрешение субъекта токена в пользователя хранилища.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/hrms-core/internal/lib/jwt"
	"github.com/magabrotheeeer/hrms-core/internal/lib/password"
	"github.com/magabrotheeeer/hrms-core/internal/models"
)

var (
	// ErrInvalidCredentials — неверный email или пароль. Клиенту причина
	// намеренно не раскрывается, случаи не различаются.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInactiveUser — учетная запись деактивирована.
	ErrInactiveUser = errors.New("inactive user")
)

// UserRepository описывает контракт для работы с пользователями в хранилище.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его с id.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Service отвечает за регистрацию, вход и проверку токенов доступа.
// Состояния между запросами не хранит: каждый запрос заново проверяет
// токен и заново читает пользователя из хранилища.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// New создает новый экземпляр Service.
func New(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хешированием пароля.
// Пустая роль заменяется на дефолтную "Employee", учетная запись активна.
// Повторный email — storage.ErrEmailTaken от хранилища.
func (s *Service) Register(ctx context.Context, user models.User, rawPassword string) (*models.User, error) {
	const op = "services.auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user.PasswordHash = hashed
	if user.Role == "" {
		user.Role = models.RoleEmployee
	}
	user.IsActive = true

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// Login проверяет пароль пользователя и выпускает токен доступа.
// Несуществующий email и неверный пароль дают одну и ту же ошибку
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (string, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := s.jwtMaker.GenerateToken(user.Email)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Authenticate проверяет токен доступа и возвращает пользователя-принципала.
//
// Роль и признак активности берутся из хранилища, а не из токена,
// поэтому деактивация или смена роли действуют уже на следующем запросе.
// Деактивированная учетная запись — ErrInactiveUser; остальные отказы
// (подпись, срок действия, неизвестный субъект) возвращаются как есть.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.User, error) {
	const op = "services.auth.Authenticate"

	subject, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.users.GetUserByEmail(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%s: %w", op, ErrInactiveUser)
	}
	return user, nil
}
