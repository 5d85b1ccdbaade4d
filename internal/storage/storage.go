// Package storage определяет контракт хранилища кадровых данных
// и общие ошибки для всех его реализаций.
//
// Реализации: postgres (основная) и memory (для тестов сервисов).
package storage

import (
	"context"
	"errors"

	"github.com/magabrotheeeer/hrms-core/internal/models"
)

// Ошибки хранилища. Реализации возвращают их обернутыми,
// вызывающий код проверяет через errors.Is.
var (
	// ErrUserNotFound — пользователь с таким id или email отсутствует.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken — email уже зарегистрирован. Источник истины —
	// уникальный индекс на уровне базы, а не предварительная проверка.
	ErrEmailTaken = errors.New("email already taken")
	// ErrCompanyNotFound — профиль компании еще не создан.
	ErrCompanyNotFound = errors.New("company not found")
	// ErrProjectNotFound — проект с таким id отсутствует.
	ErrProjectNotFound = errors.New("project not found")
)

// Repository описывает операции над пользователями, профилем компании
// и проектами. Каждый вызов выполняется в рамках неявной транзакции;
// транзакций, охватывающих несколько вызовов, контракт не предусматривает.
type Repository interface {
	// GetUser возвращает пользователя по id или ErrUserNotFound.
	GetUser(ctx context.Context, id int64) (*models.User, error)
	// GetUserByEmail возвращает пользователя по email (точное сравнение,
	// с учетом регистра) или ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// ListUsers возвращает страницу пользователей в стабильном порядке
	// по возрастанию id.
	ListUsers(ctx context.Context, offset, limit int) ([]*models.User, error)
	// CreateUser сохраняет нового пользователя и возвращает его с
	// присвоенным id. Конфликт по email — ErrEmailTaken.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	// UpdateUser применяет частичное обновление: меняются только поля,
	// заданные в upd; отсутствующие сохраняют прежние значения.
	// Пустое обновление возвращает запись без изменений.
	UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error)

	// GetCompany возвращает единственный профиль компании
	// или ErrCompanyNotFound, если он еще не создан.
	GetCompany(ctx context.Context) (*models.Company, error)
	// UpsertCompany создает профиль компании либо полностью замещает
	// существующий. Больше одной записи никогда не существует.
	UpsertCompany(ctx context.Context, company models.Company) (*models.Company, error)

	// ListProjects возвращает все проекты в стабильном порядке.
	ListProjects(ctx context.Context) ([]*models.Project, error)
	// CreateProject сохраняет новый проект с заданным клиентом id.
	CreateProject(ctx context.Context, project models.Project) (*models.Project, error)
	// UpdateProject полностью замещает имя и геолокацию проекта
	// или возвращает ErrProjectNotFound.
	UpdateProject(ctx context.Context, id string, project models.Project) (*models.Project, error)
}
