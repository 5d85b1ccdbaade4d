// Package user содержит бизнес-логику работы с сотрудниками:
// чтение, постраничный список и частичное обновление.
package user

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/hrms-core/internal/models"
)

// Repository описывает контракт для работы с пользователями в хранилище.
type Repository interface {
	// GetUser возвращает пользователя по id или storage.ErrUserNotFound.
	GetUser(ctx context.Context, id int64) (*models.User, error)
	// ListUsers возвращает срез пользователей в порядке возрастания id.
	ListUsers(ctx context.Context, offset, limit int) ([]*models.User, error)
	// UpdateUser применяет частичное обновление и возвращает итоговое состояние.
	UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error)
}

// Service отвечает за операции над сотрудниками.
type Service struct {
	repo Repository
}

// New создает новый экземпляр Service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get возвращает пользователя по id.
func (s *Service) Get(ctx context.Context, id int64) (*models.User, error) {
	const op = "services.user.Get"

	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// List возвращает страницу пользователей, упорядоченных по id.
func (s *Service) List(ctx context.Context, offset, limit int) ([]*models.User, error) {
	const op = "services.user.List"

	users, err := s.repo.ListUsers(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}

// Update частично обновляет пользователя: меняются только поля,
// присутствующие в запросе. Несуществующий id — storage.ErrUserNotFound.
func (s *Service) Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	const op = "services.user.Update"

	user, err := s.repo.UpdateUser(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}
