// Package project содержит бизнес-логику работы с проектными площадками.
package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/hrms-core/internal/models"
	"github.com/magabrotheeeer/hrms-core/internal/storage"
)

// Repository описывает контракт для работы с проектами в хранилище.
type Repository interface {
	// ListProjects возвращает все проекты в порядке возрастания id.
	ListProjects(ctx context.Context) ([]*models.Project, error)
	// CreateProject сохраняет новый проект.
	CreateProject(ctx context.Context, project models.Project) (*models.Project, error)
	// UpdateProject перезаписывает проект или возвращает storage.ErrProjectNotFound.
	UpdateProject(ctx context.Context, id string, project models.Project) (*models.Project, error)
}

// Service отвечает за операции над проектами.
type Service struct {
	repo Repository
}

// New создает новый экземпляр Service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// List возвращает все проекты, упорядоченные по id.
func (s *Service) List(ctx context.Context) ([]*models.Project, error) {
	const op = "services.project.List"

	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return projects, nil
}

// Upsert обновляет проект по id, а если такого проекта нет — создает его.
// Id из пути имеет приоритет над id из тела запроса.
func (s *Service) Upsert(ctx context.Context, id string, project models.Project) (*models.Project, error) {
	const op = "services.project.Upsert"

	project.ID = id

	updated, err := s.repo.UpdateProject(ctx, id, project)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, storage.ErrProjectNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.repo.CreateProject(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}
