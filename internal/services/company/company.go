// Package company содержит бизнес-логику работы с профилем компании.
// Профиль единственный: при первом чтении создается запись по умолчанию,
// обновление всегда перезаписывает ее же.
package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/hrms-core/internal/models"
	"github.com/magabrotheeeer/hrms-core/internal/storage"
)

// Repository описывает контракт для работы с профилем компании в хранилище.
type Repository interface {
	// GetCompany возвращает профиль или storage.ErrCompanyNotFound.
	GetCompany(ctx context.Context) (*models.Company, error)
	// UpsertCompany создает или перезаписывает единственный профиль.
	UpsertCompany(ctx context.Context, company models.Company) (*models.Company, error)
}

// Service отвечает за чтение и обновление профиля компании.
type Service struct {
	repo Repository
}

// New создает новый экземпляр Service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get возвращает профиль компании. Если профиль еще не создавался,
// сохраняет и возвращает запись по умолчанию.
func (s *Service) Get(ctx context.Context) (*models.Company, error) {
	const op = "services.company.Get"

	company, err := s.repo.GetCompany(ctx)
	if err == nil {
		return company, nil
	}
	if !errors.Is(err, storage.ErrCompanyNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	company, err = s.repo.UpsertCompany(ctx, defaultCompany())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return company, nil
}

// Update перезаписывает профиль компании целиком.
func (s *Service) Update(ctx context.Context, company models.Company) (*models.Company, error) {
	const op = "services.company.Update"

	updated, err := s.repo.UpsertCompany(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func defaultCompany() models.Company {
	return models.Company{
		Name:    "Default Company",
		Address: "Not Set",
		Location: models.Location{
			Lat: 0.0,
			Lng: 0.0,
		},
	}
}
