package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/magabrotheeeer/hrms-core/internal/models"
	"github.com/magabrotheeeer/hrms-core/internal/storage"
)

// companyID — фиксированный идентификатор единственной записи компании.
const companyID = 1

// GetCompany возвращает единственный профиль компании.
func (s *Storage) GetCompany(ctx context.Context) (*models.Company, error) {
	const op = "storage.postgres.GetCompany"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, address, location_lat, location_lng
			  FROM company
			  WHERE id = $1`
	var c models.Company
	err := s.Pool.QueryRow(ctx, query, companyID).
		Scan(&c.ID, &c.Name, &c.Address, &c.Location.Lat, &c.Location.Lng)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrCompanyNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

// UpsertCompany создает профиль компании либо полностью замещает существующий.
// Конфликт по фиксированному id гарантирует, что записей не станет больше одной.
func (s *Storage) UpsertCompany(ctx context.Context, company models.Company) (*models.Company, error) {
	const op = "storage.postgres.UpsertCompany"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO company (id, name, address, location_lat, location_lng)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (id) DO UPDATE
			  SET name = EXCLUDED.name,
			      address = EXCLUDED.address,
			      location_lat = EXCLUDED.location_lat,
			      location_lng = EXCLUDED.location_lng
			  RETURNING id, name, address, location_lat, location_lng`
	var c models.Company
	err := s.Pool.QueryRow(ctx, query, companyID,
		company.Name, company.Address, company.Location.Lat, company.Location.Lng).
		Scan(&c.ID, &c.Name, &c.Address, &c.Location.Lat, &c.Location.Lng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
