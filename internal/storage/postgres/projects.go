package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/magabrotheeeer/hrms-core/internal/models"
	"github.com/magabrotheeeer/hrms-core/internal/storage"
)

// ListProjects возвращает все проекты, упорядоченные по id.
func (s *Storage) ListProjects(ctx context.Context) ([]*models.Project, error) {
	const op = "storage.postgres.ListProjects"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, location_lat, location_lng
			  FROM projects
			  ORDER BY id ASC`
	rows, err := s.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := make([]*models.Project, 0)
	for rows.Next() {
		var p models.Project
		if err = rows.Scan(&p.ID, &p.Name, &p.Location.Lat, &p.Location.Lng); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateProject сохраняет новый проект с заданным клиентом идентификатором.
func (s *Storage) CreateProject(ctx context.Context, project models.Project) (*models.Project, error) {
	const op = "storage.postgres.CreateProject"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO projects (id, name, location_lat, location_lng)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, name, location_lat, location_lng`
	var p models.Project
	err := s.Pool.QueryRow(ctx, query,
		project.ID, project.Name, project.Location.Lat, project.Location.Lng).
		Scan(&p.ID, &p.Name, &p.Location.Lat, &p.Location.Lng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// UpdateProject полностью замещает имя и геолокацию проекта.
// Отсутствующий проект — ErrProjectNotFound; решение о создании
// вместо обновления принимает вызывающий слой.
func (s *Storage) UpdateProject(ctx context.Context, id string, project models.Project) (*models.Project, error) {
	const op = "storage.postgres.UpdateProject"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE projects
			  SET name = $2, location_lat = $3, location_lng = $4
			  WHERE id = $1
			  RETURNING id, name, location_lat, location_lng`
	var p models.Project
	err := s.Pool.QueryRow(ctx, query,
		id, project.Name, project.Location.Lat, project.Location.Lng).
		Scan(&p.ID, &p.Name, &p.Location.Lat, &p.Location.Lng)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrProjectNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
