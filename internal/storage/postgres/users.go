package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/hrms-core/internal/models"
	"github.com/magabrotheeeer/hrms-core/internal/storage"
)

// userColumns — список колонок пользователя для SELECT и RETURNING.
// Время суток выбирается как текст, чтобы не зависеть от маппинга типа TIME.
const userColumns = `id, email, name, password_hash, role, hiring_date, probation_end,
		      work_start_time::text, work_end_time::text, work_week, allowed_locations, is_active`

// GetUser возвращает пользователя по его id.
func (s *Storage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.postgres.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE id = $1`
	u, err := scanUser(s.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetUserByEmail возвращает пользователя по его email (точное сравнение).
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.postgres.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE email = $1`
	u, err := scanUser(s.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// ListUsers возвращает страницу пользователей, упорядоченных по id.
func (s *Storage) ListUsers(ctx context.Context, offset, limit int) ([]*models.User, error) {
	const op = "storage.postgres.ListUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  ORDER BY id ASC
			  OFFSET $1 LIMIT $2`
	rows, err := s.Pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateUser сохраняет нового пользователя и возвращает запись с присвоенным id.
// Уникальность email обеспечивает индекс базы: нарушение транслируется
// в storage.ErrEmailTaken без предварительной проверки на существование.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.postgres.CreateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (email, name, password_hash, role, hiring_date, probation_end,
			      work_start_time, work_end_time, work_week, allowed_locations, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7::time, $8::time, $9, $10, $11)
			  RETURNING ` + userColumns
	u, err := scanUser(s.Pool.QueryRow(ctx, query,
		user.Email, user.Name, user.PasswordHash, user.Role,
		dateArg(user.HiringDate), dateArg(user.ProbationEnd),
		timeArg(user.WorkStartTime), timeArg(user.WorkEndTime),
		user.WorkWeek, user.AllowedLocations, user.IsActive))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEmailTaken)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// UpdateUser применяет частичное обновление: SET собирается только из полей,
// заданных в upd. Пустое обновление возвращает запись без изменений.
func (s *Storage) UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	const op = "storage.postgres.UpdateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	set := make([]string, 0, 8)
	args := make([]any, 0, 9)
	add := func(expr string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf(expr, len(args)))
	}

	if upd.Name != nil {
		add("name = $%d", *upd.Name)
	}
	if upd.Role != nil {
		add("role = $%d", *upd.Role)
	}
	if upd.HiringDate != nil {
		add("hiring_date = $%d", upd.HiringDate.Time)
	}
	if upd.ProbationEnd != nil {
		add("probation_end = $%d", upd.ProbationEnd.Time)
	}
	if upd.WorkStartTime != nil {
		add("work_start_time = $%d::time", upd.WorkStartTime.String())
	}
	if upd.WorkEndTime != nil {
		add("work_end_time = $%d::time", upd.WorkEndTime.String())
	}
	if upd.WorkWeek != nil {
		add("work_week = $%d", *upd.WorkWeek)
	}
	if upd.AllowedLocations != nil {
		add("allowed_locations = $%d", *upd.AllowedLocations)
	}

	if len(set) == 0 {
		return s.GetUser(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING `+userColumns,
		strings.Join(set, ", "), len(args))
	u, err := scanUser(s.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// scanUser читает одну строку пользователя, преобразуя NULL-колонки
// и текстовое представление времени суток в доменные типы.
func scanUser(row pgx.Row) (*models.User, error) {
	var (
		u                     models.User
		hiringDate, probation *time.Time
		workStart, workEnd    *string
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role,
		&hiringDate, &probation, &workStart, &workEnd,
		&u.WorkWeek, &u.AllowedLocations, &u.IsActive); err != nil {
		return nil, err
	}

	if hiringDate != nil {
		u.HiringDate = &models.Date{Time: *hiringDate}
	}
	if probation != nil {
		u.ProbationEnd = &models.Date{Time: *probation}
	}
	if workStart != nil {
		dt, err := models.ParseDayTime(*workStart)
		if err != nil {
			return nil, err
		}
		u.WorkStartTime = &dt
	}
	if workEnd != nil {
		dt, err := models.ParseDayTime(*workEnd)
		if err != nil {
			return nil, err
		}
		u.WorkEndTime = &dt
	}
	if u.WorkWeek == nil {
		u.WorkWeek = []string{}
	}
	if u.AllowedLocations == nil {
		u.AllowedLocations = []string{}
	}
	return &u, nil
}
