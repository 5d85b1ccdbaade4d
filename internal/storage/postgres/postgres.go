// Package postgres реализует хранилище кадровых данных на основе PostgreSQL.
// Предоставляет методы создания, чтения и обновления пользователей,
// профиля компании и проектов. SQL пишется вручную, пул соединений — pgxpool:
// соединение берется из пула на время одного вызова и гарантированно
// возвращается, между конкурентными запросами соединения не разделяются.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/magabrotheeeer/hrms-core/internal/models"
)

// Storage инкапсулирует пул соединений с PostgreSQL
// и реализует интерфейс storage.Repository.
type Storage struct {
	Pool *pgxpool.Pool
}

// New создает пул соединений с PostgreSQL и проверяет доступность базы.
func New(ctx context.Context, connString string) (*Storage, error) {
	const op = "storage.postgres.New"

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{Pool: pool}, nil
}

// Close закрывает пул соединений.
func (s *Storage) Close() {
	s.Pool.Close()
}

// dateArg преобразует опциональную дату в аргумент запроса (nil — NULL).
func dateArg(d *models.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}

// timeArg преобразует опциональное время суток в текстовый аргумент запроса.
func timeArg(d *models.DayTime) any {
	if d == nil {
		return nil
	}
	return d.String()
}
