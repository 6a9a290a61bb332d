package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studyhive/auth-service/internal/directory"
)

// Directory — pgx-реализация справочника пользователей.
type Directory struct {
	db *pgxpool.Pool
	// opTimeout — дедлайн одного запроса к базе; 0 отключает обёртку.
	opTimeout time.Duration
}

// New создает новое подключение к PostgreSQL. opTimeout ограничивает каждый
// запрос к базе независимо от дедлайна входящего запроса.
func New(ctx context.Context, dbURL string, opTimeout time.Duration) (*Directory, error) {
	const op = "directory.postgres.New"

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Directory{db: db, opTimeout: opTimeout}, nil
}

// Close закрывает пул соединений.
func (d *Directory) Close() {
	d.db.Close()
}

// opCtx ограничивает один запрос к базе сконфигурированным дедлайном.
// Более ранний дедлайн вызывающей стороны сохраняется.
func (d *Directory) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.opTimeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, d.opTimeout)
}

// Проверка на соответствие интерфейсу Directory.
var _ directory.Directory = (*Directory)(nil)
