package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/studyhive/auth-service/internal/directory"
	"github.com/studyhive/auth-service/internal/models"
)

// SavePrincipal создаёт учётную запись (используется сидированием и тестами;
// регистрация пользователей живёт в остальном бэкенде).
func (d *Directory) SavePrincipal(ctx context.Context, p *models.Principal) error {
	const op = "directory.postgres.SavePrincipal"

	ctx, cancel := d.opCtx(ctx)
	defer cancel()

	query := `
		INSERT INTO principals(id, university_id, email, role, password_hash, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := d.db.Exec(ctx, query,
		p.ID,
		p.UniversityID,
		p.Email,
		string(p.Role),
		p.PasswordHash,
		p.Active,
		p.CreatedAt,
		p.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, directory.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// PrincipalByEmail находит принципала по email.
func (d *Directory) PrincipalByEmail(ctx context.Context, email string) (*models.Principal, error) {
	const op = "directory.postgres.PrincipalByEmail"

	query := `
		SELECT id, university_id, email, role, password_hash, active, created_at, updated_at
		FROM principals
		WHERE email = $1
	`

	return d.scanPrincipal(ctx, op, query, email)
}

// PrincipalByID находит принципала по ID.
func (d *Directory) PrincipalByID(ctx context.Context, id uuid.UUID) (*models.Principal, error) {
	const op = "directory.postgres.PrincipalByID"

	query := `
		SELECT id, university_id, email, role, password_hash, active, created_at, updated_at
		FROM principals
		WHERE id = $1
	`

	return d.scanPrincipal(ctx, op, query, id)
}

func (d *Directory) scanPrincipal(ctx context.Context, op, query string, arg any) (*models.Principal, error) {
	ctx, cancel := d.opCtx(ctx)
	defer cancel()

	var (
		p    models.Principal
		role string
	)

	err := d.db.QueryRow(ctx, query, arg).Scan(
		&p.ID,
		&p.UniversityID,
		&p.Email,
		&role,
		&p.PasswordHash,
		&p.Active,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, directory.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p.Role = models.Role(role)

	return &p, nil
}
