package repository

import (
	"context"
	"errors"

	"doctors-portal/internal/domain/user"
	"doctors-portal/internal/infra"
	"doctors-portal/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*readmodel.UserRM, error) {
	query := `
		SELECT email, name, COALESCE(role, ''), updated_at
		FROM users
		ORDER BY email
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query users", err)
	}
	defer rows.Close()

	var result []*readmodel.UserRM
	for rows.Next() {
		var rm readmodel.UserRM
		if err := rows.Scan(&rm.Email, &rm.Name, &rm.Role, &rm.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}

	return result, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*readmodel.UserRM, error) {
	query := `
		SELECT email, name, COALESCE(role, ''), updated_at
		FROM users
		WHERE email = $1
	`
	var rm readmodel.UserRM
	err := r.pool.QueryRow(ctx, query, email).Scan(&rm.Email, &rm.Name, &rm.Role, &rm.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	return &rm, nil
}

// Upsert creates or replaces the user record for an email. The role column is
// left untouched on update so a signed-in admin does not lose the role when
// the sign-in flow re-syncs the record.
func (r *UserRepository) Upsert(ctx context.Context, email, name string) (*readmodel.UserRM, error) {
	query := `
		INSERT INTO users (email, name, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name, updated_at = now()
		RETURNING email, name, COALESCE(role, ''), updated_at
	`
	var rm readmodel.UserRM
	err := r.pool.QueryRow(ctx, query, email, name).Scan(&rm.Email, &rm.Name, &rm.Role, &rm.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert user", err)
	}

	return &rm, nil
}

func (r *UserRepository) GrantAdmin(ctx context.Context, email string) (*readmodel.UserRM, error) {
	query := `
		UPDATE users
		SET role = $2, updated_at = now()
		WHERE email = $1
		RETURNING email, name, COALESCE(role, ''), updated_at
	`
	var rm readmodel.UserRM
	err := r.pool.QueryRow(ctx, query, email, user.RoleAdmin.String()).Scan(&rm.Email, &rm.Name, &rm.Role, &rm.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to grant admin role", err)
	}

	return &rm, nil
}
