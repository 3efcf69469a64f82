package repository

import (
	"context"
	"errors"

	"doctors-portal/internal/domain/treatment"
	"doctors-portal/internal/infra"
	"doctors-portal/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TreatmentRepository struct {
	pool *pgxpool.Pool
}

func NewTreatmentRepository(pool *pgxpool.Pool) *TreatmentRepository {
	return &TreatmentRepository{pool: pool}
}

func (r *TreatmentRepository) FindAll(ctx context.Context) ([]*readmodel.TreatmentRM, error) {
	query := `
		SELECT id, name, slots, price_cents
		FROM treatments
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query treatments", err)
	}
	defer rows.Close()

	var result []*readmodel.TreatmentRM
	for rows.Next() {
		var rm readmodel.TreatmentRM
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Slots, &rm.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan treatment row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read treatment rows", err)
	}

	return result, nil
}

// FindNames is the lightweight projection backing the public treatment list.
func (r *TreatmentRepository) FindNames(ctx context.Context) ([]*readmodel.TreatmentNameRM, error) {
	query := `
		SELECT id, name
		FROM treatments
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query treatment names", err)
	}
	defer rows.Close()

	var result []*readmodel.TreatmentNameRM
	for rows.Next() {
		var rm readmodel.TreatmentNameRM
		if err := rows.Scan(&rm.ID, &rm.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan treatment name row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read treatment name rows", err)
	}

	return result, nil
}

func (r *TreatmentRepository) Create(ctx context.Context, t *treatment.Treatment) (*readmodel.TreatmentRM, error) {
	query := `
		INSERT INTO treatments (id, name, slots, price_cents)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, slots, price_cents
	`
	var rm readmodel.TreatmentRM
	err := r.pool.QueryRow(ctx, query, t.ID(), t.Name(), t.Slots(), t.PriceCents()).
		Scan(&rm.ID, &rm.Name, &rm.Slots, &rm.PriceCents)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr("treatment name already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to insert treatment", err)
	}

	return &rm, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
