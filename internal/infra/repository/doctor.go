package repository

import (
	"context"

	"doctors-portal/internal/domain/doctor"
	"doctors-portal/internal/infra"
	"doctors-portal/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DoctorRepository struct {
	pool *pgxpool.Pool
}

func NewDoctorRepository(pool *pgxpool.Pool) *DoctorRepository {
	return &DoctorRepository{pool: pool}
}

func (r *DoctorRepository) FindAll(ctx context.Context) ([]*readmodel.DoctorRM, error) {
	query := `
		SELECT id, name, email, specialty, image_url, created_at
		FROM doctors
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query doctors", err)
	}
	defer rows.Close()

	var result []*readmodel.DoctorRM
	for rows.Next() {
		var rm readmodel.DoctorRM
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Email, &rm.Specialty, &rm.ImageURL, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan doctor row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read doctor rows", err)
	}

	return result, nil
}

func (r *DoctorRepository) Insert(ctx context.Context, d *doctor.Doctor) (*readmodel.DoctorRM, error) {
	query := `
		INSERT INTO doctors (id, name, email, specialty, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, specialty, image_url, created_at
	`
	var rm readmodel.DoctorRM
	err := r.pool.QueryRow(ctx, query,
		d.ID(), d.Name(), d.Email().Value(), d.Specialty(), d.ImageURL(),
	).Scan(&rm.ID, &rm.Name, &rm.Email, &rm.Specialty, &rm.ImageURL, &rm.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr("doctor email already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to insert doctor", err)
	}

	return &rm, nil
}

func (r *DoctorRepository) DeleteByEmail(ctx context.Context, email string) error {
	query := `
		DELETE FROM doctors
		WHERE email = $1
	`
	tag, err := r.pool.Exec(ctx, query, email)
	if err != nil {
		return infra.WrapRepoErr("failed to delete doctor", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("doctor not found", nil, infra.KindNotFound)
	}

	return nil
}
