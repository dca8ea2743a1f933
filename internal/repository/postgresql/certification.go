package postgresql

import (
	"context"
	"fmt"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/master/certification"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type certificationRepositoryImpl struct {
	db *database.DB
}

func NewCertificationRepository(db *database.DB) certification.CertificationRepository {
	return &certificationRepositoryImpl{db: db}
}

// Create implements certification.CertificationRepository.
func (r *certificationRepositoryImpl) Create(ctx context.Context, cert certification.Certification) (certification.Certification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO certifications (id, name, organization, level)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, organization, level
	`

	var result certification.Certification
	err := q.QueryRow(ctx, query, uuid.NewString(), cert.Name, cert.Organization, cert.Level).Scan(
		&result.ID, &result.Name, &result.Organization, &result.Level,
	)
	if err != nil {
		return certification.Certification{}, fmt.Errorf("failed to create certification: %w", err)
	}

	return result, nil
}

// GetByID implements certification.CertificationRepository.
func (r *certificationRepositoryImpl) GetByID(ctx context.Context, id string) (certification.Certification, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, organization, level FROM certifications WHERE id = $1`

	var result certification.Certification
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID, &result.Name, &result.Organization, &result.Level,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return certification.Certification{}, certification.ErrCertificationNotFound
		}
		return certification.Certification{}, fmt.Errorf("failed to get certification: %w", err)
	}

	return result, nil
}

// List implements certification.CertificationRepository.
func (r *certificationRepositoryImpl) List(ctx context.Context) ([]certification.Certification, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, organization, level FROM certifications ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list certifications: %w", err)
	}
	defer rows.Close()

	var certs []certification.Certification
	for rows.Next() {
		var c certification.Certification
		if err := rows.Scan(&c.ID, &c.Name, &c.Organization, &c.Level); err != nil {
			return nil, fmt.Errorf("failed to scan certification: %w", err)
		}
		certs = append(certs, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return certs, nil
}

// Update implements certification.CertificationRepository.
func (r *certificationRepositoryImpl) Update(ctx context.Context, req certification.UpdateCertificationRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE certifications
		SET name = COALESCE($1, name),
			organization = COALESCE($2, organization),
			level = COALESCE($3, level),
			updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, req.Name, req.Organization, req.Level, req.ID).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return certification.ErrCertificationNotFound
		}
		return fmt.Errorf("failed to update certification: %w", err)
	}

	return nil
}

// Delete implements certification.CertificationRepository.
func (r *certificationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete certification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return certification.ErrCertificationNotFound
	}

	return nil
}
