package postgresql

import (
	"context"
	"fmt"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/instructor"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type instructorRepositoryImpl struct {
	db *database.DB
}

func NewInstructorRepository(db *database.DB) instructor.InstructorRepository {
	return &instructorRepositoryImpl{db: db}
}

// Create implements instructor.InstructorRepository.
func (r *instructorRepositoryImpl) Create(ctx context.Context, ins instructor.Instructor) (instructor.Instructor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO instructors (id, user_id, display_name, department_id, is_active)
		VALUES ($1, $2, $3, $4, true)
		RETURNING id, user_id, display_name, department_id, is_active, created_at, updated_at
	`

	var created instructor.Instructor
	err := q.QueryRow(ctx, query, uuid.NewString(), ins.UserID, ins.DisplayName, ins.DepartmentID).Scan(
		&created.ID, &created.UserID, &created.DisplayName, &created.DepartmentID,
		&created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return instructor.Instructor{}, fmt.Errorf("failed to create instructor: %w", err)
	}

	return created, nil
}

// GetByID implements instructor.InstructorRepository.
func (r *instructorRepositoryImpl) GetByID(ctx context.Context, id string) (instructor.InstructorWithDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.id, i.user_id, i.display_name, i.department_id, i.is_active,
			   i.created_at, i.updated_at,
			   d.name AS department_name,
			   COALESCE(array_agg(ic.certification_id) FILTER (WHERE ic.certification_id IS NOT NULL), '{}') AS certification_ids,
			   COALESCE(array_agg(c.name) FILTER (WHERE c.name IS NOT NULL), '{}') AS certification_names
		FROM instructors i
		JOIN departments d ON d.id = i.department_id
		LEFT JOIN instructor_certifications ic ON ic.instructor_id = i.id
		LEFT JOIN certifications c ON c.id = ic.certification_id
		WHERE i.id = $1
		GROUP BY i.id, d.name
	`

	var ins instructor.InstructorWithDetails
	err := q.QueryRow(ctx, query, id).Scan(
		&ins.ID, &ins.UserID, &ins.DisplayName, &ins.DepartmentID, &ins.IsActive,
		&ins.CreatedAt, &ins.UpdatedAt, &ins.DepartmentName,
		&ins.CertificationIDs, &ins.CertificationNames,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ins, instructor.ErrInstructorNotFound
		}
		return ins, fmt.Errorf("failed to get instructor: %w", err)
	}

	return ins, nil
}

// GetByUserID implements instructor.InstructorRepository.
func (r *instructorRepositoryImpl) GetByUserID(ctx context.Context, userID string) (instructor.Instructor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, display_name, department_id, is_active, created_at, updated_at
		FROM instructors
		WHERE user_id = $1
	`

	var ins instructor.Instructor
	err := q.QueryRow(ctx, query, userID).Scan(
		&ins.ID, &ins.UserID, &ins.DisplayName, &ins.DepartmentID,
		&ins.IsActive, &ins.CreatedAt, &ins.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return instructor.Instructor{}, instructor.ErrInstructorNotFound
		}
		return instructor.Instructor{}, fmt.Errorf("failed to get instructor by user: %w", err)
	}

	return ins, nil
}

// List implements instructor.InstructorRepository.
func (r *instructorRepositoryImpl) List(ctx context.Context, req instructor.ListInstructorsRequest) ([]instructor.InstructorWithDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.id, i.user_id, i.display_name, i.department_id, i.is_active,
			   i.created_at, i.updated_at,
			   d.name AS department_name,
			   COALESCE(array_agg(ic.certification_id) FILTER (WHERE ic.certification_id IS NOT NULL), '{}') AS certification_ids,
			   COALESCE(array_agg(c.name) FILTER (WHERE c.name IS NOT NULL), '{}') AS certification_names
		FROM instructors i
		JOIN departments d ON d.id = i.department_id
		LEFT JOIN instructor_certifications ic ON ic.instructor_id = i.id
		LEFT JOIN certifications c ON c.id = ic.certification_id
		WHERE ($1 = '' OR i.department_id::text = $1)
		  AND (i.is_active = true OR $2)
		GROUP BY i.id, d.name
		ORDER BY i.display_name
	`

	rows, err := q.Query(ctx, query, req.DepartmentID, req.IncludeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list instructors: %w", err)
	}
	defer rows.Close()

	var instructors []instructor.InstructorWithDetails
	for rows.Next() {
		var ins instructor.InstructorWithDetails
		err := rows.Scan(
			&ins.ID, &ins.UserID, &ins.DisplayName, &ins.DepartmentID, &ins.IsActive,
			&ins.CreatedAt, &ins.UpdatedAt, &ins.DepartmentName,
			&ins.CertificationIDs, &ins.CertificationNames,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan instructor: %w", err)
		}
		instructors = append(instructors, ins)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return instructors, nil
}

// Update implements instructor.InstructorRepository.
func (r *instructorRepositoryImpl) Update(ctx context.Context, req instructor.UpdateInstructorRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE instructors
		SET display_name = COALESCE($1, display_name),
			department_id = COALESCE($2, department_id),
			is_active = COALESCE($3, is_active),
			updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, req.DisplayName, req.DepartmentID, req.IsActive, req.ID).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return instructor.ErrInstructorNotFound
		}
		return fmt.Errorf("failed to update instructor: %w", err)
	}

	return nil
}

// SetCertifications implements instructor.InstructorRepository. Replaces
// the full certification set.
func (r *instructorRepositoryImpl) SetCertifications(ctx context.Context, id string, certificationIDs []string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM instructor_certifications WHERE instructor_id = $1`, id); err != nil {
		return fmt.Errorf("failed to clear instructor certifications: %w", err)
	}

	for _, certID := range certificationIDs {
		_, err := q.Exec(ctx,
			`INSERT INTO instructor_certifications (instructor_id, certification_id) VALUES ($1, $2)`,
			id, certID,
		)
		if err != nil {
			return fmt.Errorf("failed to add instructor certification: %w", err)
		}
	}

	return nil
}

// LinkUser implements instructor.InstructorRepository.
func (r *instructorRepositoryImpl) LinkUser(ctx context.Context, id, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE instructors SET user_id = $1, updated_at = NOW()
		WHERE id = $2 AND user_id IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, userID, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return instructor.ErrInstructorAlreadyLinked
		}
		return fmt.Errorf("failed to link instructor to user: %w", err)
	}

	return nil
}

// Delete implements instructor.InstructorRepository.
func (r *instructorRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM instructors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete instructor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return instructor.ErrInstructorNotFound
	}

	return nil
}
