package postgresql

import (
	"context"
	"fmt"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/master/shifttype"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type shiftTypeRepositoryImpl struct {
	db *database.DB
}

func NewShiftTypeRepository(db *database.DB) shifttype.ShiftTypeRepository {
	return &shiftTypeRepositoryImpl{db: db}
}

// Create implements shifttype.ShiftTypeRepository.
func (r *shiftTypeRepositoryImpl) Create(ctx context.Context, st shifttype.ShiftType) (shifttype.ShiftType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_types (id, name, color, requires_certification_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, color, requires_certification_id
	`

	var result shifttype.ShiftType
	err := q.QueryRow(ctx, query, uuid.NewString(), st.Name, st.Color, st.RequiresCertificationID).Scan(
		&result.ID, &result.Name, &result.Color, &result.RequiresCertificationID,
	)
	if err != nil {
		return shifttype.ShiftType{}, fmt.Errorf("failed to create shift type: %w", err)
	}

	return result, nil
}

// GetByID implements shifttype.ShiftTypeRepository.
func (r *shiftTypeRepositoryImpl) GetByID(ctx context.Context, id string) (shifttype.ShiftType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, color, requires_certification_id FROM shift_types WHERE id = $1`

	var result shifttype.ShiftType
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID, &result.Name, &result.Color, &result.RequiresCertificationID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shifttype.ShiftType{}, shifttype.ErrShiftTypeNotFound
		}
		return shifttype.ShiftType{}, fmt.Errorf("failed to get shift type: %w", err)
	}

	return result, nil
}

// List implements shifttype.ShiftTypeRepository.
func (r *shiftTypeRepositoryImpl) List(ctx context.Context) ([]shifttype.ShiftType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, color, requires_certification_id FROM shift_types ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift types: %w", err)
	}
	defer rows.Close()

	var types []shifttype.ShiftType
	for rows.Next() {
		var st shifttype.ShiftType
		if err := rows.Scan(&st.ID, &st.Name, &st.Color, &st.RequiresCertificationID); err != nil {
			return nil, fmt.Errorf("failed to scan shift type: %w", err)
		}
		types = append(types, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return types, nil
}

// Update implements shifttype.ShiftTypeRepository.
func (r *shiftTypeRepositoryImpl) Update(ctx context.Context, req shifttype.UpdateShiftTypeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_types
		SET name = COALESCE($1, name),
			color = COALESCE($2, color),
			requires_certification_id = COALESCE($3, requires_certification_id),
			updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, req.Name, req.Color, req.RequiresCertificationID, req.ID).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shifttype.ErrShiftTypeNotFound
		}
		return fmt.Errorf("failed to update shift type: %w", err)
	}

	return nil
}

// Delete implements shifttype.ShiftTypeRepository.
func (r *shiftTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shifttype.ErrShiftTypeNotFound
	}

	return nil
}
