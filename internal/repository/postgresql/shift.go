package postgresql

import (
	"context"
	"fmt"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/shift"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, date, shift_type_id, department_id, start_time, end_time, required_count, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, date, shift_type_id, department_id,
				  to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
				  required_count, note, created_at, updated_at
	`

	var created shift.Shift
	err := q.QueryRow(ctx, query,
		uuid.NewString(), s.Date, s.ShiftTypeID, s.DepartmentID,
		s.StartTime, s.EndTime, s.RequiredCount, s.Note,
	).Scan(
		&created.ID, &created.Date, &created.ShiftTypeID, &created.DepartmentID,
		&created.StartTime, &created.EndTime, &created.RequiredCount, &created.Note,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return created, nil
}

const shiftDetailColumns = `
	s.id, s.date, s.shift_type_id, s.department_id,
	to_char(s.start_time, 'HH24:MI'), to_char(s.end_time, 'HH24:MI'),
	s.required_count, s.note, s.created_at, s.updated_at,
	st.name AS shift_type_name, st.color AS shift_type_color,
	d.name AS department_name
`

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.ShiftWithDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftDetailColumns + `
		FROM shifts s
		JOIN shift_types st ON st.id = s.shift_type_id
		JOIN departments d ON d.id = s.department_id
		WHERE s.id = $1
	`

	var sh shift.ShiftWithDetails
	err := q.QueryRow(ctx, query, id).Scan(
		&sh.ID, &sh.Date, &sh.ShiftTypeID, &sh.DepartmentID,
		&sh.StartTime, &sh.EndTime, &sh.RequiredCount, &sh.Note,
		&sh.CreatedAt, &sh.UpdatedAt,
		&sh.ShiftTypeName, &sh.ShiftTypeColor, &sh.DepartmentName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return sh, shift.ErrShiftNotFound
		}
		return sh, fmt.Errorf("failed to get shift: %w", err)
	}

	assignments, err := r.listAssignments(ctx, []string{sh.ID})
	if err != nil {
		return sh, err
	}
	sh.Assignments = assignments[sh.ID]

	return sh, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context, req shift.ListShiftsRequest) ([]shift.ShiftWithDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftDetailColumns + `
		FROM shifts s
		JOIN shift_types st ON st.id = s.shift_type_id
		JOIN departments d ON d.id = s.department_id
		WHERE s.date >= $1 AND s.date <= $2
		  AND ($3 = '' OR s.department_id::text = $3)
		ORDER BY s.date, s.start_time
	`

	rows, err := q.Query(ctx, query, req.From, req.To, req.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.ShiftWithDetails
	var ids []string
	for rows.Next() {
		var sh shift.ShiftWithDetails
		err := rows.Scan(
			&sh.ID, &sh.Date, &sh.ShiftTypeID, &sh.DepartmentID,
			&sh.StartTime, &sh.EndTime, &sh.RequiredCount, &sh.Note,
			&sh.CreatedAt, &sh.UpdatedAt,
			&sh.ShiftTypeName, &sh.ShiftTypeColor, &sh.DepartmentName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, sh)
		ids = append(ids, sh.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	if len(ids) == 0 {
		return shifts, nil
	}

	assignments, err := r.listAssignments(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range shifts {
		shifts[i].Assignments = assignments[shifts[i].ID]
	}

	return shifts, nil
}

func (r *shiftRepositoryImpl) listAssignments(ctx context.Context, shiftIDs []string) (map[string][]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.id, sa.shift_id, sa.instructor_id, i.display_name, sa.assigned_by, sa.created_at
		FROM shift_assignments sa
		JOIN instructors i ON i.id = sa.instructor_id
		WHERE sa.shift_id = ANY($1)
		ORDER BY sa.created_at
	`

	rows, err := q.Query(ctx, query, shiftIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]shift.Assignment)
	for rows.Next() {
		var a shift.Assignment
		err := rows.Scan(&a.ID, &a.ShiftID, &a.InstructorID, &a.InstructorName, &a.AssignedBy, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		result[a.ShiftID] = append(result[a.ShiftID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET start_time = COALESCE($1::time, start_time),
			end_time = COALESCE($2::time, end_time),
			required_count = COALESCE($3, required_count),
			note = COALESCE($4, note),
			updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, req.StartTime, req.EndTime, req.RequiredCount, req.Note, req.ID).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to update shift: %w", err)
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// LockShift implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) LockShift(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var lockedID string
	err := q.QueryRow(ctx, `SELECT id FROM shifts WHERE id = $1 FOR UPDATE`, id).Scan(&lockedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to lock shift: %w", err)
	}

	return nil
}

// CreateAssignment implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) CreateAssignment(ctx context.Context, a shift.Assignment) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (id, shift_id, instructor_id, assigned_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, shift_id, instructor_id, assigned_by, created_at
	`

	var created shift.Assignment
	err := q.QueryRow(ctx, query, uuid.NewString(), a.ShiftID, a.InstructorID, a.AssignedBy).Scan(
		&created.ID, &created.ShiftID, &created.InstructorID, &created.AssignedBy, &created.CreatedAt,
	)
	if err != nil {
		return shift.Assignment{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	return created, nil
}

// DeleteAssignment implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) DeleteAssignment(ctx context.Context, shiftID, instructorID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM shift_assignments WHERE shift_id = $1 AND instructor_id = $2`,
		shiftID, instructorID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete shift assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrAssignmentNotFound
	}

	return nil
}

// CountAssignments implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) CountAssignments(ctx context.Context, shiftID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM shift_assignments WHERE shift_id = $1`, shiftID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count shift assignments: %w", err)
	}

	return count, nil
}
