package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (ShiftWithDetails, error)
	List(ctx context.Context, req ListShiftsRequest) ([]ShiftWithDetails, error)
	Update(ctx context.Context, req UpdateShiftRequest) error
	Delete(ctx context.Context, id string) error

	// LockShift takes a row lock on the shift so concurrent assignment
	// writers serialize on it. Must run inside a transaction.
	LockShift(ctx context.Context, id string) error

	// CreateAssignment inserts an assignment row; the shift/instructor pair
	// is unique at the database level.
	CreateAssignment(ctx context.Context, a Assignment) (Assignment, error)
	DeleteAssignment(ctx context.Context, shiftID, instructorID string) error
	CountAssignments(ctx context.Context, shiftID string) (int, error)
}
