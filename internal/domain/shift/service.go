package shift

import "context"

type ShiftService interface {
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	GetByID(ctx context.Context, id string) (ShiftResponse, error)
	List(ctx context.Context, req ListShiftsRequest) ([]ShiftResponse, error)
	Update(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, id string) error

	// Assign adds an instructor to a shift after checking activity,
	// headcount and the shift type's certification requirement.
	Assign(ctx context.Context, req AssignRequest) (ShiftResponse, error)
	Unassign(ctx context.Context, shiftID, instructorID string) error
}
