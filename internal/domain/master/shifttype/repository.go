package shifttype

import "context"

type ShiftTypeRepository interface {
	Create(ctx context.Context, st ShiftType) (ShiftType, error)
	GetByID(ctx context.Context, id string) (ShiftType, error)
	List(ctx context.Context) ([]ShiftType, error)
	Update(ctx context.Context, req UpdateShiftTypeRequest) error
	Delete(ctx context.Context, id string) error
}
