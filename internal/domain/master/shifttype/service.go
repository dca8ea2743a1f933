package shifttype

import "context"

type ShiftTypeService interface {
	Create(ctx context.Context, req CreateShiftTypeRequest) (ShiftTypeResponse, error)
	GetByID(ctx context.Context, id string) (ShiftTypeResponse, error)
	List(ctx context.Context) ([]ShiftTypeResponse, error)
	Update(ctx context.Context, req UpdateShiftTypeRequest) (ShiftTypeResponse, error)
	Delete(ctx context.Context, id string) error
}
