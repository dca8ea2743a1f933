package master

import (
	"context"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/master/certification"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/master/shifttype"
)

type shiftTypeServiceImpl struct {
	repo     shifttype.ShiftTypeRepository
	certRepo certification.CertificationRepository
}

func NewShiftTypeService(repo shifttype.ShiftTypeRepository, certRepo certification.CertificationRepository) shifttype.ShiftTypeService {
	return &shiftTypeServiceImpl{repo: repo, certRepo: certRepo}
}

// Create implements shifttype.ShiftTypeService.
func (s *shiftTypeServiceImpl) Create(ctx context.Context, req shifttype.CreateShiftTypeRequest) (shifttype.ShiftTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return shifttype.ShiftTypeResponse{}, err
	}

	if req.RequiresCertificationID != nil {
		if _, err := s.certRepo.GetByID(ctx, *req.RequiresCertificationID); err != nil {
			return shifttype.ShiftTypeResponse{}, err
		}
	}

	created, err := s.repo.Create(ctx, shifttype.ShiftType{
		Name:                    req.Name,
		Color:                   req.Color,
		RequiresCertificationID: req.RequiresCertificationID,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return shifttype.ShiftTypeResponse{}, shifttype.ErrShiftTypeNameExists
		}
		return shifttype.ShiftTypeResponse{}, err
	}

	return toShiftTypeResponse(created), nil
}

// GetByID implements shifttype.ShiftTypeService.
func (s *shiftTypeServiceImpl) GetByID(ctx context.Context, id string) (shifttype.ShiftTypeResponse, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return shifttype.ShiftTypeResponse{}, err
	}
	return toShiftTypeResponse(st), nil
}

// List implements shifttype.ShiftTypeService.
func (s *shiftTypeServiceImpl) List(ctx context.Context) ([]shifttype.ShiftTypeResponse, error) {
	types, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]shifttype.ShiftTypeResponse, 0, len(types))
	for _, st := range types {
		responses = append(responses, toShiftTypeResponse(st))
	}
	return responses, nil
}

// Update implements shifttype.ShiftTypeService.
func (s *shiftTypeServiceImpl) Update(ctx context.Context, req shifttype.UpdateShiftTypeRequest) (shifttype.ShiftTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return shifttype.ShiftTypeResponse{}, err
	}

	if req.RequiresCertificationID != nil && *req.RequiresCertificationID != "" {
		if _, err := s.certRepo.GetByID(ctx, *req.RequiresCertificationID); err != nil {
			return shifttype.ShiftTypeResponse{}, err
		}
	}

	if err := s.repo.Update(ctx, req); err != nil {
		if isUniqueViolation(err) {
			return shifttype.ShiftTypeResponse{}, shifttype.ErrShiftTypeNameExists
		}
		return shifttype.ShiftTypeResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

// Delete implements shifttype.ShiftTypeService.
func (s *shiftTypeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isForeignKeyViolation(err) {
			return shifttype.ErrShiftTypeInUse
		}
		return err
	}
	return nil
}

func toShiftTypeResponse(st shifttype.ShiftType) shifttype.ShiftTypeResponse {
	return shifttype.ShiftTypeResponse{
		ID:                      st.ID,
		Name:                    st.Name,
		Color:                   st.Color,
		RequiresCertificationID: st.RequiresCertificationID,
	}
}
