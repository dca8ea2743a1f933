package master

import (
	"context"
	"errors"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/master/department"
	"github.com/jackc/pgx/v5/pgconn"
)

type departmentServiceImpl struct {
	repo department.DepartmentRepository
}

func NewDepartmentService(repo department.DepartmentRepository) department.DepartmentService {
	return &departmentServiceImpl{repo: repo}
}

// Create implements department.DepartmentService.
func (s *departmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.repo.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return department.DepartmentResponse{}, department.ErrDepartmentNameExists
		}
		return department.DepartmentResponse{}, err
	}

	return toDepartmentResponse(created), nil
}

// GetByID implements department.DepartmentService.
func (s *departmentServiceImpl) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dep, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return toDepartmentResponse(dep), nil
}

// List implements department.DepartmentService.
func (s *departmentServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	deps, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(deps))
	for _, dep := range deps {
		responses = append(responses, toDepartmentResponse(dep))
	}
	return responses, nil
}

// Update implements department.DepartmentService.
func (s *departmentServiceImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if err := s.repo.Update(ctx, req); err != nil {
		if isUniqueViolation(err) {
			return department.DepartmentResponse{}, department.ErrDepartmentNameExists
		}
		return department.DepartmentResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

// Delete implements department.DepartmentService.
func (s *departmentServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isForeignKeyViolation(err) {
			return department.ErrDepartmentInUse
		}
		return err
	}
	return nil
}

func toDepartmentResponse(dep department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:          dep.ID,
		Name:        dep.Name,
		Description: dep.Description,
		SortOrder:   dep.SortOrder,
	}
}

// Postgres error codes for constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	return isPgError(err, pgUniqueViolation)
}

func isForeignKeyViolation(err error) bool {
	return isPgError(err, pgForeignKeyViolation)
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
