package instructor

import (
	"context"
	"errors"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/instructor"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/master/department"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/user"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/database"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type instructorServiceImpl struct {
	db       *database.DB
	repo     instructor.InstructorRepository
	deptRepo department.DepartmentRepository
	userRepo user.UserRepository
}

func NewInstructorService(
	db *database.DB,
	repo instructor.InstructorRepository,
	deptRepo department.DepartmentRepository,
	userRepo user.UserRepository,
) instructor.InstructorService {
	return &instructorServiceImpl{
		db:       db,
		repo:     repo,
		deptRepo: deptRepo,
		userRepo: userRepo,
	}
}

// Create implements instructor.InstructorService.
func (s *instructorServiceImpl) Create(ctx context.Context, req instructor.CreateInstructorRequest) (instructor.InstructorResponse, error) {
	if err := req.Validate(); err != nil {
		return instructor.InstructorResponse{}, err
	}

	if _, err := s.deptRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return instructor.InstructorResponse{}, err
	}
	if req.UserID != nil {
		if _, err := s.userRepo.GetByID(ctx, *req.UserID); err != nil {
			return instructor.InstructorResponse{}, err
		}
	}

	var created instructor.Instructor
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.repo.Create(txCtx, instructor.Instructor{
			UserID:       req.UserID,
			DisplayName:  req.DisplayName,
			DepartmentID: req.DepartmentID,
			IsActive:     true,
		})
		if err != nil {
			return err
		}

		if len(req.CertificationIDs) > 0 {
			if err := s.repo.SetCertifications(txCtx, created.ID, req.CertificationIDs); err != nil {
				return err
			}
			created.CertificationIDs = req.CertificationIDs
		}

		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return instructor.InstructorResponse{}, instructor.ErrUserAlreadyLinked
		}
		return instructor.InstructorResponse{}, err
	}

	return s.GetByID(ctx, created.ID)
}

// GetByID implements instructor.InstructorService.
func (s *instructorServiceImpl) GetByID(ctx context.Context, id string) (instructor.InstructorResponse, error) {
	ins, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return instructor.InstructorResponse{}, err
	}
	return toInstructorResponse(ins), nil
}

// List implements instructor.InstructorService.
func (s *instructorServiceImpl) List(ctx context.Context, req instructor.ListInstructorsRequest) ([]instructor.InstructorResponse, error) {
	instructors, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, err
	}

	responses := make([]instructor.InstructorResponse, 0, len(instructors))
	for _, ins := range instructors {
		responses = append(responses, toInstructorResponse(ins))
	}
	return responses, nil
}

// Update implements instructor.InstructorService.
func (s *instructorServiceImpl) Update(ctx context.Context, req instructor.UpdateInstructorRequest) (instructor.InstructorResponse, error) {
	if err := req.Validate(); err != nil {
		return instructor.InstructorResponse{}, err
	}

	if req.DepartmentID != nil {
		if _, err := s.deptRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return instructor.InstructorResponse{}, err
		}
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.repo.Update(txCtx, req); err != nil {
			return err
		}
		if req.CertificationIDs != nil {
			return s.repo.SetCertifications(txCtx, req.ID, *req.CertificationIDs)
		}
		return nil
	})
	if err != nil {
		return instructor.InstructorResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

// LinkUser implements instructor.InstructorService.
func (s *instructorServiceImpl) LinkUser(ctx context.Context, id, userID string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	if err := s.repo.LinkUser(ctx, id, userID); err != nil {
		if isUniqueViolation(err) {
			return instructor.ErrUserAlreadyLinked
		}
		return err
	}
	return nil
}

// Delete implements instructor.InstructorService.
func (s *instructorServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func toInstructorResponse(ins instructor.InstructorWithDetails) instructor.InstructorResponse {
	certIDs := ins.CertificationIDs
	if certIDs == nil {
		certIDs = []string{}
	}

	return instructor.InstructorResponse{
		ID:                 ins.ID,
		UserID:             ins.UserID,
		DisplayName:        ins.DisplayName,
		DepartmentID:       ins.DepartmentID,
		DepartmentName:     ins.DepartmentName,
		CertificationIDs:   certIDs,
		CertificationNames: ins.CertificationNames,
		IsActive:           ins.IsActive,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
