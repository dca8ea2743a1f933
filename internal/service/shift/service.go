package shift

import (
	"context"
	"errors"
	"time"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/instructor"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/master/department"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/master/shifttype"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/shift"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/database"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type shiftServiceImpl struct {
	db             *database.DB
	repo           shift.ShiftRepository
	shiftTypeRepo  shifttype.ShiftTypeRepository
	deptRepo       department.DepartmentRepository
	instructorRepo instructor.InstructorRepository
}

func NewShiftService(
	db *database.DB,
	repo shift.ShiftRepository,
	shiftTypeRepo shifttype.ShiftTypeRepository,
	deptRepo department.DepartmentRepository,
	instructorRepo instructor.InstructorRepository,
) shift.ShiftService {
	return &shiftServiceImpl{
		db:             db,
		repo:           repo,
		shiftTypeRepo:  shiftTypeRepo,
		deptRepo:       deptRepo,
		instructorRepo: instructorRepo,
	}
}

// Create implements shift.ShiftService.
func (s *shiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	if _, err := s.shiftTypeRepo.GetByID(ctx, req.ShiftTypeID); err != nil {
		return shift.ShiftResponse{}, err
	}
	if _, err := s.deptRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.repo.Create(ctx, shift.Shift{
		Date:          req.DateTime(),
		ShiftTypeID:   req.ShiftTypeID,
		DepartmentID:  req.DepartmentID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		RequiredCount: req.RequiredCount,
		Note:          req.Note,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return s.GetByID(ctx, created.ID)
}

// GetByID implements shift.ShiftService.
func (s *shiftServiceImpl) GetByID(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return toShiftResponse(sh), nil
}

// List implements shift.ShiftService.
func (s *shiftServiceImpl) List(ctx context.Context, req shift.ListShiftsRequest) ([]shift.ShiftResponse, error) {
	shifts, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toShiftResponse(sh))
	}
	return responses, nil
}

// Update implements shift.ShiftService.
func (s *shiftServiceImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	if err := s.repo.Update(ctx, req); err != nil {
		return shift.ShiftResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

// Delete implements shift.ShiftService.
func (s *shiftServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Assign implements shift.ShiftService.
func (s *shiftServiceImpl) Assign(ctx context.Context, req shift.AssignRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	sh, err := s.repo.GetByID(ctx, req.ShiftID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if sh.IsFullyStaffed() {
		return shift.ShiftResponse{}, shift.ErrShiftFullyStaffed
	}

	ins, err := s.instructorRepo.GetByID(ctx, req.InstructorID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if !ins.IsActive {
		return shift.ShiftResponse{}, shift.ErrInstructorInactive
	}

	st, err := s.shiftTypeRepo.GetByID(ctx, sh.ShiftTypeID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if st.RequiresCertificationID != nil && !hasCertification(ins.CertificationIDs, *st.RequiresCertificationID) {
		return shift.ShiftResponse{}, shift.ErrCertificationMissing
	}

	// The capacity check and insert hold the shift row lock so concurrent
	// assigns cannot exceed required_count.
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.repo.LockShift(txCtx, req.ShiftID); err != nil {
			return err
		}

		count, err := s.repo.CountAssignments(txCtx, req.ShiftID)
		if err != nil {
			return err
		}
		if count >= sh.RequiredCount {
			return shift.ErrShiftFullyStaffed
		}

		_, err = s.repo.CreateAssignment(txCtx, shift.Assignment{
			ShiftID:      req.ShiftID,
			InstructorID: req.InstructorID,
			AssignedBy:   req.AssignedBy,
		})
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.ShiftResponse{}, shift.ErrAlreadyAssigned
		}
		return shift.ShiftResponse{}, err
	}

	return s.GetByID(ctx, req.ShiftID)
}

// Unassign implements shift.ShiftService.
func (s *shiftServiceImpl) Unassign(ctx context.Context, shiftID, instructorID string) error {
	return s.repo.DeleteAssignment(ctx, shiftID, instructorID)
}

func hasCertification(ids []string, required string) bool {
	for _, id := range ids {
		if id == required {
			return true
		}
	}
	return false
}

func toShiftResponse(sh shift.ShiftWithDetails) shift.ShiftResponse {
	assignments := make([]shift.AssignmentResponse, 0, len(sh.Assignments))
	for _, a := range sh.Assignments {
		assignments = append(assignments, shift.AssignmentResponse{
			ID:             a.ID,
			InstructorID:   a.InstructorID,
			InstructorName: a.InstructorName,
			AssignedBy:     a.AssignedBy,
			CreatedAt:      a.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return shift.ShiftResponse{
		ID:             sh.ID,
		Date:           sh.Date.Format("2006-01-02"),
		ShiftTypeID:    sh.ShiftTypeID,
		ShiftTypeName:  sh.ShiftTypeName,
		ShiftTypeColor: sh.ShiftTypeColor,
		DepartmentID:   sh.DepartmentID,
		DepartmentName: sh.DepartmentName,
		StartTime:      sh.StartTime,
		EndTime:        sh.EndTime,
		RequiredCount:  sh.RequiredCount,
		AssignedCount:  sh.AssignedCount(),
		Note:           sh.Note,
		Assignments:    assignments,
	}
}
