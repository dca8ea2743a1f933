package shift

import (
	"time"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/validator"
)

// AssignmentResponse represents one instructor on a shift.
type AssignmentResponse struct {
	ID             string `json:"id"`
	InstructorID   string `json:"instructorId"`
	InstructorName string `json:"instructorName"`
	AssignedBy     string `json:"assignedBy"`
	CreatedAt      string `json:"createdAt"`
}

// ShiftResponse represents the response structure for a shift.
type ShiftResponse struct {
	ID             string               `json:"id"`
	Date           string               `json:"date"`
	ShiftTypeID    string               `json:"shiftTypeId"`
	ShiftTypeName  string               `json:"shiftTypeName,omitempty"`
	ShiftTypeColor string               `json:"shiftTypeColor,omitempty"`
	DepartmentID   string               `json:"departmentId"`
	DepartmentName string               `json:"departmentName,omitempty"`
	StartTime      string               `json:"startTime"`
	EndTime        string               `json:"endTime"`
	RequiredCount  int                  `json:"requiredCount"`
	AssignedCount  int                  `json:"assignedCount"`
	Note           *string              `json:"note,omitempty"`
	Assignments    []AssignmentResponse `json:"assignments"`
}

// CreateShiftRequest represents the request structure for creating a shift.
type CreateShiftRequest struct {
	Date          string  `json:"date"`
	ShiftTypeID   string  `json:"shiftTypeId"`
	DepartmentID  string  `json:"departmentId"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	RequiredCount int     `json:"requiredCount"`
	Note          *string `json:"note,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.ShiftTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shiftTypeId",
			Message: "shiftTypeId is required",
		})
	} else if !validator.IsValidUUID(r.ShiftTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shiftTypeId",
			Message: "shiftTypeId must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "departmentId",
			Message: "departmentId is required",
		})
	} else if !validator.IsValidUUID(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "departmentId",
			Message: "departmentId must be a valid UUID",
		})
	}

	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "startTime",
			Message: "startTime must be in HH:MM format",
		})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "endTime",
			Message: "endTime must be in HH:MM format",
		})
	}
	if validator.IsValidClockTime(r.StartTime) && validator.IsValidClockTime(r.EndTime) && r.EndTime <= r.StartTime {
		errs = append(errs, validator.ValidationError{
			Field:   "endTime",
			Message: "endTime must be after startTime",
		})
	}

	if r.RequiredCount < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "requiredCount",
			Message: "requiredCount must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DateTime returns the parsed shift date. Call after Validate.
func (r *CreateShiftRequest) DateTime() time.Time {
	t, _ := validator.IsValidDate(r.Date)
	return t
}

// UpdateShiftRequest represents the request structure for updating a shift.
type UpdateShiftRequest struct {
	ID            string  `json:"-"` // From Chi URL param
	StartTime     *string `json:"startTime,omitempty"`
	EndTime       *string `json:"endTime,omitempty"`
	RequiredCount *int    `json:"requiredCount,omitempty"`
	Note          *string `json:"note,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.StartTime != nil && !validator.IsValidClockTime(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "startTime",
			Message: "startTime must be in HH:MM format",
		})
	}
	if r.EndTime != nil && !validator.IsValidClockTime(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "endTime",
			Message: "endTime must be in HH:MM format",
		})
	}
	if r.RequiredCount != nil && *r.RequiredCount < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "requiredCount",
			Message: "requiredCount must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListShiftsRequest carries date-range list filters.
type ListShiftsRequest struct {
	From         time.Time
	To           time.Time
	DepartmentID string
}

// AssignRequest adds an instructor to a shift.
type AssignRequest struct {
	ShiftID      string `json:"-"` // From Chi URL param
	InstructorID string `json:"instructorId"`
	AssignedBy   string `json:"-"` // From session claims
}

func (r *AssignRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shiftId",
			Message: "shiftId is required",
		})
	}
	if validator.IsEmpty(r.InstructorID) {
		errs = append(errs, validator.ValidationError{
			Field:   "instructorId",
			Message: "instructorId is required",
		})
	} else if !validator.IsValidUUID(r.InstructorID) {
		errs = append(errs, validator.ValidationError{
			Field:   "instructorId",
			Message: "instructorId must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
