package shift

import "time"

// Shift is a concrete staffed slot on one date: a shift type in a
// department with a clock-time window and a required headcount.
type Shift struct {
	ID            string
	Date          time.Time // date only, midnight UTC
	ShiftTypeID   string
	DepartmentID  string
	StartTime     string // "HH:MM"
	EndTime       string // "HH:MM"
	RequiredCount int
	Note          *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ShiftWithDetails contains shift data with joined names and assignments.
type ShiftWithDetails struct {
	Shift
	ShiftTypeName  string
	ShiftTypeColor string
	DepartmentName string
	Assignments    []Assignment
}

// Assignment links one instructor to one shift. The shift/instructor pair
// is unique.
type Assignment struct {
	ID             string
	ShiftID        string
	InstructorID   string
	InstructorName string
	AssignedBy     string
	CreatedAt      time.Time
}

// AssignedCount returns how many instructors are on the shift.
func (s *ShiftWithDetails) AssignedCount() int {
	return len(s.Assignments)
}

// IsFullyStaffed checks the headcount against the requirement.
func (s *ShiftWithDetails) IsFullyStaffed() bool {
	return len(s.Assignments) >= s.RequiredCount
}
