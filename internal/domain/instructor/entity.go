package instructor

import "time"

// Instructor is a teaching member of a department. An instructor may be
// linked to a user account once the person has signed up.
type Instructor struct {
	ID           string
	UserID       *string
	DisplayName  string
	DepartmentID string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	CertificationIDs []string
}

// InstructorWithDetails contains instructor data with joined names.
type InstructorWithDetails struct {
	Instructor
	DepartmentName     string
	CertificationNames []string
}
