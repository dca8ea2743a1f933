package instructor

import "context"

type InstructorRepository interface {
	Create(ctx context.Context, ins Instructor) (Instructor, error)
	GetByID(ctx context.Context, id string) (InstructorWithDetails, error)
	GetByUserID(ctx context.Context, userID string) (Instructor, error)
	List(ctx context.Context, req ListInstructorsRequest) ([]InstructorWithDetails, error)
	Update(ctx context.Context, req UpdateInstructorRequest) error
	SetCertifications(ctx context.Context, id string, certificationIDs []string) error
	LinkUser(ctx context.Context, id, userID string) error
	Delete(ctx context.Context, id string) error
}
