package instructor

import "context"

type InstructorService interface {
	Create(ctx context.Context, req CreateInstructorRequest) (InstructorResponse, error)
	GetByID(ctx context.Context, id string) (InstructorResponse, error)
	List(ctx context.Context, req ListInstructorsRequest) ([]InstructorResponse, error)
	Update(ctx context.Context, req UpdateInstructorRequest) (InstructorResponse, error)

	// LinkUser attaches a signed-up user account to a pre-created
	// instructor record.
	LinkUser(ctx context.Context, id, userID string) error

	Delete(ctx context.Context, id string) error
}
