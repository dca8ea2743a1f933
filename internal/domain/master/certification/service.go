package certification

import "context"

type CertificationService interface {
	Create(ctx context.Context, req CreateCertificationRequest) (CertificationResponse, error)
	GetByID(ctx context.Context, id string) (CertificationResponse, error)
	List(ctx context.Context) ([]CertificationResponse, error)
	Update(ctx context.Context, req UpdateCertificationRequest) (CertificationResponse, error)
	Delete(ctx context.Context, id string) error
}
