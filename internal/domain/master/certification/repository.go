package certification

import "context"

type CertificationRepository interface {
	Create(ctx context.Context, cert Certification) (Certification, error)
	GetByID(ctx context.Context, id string) (Certification, error)
	List(ctx context.Context) ([]Certification, error)
	Update(ctx context.Context, req UpdateCertificationRequest) error
	Delete(ctx context.Context, id string) error
}
