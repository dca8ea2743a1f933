package master

import (
	"context"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/master/certification"
)

type certificationServiceImpl struct {
	repo certification.CertificationRepository
}

func NewCertificationService(repo certification.CertificationRepository) certification.CertificationService {
	return &certificationServiceImpl{repo: repo}
}

// Create implements certification.CertificationService.
func (s *certificationServiceImpl) Create(ctx context.Context, req certification.CreateCertificationRequest) (certification.CertificationResponse, error) {
	if err := req.Validate(); err != nil {
		return certification.CertificationResponse{}, err
	}

	created, err := s.repo.Create(ctx, certification.Certification{
		Name:         req.Name,
		Organization: req.Organization,
		Level:        req.Level,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return certification.CertificationResponse{}, certification.ErrCertificationNameExists
		}
		return certification.CertificationResponse{}, err
	}

	return toCertificationResponse(created), nil
}

// GetByID implements certification.CertificationService.
func (s *certificationServiceImpl) GetByID(ctx context.Context, id string) (certification.CertificationResponse, error) {
	cert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return certification.CertificationResponse{}, err
	}
	return toCertificationResponse(cert), nil
}

// List implements certification.CertificationService.
func (s *certificationServiceImpl) List(ctx context.Context) ([]certification.CertificationResponse, error) {
	certs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]certification.CertificationResponse, 0, len(certs))
	for _, cert := range certs {
		responses = append(responses, toCertificationResponse(cert))
	}
	return responses, nil
}

// Update implements certification.CertificationService.
func (s *certificationServiceImpl) Update(ctx context.Context, req certification.UpdateCertificationRequest) (certification.CertificationResponse, error) {
	if err := req.Validate(); err != nil {
		return certification.CertificationResponse{}, err
	}

	if err := s.repo.Update(ctx, req); err != nil {
		if isUniqueViolation(err) {
			return certification.CertificationResponse{}, certification.ErrCertificationNameExists
		}
		return certification.CertificationResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

// Delete implements certification.CertificationService.
func (s *certificationServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isForeignKeyViolation(err) {
			return certification.ErrCertificationInUse
		}
		return err
	}
	return nil
}

func toCertificationResponse(cert certification.Certification) certification.CertificationResponse {
	return certification.CertificationResponse{
		ID:           cert.ID,
		Name:         cert.Name,
		Organization: cert.Organization,
		Level:        cert.Level,
	}
}
