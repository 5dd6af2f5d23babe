package services

import (
	"MerakiHMS/models"
	"MerakiHMS/repositories"
	"context"
)

type DoctorService struct {
	repository *repositories.DoctorRepository
}

func NewDoctorService(repository *repositories.DoctorRepository) *DoctorService {
	return &DoctorService{repository: repository}
}

func (s *DoctorService) Create(ctx context.Context, doctor *models.Doctor) error {
	return s.repository.Create(ctx, doctor)
}

func (s *DoctorService) GetProfile(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return s.repository.GetByID(ctx, doctorID)
}
