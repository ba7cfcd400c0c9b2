package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/repository"
)

type ProfileService interface {
	Create(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

type profileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) Create(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error) {
	profile := &domain.Profile{
		ID:        uuid.New(),
		FullName:  req.FullName,
		Role:      req.Role,
		Gender:    req.Gender,
		BirthDate: req.BirthDate,
	}
	// Only doctors and nutritionists carry a specialty.
	if req.Role.IsProfessional() {
		profile.Specialty = req.Specialty
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *profileService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return s.repo.GetByID(ctx, id)
}
