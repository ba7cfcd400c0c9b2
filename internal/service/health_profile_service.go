package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/anthropometry"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/repository"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/schedule"
)

// HealthProfileService stores a patient's measurements along with the
// metrics derived from them.
type HealthProfileService interface {
	Upsert(ctx context.Context, patientID uuid.UUID, req *domain.UpsertHealthProfileRequest) (*domain.HealthProfileResponse, error)
	Get(ctx context.Context, patientID uuid.UUID) (*domain.HealthProfileResponse, error)
}

type healthProfileService struct {
	repo        repository.HealthProfileRepository
	profileRepo repository.ProfileRepository
	metrics     MetricsService
	clock       schedule.Clock
}

func NewHealthProfileService(
	repo repository.HealthProfileRepository,
	profileRepo repository.ProfileRepository,
	metrics MetricsService,
	clock schedule.Clock,
) HealthProfileService {
	if clock == nil {
		clock = time.Now
	}
	return &healthProfileService{
		repo:        repo,
		profileRepo: profileRepo,
		metrics:     metrics,
		clock:       clock,
	}
}

func (s *healthProfileService) Upsert(ctx context.Context, patientID uuid.UUID, req *domain.UpsertHealthProfileRequest) (*domain.HealthProfileResponse, error) {
	patient, err := loadPatient(ctx, s.profileRepo, patientID)
	if err != nil {
		return nil, err
	}

	// An unrecognized gender leaves the gender-dependent metrics at 0.
	gender, _ := anthropometry.ParseGender(patient.Gender)
	age := anthropometry.AgeAt(patient.BirthDate, s.clock())

	m := s.metrics.Evaluate(ctx, anthropometry.Inputs{
		Weight: req.Weight,
		Height: req.Height,
		Waist:  req.Waist,
		Hip:    req.Hip,
		Neck:   req.Neck,
		Age:    age,
		Gender: gender,
	})

	hp := &domain.HealthProfile{
		PatientID: patientID,
		Weight:    req.Weight,
		Height:    req.Height,
		Waist:     req.Waist,
		Hip:       req.Hip,
		Neck:      req.Neck,
		Age:       age,
	}
	hp.SetMetrics(m)

	if err := s.repo.Upsert(ctx, hp); err != nil {
		return nil, err
	}

	resp := hp.ToResponse(gender)
	return &resp, nil
}

func (s *healthProfileService) Get(ctx context.Context, patientID uuid.UUID) (*domain.HealthProfileResponse, error) {
	patient, err := loadPatient(ctx, s.profileRepo, patientID)
	if err != nil {
		return nil, err
	}

	hp, err := s.repo.GetByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	gender, _ := anthropometry.ParseGender(patient.Gender)
	resp := hp.ToResponse(gender)
	return &resp, nil
}

// loadPatient fetches a profile and checks it belongs to a patient.
func loadPatient(ctx context.Context, repo repository.ProfileRepository, id uuid.UUID) (*domain.Profile, error) {
	profile, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile.Role != domain.RolePatient {
		return nil, domain.ErrInvalidRole
	}
	return profile, nil
}
