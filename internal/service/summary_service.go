package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/anthropometry"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/llm"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/repository"
)

// SummaryService asks the AI collaborator to describe a stored health profile.
type SummaryService interface {
	Generate(ctx context.Context, patientID uuid.UUID) (*domain.SummaryResponse, error)
}

type summaryService struct {
	summarizer  llm.HealthSummarizer
	repo        repository.HealthProfileRepository
	profileRepo repository.ProfileRepository
}

func NewSummaryService(
	summarizer llm.HealthSummarizer,
	repo repository.HealthProfileRepository,
	profileRepo repository.ProfileRepository,
) SummaryService {
	return &summaryService{
		summarizer:  summarizer,
		repo:        repo,
		profileRepo: profileRepo,
	}
}

func (s *summaryService) Generate(ctx context.Context, patientID uuid.UUID) (*domain.SummaryResponse, error) {
	patient, err := loadPatient(ctx, s.profileRepo, patientID)
	if err != nil {
		return nil, err
	}

	hp, err := s.repo.GetByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	gender, _ := anthropometry.ParseGender(patient.Gender)
	profile := hp.ToResponse(gender)

	summaryCtx := &domain.SummaryContext{
		Gender:         gender,
		Age:            hp.Age,
		Measurements:   profile.Measurements,
		Metrics:        profile.Metrics,
		Classification: profile.Classification,
	}

	if s.summarizer == nil {
		return nil, llm.ErrSummarizerUnavailable
	}
	output, err := s.summarizer.Summarize(ctx, summaryCtx)
	if err != nil {
		return nil, err
	}

	return &domain.SummaryResponse{
		Profile: profile,
		Summary: *output,
	}, nil
}
