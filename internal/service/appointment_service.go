package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/repository"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/schedule"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/pkg/pagination"
)

type AppointmentService interface {
	Create(ctx context.Context, req *domain.CreateAppointmentRequest) (*domain.Appointment, error)
	List(ctx context.Context, professionalID uuid.UUID, filter domain.AppointmentFilter) (*domain.AppointmentListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) (*domain.Appointment, error)
}

type appointmentService struct {
	repo        repository.AppointmentRepository
	profileRepo repository.ProfileRepository
}

func NewAppointmentService(repo repository.AppointmentRepository, profileRepo repository.ProfileRepository) AppointmentService {
	return &appointmentService{
		repo:        repo,
		profileRepo: profileRepo,
	}
}

func (s *appointmentService) Create(ctx context.Context, req *domain.CreateAppointmentRequest) (*domain.Appointment, error) {
	startMinute, ok := schedule.MinuteOfDay(req.TimeLabel)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTimeLabel, req.TimeLabel)
	}

	if _, err := loadPatient(ctx, s.profileRepo, req.PatientID); err != nil {
		return nil, err
	}
	if _, err := loadProfessional(ctx, s.profileRepo, req.ProfessionalID); err != nil {
		return nil, err
	}

	// A professional cannot hold two live appointments at the same minute.
	booked, err := s.repo.ListForDay(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		return nil, err
	}
	for _, b := range booked {
		if b.StartMinute == startMinute {
			return nil, fmt.Errorf("%w: slot %s on %s is already booked", domain.ErrConflict, schedule.FormatMinuteOfDay(startMinute), req.Date)
		}
	}

	appointment := &domain.Appointment{
		ID:             uuid.New(),
		PatientID:      req.PatientID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		TimeLabel:      req.TimeLabel,
		StartMinute:    startMinute,
		Reason:         req.Reason,
		Status:         domain.AppointmentPending,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	return appointment, nil
}

func (s *appointmentService) List(ctx context.Context, professionalID uuid.UUID, filter domain.AppointmentFilter) (*domain.AppointmentListResponse, error) {
	if _, err := loadProfessional(ctx, s.profileRepo, professionalID); err != nil {
		return nil, err
	}

	appointments, err := s.repo.List(ctx, professionalID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(appointments) > limit

	// Trim to actual limit
	if hasMore {
		appointments = appointments[:limit]
	}

	response := &domain.AppointmentListResponse{
		Data: make([]domain.AppointmentResponse, len(appointments)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, a := range appointments {
		response.Data[i] = a.ToResponse()
	}

	if hasMore && len(appointments) > 0 {
		last := appointments[len(appointments)-1]
		cursor := &pagination.Cursor{
			ID:          last.ID,
			Date:        last.Date,
			StartMinute: last.StartMinute,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *appointmentService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) (*domain.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if appointment.Status == status {
		return appointment, nil
	}
	if !appointment.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrStatusTransition, appointment.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	appointment.Status = status
	return appointment, nil
}

// loadProfessional fetches a profile and checks it is a doctor or nutritionist.
func loadProfessional(ctx context.Context, repo repository.ProfileRepository, id uuid.UUID) (*domain.Profile, error) {
	profile, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !profile.Role.IsProfessional() {
		return nil, domain.ErrInvalidRole
	}
	return profile, nil
}
