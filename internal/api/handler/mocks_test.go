package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/anthropometry"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/schedule"
)

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	createFunc  func(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

func (m *MockProfileService) Create(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.Profile{
		ID:        uuid.New(),
		FullName:  req.FullName,
		Role:      req.Role,
		Gender:    req.Gender,
		BirthDate: req.BirthDate,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockProfileService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockMetricsService is a mock implementation of MetricsService
type MockMetricsService struct {
	calculateFunc func(ctx context.Context, req *domain.CalculateMetricsRequest) (*domain.MetricsResponse, error)
}

func (m *MockMetricsService) Calculate(ctx context.Context, req *domain.CalculateMetricsRequest) (*domain.MetricsResponse, error) {
	if m.calculateFunc != nil {
		return m.calculateFunc(ctx, req)
	}
	return &domain.MetricsResponse{}, nil
}

func (m *MockMetricsService) Evaluate(ctx context.Context, in anthropometry.Inputs) anthropometry.HealthMetrics {
	return anthropometry.Calculate(in)
}

// MockHealthProfileService is a mock implementation of HealthProfileService
type MockHealthProfileService struct {
	upsertFunc func(ctx context.Context, patientID uuid.UUID, req *domain.UpsertHealthProfileRequest) (*domain.HealthProfileResponse, error)
	getFunc    func(ctx context.Context, patientID uuid.UUID) (*domain.HealthProfileResponse, error)
}

func (m *MockHealthProfileService) Upsert(ctx context.Context, patientID uuid.UUID, req *domain.UpsertHealthProfileRequest) (*domain.HealthProfileResponse, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, patientID, req)
	}
	return &domain.HealthProfileResponse{PatientID: patientID, Measurements: req.Measurements}, nil
}

func (m *MockHealthProfileService) Get(ctx context.Context, patientID uuid.UUID) (*domain.HealthProfileResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, patientID)
	}
	return nil, domain.ErrNotFound
}

// MockSummaryService is a mock implementation of SummaryService
type MockSummaryService struct {
	generateFunc func(ctx context.Context, patientID uuid.UUID) (*domain.SummaryResponse, error)
}

func (m *MockSummaryService) Generate(ctx context.Context, patientID uuid.UUID) (*domain.SummaryResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, patientID)
	}
	return &domain.SummaryResponse{}, nil
}

// MockAppointmentService is a mock implementation of AppointmentService
type MockAppointmentService struct {
	createFunc       func(ctx context.Context, req *domain.CreateAppointmentRequest) (*domain.Appointment, error)
	listFunc         func(ctx context.Context, professionalID uuid.UUID, filter domain.AppointmentFilter) (*domain.AppointmentListResponse, error)
	updateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) (*domain.Appointment, error)
}

func (m *MockAppointmentService) Create(ctx context.Context, req *domain.CreateAppointmentRequest) (*domain.Appointment, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	minute, _ := schedule.MinuteOfDay(req.TimeLabel)
	return &domain.Appointment{
		ID:             uuid.New(),
		PatientID:      req.PatientID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		TimeLabel:      req.TimeLabel,
		StartMinute:    minute,
		Status:         domain.AppointmentPending,
		CreatedAt:      time.Now(),
	}, nil
}

func (m *MockAppointmentService) List(ctx context.Context, professionalID uuid.UUID, filter domain.AppointmentFilter) (*domain.AppointmentListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, professionalID, filter)
	}
	return &domain.AppointmentListResponse{
		Data:       []domain.AppointmentResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockAppointmentService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return &domain.Appointment{ID: id, Status: status}, nil
}

// MockScheduleService is a mock implementation of ScheduleService
type MockScheduleService struct {
	dayViewFunc func(ctx context.Context, professionalID uuid.UUID, date string, w schedule.Window) (*domain.DayView, error)
	nowFunc     func(ctx context.Context, date string, w schedule.Window) (schedule.Marker, error)
	watchFunc   func(ctx context.Context, date string, w schedule.Window, emit func(schedule.Marker)) error
}

func (m *MockScheduleService) DayView(ctx context.Context, professionalID uuid.UUID, date string, w schedule.Window) (*domain.DayView, error) {
	if m.dayViewFunc != nil {
		return m.dayViewFunc(ctx, professionalID, date, w)
	}
	return &domain.DayView{ProfessionalID: professionalID.String(), Date: date, Window: w}, nil
}

func (m *MockScheduleService) Now(ctx context.Context, date string, w schedule.Window) (schedule.Marker, error) {
	if m.nowFunc != nil {
		return m.nowFunc(ctx, date, w)
	}
	return schedule.Marker{}, nil
}

func (m *MockScheduleService) Watch(ctx context.Context, date string, w schedule.Window, emit func(schedule.Marker)) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, date, w, emit)
	}
	return nil
}
