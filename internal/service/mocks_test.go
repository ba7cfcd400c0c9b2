package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/pkg/pagination"
)

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	profiles map[uuid.UUID]*domain.Profile
	err      error
}

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		profiles: make(map[uuid.UUID]*domain.Profile),
	}
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	profile.CreatedAt = time.Now()
	m.profiles[profile.ID] = profile
	return nil
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	profile, ok := m.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}

func (m *MockProfileRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.profiles[id]
	return ok, nil
}

// add stores a profile with the given role and returns its id.
func (m *MockProfileRepository) add(role domain.Role, gender, birthDate string) uuid.UUID {
	id := uuid.New()
	m.profiles[id] = &domain.Profile{
		ID:        id,
		FullName:  "Test " + string(role),
		Role:      role,
		Gender:    gender,
		BirthDate: birthDate,
	}
	return id
}

// MockHealthProfileRepository is a mock implementation of HealthProfileRepository
type MockHealthProfileRepository struct {
	profiles map[uuid.UUID]*domain.HealthProfile
	upserts  int
	err      error
}

func NewMockHealthProfileRepository() *MockHealthProfileRepository {
	return &MockHealthProfileRepository{
		profiles: make(map[uuid.UUID]*domain.HealthProfile),
	}
}

func (m *MockHealthProfileRepository) Upsert(ctx context.Context, profile *domain.HealthProfile) error {
	if m.err != nil {
		return m.err
	}
	m.upserts++
	profile.UpdatedAt = time.Now()
	stored := *profile
	m.profiles[profile.PatientID] = &stored
	return nil
}

func (m *MockHealthProfileRepository) GetByPatientID(ctx context.Context, patientID uuid.UUID) (*domain.HealthProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	profile, ok := m.profiles[patientID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}

// MockAppointmentRepository is a mock implementation of AppointmentRepository
type MockAppointmentRepository struct {
	appointments map[uuid.UUID]*domain.Appointment
	err          error
}

func NewMockAppointmentRepository() *MockAppointmentRepository {
	return &MockAppointmentRepository{
		appointments: make(map[uuid.UUID]*domain.Appointment),
	}
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	if m.err != nil {
		return m.err
	}
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	appointment.CreatedAt = time.Now()
	m.appointments[appointment.ID] = appointment
	return nil
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	if m.err != nil {
		return nil, m.err
	}
	appointment, ok := m.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *appointment
	return &copied, nil
}

func (m *MockAppointmentRepository) sorted(professionalID uuid.UUID) []domain.Appointment {
	var result []domain.Appointment
	for _, a := range m.appointments {
		if a.ProfessionalID == professionalID {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		if result[i].StartMinute != result[j].StartMinute {
			return result[i].StartMinute < result[j].StartMinute
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result
}

func (m *MockAppointmentRepository) List(ctx context.Context, professionalID uuid.UUID, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	if m.err != nil {
		return nil, m.err
	}
	cursor, _ := pagination.DecodeCursor(filter.Cursor)

	var result []domain.Appointment
	for _, a := range m.sorted(professionalID) {
		if filter.From != "" && a.Date < filter.From {
			continue
		}
		if filter.To != "" && a.Date > filter.To {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if cursor != nil && !after(a, cursor) {
			continue
		}
		result = append(result, a)
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	if len(result) > limit+1 {
		result = result[:limit+1]
	}
	return result, nil
}

func after(a domain.Appointment, c *pagination.Cursor) bool {
	if a.Date != c.Date {
		return a.Date > c.Date
	}
	if a.StartMinute != c.StartMinute {
		return a.StartMinute > c.StartMinute
	}
	return a.ID.String() > c.ID.String()
}

func (m *MockAppointmentRepository) ListForDay(ctx context.Context, professionalID uuid.UUID, date string) ([]domain.Appointment, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Appointment
	for _, a := range m.sorted(professionalID) {
		if a.Date == date && a.Status != domain.AppointmentCancelled {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	if m.err != nil {
		return m.err
	}
	appointment, ok := m.appointments[id]
	if !ok {
		return domain.ErrNotFound
	}
	appointment.Status = status
	return nil
}

// MockSummarizer is a mock implementation of llm.HealthSummarizer
type MockSummarizer struct {
	received *domain.SummaryContext
	output   *domain.SummaryOutput
	err      error
}

func (m *MockSummarizer) Summarize(ctx context.Context, summaryCtx *domain.SummaryContext) (*domain.SummaryOutput, error) {
	m.received = summaryCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
