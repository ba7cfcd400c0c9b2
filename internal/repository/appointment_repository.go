package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/pkg/pagination"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	// List returns up to filter.Limit+1 rows so callers can detect another page.
	List(ctx context.Context, professionalID uuid.UUID, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	ListForDay(ctx context.Context, professionalID uuid.UUID, date string) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error
}

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	return r.db.WithContext(ctx).Omit("Patient", "Professional").Create(appointment).Error
}

func (r *appointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	var appointment domain.Appointment
	err := r.db.WithContext(ctx).First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) List(ctx context.Context, professionalID uuid.UUID, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	query := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("date ASC").
		Order("start_minute ASC").
		Order("id ASC")

	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// Rows strictly after the cursor in (date, start_minute, id) order.
			query = query.Where(
				"(date > ?) OR (date = ? AND start_minute > ?) OR (date = ? AND start_minute = ? AND id > ?)",
				cursor.Date,
				cursor.Date, cursor.StartMinute,
				cursor.Date, cursor.StartMinute, cursor.ID,
			)
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var appointments []domain.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) ListForDay(ctx context.Context, professionalID uuid.UUID, date string) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	err := r.db.WithContext(ctx).
		Where("professional_id = ? AND date = ?", professionalID, date).
		Where("status <> ?", domain.AppointmentCancelled).
		Order("start_minute ASC").
		Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
