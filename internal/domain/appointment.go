package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/schedule"
)

// AppointmentStatus is the lifecycle state of an appointment.
// @Description Appointment status.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

// CanTransitionTo reports whether an appointment may move from s to next.
// Cancelled and completed appointments are final.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	switch s {
	case AppointmentPending:
		return next == AppointmentConfirmed || next == AppointmentCancelled
	case AppointmentConfirmed:
		return next == AppointmentCompleted || next == AppointmentCancelled
	default:
		return false
	}
}

type Appointment struct {
	ID             uuid.UUID         `gorm:"type:char(36);primaryKey" json:"id"`
	PatientID      uuid.UUID         `gorm:"type:char(36);not null;index" json:"patient_id"`
	ProfessionalID uuid.UUID         `gorm:"type:char(36);not null;index:idx_appointments_professional_day" json:"professional_id"`
	Date           string            `gorm:"type:varchar(10);not null;index:idx_appointments_professional_day" json:"date"`
	TimeLabel      string            `gorm:"type:varchar(16);not null" json:"time_label"`
	StartMinute    int               `gorm:"not null;index:idx_appointments_professional_day" json:"start_minute"`
	Reason         string            `gorm:"type:varchar(255)" json:"reason"`
	Status         AppointmentStatus `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Patient      Profile `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"-"`
	Professional Profile `gorm:"foreignKey:ProfessionalID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// CreateAppointmentRequest is the request body for booking an appointment.
// @Description Request payload for booking an appointment with a professional.
type CreateAppointmentRequest struct {
	// Patient profile ID
	PatientID uuid.UUID `json:"patient_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Doctor or nutritionist profile ID
	ProfessionalID uuid.UUID `json:"professional_id" validate:"required" example:"660e8400-e29b-41d4-a716-446655440001"`
	// Appointment day (YYYY-MM-DD)
	Date string `json:"date" validate:"required,isodate" example:"2024-06-14"`
	// Start time, "HH:MM" or "HH:MM AM|PM"
	TimeLabel string `json:"time_label" validate:"required,timelabel" example:"02:30 PM"`
	// Reason for the visit
	Reason string `json:"reason,omitempty" validate:"omitempty,max=255" example:"Control nutricional"`
}

// UpdateAppointmentStatusRequest is the request body for changing status.
// @Description Request payload for an appointment status change.
type UpdateAppointmentStatusRequest struct {
	Status AppointmentStatus `json:"status" validate:"required,oneof=pending confirmed cancelled completed" example:"confirmed" enums:"pending,confirmed,cancelled,completed"`
}

// AppointmentResponse is the response body for appointment endpoints.
// @Description Appointment record with its normalized start time.
type AppointmentResponse struct {
	ID             uuid.UUID         `json:"id"`
	PatientID      uuid.UUID         `json:"patient_id"`
	ProfessionalID uuid.UUID         `json:"professional_id"`
	Date           string            `json:"date" example:"2024-06-14"`
	// Time label as entered
	TimeLabel string `json:"time_label" example:"02:30 PM"`
	// Normalized 24-hour start time
	StartTime string            `json:"start_time" example:"14:30"`
	Reason    string            `json:"reason,omitempty"`
	Status    AppointmentStatus `json:"status" example:"pending"`
	CreatedAt time.Time         `json:"created_at"`
}

func (a *Appointment) ToResponse() AppointmentResponse {
	return AppointmentResponse{
		ID:             a.ID,
		PatientID:      a.PatientID,
		ProfessionalID: a.ProfessionalID,
		Date:           a.Date,
		TimeLabel:      a.TimeLabel,
		StartTime:      formatMinute(a.StartMinute),
		Reason:         a.Reason,
		Status:         a.Status,
		CreatedAt:      a.CreatedAt,
	}
}

func formatMinute(m int) string {
	if m < 0 || m >= 24*60 {
		return ""
	}
	return schedule.FormatMinuteOfDay(m)
}

// AppointmentListResponse is the response body for listing appointments.
// @Description Paginated list of appointments.
type AppointmentListResponse struct {
	Data       []AppointmentResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// AppointmentFilter contains filter parameters for listing appointments.
// From and To are inclusive YYYY-MM-DD dates.
type AppointmentFilter struct {
	From   string
	To     string
	Status AppointmentStatus
	Limit  int
	Cursor string
}
