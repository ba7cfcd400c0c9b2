package domain

import (
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/schedule"
)

// ScheduleBlock is one appointment placed on the day grid.
// @Description Appointment block positioned on the day grid.
type ScheduleBlock struct {
	Appointment AppointmentResponse `json:"appointment"`
	TopOffsetPx float64             `json:"top_offset_px" example:"540"`
	HeightPx    float64             `json:"height_px" example:"60"`
}

// DayView is a professional's laid-out day.
// @Description Day grid for a professional.
type DayView struct {
	ProfessionalID string          `json:"professional_id"`
	Date           string          `json:"date" example:"2024-06-14"`
	Window         schedule.Window `json:"window"`
	GridHeightPx   float64         `json:"grid_height_px" example:"810"`
	Blocks         []ScheduleBlock `json:"blocks"`
	// Appointments outside the window; the grid does not render them
	Hidden []AppointmentResponse `json:"hidden"`
	Now    schedule.Marker       `json:"now"`
}
