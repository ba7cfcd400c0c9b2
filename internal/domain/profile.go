package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the portal role of a profile.
// @Description Portal role: patient, doctor, nutritionist or admin.
type Role string

const (
	RolePatient      Role = "patient"
	RoleDoctor       Role = "doctor"
	RoleNutritionist Role = "nutritionist"
	RoleAdmin        Role = "admin"
)

// IsProfessional reports whether the role can own a schedule.
func (r Role) IsProfessional() bool {
	return r == RoleDoctor || r == RoleNutritionist
}

type Profile struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Role      Role      `gorm:"type:varchar(20);not null;index" json:"role"`
	Gender    string    `gorm:"type:varchar(32)" json:"gender"`
	BirthDate string    `gorm:"type:varchar(10)" json:"birth_date"`
	Specialty string    `gorm:"type:varchar(128)" json:"specialty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// CreateProfileRequest is the request body for creating a profile.
// @Description Request payload for registering a portal profile.
type CreateProfileRequest struct {
	// Display name
	FullName string `json:"full_name" validate:"required,max=255" example:"María Pérez"`
	// Portal role
	Role Role `json:"role" validate:"required,oneof=patient doctor nutritionist admin" example:"patient" enums:"patient,doctor,nutritionist,admin"`
	// Gender label as entered; must map to male or female
	Gender string `json:"gender,omitempty" validate:"omitempty,gender" example:"Femenino"`
	// Birth date (YYYY-MM-DD)
	BirthDate string `json:"birth_date,omitempty" validate:"omitempty,isodate" example:"1990-04-02"`
	// Specialty for doctors and nutritionists
	Specialty string `json:"specialty,omitempty" validate:"omitempty,max=128" example:"Cardiología"`
}

// ProfileResponse is the response body for profile endpoints.
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"role"`
	Gender    string    `json:"gender,omitempty"`
	BirthDate string    `json:"birth_date,omitempty"`
	Age       int       `json:"age,omitempty"`
	Specialty string    `json:"specialty,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *Profile) ToResponse(age int) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		FullName:  p.FullName,
		Role:      p.Role,
		Gender:    p.Gender,
		BirthDate: p.BirthDate,
		Age:       age,
		Specialty: p.Specialty,
		CreatedAt: p.CreatedAt,
	}
}
