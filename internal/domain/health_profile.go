package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/anthropometry"
)

// HealthProfile is the stored health record of a patient: the last
// measurements taken and the metrics derived from them.
type HealthProfile struct {
	PatientID uuid.UUID `gorm:"type:char(36);primaryKey" json:"patient_id"`

	Weight float64 `gorm:"not null;default:0" json:"weight"`
	Height float64 `gorm:"not null;default:0" json:"height"`
	Waist  float64 `gorm:"not null;default:0" json:"waist"`
	Hip    float64 `gorm:"not null;default:0" json:"hip"`
	Neck   float64 `gorm:"not null;default:0" json:"neck"`
	Age    int     `gorm:"not null;default:0" json:"age"`

	BMI              float64 `gorm:"not null;default:0" json:"bmi"`
	WHR              float64 `gorm:"column:whr;not null;default:0" json:"whr"`
	BodyFat          float64 `gorm:"not null;default:0" json:"body_fat"`
	MuscleMass       float64 `gorm:"not null;default:0" json:"muscle_mass"`
	WaterMass        float64 `gorm:"not null;default:0" json:"water_mass"`
	WaterPct         float64 `gorm:"not null;default:0" json:"water_pct"`
	ProteinPct       float64 `gorm:"not null;default:0" json:"protein_pct"`
	BMR              int     `gorm:"column:bmr;not null;default:0" json:"bmr"`
	VisceralFatLevel int     `gorm:"not null;default:1" json:"visceral_fat_level"`

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Patient Profile `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"-"`
}

func (HealthProfile) TableName() string {
	return "health_profiles"
}

// Metrics returns the stored derived values.
func (h *HealthProfile) Metrics() anthropometry.HealthMetrics {
	return anthropometry.HealthMetrics{
		BMI:              h.BMI,
		WHR:              h.WHR,
		BodyFat:          h.BodyFat,
		MuscleMass:       h.MuscleMass,
		WaterMass:        h.WaterMass,
		WaterPct:         h.WaterPct,
		ProteinPct:       h.ProteinPct,
		BMR:              h.BMR,
		VisceralFatLevel: h.VisceralFatLevel,
	}
}

// SetMetrics copies derived values into the record.
func (h *HealthProfile) SetMetrics(m anthropometry.HealthMetrics) {
	h.BMI = m.BMI
	h.WHR = m.WHR
	h.BodyFat = m.BodyFat
	h.MuscleMass = m.MuscleMass
	h.WaterMass = m.WaterMass
	h.WaterPct = m.WaterPct
	h.ProteinPct = m.ProteinPct
	h.BMR = m.BMR
	h.VisceralFatLevel = m.VisceralFatLevel
}

// Measurements are the raw body measurements. Weight in kg, lengths in cm.
// @Description Body measurements used for metric calculation.
type Measurements struct {
	Weight float64 `json:"weight" validate:"gte=0,lte=1000" example:"72.5"`
	Height float64 `json:"height" validate:"gte=0,lte=300" example:"168"`
	Waist  float64 `json:"waist" validate:"gte=0,lte=500" example:"84"`
	Hip    float64 `json:"hip" validate:"gte=0,lte=500" example:"101"`
	Neck   float64 `json:"neck" validate:"gte=0,lte=200" example:"34"`
}

// CalculateMetricsRequest is the body of the stateless metrics calculation.
// Age wins over BirthDate when both are given.
// @Description Measurements and demographics for a metrics preview.
type CalculateMetricsRequest struct {
	Measurements
	// Gender label; localized labels such as "Femenino" are accepted
	Gender string `json:"gender" validate:"required,gender" example:"Femenino"`
	// Age in years
	Age int `json:"age,omitempty" validate:"gte=0,lte=150" example:"34"`
	// Birth date (YYYY-MM-DD), used when age is omitted
	BirthDate string `json:"birth_date,omitempty" validate:"omitempty,isodate" example:"1990-04-02"`
}

// UpsertHealthProfileRequest is the body for saving a patient's measurements.
// Gender and age come from the patient profile.
type UpsertHealthProfileRequest struct {
	Measurements
}

// MetricsResponse pairs the metrics with their display bands.
// @Description Computed body-composition metrics.
type MetricsResponse struct {
	Gender         anthropometry.Gender         `json:"gender" example:"female"`
	Age            int                          `json:"age" example:"34"`
	Metrics        anthropometry.HealthMetrics  `json:"metrics"`
	Classification anthropometry.Classification `json:"classification"`
}

// HealthProfileResponse is the response body for health profile endpoints.
// @Description Stored health profile of a patient.
type HealthProfileResponse struct {
	PatientID      uuid.UUID                    `json:"patient_id"`
	Measurements   Measurements                 `json:"measurements"`
	Age            int                          `json:"age"`
	Metrics        anthropometry.HealthMetrics  `json:"metrics"`
	Classification anthropometry.Classification `json:"classification"`
	UpdatedAt      time.Time                    `json:"updated_at"`
}

func (h *HealthProfile) ToResponse(gender anthropometry.Gender) HealthProfileResponse {
	m := h.Metrics()
	return HealthProfileResponse{
		PatientID: h.PatientID,
		Measurements: Measurements{
			Weight: h.Weight,
			Height: h.Height,
			Waist:  h.Waist,
			Hip:    h.Hip,
			Neck:   h.Neck,
		},
		Age:            h.Age,
		Metrics:        m,
		Classification: anthropometry.Classify(m, gender),
		UpdatedAt:      h.UpdatedAt,
	}
}

// SummaryOutput is the structured answer of the AI collaborator.
// @Description AI-generated, non-medical summary of a health profile.
type SummaryOutput struct {
	Summary      string   `json:"summary"`
	Observations []string `json:"observations"`
	Suggestions  []string `json:"suggestions"`
}

// SummaryContext is what the AI collaborator receives.
type SummaryContext struct {
	Gender         anthropometry.Gender         `json:"gender"`
	Age            int                          `json:"age"`
	Measurements   Measurements                 `json:"measurements"`
	Metrics        anthropometry.HealthMetrics  `json:"metrics"`
	Classification anthropometry.Classification `json:"classification"`
}

// SummaryResponse is the response for the summary endpoint.
// @Description Health profile with AI summary.
type SummaryResponse struct {
	Profile HealthProfileResponse `json:"profile"`
	Summary SummaryOutput         `json:"summary"`
}
