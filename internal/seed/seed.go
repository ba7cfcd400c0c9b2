package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/anthropometry"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/repository"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/schedule"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	DoctorID       = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	NutritionistID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	PatientAnaID   = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	PatientLuisID  = uuid.MustParse("44444444-4444-4444-4444-444444444444")
)

// Profiles are the sample portal profiles.
func Profiles() []domain.Profile {
	return []domain.Profile{
		{ID: DoctorID, FullName: "Dra. Carmen Rivas", Role: domain.RoleDoctor, Gender: "Femenino", BirthDate: "1979-03-11", Specialty: "Medicina interna"},
		{ID: NutritionistID, FullName: "Lic. Pedro Salas", Role: domain.RoleNutritionist, Gender: "Masculino", BirthDate: "1985-09-30", Specialty: "Nutrición clínica"},
		{ID: PatientAnaID, FullName: "Ana Torres", Role: domain.RolePatient, Gender: "Femenino", BirthDate: "1990-04-02"},
		{ID: PatientLuisID, FullName: "Luis Mendoza", Role: domain.RolePatient, Gender: "Masculino", BirthDate: "1978-12-19"},
	}
}

type sampleMeasurements struct {
	patientID uuid.UUID
	domain.Measurements
}

var measurements = []sampleMeasurements{
	{PatientAnaID, domain.Measurements{Weight: 62, Height: 165, Waist: 74, Hip: 98, Neck: 32}},
	{PatientLuisID, domain.Measurements{Weight: 88, Height: 176, Waist: 97, Hip: 102, Neck: 41}},
}

type sampleAppointment struct {
	patientID      uuid.UUID
	professionalID uuid.UUID
	dayOffset      int
	timeLabel      string
	reason         string
	status         domain.AppointmentStatus
}

// Labels mix both clock forms; the 06:30 PM slot falls outside the default
// grid and shows up as hidden.
var appointments = []sampleAppointment{
	{PatientAnaID, DoctorID, 0, "09:00", "Control anual", domain.AppointmentConfirmed},
	{PatientLuisID, DoctorID, 0, "10:30 AM", "Chequeo de tensión", domain.AppointmentPending},
	{PatientAnaID, NutritionistID, 0, "02:15 PM", "Plan alimentario", domain.AppointmentConfirmed},
	{PatientLuisID, NutritionistID, 0, "06:30 PM", "Seguimiento", domain.AppointmentPending},
	{PatientLuisID, DoctorID, 1, "08:45", "Resultados de laboratorio", domain.AppointmentPending},
	{PatientAnaID, DoctorID, -1, "11:00 AM", "Consulta general", domain.AppointmentCompleted},
}

// Run seeds the database with sample profiles, health profiles and
// appointments around today. Safe to call multiple times.
func Run(ctx context.Context, db *gorm.DB, log zerolog.Logger, now time.Time) error {
	if err := db.AutoMigrate(&domain.Profile{}, &domain.HealthProfile{}, &domain.Appointment{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	profiles := Profiles()
	genders := make(map[uuid.UUID]anthropometry.Gender, len(profiles))
	births := make(map[uuid.UUID]string, len(profiles))
	for _, profile := range profiles {
		if err := db.WithContext(ctx).Where("id = ?", profile.ID).FirstOrCreate(&profile).Error; err != nil {
			return fmt.Errorf("failed to create profile %s: %w", profile.ID, err)
		}
		genders[profile.ID], _ = anthropometry.ParseGender(profile.Gender)
		births[profile.ID] = profile.BirthDate
	}

	healthRepo := repository.NewHealthProfileRepository(db)
	for _, m := range measurements {
		hp := &domain.HealthProfile{
			PatientID: m.patientID,
			Weight:    m.Weight,
			Height:    m.Height,
			Waist:     m.Waist,
			Hip:       m.Hip,
			Neck:      m.Neck,
			Age:       anthropometry.AgeAt(births[m.patientID], now),
		}
		hp.SetMetrics(anthropometry.Calculate(anthropometry.Inputs{
			Weight: hp.Weight,
			Height: hp.Height,
			Waist:  hp.Waist,
			Hip:    hp.Hip,
			Neck:   hp.Neck,
			Age:    hp.Age,
			Gender: genders[m.patientID],
		}))
		if err := healthRepo.Upsert(ctx, hp); err != nil {
			return fmt.Errorf("failed to save health profile %s: %w", m.patientID, err)
		}
	}

	count := 0
	for _, a := range appointments {
		appointment, err := buildAppointment(a, now)
		if err != nil {
			return err
		}
		if err := db.WithContext(ctx).Where("id = ?", appointment.ID).FirstOrCreate(appointment).Error; err != nil {
			return fmt.Errorf("failed to create appointment %s: %w", appointment.ID, err)
		}
		count++
	}

	log.Info().
		Int("profiles", len(profiles)).
		Int("health_profiles", len(measurements)).
		Int("appointments", count).
		Msg("seed completed")
	return nil
}

// buildAppointment derives a stable ID from the slot so reruns on the same
// day do not duplicate rows.
func buildAppointment(a sampleAppointment, now time.Time) (*domain.Appointment, error) {
	minute, ok := schedule.MinuteOfDay(a.timeLabel)
	if !ok {
		return nil, fmt.Errorf("seed time label %q: %w", a.timeLabel, domain.ErrInvalidTimeLabel)
	}
	date := now.AddDate(0, 0, a.dayOffset).Format(time.DateOnly)
	key := fmt.Sprintf("%s/%s/%d", a.professionalID, date, minute)

	return &domain.Appointment{
		ID:             uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)),
		PatientID:      a.patientID,
		ProfessionalID: a.professionalID,
		Date:           date,
		TimeLabel:      a.timeLabel,
		StartMinute:    minute,
		Reason:         a.reason,
		Status:         a.status,
	}, nil
}
