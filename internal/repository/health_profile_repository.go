package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HealthProfileRepository interface {
	// Upsert inserts the record or replaces every column of the existing one.
	Upsert(ctx context.Context, profile *domain.HealthProfile) error
	GetByPatientID(ctx context.Context, patientID uuid.UUID) (*domain.HealthProfile, error)
}

type healthProfileRepository struct {
	db *gorm.DB
}

func NewHealthProfileRepository(db *gorm.DB) HealthProfileRepository {
	return &healthProfileRepository{db: db}
}

func (r *healthProfileRepository) Upsert(ctx context.Context, profile *domain.HealthProfile) error {
	return r.db.WithContext(ctx).
		Omit("Patient").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "patient_id"}},
			UpdateAll: true,
		}).
		Create(profile).Error
}

func (r *healthProfileRepository) GetByPatientID(ctx context.Context, patientID uuid.UUID) (*domain.HealthProfile, error) {
	var profile domain.HealthProfile
	err := r.db.WithContext(ctx).First(&profile, "patient_id = ?", patientID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}
