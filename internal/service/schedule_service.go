package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/repository"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/schedule"
)

// ScheduleService lays out a professional's day on the pixel grid.
type ScheduleService interface {
	DayView(ctx context.Context, professionalID uuid.UUID, date string, w schedule.Window) (*domain.DayView, error)
	Now(ctx context.Context, date string, w schedule.Window) (schedule.Marker, error)
	// Watch emits the live marker for date until ctx is done.
	Watch(ctx context.Context, date string, w schedule.Window, emit func(schedule.Marker)) error
}

// ScheduleOptions configures the grid rendering.
type ScheduleOptions struct {
	BlockHeightPx float64
	TickInterval  time.Duration
	Clock         schedule.Clock
}

type scheduleService struct {
	repo        repository.AppointmentRepository
	profileRepo repository.ProfileRepository
	opts        ScheduleOptions
}

func NewScheduleService(repo repository.AppointmentRepository, profileRepo repository.ProfileRepository, opts ScheduleOptions) ScheduleService {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = schedule.DefaultTickInterval
	}
	return &scheduleService{
		repo:        repo,
		profileRepo: profileRepo,
		opts:        opts,
	}
}

func (s *scheduleService) DayView(ctx context.Context, professionalID uuid.UUID, date string, w schedule.Window) (*domain.DayView, error) {
	selected, err := s.selectedDate(date, w)
	if err != nil {
		return nil, err
	}

	if _, err := loadProfessional(ctx, s.profileRepo, professionalID); err != nil {
		return nil, err
	}

	day := selected.Format(time.DateOnly)
	appointments, err := s.repo.ListForDay(ctx, professionalID, day)
	if err != nil {
		return nil, err
	}

	view := &domain.DayView{
		ProfessionalID: professionalID.String(),
		Date:           day,
		Window:         w,
		GridHeightPx:   w.Height(),
		Blocks:         []domain.ScheduleBlock{},
		Hidden:         []domain.AppointmentResponse{},
		Now:            schedule.Evaluate(s.opts.Clock(), selected, w),
	}

	for _, a := range appointments {
		layout := schedule.PositionFromTime(a.TimeLabel, w)
		if !layout.Visible {
			view.Hidden = append(view.Hidden, a.ToResponse())
			continue
		}
		view.Blocks = append(view.Blocks, domain.ScheduleBlock{
			Appointment: a.ToResponse(),
			TopOffsetPx: layout.TopOffsetPx,
			HeightPx:    s.opts.BlockHeightPx,
		})
	}

	return view, nil
}

func (s *scheduleService) Now(ctx context.Context, date string, w schedule.Window) (schedule.Marker, error) {
	selected, err := s.selectedDate(date, w)
	if err != nil {
		return schedule.Marker{}, err
	}
	return schedule.Evaluate(s.opts.Clock(), selected, w), nil
}

func (s *scheduleService) Watch(ctx context.Context, date string, w schedule.Window, emit func(schedule.Marker)) error {
	selected, err := s.selectedDate(date, w)
	if err != nil {
		return err
	}

	indicator := schedule.NewIndicator(w, s.opts.TickInterval, s.opts.Clock)
	indicator.Start(ctx, selected, emit)
	defer indicator.Stop()

	<-ctx.Done()
	return nil
}

// selectedDate parses date in the clock's location so it compares as a
// calendar day against now. An empty date means today.
func (s *scheduleService) selectedDate(date string, w schedule.Window) (time.Time, error) {
	if err := validateWindow(w); err != nil {
		return time.Time{}, err
	}

	now := s.opts.Clock()
	if date == "" {
		return now, nil
	}
	selected, err := time.ParseInLocation(time.DateOnly, date, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return selected, nil
}

func validateWindow(w schedule.Window) error {
	if w.StartHour < 0 || w.EndHour > 24 || w.StartHour >= w.EndHour {
		return fmt.Errorf("%w: window must satisfy 0 <= start_hour < end_hour <= 24", domain.ErrInvalidInput)
	}
	if w.PixelsPerMinute <= 0 {
		return fmt.Errorf("%w: px_per_minute must be positive", domain.ErrInvalidInput)
	}
	return nil
}
