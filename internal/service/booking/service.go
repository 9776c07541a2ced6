package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/patrickmn/go-cache"

	"github.com/jwalitptl/clinic-desk/internal/model"
	"github.com/jwalitptl/clinic-desk/internal/repository"
	apperrors "github.com/jwalitptl/clinic-desk/pkg/errors"
	"github.com/jwalitptl/clinic-desk/pkg/logger"
)

// Service books appointments. The no-double-booking invariant is enforced
// against an in-memory slot index warmed from the appointment collection at
// construction and updated on every commit; matching is by exact,
// case-sensitive doctor name. A mutex serializes the check-then-append
// sequence so two bookings cannot both pass the conflict check for the
// same slot.
type Service struct {
	appointments repository.AppointmentRepository
	patients     repository.PatientRepository
	slots        *cache.Cache
	validate     *validator.Validate
	logger       *logger.Logger

	mu sync.Mutex
}

func NewService(appointments repository.AppointmentRepository, patients repository.PatientRepository, log *logger.Logger) (*Service, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return model.IsDigits(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("failed to register digits rule: %w", err)
	}

	s := &Service{
		appointments: appointments,
		patients:     patients,
		slots:        cache.New(cache.NoExpiration, 0),
		validate:     validate,
		logger:       log,
	}
	if err := s.warmSlotIndex(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) warmSlotIndex(ctx context.Context) error {
	existing, err := s.appointments.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load appointment history: %w", err)
	}
	for _, apt := range existing {
		s.slots.Set(slotKey(apt.DoctorName, apt.Hour), struct{}{}, cache.NoExpiration)
	}
	return nil
}

func slotKey(doctorName string, hour int) string {
	return fmt.Sprintf("%s|%d", doctorName, hour)
}

// IsSlotTaken reports whether the doctor already has an appointment at the
// given hour. An empty or absent appointment collection means free.
func (s *Service) IsSlotTaken(ctx context.Context, doctorName string, hour int) (bool, error) {
	_, taken := s.slots.Get(slotKey(doctorName, hour))
	return taken, nil
}

// Book runs the commit half of the booking workflow: validate the intake
// result, check the shift window, check the slot, then append the
// appointment record followed by the patient record. The two appends are
// deliberately not atomic; an interruption between them leaves an
// appointment without a matching patient record.
func (s *Service) Book(ctx context.Context, req *model.BookingRequest) (*model.Appointment, error) {
	if err := s.validate.Struct(&req.Patient); err != nil {
		return nil, intakeError(err)
	}

	if !req.Doctor.InShift(req.Hour) {
		return nil, apperrors.OutOfShift(req.Doctor.Name, req.Hour, req.Doctor.StartHour, req.Doctor.EndHour)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.slots.Get(slotKey(req.Doctor.Name, req.Hour)); taken {
		s.logger.Info("booking rejected, slot busy",
			"doctor", req.Doctor.Name,
			"hour", req.Hour,
		)
		return nil, apperrors.SlotBusy(req.Doctor.Name, req.Hour)
	}

	apt := &model.Appointment{
		PatientName: req.Patient.Name,
		DoctorName:  req.Doctor.Name,
		Reason:      req.Patient.Reason,
		Hour:        req.Hour,
	}
	if err := s.appointments.Create(ctx, apt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	s.slots.Set(slotKey(apt.DoctorName, apt.Hour), struct{}{}, cache.NoExpiration)

	patient := &model.Patient{
		Name:   req.Patient.Name,
		Age:    req.Patient.Age,
		Gender: req.Patient.Gender,
		Phone:  req.Patient.Phone,
		Reason: req.Patient.Reason,
	}
	if err := s.patients.Create(ctx, patient); err != nil {
		// The appointment record is already committed. Surface the failure
		// instead of rolling back; the schedule stays authoritative.
		return nil, fmt.Errorf("appointment recorded but failed to create patient record: %w", err)
	}

	s.logger.Info("appointment booked",
		"patient", apt.PatientName,
		"doctor", apt.DoctorName,
		"hour", apt.Hour,
	)
	return apt, nil
}

// Schedule returns every booked appointment in append order.
func (s *Service) Schedule(ctx context.Context) ([]*model.Appointment, error) {
	appointments, err := s.appointments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func intakeError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.Validation("", err.Error())
	}
	ve := verrs[0]
	switch ve.Field() {
	case "Name":
		return apperrors.Validation("Name", "patient name must not be empty")
	case "Age":
		return apperrors.Validation("Age", "age must be between 1 and 120")
	case "Gender":
		return apperrors.Validation("Gender", "gender must be M or F")
	case "Phone":
		return apperrors.Validation("Phone", "phone must be digits only and longer than 5")
	}
	return apperrors.Validation(ve.Field(), ve.Error())
}
