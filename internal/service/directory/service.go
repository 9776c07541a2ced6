package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jwalitptl/clinic-desk/internal/model"
	"github.com/jwalitptl/clinic-desk/internal/repository"
	apperrors "github.com/jwalitptl/clinic-desk/pkg/errors"
	"github.com/jwalitptl/clinic-desk/pkg/logger"
)

// Service maintains the doctor directory. Doctor names are not unique:
// adding a second doctor with an existing name is allowed and the two
// records share a conflict set during booking.
type Service struct {
	repo     repository.DoctorRepository
	validate *validator.Validate
	logger   *logger.Logger
}

func NewService(repo repository.DoctorRepository, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
		logger:   log,
	}
}

// Add validates and persists a new doctor record.
func (s *Service) Add(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fieldError(err)
	}

	doctor := &model.Doctor{
		Name:           req.Name,
		Specialization: req.Specialization,
		Room:           req.Room,
		StartHour:      req.StartHour,
		EndHour:        req.EndHour,
	}
	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	s.logger.Info("doctor added",
		"name", doctor.Name,
		"room", doctor.Room,
		"shift", fmt.Sprintf("%d-%d", doctor.StartHour, doctor.EndHour),
	)
	return doctor, nil
}

// List returns every doctor in file-append order, oldest first. The CLI
// renders 1-based display indices matching this order.
func (s *Service) List(ctx context.Context) ([]*model.Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

// fieldError maps the first validator violation to a field-level
// validation error naming the offending field.
func fieldError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.Validation("", err.Error())
	}
	ve := verrs[0]
	switch ve.Field() {
	case "Name":
		return apperrors.Validation("Name", "doctor name must not be empty")
	case "Room":
		return apperrors.Validation("Room", "room must be a positive number")
	case "StartHour":
		return apperrors.Validation("StartHour", "start hour must be between 0 and 23")
	case "EndHour":
		if ve.Tag() == "gtfield" {
			return apperrors.Validation("EndHour", "start time must be before end time")
		}
		return apperrors.Validation("EndHour", "end hour must be between 0 and 23")
	}
	return apperrors.Validation(ve.Field(), ve.Error())
}
