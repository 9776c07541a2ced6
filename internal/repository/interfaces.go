package repository

import (
	"context"

	"github.com/jwalitptl/clinic-desk/internal/model"
)

// All repository interfaces in one file. Every collection is append-only:
// records are never updated or deleted once persisted.
type (
	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor) error
		// List returns doctors in file-append order, oldest first.
		List(ctx context.Context) ([]*model.Doctor, error)
	}

	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		List(ctx context.Context) ([]*model.Patient, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		List(ctx context.Context) ([]*model.Appointment, error)
	}

	AdminRepository interface {
		Create(ctx context.Context, admin *model.Admin) error
		// GetByID returns (nil, nil) when no account matches.
		GetByID(ctx context.Context, id string) (*model.Admin, error)
	}
)
