package flatfile

import (
	"context"
	"strconv"

	"github.com/jwalitptl/clinic-desk/internal/model"
	"github.com/jwalitptl/clinic-desk/internal/repository"
)

const appointmentFieldCount = 4

type appointmentRepository struct {
	store      *Store
	collection string
}

func NewAppointmentRepository(store *Store, collection string) repository.AppointmentRepository {
	return &appointmentRepository{store: store, collection: collection}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	return r.store.Append(r.collection, []string{
		appointment.PatientName,
		appointment.DoctorName,
		appointment.Reason,
		strconv.Itoa(appointment.Hour),
	})
}

func (r *appointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	records, err := r.store.Load(r.collection)
	if err != nil {
		return nil, err
	}

	appointments := make([]*model.Appointment, 0, len(records))
	for _, fields := range records {
		if len(fields) < appointmentFieldCount {
			continue
		}
		hour, err := strconv.Atoi(fields[3])
		if err != nil {
			continue
		}
		appointments = append(appointments, &model.Appointment{
			PatientName: fields[0],
			DoctorName:  fields[1],
			Reason:      fields[2],
			Hour:        hour,
		})
	}
	return appointments, nil
}
