package flatfile

import (
	"context"
	"strconv"

	"github.com/jwalitptl/clinic-desk/internal/model"
	"github.com/jwalitptl/clinic-desk/internal/repository"
)

const doctorFieldCount = 5

type doctorRepository struct {
	store      *Store
	collection string
}

func NewDoctorRepository(store *Store, collection string) repository.DoctorRepository {
	return &doctorRepository{store: store, collection: collection}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	return r.store.Append(r.collection, []string{
		doctor.Name,
		doctor.Specialization,
		strconv.Itoa(doctor.Room),
		strconv.Itoa(doctor.StartHour),
		strconv.Itoa(doctor.EndHour),
	})
}

// List returns doctors in file-append order. Short or malformed records
// are skipped rather than rejected.
func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	records, err := r.store.Load(r.collection)
	if err != nil {
		return nil, err
	}

	doctors := make([]*model.Doctor, 0, len(records))
	for _, fields := range records {
		if len(fields) < doctorFieldCount {
			continue
		}
		room, err := strconv.Atoi(fields[2])
		if err != nil {
			continue
		}
		start, err := strconv.Atoi(fields[3])
		if err != nil {
			continue
		}
		end, err := strconv.Atoi(fields[4])
		if err != nil {
			continue
		}
		doctors = append(doctors, &model.Doctor{
			Name:           fields[0],
			Specialization: fields[1],
			Room:           room,
			StartHour:      start,
			EndHour:        end,
		})
	}
	return doctors, nil
}
