package flatfile

import (
	"context"
	"strconv"

	"github.com/jwalitptl/clinic-desk/internal/model"
	"github.com/jwalitptl/clinic-desk/internal/repository"
)

const patientFieldCount = 5

type patientRepository struct {
	store      *Store
	collection string
}

func NewPatientRepository(store *Store, collection string) repository.PatientRepository {
	return &patientRepository{store: store, collection: collection}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	return r.store.Append(r.collection, []string{
		patient.Name,
		strconv.Itoa(patient.Age),
		patient.Gender,
		patient.Phone,
		patient.Reason,
	})
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	records, err := r.store.Load(r.collection)
	if err != nil {
		return nil, err
	}

	patients := make([]*model.Patient, 0, len(records))
	for _, fields := range records {
		if len(fields) < patientFieldCount {
			continue
		}
		age, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		patients = append(patients, &model.Patient{
			Name:   fields[0],
			Age:    age,
			Gender: fields[2],
			Phone:  fields[3],
			Reason: fields[4],
		})
	}
	return patients, nil
}
