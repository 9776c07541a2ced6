package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-desk/internal/model"
	"github.com/jwalitptl/clinic-desk/internal/repository/flatfile"
	apperrors "github.com/jwalitptl/clinic-desk/pkg/errors"
	"github.com/jwalitptl/clinic-desk/pkg/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := flatfile.NewStore(t.TempDir())
	require.NoError(t, err)
	return NewService(flatfile.NewDoctorRepository(store, "doctors.txt"), logger.Nop())
}

func validRequest() *model.CreateDoctorRequest {
	return &model.CreateDoctorRequest{
		Name:           "Smith",
		Specialization: "Heart",
		Room:           12,
		StartHour:      9,
		EndHour:        17,
	}
}

func TestAddValidDoctor(t *testing.T) {
	svc := newTestService(t)

	doctor, err := svc.Add(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Smith", doctor.Name)
	assert.True(t, doctor.InShift(16))
	assert.False(t, doctor.InShift(17))
}

func TestAddRejectsInvalidFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*model.CreateDoctorRequest)
		field  string
	}{
		{"empty name", func(r *model.CreateDoctorRequest) { r.Name = "" }, "Name"},
		{"zero room", func(r *model.CreateDoctorRequest) { r.Room = 0 }, "Room"},
		{"negative room", func(r *model.CreateDoctorRequest) { r.Room = -3 }, "Room"},
		{"start hour above 23", func(r *model.CreateDoctorRequest) { r.StartHour = 24 }, "StartHour"},
		{"end hour above 23", func(r *model.CreateDoctorRequest) { r.EndHour = 25 }, "EndHour"},
		{"start equals end", func(r *model.CreateDoctorRequest) { r.StartHour = 9; r.EndHour = 9 }, "EndHour"},
		{"start after end", func(r *model.CreateDoctorRequest) { r.StartHour = 17; r.EndHour = 9 }, "EndHour"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := svc.Add(ctx, req)
			require.Error(t, err)
			assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.field, appErr.Field)
		})
	}
}

func TestListPreservesAppendOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Smith", "Jones", "Lee"} {
		req := validRequest()
		req.Name = name
		_, err := svc.Add(ctx, req)
		require.NoError(t, err)
	}

	doctors, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 3)
	assert.Equal(t, "Smith", doctors[0].Name)
	assert.Equal(t, "Jones", doctors[1].Name)
	assert.Equal(t, "Lee", doctors[2].Name)
}

func TestAddAllowsDuplicateNames(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, validRequest())
	require.NoError(t, err)
	_, err = svc.Add(ctx, validRequest())
	require.NoError(t, err)

	doctors, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, doctors, 2)
}
