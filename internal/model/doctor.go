package model

// Doctor is identified by name alone. Names are not checked for
// uniqueness; two doctors sharing a name share a conflict set.
type Doctor struct {
	Name           string
	Specialization string
	Room           int
	StartHour      int
	EndHour        int
}

// InShift reports whether hour falls inside the doctor's shift window.
// The end hour is exclusive: a 9-17 shift accepts 16 but not 17.
func (d *Doctor) InShift(hour int) bool {
	return hour >= d.StartHour && hour < d.EndHour
}

type CreateDoctorRequest struct {
	Name           string `validate:"required"`
	Specialization string
	Room           int `validate:"gt=0"`
	StartHour      int `validate:"gte=0,lte=23"`
	EndHour        int `validate:"gte=0,lte=23,gtfield=StartHour"`
}
