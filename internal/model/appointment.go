package model

// Appointment occupies a slot: one doctor name and one hour of the
// recurring daily schedule. DoctorName references Doctor.Name by string,
// without a key constraint.
type Appointment struct {
	PatientName string
	DoctorName  string
	Reason      string
	Hour        int
}

// BookingRequest is a validated booking attempt: an intake result plus the
// selected doctor and desired hour.
type BookingRequest struct {
	Patient CreatePatientRequest
	Doctor  Doctor
	Hour    int
}
