package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an application error by how callers recover from it:
// validation errors are re-prompted at the point of input, everything else
// aborts the current operation and returns control to the menu.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindPrecondition
	KindSelection
	KindAvailability
	KindConflict
	KindUnauthorized
	KindStorage
)

// AppError represents an application error
type AppError struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// Validation reports a field-level violation. These are recoverable:
// intake loops re-prompt instead of aborting.
func Validation(field, message string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Field:   field,
		Message: message,
	}
}

// NoDoctorsAvailable aborts a booking attempt before intake begins.
func NoDoctorsAvailable() *AppError {
	return &AppError{
		Kind:    KindPrecondition,
		Message: "no doctors found, add a doctor first",
	}
}

// InvalidSelection reports a doctor index outside [1, count].
func InvalidSelection(choice, count int) *AppError {
	return &AppError{
		Kind:    KindSelection,
		Message: fmt.Sprintf("invalid selection %d, expected 1-%d", choice, count),
	}
}

// OutOfShift reports an hour outside the doctor's shift window. The end
// hour is exclusive.
func OutOfShift(doctor string, hour, startHour, endHour int) *AppError {
	return &AppError{
		Kind:    KindAvailability,
		Message: fmt.Sprintf("Dr. %s is not available at %d:00, shift is %d:00-%d:00", doctor, hour, startHour, endHour),
	}
}

// SlotBusy reports that the doctor already has a patient at the hour.
func SlotBusy(doctor string, hour int) *AppError {
	return &AppError{
		Kind:    KindAvailability,
		Message: fmt.Sprintf("Dr. %s already has a patient at %d:00", doctor, hour),
	}
}

// DuplicateAdminID reports a signup attempt with an ID that is already
// registered.
func DuplicateAdminID(id string) *AppError {
	return &AppError{
		Kind:    KindConflict,
		Message: fmt.Sprintf("admin ID %q is already registered", id),
	}
}

// InvalidCredentials reports a failed login.
func InvalidCredentials() *AppError {
	return &AppError{
		Kind:    KindUnauthorized,
		Message: "invalid credentials",
	}
}

// Storage reports a backing-store failure. A failed append is surfaced
// to the caller, never lost silently.
func Storage(op, collection string, err error) *AppError {
	return &AppError{
		Kind:    KindStorage,
		Message: fmt.Sprintf("storage %s failed for %s", op, collection),
		Err:     err,
	}
}
