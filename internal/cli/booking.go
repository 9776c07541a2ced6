package cli

import (
	"context"
	"fmt"

	"github.com/jwalitptl/clinic-desk/internal/model"
	apperrors "github.com/jwalitptl/clinic-desk/pkg/errors"
)

// bookAppointment walks the full workflow: precondition, intake, doctor
// selection, time input, then the service-side shift and conflict checks.
// Field-level problems re-prompt in place; everything past intake aborts
// the whole attempt back to the menu.
func (c *CLI) bookAppointment(ctx context.Context) error {
	doctors, err := c.directory.List(ctx)
	if err != nil {
		c.reportError(err)
		return nil
	}
	if len(doctors) == 0 {
		c.reportError(apperrors.NoDoctorsAvailable())
		return nil
	}

	patient, err := c.patientIntake()
	if err != nil {
		return err
	}

	c.renderDoctors(doctors)
	choice, err := c.promptInt("  Select doctor (enter no): ")
	if err != nil {
		return err
	}
	if choice < 1 || choice > len(doctors) {
		c.reportError(apperrors.InvalidSelection(choice, len(doctors)))
		return nil
	}
	selected := doctors[choice-1]

	hour, err := c.promptInt(fmt.Sprintf("  Enter time slot (%d - %d): ", selected.StartHour, selected.EndHour))
	if err != nil {
		return err
	}

	apt, err := c.booking.Book(ctx, &model.BookingRequest{
		Patient: *patient,
		Doctor:  *selected,
		Hour:    hour,
	})
	if err != nil {
		c.reportError(err)
		return nil
	}

	fmt.Fprintf(c.out, "  [Success] Appointment confirmed for %d:00 hours.\n", apt.Hour)
	return nil
}

// patientIntake collects the patient fields in fixed order, re-prompting
// each until valid. Validation never escapes this step.
func (c *CLI) patientIntake() (*model.CreatePatientRequest, error) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "  -- Patient Registration --")

	name, err := c.promptNonEmpty("  Name: ")
	if err != nil {
		return nil, err
	}

	age, err := c.promptIntIn("  Age: ", "  [!] Invalid age. Please enter a realistic age.", func(n int) bool {
		return n > 0 && n <= 120
	})
	if err != nil {
		return nil, err
	}

	var gender string
	for {
		value, err := c.promptLine("  Gender (M/F): ")
		if err != nil {
			return nil, err
		}
		code, ok := model.NormalizeGender(value)
		if ok {
			gender = code
			break
		}
		fmt.Fprintln(c.out, "  [!] Please enter M or F only.")
	}

	var phone string
	for {
		value, err := c.promptLine("  Phone: ")
		if err != nil {
			return nil, err
		}
		if model.IsDigits(value) && len(value) > 5 {
			phone = value
			break
		}
		fmt.Fprintln(c.out, "  [!] Invalid phone (digits only). Try again.")
	}

	reason, err := c.promptLine("  Reason: ")
	if err != nil {
		return nil, err
	}

	return &model.CreatePatientRequest{
		Name:   name,
		Age:    age,
		Gender: gender,
		Phone:  phone,
		Reason: reason,
	}, nil
}

func (c *CLI) renderDoctors(doctors []*model.Doctor) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "  -- Available Doctors --")
	fmt.Fprintf(c.out, "  %-4s %-22s %-15s %s\n", "No", "Name", "Specialist", "Availability")
	for i, d := range doctors {
		fmt.Fprintf(c.out, "  %-4d %-22s %-15s %d:00 - %d:00 (Room %d)\n",
			i+1, "Dr. "+d.Name, d.Specialization, d.StartHour, d.EndHour, d.Room)
	}
}
