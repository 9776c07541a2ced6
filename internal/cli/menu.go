package cli

import (
	"context"
	"fmt"

	"github.com/jwalitptl/clinic-desk/internal/model"
)

func (c *CLI) mainMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "  ==== HOSPITAL MANAGEMENT ====")
		fmt.Fprintln(c.out, "  1. Add new doctor")
		fmt.Fprintln(c.out, "  2. Add patient & book appointment")
		fmt.Fprintln(c.out, "  3. View all appointments")
		fmt.Fprintln(c.out, "  4. Logout")

		choice, err := c.promptInt("  Enter choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = c.addDoctor(ctx)
		case 2:
			err = c.bookAppointment(ctx)
		case 3:
			err = c.showAppointments(ctx)
		case 4:
			return nil
		default:
			fmt.Fprintln(c.out, "  [!] Invalid choice.")
		}
		if err != nil {
			return err
		}
	}
}

func (c *CLI) addDoctor(ctx context.Context) error {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "  -- Add New Doctor --")

	name, err := c.promptNonEmpty("  Doctor name: ")
	if err != nil {
		return err
	}
	specialization, err := c.promptLine("  Specialization (e.g. Heart, Bone): ")
	if err != nil {
		return err
	}
	room, err := c.promptIntIn("  Room number: ", "  [!] Room must be a positive number.", func(n int) bool {
		return n > 0
	})
	if err != nil {
		return err
	}
	hourValid := func(n int) bool { return n >= 0 && n <= 23 }
	startHour, err := c.promptIntIn("  Shift start hour (0-23): ", "  [!] Invalid hour (0-23).", hourValid)
	if err != nil {
		return err
	}
	endHour, err := c.promptIntIn("  Shift end hour (0-23): ", "  [!] Invalid hour (0-23).", hourValid)
	if err != nil {
		return err
	}

	doctor, err := c.directory.Add(ctx, &model.CreateDoctorRequest{
		Name:           name,
		Specialization: specialization,
		Room:           room,
		StartHour:      startHour,
		EndHour:        endHour,
	})
	if err != nil {
		c.reportError(err)
		return nil
	}

	fmt.Fprintf(c.out, "  [Success] Dr. %s added to the directory.\n", doctor.Name)
	return nil
}

func (c *CLI) showAppointments(ctx context.Context) error {
	appointments, err := c.booking.Schedule(ctx)
	if err != nil {
		c.reportError(err)
		return nil
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "  -- Appointment Schedule --")
	if len(appointments) == 0 {
		fmt.Fprintln(c.out, "  [Info] No appointments scheduled yet.")
		return nil
	}

	fmt.Fprintf(c.out, "  %-20s %-20s %s\n", "Patient", "Doctor", "Time")
	for _, apt := range appointments {
		fmt.Fprintf(c.out, "  %-20s %-20s %d:00\n", apt.PatientName, "Dr. "+apt.DoctorName, apt.Hour)
	}
	return nil
}
