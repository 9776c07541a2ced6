package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/term"

	"github.com/jwalitptl/clinic-desk/config"
	"github.com/jwalitptl/clinic-desk/internal/cli"
	"github.com/jwalitptl/clinic-desk/internal/repository/flatfile"
	"github.com/jwalitptl/clinic-desk/internal/service/auth"
	"github.com/jwalitptl/clinic-desk/internal/service/booking"
	"github.com/jwalitptl/clinic-desk/internal/service/directory"
	"github.com/jwalitptl/clinic-desk/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, closeLog, err := buildLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := flatfile.NewStore(cfg.Storage.Dir)
	if err != nil {
		log.Fatal(err, "failed to open data directory")
	}

	doctorRepo := flatfile.NewDoctorRepository(store, cfg.Storage.DoctorsFile)
	patientRepo := flatfile.NewPatientRepository(store, cfg.Storage.PatientsFile)
	appointmentRepo := flatfile.NewAppointmentRepository(store, cfg.Storage.AppointmentsFile)
	adminRepo := flatfile.NewAdminRepository(store, cfg.Storage.AccountsFile)

	authSvc := auth.NewService(adminRepo, log)
	directorySvc := directory.NewService(doctorRepo, log)
	bookingSvc, err := booking.NewService(appointmentRepo, patientRepo, log)
	if err != nil {
		log.Fatal(err, "failed to initialize booking service")
	}

	log.Info("clinic desk started", "data_dir", cfg.Storage.Dir)

	opts := []cli.Option{}
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		opts = append(opts, cli.WithSecretReader(func() (string, error) {
			secret, err := term.ReadPassword(fd)
			return string(secret), err
		}))
	}

	app := cli.New(os.Stdin, os.Stdout, authSvc, directorySvc, bookingSvc, log, opts...)
	if err := app.Run(context.Background()); err != nil {
		log.Fatal(err, "session ended with error")
	}
}

// buildLogger sends log output to the configured file, defaulting to a
// session log inside the data directory so structured output never mixes
// with the interactive menus.
func buildLogger(cfg *config.Config) (*logger.Logger, func(), error) {
	path := cfg.Logging.File
	if path == "" {
		path = filepath.Join(cfg.Storage.Dir, "clinic.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}

	log := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Logging.Level),
		TimeFormat: time.RFC3339,
		Output:     f,
		NoColor:    true,
	})
	return log, func() { f.Close() }, nil
}
