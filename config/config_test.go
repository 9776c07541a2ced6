package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.Storage.Dir)
	assert.Equal(t, "account.txt", cfg.Storage.AccountsFile)
	assert.Equal(t, "doctors.txt", cfg.Storage.DoctorsFile)
	assert.Equal(t, "patients.txt", cfg.Storage.PatientsFile)
	assert.Equal(t, "appointments.txt", cfg.Storage.AppointmentsFile)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("CLINIC_DATA_DIR", "/tmp/clinic-data")
	t.Setenv("CLINIC_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/clinic-data", cfg.Storage.Dir)
	assert.Equal(t, "debug", cfg.Logging.Level)
}
