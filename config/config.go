package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type StorageConfig struct {
	Dir              string `mapstructure:"dir"`
	AccountsFile     string `mapstructure:"accounts_file"`
	DoctorsFile      string `mapstructure:"doctors_file"`
	PatientsFile     string `mapstructure:"patients_file"`
	AppointmentsFile string `mapstructure:"appointments_file"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
	// File receives log output so log lines do not interleave with the
	// menu rendering; empty means stderr.
	File string `mapstructure:"file"`
}

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// envOverrides are applied on top of the file config. CLINIC_DATA_DIR,
// CLINIC_LOG_LEVEL and CLINIC_LOG_FILE.
type envOverrides struct {
	DataDir  string `envconfig:"DATA_DIR"`
	LogLevel string `envconfig:"LOG_LEVEL"`
	LogFile  string `envconfig:"LOG_FILE"`
}

// LoadConfig reads an optional .env, an optional config.yml, and finally
// environment overrides. A missing config file is not an error; defaults
// apply.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("storage.dir", "data")
	viper.SetDefault("storage.accounts_file", "account.txt")
	viper.SetDefault("storage.doctors_file", "doctors.txt")
	viper.SetDefault("storage.patients_file", "patients.txt")
	viper.SetDefault("storage.appointments_file", "appointments.txt")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.file", "")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("clinic", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}
	if env.DataDir != "" {
		config.Storage.Dir = env.DataDir
	}
	if env.LogLevel != "" {
		config.Logging.Level = env.LogLevel
	}
	if env.LogFile != "" {
		config.Logging.File = env.LogFile
	}

	return &config, nil
}
