package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Mongo      MongoConfig      `mapstructure:"mongo"`
	Dataset    DatasetConfig    `mapstructure:"dataset"`
	Seed       SeedConfig       `mapstructure:"seed"`
	Generation GenerationConfig `mapstructure:"generation"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri" validate:"required"`
	Database string `mapstructure:"database" validate:"required"`
}

type DatasetConfig struct {
	MedicationsPath string `mapstructure:"medications_path" validate:"required"`
}

type SeedConfig struct {
	Patients        int    `mapstructure:"patients" validate:"min=1"`
	Physicians      int    `mapstructure:"physicians" validate:"min=1"`
	MaxPrescription int    `mapstructure:"max_prescriptions" validate:"min=1"`
	MaxAppointments int    `mapstructure:"max_appointments" validate:"min=1"`
	RandomSeed      uint64 `mapstructure:"random_seed"`
}

// GenerationConfig exposes the generator's statistical knobs. These
// are tunables, not laws; a run applies them consistently.
type GenerationConfig struct {
	BaseFee                   int                `mapstructure:"base_fee" validate:"min=1"`
	VarianceCeiling           int                `mapstructure:"variance_ceiling" validate:"min=1"`
	SpecializationMultipliers map[string]float64 `mapstructure:"specialization_multipliers"`
	InsuranceProbability      float64            `mapstructure:"insurance_probability" validate:"gte=0,lte=1"`
	PrimaryPhysicianBias      float64            `mapstructure:"primary_physician_bias" validate:"gte=0,lte=1"`
	PenaltyYear               int                `mapstructure:"penalty_year"`
	PenaltyAcceptProbability  float64            `mapstructure:"penalty_accept_probability" validate:"gte=0,lte=1"`
	DateExponent              float64            `mapstructure:"date_exponent" validate:"gt=0"`
	SkewExponent              float64            `mapstructure:"skew_exponent" validate:"gt=0"`
	PendingHorizonDays        int                `mapstructure:"pending_horizon_days" validate:"min=1"`
	PendingOffsetExponent     float64            `mapstructure:"pending_offset_exponent" validate:"gt=0"`
}

func setDefaults() {
	viper.SetDefault("mongo.uri", "mongodb://127.0.0.1:27017")
	viper.SetDefault("mongo.database", "medicalApp")
	viper.SetDefault("dataset.medications_path", "data/medications.json")

	viper.SetDefault("seed.patients", 10)
	viper.SetDefault("seed.physicians", 20)
	viper.SetDefault("seed.max_prescriptions", 15)
	viper.SetDefault("seed.max_appointments", 30)
	viper.SetDefault("seed.random_seed", 0)

	viper.SetDefault("generation.base_fee", 1500)
	viper.SetDefault("generation.variance_ceiling", 1500)
	viper.SetDefault("generation.specialization_multipliers", map[string]float64{
		"Cardiology":       2.0,
		"Dermatology":      1.25,
		"Pediatrics":       1.0,
		"General Practice": 1.0,
	})
	viper.SetDefault("generation.insurance_probability", 0.85)
	viper.SetDefault("generation.primary_physician_bias", 0.7)
	viper.SetDefault("generation.penalty_year", 1980)
	viper.SetDefault("generation.penalty_accept_probability", 0.2)
	viper.SetDefault("generation.date_exponent", 2.2)
	viper.SetDefault("generation.skew_exponent", 1.6)
	viper.SetDefault("generation.pending_horizon_days", 1095)
	viper.SetDefault("generation.pending_offset_exponent", 0.4)
}

// LoadConfig reads config.yaml (optional, defaults cover everything)
// with environment-variable overrides, then validates the result.
func LoadConfig(path string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	setDefaults()
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// missing file is fine, defaults apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}
