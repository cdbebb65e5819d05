package main

import (
	"context"
	"flag"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/Pr0fessionalBum/MedicalMDB/internal/config"
	"github.com/Pr0fessionalBum/MedicalMDB/internal/model"
	"github.com/Pr0fessionalBum/MedicalMDB/internal/repository/mongo"
	"github.com/Pr0fessionalBum/MedicalMDB/internal/seed"
	"github.com/Pr0fessionalBum/MedicalMDB/internal/seed/composer"
	"github.com/Pr0fessionalBum/MedicalMDB/internal/seed/sampler"
	"github.com/Pr0fessionalBum/MedicalMDB/pkg/logger"
	"github.com/Pr0fessionalBum/MedicalMDB/pkg/security"
)

const connectTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to config file")
	patients := flag.Int("patients", 0, "number of patients to generate")
	physicians := flag.Int("physicians", 0, "number of physicians to generate")
	maxPrescriptions := flag.Int("max-prescriptions", 0, "max prescriptions per patient")
	maxAppointments := flag.Int("max-appointments", 0, "max appointments per patient")
	randomSeed := flag.Uint64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	log := logger.NewLogger(nil)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err, "failed to load config")
	}
	applyOverrides(cfg, *patients, *physicians, *maxPrescriptions, *maxAppointments, *randomSeed)

	rngSeed := cfg.Seed.RandomSeed
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
	}

	meds, err := seed.LoadMedications(cfg.Dataset.MedicationsPath)
	if err != nil {
		log.Fatal(err, "failed to load medication dataset")
	}
	log.Info("loaded medication dataset", "count", len(meds))

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	db, err := mongo.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	cancel()
	if err != nil {
		log.Fatal(err, "failed to connect to mongodb")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		if err := mongo.Disconnect(ctx, db); err != nil {
			log.Error(err, "failed to disconnect from mongodb")
		}
	}()

	smp := sampler.NewSeeded(rngSeed)
	cmp := composer.New(smp)
	gen := seed.NewGenerator(smp, cmp, cmp, gofakeit.New(rngSeed), tunables(cfg.Generation))

	seeder := seed.NewSeeder(seed.Repositories{
		Physicians:    mongo.NewPhysicianRepository(db),
		Patients:      mongo.NewPatientRepository(db),
		Prescriptions: mongo.NewPrescriptionRepository(db),
		Appointments:  mongo.NewAppointmentRepository(db),
		Billings:      mongo.NewBillingRepository(db),
	}, gen, smp, security.NewBcryptHasher(10), meds, log)

	opts := seed.Options{
		Patients:        cfg.Seed.Patients,
		Physicians:      cfg.Seed.Physicians,
		MaxPrescription: cfg.Seed.MaxPrescription,
		MaxAppointments: cfg.Seed.MaxAppointments,
	}
	if err := seeder.Run(context.Background(), opts); err != nil {
		log.Fatal(err, "seeding run failed")
	}
}

func applyOverrides(cfg *config.Config, patients, physicians, maxPrescriptions, maxAppointments int, randomSeed uint64) {
	if patients > 0 {
		cfg.Seed.Patients = patients
	}
	if physicians > 0 {
		cfg.Seed.Physicians = physicians
	}
	if maxPrescriptions > 0 {
		cfg.Seed.MaxPrescription = maxPrescriptions
	}
	if maxAppointments > 0 {
		cfg.Seed.MaxAppointments = maxAppointments
	}
	if randomSeed != 0 {
		cfg.Seed.RandomSeed = randomSeed
	}
}

// tunables maps the generation config onto the generator's knobs,
// falling back to the demo defaults for anything unset.
func tunables(gc config.GenerationConfig) seed.Tunables {
	tun := seed.DefaultTunables()
	if gc.BaseFee > 0 {
		tun.BaseFee = gc.BaseFee
	}
	if gc.VarianceCeiling > 0 {
		tun.VarianceCeiling = gc.VarianceCeiling
	}
	if len(gc.SpecializationMultipliers) > 0 {
		multipliers := make(map[model.Specialization]float64, len(gc.SpecializationMultipliers))
		for spec, mult := range gc.SpecializationMultipliers {
			multipliers[model.Specialization(spec)] = mult
		}
		tun.SpecializationMultipliers = multipliers
	}
	if gc.InsuranceProbability > 0 {
		tun.InsuranceProbability = gc.InsuranceProbability
	}
	if gc.PrimaryPhysicianBias > 0 {
		tun.PrimaryPhysicianBias = gc.PrimaryPhysicianBias
	}
	if gc.PenaltyYear > 0 {
		tun.DateBias.PenaltyYear = gc.PenaltyYear
	}
	if gc.PenaltyAcceptProbability > 0 {
		tun.DateBias.AcceptProb = gc.PenaltyAcceptProbability
	}
	if gc.DateExponent > 0 {
		tun.DateBias.Exponent = gc.DateExponent
	}
	if gc.SkewExponent > 0 {
		tun.SkewExponent = gc.SkewExponent
	}
	if gc.PendingHorizonDays > 0 {
		tun.PendingHorizonDays = gc.PendingHorizonDays
	}
	if gc.PendingOffsetExponent > 0 {
		tun.PendingOffsetExponent = gc.PendingOffsetExponent
	}
	return tun
}
