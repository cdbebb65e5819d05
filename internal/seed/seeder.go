package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Pr0fessionalBum/MedicalMDB/internal/model"
	"github.com/Pr0fessionalBum/MedicalMDB/internal/repository"
	"github.com/Pr0fessionalBum/MedicalMDB/internal/seed/sampler"
	"github.com/Pr0fessionalBum/MedicalMDB/internal/seed/templates"
	"github.com/Pr0fessionalBum/MedicalMDB/pkg/errors"
	"github.com/Pr0fessionalBum/MedicalMDB/pkg/logger"
	"github.com/Pr0fessionalBum/MedicalMDB/pkg/security"
)

// demoPassword is the shared credential for every generated account.
const demoPassword = "password123"

// Options control the volume of one seeding run.
type Options struct {
	Patients        int
	Physicians      int
	MaxPrescription int
	MaxAppointments int
}

// DefaultOptions mirror the demo database shipped with the app.
func DefaultOptions() Options {
	return Options{
		Patients:        10,
		Physicians:      20,
		MaxPrescription: 15,
		MaxAppointments: 30,
	}
}

// withDefaults fills any zero field from DefaultOptions, so callers
// may set only the volumes they care about.
func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.Patients <= 0 {
		o.Patients = defaults.Patients
	}
	if o.Physicians <= 0 {
		o.Physicians = defaults.Physicians
	}
	if o.MaxPrescription <= 0 {
		o.MaxPrescription = defaults.MaxPrescription
	}
	if o.MaxAppointments <= 0 {
		o.MaxAppointments = defaults.MaxAppointments
	}
	return o
}

// Repositories groups the persistence collaborators of one run.
type Repositories struct {
	Physicians    repository.PhysicianRepository
	Patients      repository.PatientRepository
	Prescriptions repository.PrescriptionRepository
	Appointments  repository.AppointmentRepository
	Billings      repository.BillingRepository
}

// apptRecord carries the appointment metadata the billing phase needs
// after all appointments exist.
type apptRecord struct {
	appointment *model.Appointment
	physicianID primitive.ObjectID
	date        time.Time
	patientName string
	patientID   primitive.ObjectID
}

// Seeder sequences generation across entities in strict dependency
// order: physicians, patients, per-patient prescriptions and
// appointments, then billing and schedule back-fill once the full
// appointment set is materialized.
//
// There is no rollback: a persistence failure aborts the run and
// leaves earlier writes in place. Re-running wipes and regenerates.
type Seeder struct {
	repos     Repositories
	generator *Generator
	sampler   *sampler.Sampler
	hasher    security.PasswordHasher
	meds      []model.Medication
	logger    *logger.Logger
}

func NewSeeder(repos Repositories, generator *Generator, s *sampler.Sampler, hasher security.PasswordHasher, meds []model.Medication, log *logger.Logger) *Seeder {
	return &Seeder{
		repos:     repos,
		generator: generator,
		sampler:   s,
		hasher:    hasher,
		meds:      meds,
		logger:    log,
	}
}

// Run wipes the five entity collections and regenerates the demo
// dataset. Zero-valued option fields fall back to DefaultOptions. Any
// entity-creation failure aborts the whole run.
func (s *Seeder) Run(ctx context.Context, opts Options) error {
	opts = opts.withDefaults()
	runID := uuid.New().String()
	now := time.Now()
	log := s.logger.WithFields(map[string]interface{}{"run_id": runID})
	log.Info(fmt.Sprintf("seeding %d patients, %d physicians", opts.Patients, opts.Physicians))

	if err := s.wipe(ctx); err != nil {
		return err
	}

	passwordHash, err := s.hasher.Hash(demoPassword)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	physicians, err := s.createPhysicians(ctx, opts.Physicians, passwordHash, now)
	if err != nil {
		return err
	}

	insurersByPatient := make(map[primitive.ObjectID][]string, opts.Patients)
	var records []apptRecord

	for i := 0; i < opts.Patients; i++ {
		patient := s.generator.Patient(passwordHash, now)
		if err := s.repos.Patients.Create(ctx, patient); err != nil {
			return errors.Persistence("patient", err)
		}
		insurersByPatient[patient.ID] = s.generator.InsurerSet()

		if err := s.createPrescriptions(ctx, patient, physicians, opts.MaxPrescription, now); err != nil {
			return err
		}

		patientRecords, err := s.createAppointments(ctx, patient, physicians, opts.MaxAppointments, now)
		if err != nil {
			return err
		}
		records = append(records, patientRecords...)

		log.Debug(fmt.Sprintf("seeded patient %s (%s)", patient.ID.Hex(), patient.Name))
	}

	if err := s.backfillBilling(ctx, physicians, records, insurersByPatient, now); err != nil {
		return err
	}

	log.Info(fmt.Sprintf("seeding complete: %d appointments billed", len(records)))
	return nil
}

// wipe clears prior generated data for all five collections. Full
// collection wipe, not selective.
func (s *Seeder) wipe(ctx context.Context) error {
	wipes := []struct {
		entity string
		fn     func(context.Context) error
	}{
		{"patients", s.repos.Patients.DeleteAll},
		{"physicians", s.repos.Physicians.DeleteAll},
		{"prescriptions", s.repos.Prescriptions.DeleteAll},
		{"appointments", s.repos.Appointments.DeleteAll},
		{"billings", s.repos.Billings.DeleteAll},
	}
	for _, w := range wipes {
		if err := w.fn(ctx); err != nil {
			return errors.Persistence(w.entity, err)
		}
	}
	return nil
}

// createPhysicians generates the physician pool plus the fixed admin
// account, returning all of them for downstream reference.
func (s *Seeder) createPhysicians(ctx context.Context, count int, passwordHash string, now time.Time) ([]*model.Physician, error) {
	physicians := make([]*model.Physician, 0, count+1)
	for i := 0; i < count; i++ {
		physician, err := s.generator.Physician(i, passwordHash, now)
		if err != nil {
			return nil, err
		}
		if err := s.repos.Physicians.Create(ctx, physician); err != nil {
			return nil, errors.Persistence("physician", err)
		}
		physicians = append(physicians, physician)
	}

	admin := s.generator.AdminPhysician(passwordHash, now)
	if err := s.repos.Physicians.Create(ctx, admin); err != nil {
		return nil, errors.Persistence("physician", err)
	}
	physicians = append(physicians, admin)
	return physicians, nil
}

func (s *Seeder) createPrescriptions(ctx context.Context, patient *model.Patient, physicians []*model.Physician, maxPrescriptions int, now time.Time) error {
	count := s.sampler.SkewedCount(1, maxPrescriptions, s.generator.tun.SkewExponent)
	for i := 0; i < count; i++ {
		med, err := sampler.Choice(s.sampler, s.meds)
		if err != nil {
			return err
		}
		// Prescriber is any physician, not necessarily the
		// patient's primary.
		physician, err := sampler.Choice(s.sampler, physicians)
		if err != nil {
			return err
		}
		prescription, err := s.generator.Prescription(patient, physician.ID, med, now)
		if err != nil {
			return err
		}
		if err := s.repos.Prescriptions.Create(ctx, prescription); err != nil {
			return errors.Persistence("prescription", err)
		}
	}
	return nil
}

// createAppointments designates a primary physician for the patient,
// then generates 1..max appointments favoring the primary with the
// configured bias; the first appointment always lands on the primary.
func (s *Seeder) createAppointments(ctx context.Context, patient *model.Patient, physicians []*model.Physician, maxAppointments int, now time.Time) ([]apptRecord, error) {
	primary, err := sampler.Choice(s.sampler, physicians)
	if err != nil {
		return nil, err
	}

	count := s.sampler.IntRange(1, maxAppointments)
	records := make([]apptRecord, 0, count)
	for i := 0; i < count; i++ {
		med, err := sampler.Choice(s.sampler, s.meds)
		if err != nil {
			return nil, err
		}
		diagnosis, err := sampler.Choice(s.sampler, templates.Diagnoses)
		if err != nil {
			return nil, err
		}

		physician := primary
		if i > 0 && !s.sampler.Chance(s.generator.tun.PrimaryPhysicianBias) {
			physician, err = sampler.Choice(s.sampler, physicians)
			if err != nil {
				return nil, err
			}
		}

		appointment, err := s.generator.Appointment(patient, physician.ID, med, diagnosis, now)
		if err != nil {
			return nil, err
		}
		if err := s.repos.Appointments.Create(ctx, appointment); err != nil {
			return nil, errors.Persistence("appointment", err)
		}

		records = append(records, apptRecord{
			appointment: appointment,
			physicianID: appointment.PhysicianID,
			date:        appointment.Date,
			patientName: patient.Name,
			patientID:   patient.ID,
		})
	}
	return records, nil
}

// backfillBilling creates one billing record per appointment and
// accumulates booked-slot schedule entries per physician in memory,
// flushing each physician's additions once at the end of the phase.
func (s *Seeder) backfillBilling(ctx context.Context, physicians []*model.Physician, records []apptRecord, insurersByPatient map[primitive.ObjectID][]string, now time.Time) error {
	specializations := make(map[primitive.ObjectID]model.Specialization, len(physicians))
	for _, p := range physicians {
		specializations[p.ID] = p.Specialization
	}

	scheduleAdds := make(map[primitive.ObjectID][]string)
	for _, rec := range records {
		spec, ok := specializations[rec.physicianID]
		if !ok {
			spec = model.SpecializationGeneralPractice
		}

		bill, err := s.generator.Billing(rec.appointment, spec, insurersByPatient[rec.patientID], now)
		if err != nil {
			return err
		}
		if err := s.repos.Billings.Create(ctx, bill); err != nil {
			return errors.Persistence("billing", err)
		}

		scheduleAdds[rec.physicianID] = append(scheduleAdds[rec.physicianID], ScheduleEntry(rec.date, rec.patientName))
	}

	for id, entries := range scheduleAdds {
		if err := s.repos.Physicians.AppendSchedule(ctx, id, entries); err != nil {
			return errors.Persistence("physician schedule", err)
		}
	}
	return nil
}
