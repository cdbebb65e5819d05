package seed

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Pr0fessionalBum/MedicalMDB/internal/model"
	"github.com/Pr0fessionalBum/MedicalMDB/internal/seed/composer"
	"github.com/Pr0fessionalBum/MedicalMDB/internal/seed/sampler"
	"github.com/Pr0fessionalBum/MedicalMDB/internal/seed/templates"
)

// Tunables are the statistical knobs of the generator. They are
// configuration, not law: values may be tuned per deployment but are
// applied consistently within a run.
type Tunables struct {
	BaseFee                   int
	VarianceCeiling           int
	SpecializationMultipliers map[model.Specialization]float64
	InsuranceProbability      float64
	PaidWeight                float64
	PendingWeight             float64
	PrimaryPhysicianBias      float64
	PaymentWindowDays         int
	PendingHorizonDays        int
	PendingOffsetExponent     float64
	SkewExponent              float64
	DOBYearMin                int
	DOBYearMax                int
	MinAvailabilitySlots      int
	MaxAvailabilitySlots      int
	MaxInsurers               int
	PrescriptionPastYears     int
	DateBias                  sampler.DateBias
}

// DefaultTunables returns the demo tuning.
func DefaultTunables() Tunables {
	return Tunables{
		BaseFee:         1500,
		VarianceCeiling: 1500,
		SpecializationMultipliers: map[model.Specialization]float64{
			model.SpecializationCardiology:      2.0,
			model.SpecializationDermatology:     1.25,
			model.SpecializationPediatrics:      1.0,
			model.SpecializationGeneralPractice: 1.0,
		},
		InsuranceProbability:  0.85,
		PaidWeight:            0.60,
		PendingWeight:         0.25,
		PrimaryPhysicianBias:  0.7,
		PaymentWindowDays:     60,
		PendingHorizonDays:    365 * 3,
		PendingOffsetExponent: 0.4,
		SkewExponent:          sampler.DefaultSkewExponent,
		DOBYearMin:            1940,
		DOBYearMax:            2005,
		MinAvailabilitySlots:  3,
		MaxAvailabilitySlots:  5,
		MaxInsurers:           4,
		PrescriptionPastYears: 3,
		DateBias:              sampler.DefaultDateBias(),
	}
}

// Generator produces populated domain records ready for persistence.
// All randomness flows through the injected sampler and faker so a
// fixed seed reproduces a run exactly.
type Generator struct {
	sampler  *sampler.Sampler
	composer *composer.Composer
	notes    composer.NoteSource
	faker    *gofakeit.Faker
	tun      Tunables
}

func NewGenerator(s *sampler.Sampler, c *composer.Composer, notes composer.NoteSource, faker *gofakeit.Faker, tun Tunables) *Generator {
	if notes == nil {
		notes = c
	}
	return &Generator{
		sampler:  s,
		composer: c,
		notes:    notes,
		faker:    faker,
		tun:      tun,
	}
}

var usernameStrip = regexp.MustCompile(`[^a-z0-9.]`)
var whitespaceRun = regexp.MustCompile(`\s+`)

// usernameFor derives a login name from a display name: lower-cased,
// whitespace runs collapsed to dots, stripped to [a-z0-9.], with the
// generation index appended so repeated names stay unique.
func usernameFor(name string, index int) string {
	base := strings.ToLower(name)
	base = whitespaceRun.ReplaceAllString(base, ".")
	base = usernameStrip.ReplaceAllString(base, "")
	return fmt.Sprintf("%s.%d", base, index)
}

// Physician produces one generated physician with a uniform clinical
// specialization and 3-5 weekly availability slots.
func (g *Generator) Physician(index int, passwordHash string, now time.Time) (*model.Physician, error) {
	name := g.faker.Name()
	spec, err := sampler.Choice(g.sampler, model.ClinicalSpecializations)
	if err != nil {
		return nil, err
	}
	schedule, err := g.availability()
	if err != nil {
		return nil, err
	}

	return &model.Physician{
		ID:             primitive.NewObjectID(),
		Name:           name,
		Specialization: spec,
		Username:       usernameFor(name, index),
		PasswordHash:   passwordHash,
		Role:           model.RolePhysician,
		ContactInfo: model.ContactInfo{
			Phone: g.faker.Phone(),
			Email: g.faker.Email(),
		},
		Schedule:  schedule,
		IsActive:  true,
		CreatedAt: now,
	}, nil
}

// AdminPhysician is the fixed, recognizable admin account created on
// every run in addition to the generated pool.
func (g *Generator) AdminPhysician(passwordHash string, now time.Time) *model.Physician {
	return &model.Physician{
		ID:             primitive.NewObjectID(),
		Name:           "Demo Admin",
		Specialization: model.SpecializationAdministration,
		Username:       "demo_admin",
		PasswordHash:   passwordHash,
		Role:           model.RoleAdmin,
		ContactInfo: model.ContactInfo{
			Phone: g.faker.Phone(),
			Email: "demo_admin@example.com",
		},
		Schedule:  []string{},
		IsActive:  true,
		CreatedAt: now,
	}
}

// availability samples weekday/time-range pairs independently;
// duplicate slots are allowed.
func (g *Generator) availability() ([]string, error) {
	count := g.sampler.IntRange(g.tun.MinAvailabilitySlots, g.tun.MaxAvailabilitySlots)
	slots := make([]string, 0, count)
	for i := 0; i < count; i++ {
		day, err := sampler.Choice(g.sampler, templates.Weekdays)
		if err != nil {
			return nil, err
		}
		tr, err := sampler.Choice(g.sampler, templates.TimeRanges)
		if err != nil {
			return nil, err
		}
		slots = append(slots, day+" "+tr)
	}
	return slots, nil
}

// Patient produces one patient with a DOB uniform over the configured
// year range and the cached age derived from it.
func (g *Generator) Patient(passwordHash string, now time.Time) *model.Patient {
	patient := &model.Patient{
		ID:     primitive.NewObjectID(),
		Name:   g.faker.Name(),
		DOB:    g.sampler.DateBetweenYears(g.tun.DOBYearMin, g.tun.DOBYearMax),
		Gender: g.faker.Gender(),
		ContactInfo: model.ContactInfo{
			Phone:   g.faker.Phone(),
			Email:   strings.ToLower(g.faker.Email()),
			Address: g.faker.Address().Address,
		},
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	patient.RefreshAge(now)
	return patient
}

// InsurerSet assigns 1-4 distinct insurer names, weighted toward one.
// The set is fixed for the patient for the remainder of the run.
func (g *Generator) InsurerSet() []string {
	count := g.sampler.SkewedCount(1, g.tun.MaxInsurers, g.tun.SkewExponent)
	seen := make(map[string]struct{}, count)
	insurers := make([]string, 0, count)
	for len(insurers) < count {
		name := g.faker.Company()
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		insurers = append(insurers, name)
	}
	return insurers
}

// Prescription produces one prescription for the patient from a
// catalog medication: composed instructions, a past start date, a
// 1-12 month duration and a status derived from the end date.
func (g *Generator) Prescription(patient *model.Patient, physicianID primitive.ObjectID, med model.Medication, now time.Time) (*model.Prescription, error) {
	instructions, frequency, err := g.composer.PrescriptionWithFrequency(med.MG, med.Generic)
	if err != nil {
		return nil, err
	}

	startDate := g.sampler.PastDate(now, g.tun.PrescriptionPastYears)
	durationMonths := g.sampler.IntRange(1, 12)
	endDate := startDate.AddDate(0, durationMonths, 0)

	medType := med.Type
	if medType == "" {
		medType = "Oral"
	}

	return &model.Prescription{
		ID:             primitive.NewObjectID(),
		PatientID:      patient.ID,
		PhysicianID:    physicianID,
		MedicationName: med.Generic,
		MedicationCode: med.Generic,
		Dosage:         med.MG,
		Type:           medType,
		Instructions:   instructions,
		Frequency:      frequency,
		StartDate:      startDate,
		EndDate:        endDate,
		Status:         model.StatusFor(endDate, now),
		CreatedAt:      now,
	}, nil
}

// Appointment produces one appointment for the patient: a composed
// clinical note, a date biased toward the recent past but never before
// the patient's DOB, and one embedded diagnosis entry recorded at the
// appointment date.
func (g *Generator) Appointment(patient *model.Patient, physicianID primitive.ObjectID, med model.Medication, diagnosis templates.Diagnosis, now time.Time) (*model.Appointment, error) {
	notes, err := g.notes.ClinicalNote(patient.Age, patient.Gender, med.Name, diagnosis)
	if err != nil {
		return nil, err
	}

	date := g.sampler.RecencyBiasedDate(patient.DOB, now, g.tun.DateBias)

	return &model.Appointment{
		ID:          primitive.NewObjectID(),
		PatientID:   patient.ID,
		PhysicianID: physicianID,
		Date:        date,
		Notes:       notes,
		Summary:     diagnosis.Description + " follow-up",
		Diagnoses: []model.DiagnosisEntry{{
			Code:        diagnosis.Code,
			Description: diagnosis.Description,
			Chronic:     diagnosis.Chronic,
			RecordedAt:  date,
		}},
		CreatedAt: now,
	}, nil
}

// Billing produces the billing record for one appointment. Amount is
// a specialization-weighted base fee plus uniform variance; insurance
// is drawn only from the patient's fixed insurer set; CreatedAt is
// forced to the appointment date and UpdatedAt follows the
// status-dependent rule.
func (g *Generator) Billing(appt *model.Appointment, spec model.Specialization, insurers []string, now time.Time) (*model.Billing, error) {
	mult, ok := g.tun.SpecializationMultipliers[spec]
	if !ok {
		mult = 1.0
	}
	amount := int(float64(g.tun.BaseFee)*mult+0.5) + g.sampler.IntN(g.tun.VarianceCeiling)

	bill := &model.Billing{
		ID:            primitive.NewObjectID(),
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		Amount:        amount,
		CreatedAt:     appt.Date,
	}

	if len(insurers) > 0 && g.sampler.Chance(g.tun.InsuranceProbability) {
		provider, err := sampler.Choice(g.sampler, insurers)
		if err != nil {
			return nil, err
		}
		policy := g.faker.DigitN(8)
		coveragePercent := 0.50 + g.sampler.Float64()*0.45
		bill.InsuranceProvider = &provider
		bill.PolicyNumber = &policy
		bill.CoverageAmount = int(float64(amount)*coveragePercent + 0.5)
	}

	roll := g.sampler.Float64()
	switch {
	case roll < g.tun.PaidWeight:
		bill.Status = model.BillingStatusPaid
		paymentDate := g.sampler.RecentDate(now, g.tun.PaymentWindowDays)
		bill.PaymentDate = &paymentDate
	case roll < g.tun.PaidWeight+g.tun.PendingWeight:
		bill.Status = model.BillingStatusPending
	default:
		bill.Status = model.BillingStatusDue
	}

	bill.UpdatedAt = g.billingUpdatedAt(bill, now)
	return bill, nil
}

// billingUpdatedAt applies the status-dependent update-timestamp rule:
// Paid collapses to the creation date for same-day payments, Pending
// lands a skewed offset into the future within the pending horizon,
// Due stays at the creation date.
func (g *Generator) billingUpdatedAt(bill *model.Billing, now time.Time) time.Time {
	switch bill.Status {
	case model.BillingStatusPaid:
		if sameCalendarDay(*bill.PaymentDate, bill.CreatedAt) {
			return bill.CreatedAt
		}
		return *bill.PaymentDate
	case model.BillingStatusPending:
		days := g.sampler.BiasedFutureOffset(g.tun.PendingHorizonDays, g.tun.PendingOffsetExponent)
		return now.AddDate(0, 0, days)
	default:
		return bill.CreatedAt
	}
}

func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ScheduleEntry renders the booked-slot string appended to the owning
// physician's schedule.
func ScheduleEntry(date time.Time, patientName string) string {
	return fmt.Sprintf("Booked %s - %s", date.UTC().Format("2006-01-02 15:04"), patientName)
}
