package seed

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Pr0fessionalBum/MedicalMDB/internal/model"
	"github.com/Pr0fessionalBum/MedicalMDB/internal/repository"
	"github.com/Pr0fessionalBum/MedicalMDB/internal/seed/composer"
	"github.com/Pr0fessionalBum/MedicalMDB/internal/seed/sampler"
	apperrors "github.com/Pr0fessionalBum/MedicalMDB/pkg/errors"
	"github.com/Pr0fessionalBum/MedicalMDB/pkg/logger"
	"github.com/Pr0fessionalBum/MedicalMDB/pkg/security"
)

// In-memory repository mocks, one per contract.

type mockPhysicianRepo struct {
	created   []*model.Physician
	appended  map[primitive.ObjectID][]string
	wipes     int
	createErr error
}

var _ repository.PhysicianRepository = (*mockPhysicianRepo)(nil)

func (m *mockPhysicianRepo) Create(_ context.Context, p *model.Physician) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, p)
	return nil
}

func (m *mockPhysicianRepo) AppendSchedule(_ context.Context, id primitive.ObjectID, entries []string) error {
	if m.appended == nil {
		m.appended = make(map[primitive.ObjectID][]string)
	}
	m.appended[id] = append(m.appended[id], entries...)
	return nil
}

func (m *mockPhysicianRepo) DeleteAll(_ context.Context) error {
	m.wipes++
	m.created = nil
	m.appended = nil
	return nil
}

type mockPatientRepo struct {
	created   []*model.Patient
	wipes     int
	createErr error
}

var _ repository.PatientRepository = (*mockPatientRepo)(nil)

func (m *mockPatientRepo) Create(_ context.Context, p *model.Patient) error {
	if m.createErr != nil {
		return m.createErr
	}
	p.RefreshAge(time.Now())
	m.created = append(m.created, p)
	return nil
}

func (m *mockPatientRepo) DeleteAll(_ context.Context) error {
	m.wipes++
	m.created = nil
	return nil
}

type mockPrescriptionRepo struct {
	created []*model.Prescription
	wipes   int
}

var _ repository.PrescriptionRepository = (*mockPrescriptionRepo)(nil)

func (m *mockPrescriptionRepo) Create(_ context.Context, p *model.Prescription) error {
	m.created = append(m.created, p)
	return nil
}

func (m *mockPrescriptionRepo) DeleteAll(_ context.Context) error {
	m.wipes++
	m.created = nil
	return nil
}

type mockAppointmentRepo struct {
	created []*model.Appointment
	wipes   int
}

var _ repository.AppointmentRepository = (*mockAppointmentRepo)(nil)

func (m *mockAppointmentRepo) Create(_ context.Context, a *model.Appointment) error {
	m.created = append(m.created, a)
	return nil
}

func (m *mockAppointmentRepo) DeleteAll(_ context.Context) error {
	m.wipes++
	m.created = nil
	return nil
}

type mockBillingRepo struct {
	created []*model.Billing
	wipes   int
}

var _ repository.BillingRepository = (*mockBillingRepo)(nil)

func (m *mockBillingRepo) Create(_ context.Context, b *model.Billing) error {
	m.created = append(m.created, b)
	return nil
}

func (m *mockBillingRepo) DeleteAll(_ context.Context) error {
	m.wipes++
	m.created = nil
	return nil
}

type fixture struct {
	seeder        *Seeder
	physicians    *mockPhysicianRepo
	patients      *mockPatientRepo
	prescriptions *mockPrescriptionRepo
	appointments  *mockAppointmentRepo
	billings      *mockBillingRepo
}

func newFixture(seed uint64) *fixture {
	s := sampler.NewSeeded(seed)
	c := composer.New(s)
	gen := NewGenerator(s, c, c, gofakeit.New(seed), DefaultTunables())

	f := &fixture{
		physicians:    &mockPhysicianRepo{},
		patients:      &mockPatientRepo{},
		prescriptions: &mockPrescriptionRepo{},
		appointments:  &mockAppointmentRepo{},
		billings:      &mockBillingRepo{},
	}

	meds := []model.Medication{
		{Name: "Zestril", Generic: "Lisinopril", Type: "Tablet", MG: "10 mg", Company: "AstraZeneca"},
		{Name: "Glucophage", Generic: "Metformin", Type: "Tablet", MG: "500 mg", Company: "Merck"},
		{Name: "Ventolin", Generic: "Albuterol", Type: "Inhaler", MG: "90 mcg", Company: "GSK"},
	}

	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, TimeFormat: time.RFC3339, Output: io.Discard})
	f.seeder = NewSeeder(Repositories{
		Physicians:    f.physicians,
		Patients:      f.patients,
		Prescriptions: f.prescriptions,
		Appointments:  f.appointments,
		Billings:      f.billings,
	}, gen, s, security.NewBcryptHasher(bcrypt.MinCost), meds, log)
	return f
}

func TestRunMinimalVolume(t *testing.T) {
	f := newFixture(1)

	err := f.seeder.Run(context.Background(), Options{
		Patients:        1,
		Physicians:      1,
		MaxPrescription: 1,
		MaxAppointments: 1,
	})
	require.NoError(t, err)

	// 1 generated physician plus the fixed admin
	require.Len(t, f.physicians.created, 2)
	assert.Equal(t, "demo_admin", f.physicians.created[1].Username)

	require.Len(t, f.patients.created, 1)
	require.Len(t, f.prescriptions.created, 1)
	require.Len(t, f.appointments.created, 1)
	require.Len(t, f.billings.created, 1)

	patient := f.patients.created[0]
	appt := f.appointments.created[0]
	bill := f.billings.created[0]
	assert.Equal(t, appt.ID, bill.AppointmentID)
	assert.Equal(t, patient.ID, bill.PatientID)
	assert.Equal(t, patient.ID, appt.PatientID)
}

func TestRunWipesBeforeGenerating(t *testing.T) {
	f := newFixture(2)

	err := f.seeder.Run(context.Background(), Options{Patients: 1, Physicians: 1, MaxPrescription: 1, MaxAppointments: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, f.physicians.wipes)
	assert.Equal(t, 1, f.patients.wipes)
	assert.Equal(t, 1, f.prescriptions.wipes)
	assert.Equal(t, 1, f.appointments.wipes)
	assert.Equal(t, 1, f.billings.wipes)
}

func TestRunCrossEntityInvariants(t *testing.T) {
	f := newFixture(3)

	err := f.seeder.Run(context.Background(), Options{
		Patients:        5,
		Physicians:      3,
		MaxPrescription: 4,
		MaxAppointments: 6,
	})
	require.NoError(t, err)

	now := time.Now()

	patientsByID := map[primitive.ObjectID]*model.Patient{}
	for _, p := range f.patients.created {
		patientsByID[p.ID] = p
		assert.Equal(t, p.AgeAt(now), p.Age)
	}

	physicianIDs := map[primitive.ObjectID]bool{}
	for _, p := range f.physicians.created {
		physicianIDs[p.ID] = true
	}

	// no dangling references, no appointment before its patient's DOB
	apptsByID := map[primitive.ObjectID]*model.Appointment{}
	for _, appt := range f.appointments.created {
		apptsByID[appt.ID] = appt
		patient, ok := patientsByID[appt.PatientID]
		require.True(t, ok, "appointment references unknown patient")
		assert.True(t, physicianIDs[appt.PhysicianID], "appointment references unknown physician")
		assert.False(t, appt.Date.Before(patient.DOB))
	}

	for _, rx := range f.prescriptions.created {
		_, ok := patientsByID[rx.PatientID]
		assert.True(t, ok, "prescription references unknown patient")
		assert.True(t, physicianIDs[rx.PhysicianID])
		if rx.EndDate.Before(now) {
			assert.Equal(t, model.PrescriptionStatusCompleted, rx.Status)
		} else {
			assert.Equal(t, model.PrescriptionStatusActive, rx.Status)
		}
	}

	// one billing per appointment, CreatedAt mirroring the appointment
	require.Len(t, f.billings.created, len(f.appointments.created))
	for _, bill := range f.billings.created {
		appt, ok := apptsByID[bill.AppointmentID]
		require.True(t, ok, "billing references unknown appointment")
		assert.Equal(t, appt.PatientID, bill.PatientID)
		assert.Equal(t, appt.Date, bill.CreatedAt)
	}

	// schedule back-fill: one entry per billed appointment, on the
	// owning physician
	totalEntries := 0
	for _, entries := range f.physicians.appended {
		totalEntries += len(entries)
	}
	assert.Equal(t, len(f.appointments.created), totalEntries)
}

func TestRunInsurerConsistencyPerPatient(t *testing.T) {
	f := newFixture(4)

	err := f.seeder.Run(context.Background(), Options{
		Patients:        4,
		Physicians:      2,
		MaxPrescription: 1,
		MaxAppointments: 10,
	})
	require.NoError(t, err)

	// all insured bills of one patient must share that patient's
	// fixed insurer set (at most MaxInsurers distinct names)
	insurersSeen := map[primitive.ObjectID]map[string]struct{}{}
	for _, bill := range f.billings.created {
		if bill.InsuranceProvider == nil {
			continue
		}
		if insurersSeen[bill.PatientID] == nil {
			insurersSeen[bill.PatientID] = map[string]struct{}{}
		}
		insurersSeen[bill.PatientID][*bill.InsuranceProvider] = struct{}{}
	}
	for patientID, names := range insurersSeen {
		assert.LessOrEqual(t, len(names), 4, "patient %s billed against more insurers than assigned", patientID.Hex())
	}
}

func TestRunPrimaryPhysicianBias(t *testing.T) {
	f := newFixture(5)

	err := f.seeder.Run(context.Background(), Options{
		Patients:        1,
		Physicians:      10,
		MaxPrescription: 1,
		MaxAppointments: 30,
	})
	require.NoError(t, err)

	counts := map[primitive.ObjectID]int{}
	for _, appt := range f.appointments.created {
		counts[appt.PhysicianID]++
	}

	// the primary physician owns the plurality of appointments; with
	// bias 0.7 over 11 candidates anything else is vanishingly rare
	first := f.appointments.created[0].PhysicianID
	for id, n := range counts {
		if id != first {
			assert.LessOrEqual(t, n, counts[first])
		}
	}
}

func TestRunDefaultsZeroOptions(t *testing.T) {
	f := newFixture(7)

	// zero fields fall back to DefaultOptions instead of crashing or
	// silently generating nothing
	err := f.seeder.Run(context.Background(), Options{Patients: 1, Physicians: 1})
	require.NoError(t, err)

	require.Len(t, f.patients.created, 1)
	assert.NotEmpty(t, f.prescriptions.created)
	assert.NotEmpty(t, f.appointments.created)

	f = newFixture(8)
	err = f.seeder.Run(context.Background(), Options{})
	require.NoError(t, err)

	defaults := DefaultOptions()
	assert.Len(t, f.physicians.created, defaults.Physicians+1)
	assert.Len(t, f.patients.created, defaults.Patients)
}

func TestRunAbortsOnPersistenceFailure(t *testing.T) {
	f := newFixture(6)
	f.patients.createErr = assert.AnError

	err := f.seeder.Run(context.Background(), Options{Patients: 2, Physicians: 1, MaxPrescription: 1, MaxAppointments: 1})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrPersistence, appErr.Code)

	// physicians were written before the failure and stay in place
	assert.Len(t, f.physicians.created, 2)
	assert.Empty(t, f.prescriptions.created)
}

func TestRunReproducibleWithSameSeed(t *testing.T) {
	opts := Options{Patients: 2, Physicians: 2, MaxPrescription: 2, MaxAppointments: 3}

	a := newFixture(42)
	require.NoError(t, a.seeder.Run(context.Background(), opts))
	b := newFixture(42)
	require.NoError(t, b.seeder.Run(context.Background(), opts))

	require.Len(t, b.patients.created, len(a.patients.created))
	for i := range a.patients.created {
		assert.Equal(t, a.patients.created[i].Name, b.patients.created[i].Name)
		assert.Equal(t, a.patients.created[i].DOB, b.patients.created[i].DOB)
	}

	require.Len(t, b.appointments.created, len(a.appointments.created))
	for i := range a.appointments.created {
		assert.Equal(t, a.appointments.created[i].Date, b.appointments.created[i].Date)
		assert.Equal(t, a.appointments.created[i].Notes, b.appointments.created[i].Notes)
	}
}
