package composer

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pr0fessionalBum/MedicalMDB/internal/seed/sampler"
	"github.com/Pr0fessionalBum/MedicalMDB/internal/seed/templates"
)

func newComposer(seed uint64) *Composer {
	return New(sampler.NewSeeded(seed))
}

func TestClinicalNoteContainsHeadersAndMedication(t *testing.T) {
	c := newComposer(1)
	diagnosis := templates.Diagnosis{Code: "I10", Description: "Essential hypertension", Chronic: true}

	for i := 0; i < 200; i++ {
		note, err := c.ClinicalNote(45, "Female", "Lisinopril", diagnosis)
		require.NoError(t, err)

		assert.Contains(t, note, "ASSESSMENT:")
		assert.Contains(t, note, "PLAN:")
		assert.Contains(t, note, "Medication: Lisinopril.")
		assert.Contains(t, note, "45-year-old Female with Essential hypertension.")
	}
}

func TestClinicalNoteSectionOrder(t *testing.T) {
	c := newComposer(2)
	diagnosis := templates.Diagnoses[0]

	note, err := c.ClinicalNote(60, "male", "Metformin", diagnosis)
	require.NoError(t, err)

	assessmentIdx := strings.Index(note, "ASSESSMENT:")
	planIdx := strings.Index(note, "PLAN:")
	require.NotEqual(t, -1, assessmentIdx)
	require.NotEqual(t, -1, planIdx)
	assert.Less(t, assessmentIdx, planIdx)
}

func TestPrescriptionInstructionsIncludeDosage(t *testing.T) {
	c := newComposer(3)

	for i := 0; i < 100; i++ {
		instructions, err := c.PrescriptionInstructions("500 mg", "Metformin")
		require.NoError(t, err)

		assert.Contains(t, instructions, "500 mg")
		assert.Contains(t, instructions, "for Metformin")
		assert.True(t, strings.HasSuffix(instructions, "."), "instructions %q must end a sentence", instructions)
	}
}

func TestPrescriptionInstructionsWithoutMedicationName(t *testing.T) {
	c := newComposer(4)

	instructions, err := c.PrescriptionInstructions("10 mg", "")
	require.NoError(t, err)
	assert.NotContains(t, instructions, " for ")
}

func TestPrescriptionInstructionsCautionShare(t *testing.T) {
	c := newComposer(5)

	const draws = 2000
	cautioned := 0
	for i := 0; i < draws; i++ {
		instructions, err := c.PrescriptionInstructions("10 mg", "Lisinopril")
		require.NoError(t, err)
		if strings.Contains(instructions, "Avoid alcohol") {
			cautioned++
		}
	}
	share := float64(cautioned) / draws
	assert.InDelta(t, 0.15, share, 0.04)
}

func TestPrescriptionWithFrequencyCapitalized(t *testing.T) {
	c := newComposer(6)

	for i := 0; i < 100; i++ {
		_, frequency, err := c.PrescriptionWithFrequency("5 mg", "Amlodipine")
		require.NoError(t, err)
		require.NotEmpty(t, frequency)
		assert.True(t, unicode.IsUpper(rune(frequency[0])), "frequency %q must start capitalized", frequency)
	}
}

// The frequency embedded in the instruction text and the structured
// frequency field are independent draws; over many samples they must
// disagree at least sometimes.
func TestPrescriptionFrequenciesAreIndependent(t *testing.T) {
	c := newComposer(7)

	mismatches := 0
	for i := 0; i < 500; i++ {
		instructions, frequency, err := c.PrescriptionWithFrequency("5 mg", "")
		require.NoError(t, err)
		if !strings.Contains(strings.ToLower(instructions), strings.ToLower(frequency)) {
			mismatches++
		}
	}
	assert.Greater(t, mismatches, 0)
}

func TestShortAssessmentAndPlanFragment(t *testing.T) {
	c := newComposer(8)
	diagnosis := templates.Diagnoses[1]

	assessment, err := c.ShortAssessment(30, "female", diagnosis)
	require.NoError(t, err)
	assert.Contains(t, assessment, "30-year-old female with "+diagnosis.Description+".")

	plan, err := c.PlanFragment("Atorvastatin")
	require.NoError(t, err)
	assert.Contains(t, plan, "Medication: Atorvastatin.")
}
