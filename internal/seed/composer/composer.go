// Package composer assembles templated natural-language text from the
// fragment pools: prescription instructions and two-section clinical
// notes.
package composer

import (
	"fmt"
	"strings"

	"github.com/Pr0fessionalBum/MedicalMDB/internal/seed/sampler"
	"github.com/Pr0fessionalBum/MedicalMDB/internal/seed/templates"
)

// cautionProbability is the share of prescription instructions that
// carry the caution clause.
const cautionProbability = 0.15

// NoteSource produces the free-text clinical note for an appointment.
// The template composer is the default implementation; an external
// text-generation service can be plugged in behind the same interface.
type NoteSource interface {
	ClinicalNote(age int, gender, medicationName string, diagnosis templates.Diagnosis) (string, error)
}

// Composer builds prescription and clinical-note text from the
// template pools using the injected sampler.
type Composer struct {
	sampler *sampler.Sampler
}

var _ NoteSource = (*Composer)(nil)

func New(s *sampler.Sampler) *Composer {
	return &Composer{sampler: s}
}

// PrescriptionInstructions builds a single-sentence instruction: a
// route phrase with the dosage interpolated, a frequency phrase, an
// occasional caution clause, and a "for <medication>" clause when a
// medication name is supplied.
func (c *Composer) PrescriptionInstructions(dosage, medicationName string) (string, error) {
	route, err := sampler.Choice(c.sampler, templates.RoutePhrases)
	if err != nil {
		return "", err
	}
	freq, err := sampler.Choice(c.sampler, templates.FrequencyPhrases)
	if err != nil {
		return "", err
	}

	base := fmt.Sprintf(route, dosage)
	ending := "."
	if c.sampler.Chance(cautionProbability) {
		ending = templates.CautionClause
	}
	medText := ""
	if medicationName != "" {
		medText = " for " + medicationName
	}
	return fmt.Sprintf("%s %s%s%s", base, freq, medText, ending), nil
}

// PrescriptionWithFrequency returns the instruction text plus a
// capitalized frequency for the structured field. The two frequencies
// are independent draws and may disagree; that mirrors the data the
// demo application has always shipped with.
func (c *Composer) PrescriptionWithFrequency(dosage, medicationName string) (instructions, frequency string, err error) {
	freq, err := sampler.Choice(c.sampler, templates.FrequencyPhrases)
	if err != nil {
		return "", "", err
	}
	instructions, err = c.PrescriptionInstructions(dosage, medicationName)
	if err != nil {
		return "", "", err
	}
	return instructions, capitalize(freq), nil
}

// ClinicalNote composes an ASSESSMENT and a PLAN section from one
// independent draw per fragment pool.
func (c *Composer) ClinicalNote(age int, gender, medicationName string, diagnosis templates.Diagnosis) (string, error) {
	opening, err := sampler.Choice(c.sampler, templates.Openings)
	if err != nil {
		return "", err
	}
	cc, err := sampler.Choice(c.sampler, templates.ChiefComplaints)
	if err != nil {
		return "", err
	}
	finding, err := sampler.Choice(c.sampler, templates.Findings)
	if err != nil {
		return "", err
	}
	effect, err := sampler.Choice(c.sampler, templates.MedicationEffects)
	if err != nil {
		return "", err
	}
	action, err := sampler.Choice(c.sampler, templates.PlanActions)
	if err != nil {
		return "", err
	}
	followUp, err := sampler.Choice(c.sampler, templates.FollowUps)
	if err != nil {
		return "", err
	}

	assessment := fmt.Sprintf("%s %d-year-old %s with %s. %s %s %s",
		opening, age, gender, diagnosis.Description, cc, finding, effect)
	plan := fmt.Sprintf("%s %s Medication: %s.", action, followUp, medicationName)
	return fmt.Sprintf("ASSESSMENT:\n%s\n\nPLAN:\n%s", assessment, plan), nil
}

// ShortAssessment is a compact one-paragraph variant used where the
// full two-section note would be noise.
func (c *Composer) ShortAssessment(age int, gender string, diagnosis templates.Diagnosis) (string, error) {
	cc, err := sampler.Choice(c.sampler, templates.ChiefComplaints)
	if err != nil {
		return "", err
	}
	finding, err := sampler.Choice(c.sampler, templates.Findings)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d-year-old %s with %s. %s %s", age, gender, diagnosis.Description, cc, finding), nil
}

// PlanFragment composes only the plan portion of a note.
func (c *Composer) PlanFragment(medicationName string) (string, error) {
	action, err := sampler.Choice(c.sampler, templates.PlanActions)
	if err != nil {
		return "", err
	}
	followUp, err := sampler.Choice(c.sampler, templates.FollowUps)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s Medication: %s.", action, followUp, medicationName), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
