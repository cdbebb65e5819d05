// Package templates holds the static fragment pools and the diagnosis
// catalog used to compose clinical notes and prescription text. Data
// only: pools are append-only and carry no behavior.
package templates

// Openings start a clinical note.
var Openings = []string{
	"Routine follow-up visit.",
	"Follow-up for chronic condition management.",
	"Established patient visit for medication management.",
	"Acute care visit for symptom review.",
	"Scheduled follow-up to assess treatment response.",
	"Annual wellness visit with medication review.",
	"Urgent visit for new-onset symptoms.",
	"Post-discharge follow-up visit.",
	"Telehealth follow-up converted to in-person evaluation.",
	"Visit to review recent laboratory results.",
	"Medication titration visit.",
	"Routine visit for preventive care and screening.",
	"Interval follow-up after dose adjustment.",
}

// ChiefComplaints describe the patient's reported state.
var ChiefComplaints = []string{
	"Patient reports no new complaints.",
	"Patient reports mild intermittent symptoms.",
	"Patient reports improvement since last visit.",
	"Patient reports persistent symptoms despite therapy.",
	"Patient reports occasional side effects.",
	"Patient reports symptoms worse at night.",
	"Patient reports good symptom control on current regimen.",
	"Patient reports fatigue over the past two weeks.",
	"Patient reports missed doses due to travel.",
	"Patient reports gradual return of symptoms.",
	"Patient denies chest pain, dyspnea, or palpitations.",
	"Patient reports new symptoms beginning last week.",
	"Patient reports adherence issues with evening doses.",
}

// Findings summarize the physical exam.
var Findings = []string{
	"Vital signs stable. Physical exam unremarkable.",
	"BP within target range. Heart and lungs clear.",
	"No peripheral edema. Cardiac exam normal.",
	"Respiratory exam notable for mild wheeze.",
	"Localized tenderness without erythema.",
	"Mild pretibial edema bilaterally.",
	"Skin warm and dry, no rashes noted.",
	"Abdomen soft, non-tender, normal bowel sounds.",
	"Neurological exam grossly intact.",
	"BP elevated above goal on repeat measurement.",
	"Weight stable since last visit. Exam otherwise benign.",
	"Decreased breath sounds at the right base.",
	"Range of motion limited by pain, no swelling.",
}

// MedicationEffects describe tolerance of current therapy.
var MedicationEffects = []string{
	"Medication well tolerated.",
	"Patient reports occasional GI upset.",
	"No adverse effects reported.",
	"Patient notes mild dizziness initially, now resolved.",
	"Therapy adherence reported as good.",
	"Mild drowsiness reported with morning dose.",
	"No hypoglycemic episodes reported.",
	"Patient reports dry cough, possibly medication related.",
	"Tolerating dose escalation without difficulty.",
	"Reports mild headache during first week of therapy.",
	"Denies any new side effects since dose change.",
	"Adherence confirmed by refill history.",
}

// PlanActions open the plan section.
var PlanActions = []string{
	"Continue current medication.",
	"Increase dose as tolerated.",
	"Add adjunctive therapy for symptom control.",
	"Obtain labs to monitor therapy.",
	"Provide a 90-day refill and schedule follow-up.",
	"Taper dose over the next four weeks.",
	"Switch to extended-release formulation.",
	"Hold medication pending laboratory results.",
	"Reinforce lifestyle modification counseling.",
	"Order imaging to evaluate persistent symptoms.",
	"Continue therapy at reduced dose.",
	"Start low-dose therapy and reassess in clinic.",
}

// FollowUps close the plan section.
var FollowUps = []string{
	"Return in 3 months for routine follow-up.",
	"Return PRN for worsening symptoms.",
	"Recheck labs in 6-8 weeks.",
	"Follow-up by phone in 2 weeks to review results.",
	"Specialist referral if no improvement.",
	"Return in 1 month for blood pressure check.",
	"Schedule annual wellness visit.",
	"Return in 2 weeks for wound check.",
	"Repeat imaging in 6 months.",
	"Follow-up after completion of antibiotic course.",
	"Return sooner if symptoms escalate.",
	"Arrange home monitoring and report readings weekly.",
}

// RoutePhrases are prescription-instruction openers; the dosage is
// interpolated by the composer, never by string replacement.
var RoutePhrases = []string{
	"Take %s by mouth",
	"Apply %s topically",
	"Use %s inhalation",
	"Administer %s subcutaneously",
	"Take %s chewable",
	"Take %s with food",
	"Take %s on an empty stomach",
	"Instill %s in affected eye",
	"Apply %s to affected area",
	"Take %s sublingually",
	"Take %s with a full glass of water",
	"Dissolve %s in water before taking",
}

// FrequencyPhrases complete a prescription instruction and feed the
// structured frequency field.
var FrequencyPhrases = []string{
	"once daily",
	"twice daily",
	"three times daily",
	"at bedtime",
	"every 8 hours",
	"as needed",
	"every morning",
	"every 12 hours",
	"once weekly",
	"every other day",
	"with each meal",
	"every 4-6 hours as needed",
}

// CautionClause is appended to roughly 15% of prescription instructions.
const CautionClause = ". Avoid alcohol and monitor for side effects."

// Weekdays and TimeRanges feed physician availability generation.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

var TimeRanges = []string{
	"08:00-12:00",
	"09:00-13:00",
	"12:30-16:30",
	"13:00-17:00",
}
