package templates

// Diagnosis is one entry of the fixed diagnosis catalog.
type Diagnosis struct {
	Code        string
	Description string
	Chronic     bool
}

// Diagnoses covers common chronic and acute conditions (ICD-10 codes).
var Diagnoses = []Diagnosis{
	{Code: "I10", Description: "Essential hypertension", Chronic: true},
	{Code: "E11", Description: "Type 2 diabetes mellitus", Chronic: true},
	{Code: "I50", Description: "Heart failure", Chronic: true},
	{Code: "J45", Description: "Asthma", Chronic: true},
	{Code: "E78", Description: "Hyperlipidemia", Chronic: true},
	{Code: "M79.3", Description: "Myalgia", Chronic: false},
	{Code: "J06", Description: "Acute upper respiratory infection", Chronic: false},
	{Code: "M54.5", Description: "Low back pain", Chronic: false},
	{Code: "E04", Description: "Thyroid disorder", Chronic: true},
	{Code: "F41", Description: "Anxiety disorder", Chronic: true},
	{Code: "M25.5", Description: "Joint pain (arthralgia)", Chronic: true},
	{Code: "K21", Description: "Gastroesophageal reflux disease (GERD)", Chronic: true},
	{Code: "F32", Description: "Major depressive disorder", Chronic: true},
	{Code: "I25", Description: "Chronic ischemic heart disease", Chronic: true},
	{Code: "E66", Description: "Obesity", Chronic: true},
	{Code: "J44", Description: "Chronic obstructive pulmonary disease (COPD)", Chronic: true},
	{Code: "M17", Description: "Osteoarthritis of knee", Chronic: true},
	{Code: "E10", Description: "Type 1 diabetes mellitus", Chronic: true},
	{Code: "G89", Description: "Pain, unspecified", Chronic: false},
	{Code: "R06", Description: "Abnormalities of breathing", Chronic: false},
	{Code: "N18", Description: "Chronic kidney disease", Chronic: true},
	{Code: "L89", Description: "Pressure ulcer", Chronic: false},
	{Code: "B34", Description: "Viral infection, unspecified", Chronic: false},
	{Code: "R51", Description: "Headache", Chronic: false},
	{Code: "J30", Description: "Allergic rhinitis", Chronic: true},
	{Code: "E05", Description: "Hyperthyroidism", Chronic: true},
	{Code: "I20", Description: "Angina pectoris", Chronic: true},
	{Code: "M19", Description: "Osteoarthritis, unspecified", Chronic: true},
	{Code: "F10", Description: "Alcohol use disorder", Chronic: true},
	{Code: "G47", Description: "Sleep disorder", Chronic: true},
	{Code: "K80", Description: "Cholelithiasis (gallstones)", Chronic: true},
	{Code: "R50", Description: "Fever", Chronic: false},
	{Code: "J12", Description: "Viral pneumonia", Chronic: false},
	{Code: "E89", Description: "Postprocedural endocrine disorder", Chronic: true},
	{Code: "I63", Description: "Cerebral infarction (stroke)", Chronic: true},
	{Code: "N39.0", Description: "Urinary tract infection", Chronic: false},
	{Code: "H66", Description: "Otitis media", Chronic: false},
	{Code: "L30", Description: "Dermatitis, unspecified", Chronic: false},
	{Code: "K29", Description: "Gastritis", Chronic: false},
	{Code: "M10", Description: "Gout", Chronic: true},
	{Code: "G43", Description: "Migraine", Chronic: true},
	{Code: "I48", Description: "Atrial fibrillation", Chronic: true},
	{Code: "D64.9", Description: "Anemia, unspecified", Chronic: false},
	{Code: "E03", Description: "Hypothyroidism", Chronic: true},
	{Code: "J02", Description: "Acute pharyngitis", Chronic: false},
	{Code: "L03", Description: "Cellulitis", Chronic: false},
	{Code: "R10", Description: "Abdominal pain", Chronic: false},
	{Code: "F43", Description: "Adjustment disorder", Chronic: false},
	{Code: "M81", Description: "Osteoporosis", Chronic: true},
	{Code: "H40", Description: "Glaucoma", Chronic: true},
}
