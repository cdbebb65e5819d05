package model

// Medication is one record of the read-only medication dataset loaded
// before entity generation begins.
type Medication struct {
	Name    string `json:"Name"`
	Generic string `json:"Generic Name"`
	Type    string `json:"Type"`
	MG      string `json:"MG"`
	Company string `json:"Company Name"`
}
