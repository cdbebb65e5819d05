package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Pr0fessionalBum/MedicalMDB/internal/model"
	"github.com/Pr0fessionalBum/MedicalMDB/pkg/errors"
)

// LoadMedications reads the medication dataset: a JSON object keyed
// arbitrarily whose values carry Name / Generic Name / Type / MG /
// Company Name. The generator treats the result as a read-only lookup
// table; a missing, malformed or empty file is fatal to the run.
func LoadMedications(path string) ([]model.Medication, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.DatasetLoad(path, err)
	}

	var keyed map[string]model.Medication
	if err := json.Unmarshal(raw, &keyed); err != nil {
		return nil, errors.DatasetLoad(path, err)
	}
	if len(keyed) == 0 {
		return nil, errors.DatasetLoad(path, fmt.Errorf("dataset contains no records"))
	}

	meds := make([]model.Medication, 0, len(keyed))
	for _, med := range keyed {
		meds = append(meds, med)
	}
	return meds, nil
}
