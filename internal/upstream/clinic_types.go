package upstream

// Wire types for the clinic backend. Field naming is the backend's own
// (camelCase) and is preserved at the gateway boundary, not normalized.

type Patient struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	BirthDate string `json:"birthDate"`
	Gender    string `json:"gender"`
	Status    string `json:"status"`
}

type CreatePatient struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	BirthDate string `json:"birthDate" validate:"required"`
	Gender    string `json:"gender" validate:"required"`
	Status    string `json:"status"`
}

type UpdatePatient struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
	Gender    *string `json:"gender,omitempty"`
}

type TumorType struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	SystemAffected string `json:"systemAffected"`
	Description    string `json:"description"`
}

type CreateTumorType struct {
	Name           string `json:"name" validate:"required"`
	SystemAffected string `json:"systemAffected" validate:"required"`
	Description    string `json:"description"`
}

type UpdateTumorType struct {
	Name           *string `json:"name,omitempty"`
	SystemAffected *string `json:"systemAffected,omitempty"`
	Description    *string `json:"description,omitempty"`
}

type ClinicalRecord struct {
	ID                int        `json:"id"`
	Diagnosis         string     `json:"diagnosis"`
	TreatmentProtocol string     `json:"treatmentProtocol"`
	DiagnosisDate     string     `json:"diagnosisDate"`
	EvolutionNotes    string     `json:"evolutionNotes"`
	Patient           *Patient   `json:"patient,omitempty"`
	TumorType         *TumorType `json:"tumorType,omitempty"`
}

type CreateClinicalRecord struct {
	PatientID         int    `json:"patientId" validate:"required"`
	TumorTypeID       int    `json:"tumorTypeId" validate:"required"`
	DiagnosisDate     string `json:"diagnosisDate" validate:"required"`
	Diagnosis         string `json:"diagnosis" validate:"required"`
	Stage             string `json:"stage"`
	TreatmentProtocol string `json:"treatmentProtocol"`
	EvolutionNotes    string `json:"evolutionNotes"`
}

type UpdateClinicalRecord struct {
	PatientID         *int    `json:"patientId,omitempty"`
	TumorTypeID       *int    `json:"tumorTypeId,omitempty"`
	DiagnosisDate     *string `json:"diagnosisDate,omitempty"`
	Diagnosis         *string `json:"diagnosis,omitempty"`
	Stage             *string `json:"stage,omitempty"`
	TreatmentProtocol *string `json:"treatmentProtocol,omitempty"`
	EvolutionNotes    *string `json:"evolutionNotes,omitempty"`
}

// DeleteResponse is what the clinic backend returns on delete operations.
type DeleteResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}
