package upstream

// Wire types for the genomic backend. Field naming is the backend's own
// (snake_case) and is preserved at the gateway boundary, not normalized.

type Gene struct {
	ID              int64  `json:"id"`
	Symbol          string `json:"symbol"`
	FullName        string `json:"full_name"`
	FunctionSummary string `json:"function_summary"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type CreateGene struct {
	Symbol          string `json:"symbol" validate:"required"`
	FullName        string `json:"full_name" validate:"required"`
	FunctionSummary string `json:"function_summary"`
}

type UpdateGene struct {
	Symbol          *string `json:"symbol,omitempty"`
	FullName        *string `json:"full_name,omitempty"`
	FunctionSummary *string `json:"function_summary,omitempty"`
}

type GeneticVariant struct {
	ID            string `json:"id"`
	Gene          int64  `json:"gene"`
	GeneDetails   *Gene  `json:"gene_details,omitempty"`
	Chromosome    string `json:"chromosome"`
	Position      int64  `json:"position"`
	ReferenceBase string `json:"reference_base"`
	AlternateBase string `json:"alternate_base"`
	Impact        string `json:"impact"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type CreateGeneticVariant struct {
	Gene          int64  `json:"gene" validate:"required"`
	Chromosome    string `json:"chromosome" validate:"required"`
	Position      int64  `json:"position" validate:"required"`
	ReferenceBase string `json:"reference_base" validate:"required"`
	AlternateBase string `json:"alternate_base" validate:"required"`
	Impact        string `json:"impact"`
}

type UpdateGeneticVariant struct {
	Gene          *int64  `json:"gene,omitempty"`
	Chromosome    *string `json:"chromosome,omitempty"`
	Position      *int64  `json:"position,omitempty"`
	ReferenceBase *string `json:"reference_base,omitempty"`
	AlternateBase *string `json:"alternate_base,omitempty"`
	Impact        *string `json:"impact,omitempty"`
}

// PatientData is the patient snapshot the genomic backend embeds in report
// responses, fetched from the clinic service on its side.
type PatientData struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender"`
	Status    string `json:"status"`
}

type PatientVariantReport struct {
	ID             string          `json:"id"`
	PatientID      string          `json:"patient_id"`
	PatientData    *PatientData    `json:"patient_data,omitempty"`
	Variant        string          `json:"variant"`
	VariantDetails *GeneticVariant `json:"variant_details,omitempty"`
	DetectionDate  string          `json:"detection_date"`
	// Decimal fields come back from the backend as JSON strings.
	AlleleFrequency string `json:"allele_frequency"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type CreatePatientVariantReport struct {
	PatientID       string  `json:"patient_id" validate:"required"`
	Variant         string  `json:"variant" validate:"required,uuid"`
	DetectionDate   string  `json:"detection_date" validate:"required"`
	AlleleFrequency float64 `json:"allele_frequency" validate:"required"`
}

type UpdatePatientVariantReport struct {
	PatientID       *string  `json:"patient_id,omitempty"`
	Variant         *string  `json:"variant,omitempty"`
	DetectionDate   *string  `json:"detection_date,omitempty"`
	AlleleFrequency *float64 `json:"allele_frequency,omitempty"`
}
