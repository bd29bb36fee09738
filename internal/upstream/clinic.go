package upstream

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ClinicClient consumes the clinic microservice's resource endpoints.
// Error bodies from this backend carry a "message" field.
type ClinicClient struct {
	c *client
}

func NewClinicClient(baseURL string, timeout time.Duration, log zerolog.Logger) *ClinicClient {
	return &ClinicClient{
		c: newClient("clinic", baseURL, timeout, messageExtractor{}, log),
	}
}

// --- Patients ---

func (cl *ClinicClient) CreatePatient(ctx context.Context, in CreatePatient) (*Patient, error) {
	var out Patient
	if err := cl.c.do(ctx, http.MethodPost, "/api/patients", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cl *ClinicClient) ListPatients(ctx context.Context) ([]Patient, error) {
	var out []Patient
	if err := cl.c.do(ctx, http.MethodGet, "/api/patients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cl *ClinicClient) GetPatient(ctx context.Context, id int) (*Patient, error) {
	var out Patient
	if err := cl.c.do(ctx, http.MethodGet, fmt.Sprintf("/api/patients/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cl *ClinicClient) UpdatePatient(ctx context.Context, id int, in UpdatePatient) (*Patient, error) {
	var out Patient
	if err := cl.c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/patients/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeactivatePatient flips the patient's status; the clinic backend has no
// hard delete for patients.
func (cl *ClinicClient) DeactivatePatient(ctx context.Context, id int) (*Patient, error) {
	var out Patient
	if err := cl.c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/patients/%d/deactivate", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Tumor types ---

func (cl *ClinicClient) CreateTumorType(ctx context.Context, in CreateTumorType) (*TumorType, error) {
	var out TumorType
	if err := cl.c.do(ctx, http.MethodPost, "/api/tumor-types", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cl *ClinicClient) ListTumorTypes(ctx context.Context) ([]TumorType, error) {
	var out []TumorType
	if err := cl.c.do(ctx, http.MethodGet, "/api/tumor-types", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cl *ClinicClient) GetTumorType(ctx context.Context, id int) (*TumorType, error) {
	var out TumorType
	if err := cl.c.do(ctx, http.MethodGet, fmt.Sprintf("/api/tumor-types/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cl *ClinicClient) UpdateTumorType(ctx context.Context, id int, in UpdateTumorType) (*TumorType, error) {
	var out TumorType
	if err := cl.c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/tumor-types/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cl *ClinicClient) DeleteTumorType(ctx context.Context, id int) (*DeleteResponse, error) {
	var out DeleteResponse
	if err := cl.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tumor-types/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Clinical records ---

func (cl *ClinicClient) CreateClinicalRecord(ctx context.Context, in CreateClinicalRecord) (*ClinicalRecord, error) {
	var out ClinicalRecord
	if err := cl.c.do(ctx, http.MethodPost, "/api/clinical-records", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cl *ClinicClient) ListClinicalRecords(ctx context.Context) ([]ClinicalRecord, error) {
	var out []ClinicalRecord
	if err := cl.c.do(ctx, http.MethodGet, "/api/clinical-records", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cl *ClinicClient) GetClinicalRecord(ctx context.Context, id int) (*ClinicalRecord, error) {
	var out ClinicalRecord
	if err := cl.c.do(ctx, http.MethodGet, fmt.Sprintf("/api/clinical-records/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cl *ClinicClient) UpdateClinicalRecord(ctx context.Context, id int, in UpdateClinicalRecord) (*ClinicalRecord, error) {
	var out ClinicalRecord
	if err := cl.c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/clinical-records/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cl *ClinicClient) DeleteClinicalRecord(ctx context.Context, id int) (*DeleteResponse, error) {
	var out DeleteResponse
	if err := cl.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/clinical-records/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
