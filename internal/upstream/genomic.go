package upstream

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// GenomicClient consumes the genomic microservice's resource endpoints.
// Error bodies from this backend carry a "detail" field.
type GenomicClient struct {
	c *client
}

func NewGenomicClient(baseURL string, timeout time.Duration, log zerolog.Logger) *GenomicClient {
	return &GenomicClient{
		c: newClient("genomic", baseURL, timeout, detailExtractor{}, log),
	}
}

// --- Genes ---

func (g *GenomicClient) CreateGene(ctx context.Context, in CreateGene) (*Gene, error) {
	var out Gene
	if err := g.c.do(ctx, http.MethodPost, "/api/genes/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *GenomicClient) ListGenes(ctx context.Context) ([]Gene, error) {
	var out []Gene
	if err := g.c.do(ctx, http.MethodGet, "/api/genes/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *GenomicClient) GetGene(ctx context.Context, id int64) (*Gene, error) {
	var out Gene
	if err := g.c.do(ctx, http.MethodGet, fmt.Sprintf("/api/genes/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *GenomicClient) UpdateGene(ctx context.Context, id int64, in UpdateGene) (*Gene, error) {
	var out Gene
	if err := g.c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/genes/%d/", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *GenomicClient) DeleteGene(ctx context.Context, id int64) error {
	return g.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/genes/%d/", id), nil, nil)
}

// --- Genetic variants ---

func (g *GenomicClient) CreateVariant(ctx context.Context, in CreateGeneticVariant) (*GeneticVariant, error) {
	var out GeneticVariant
	if err := g.c.do(ctx, http.MethodPost, "/api/variants/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *GenomicClient) ListVariants(ctx context.Context) ([]GeneticVariant, error) {
	var out []GeneticVariant
	if err := g.c.do(ctx, http.MethodGet, "/api/variants/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *GenomicClient) GetVariant(ctx context.Context, id string) (*GeneticVariant, error) {
	var out GeneticVariant
	if err := g.c.do(ctx, http.MethodGet, "/api/variants/"+id+"/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *GenomicClient) UpdateVariant(ctx context.Context, id string, in UpdateGeneticVariant) (*GeneticVariant, error) {
	var out GeneticVariant
	if err := g.c.do(ctx, http.MethodPatch, "/api/variants/"+id+"/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *GenomicClient) DeleteVariant(ctx context.Context, id string) error {
	return g.c.do(ctx, http.MethodDelete, "/api/variants/"+id+"/", nil, nil)
}

// --- Patient variant reports ---

func (g *GenomicClient) CreateReport(ctx context.Context, in CreatePatientVariantReport) (*PatientVariantReport, error) {
	var out PatientVariantReport
	if err := g.c.do(ctx, http.MethodPost, "/api/reports/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *GenomicClient) ListReports(ctx context.Context) ([]PatientVariantReport, error) {
	var out []PatientVariantReport
	if err := g.c.do(ctx, http.MethodGet, "/api/reports/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *GenomicClient) GetReport(ctx context.Context, id string) (*PatientVariantReport, error) {
	var out PatientVariantReport
	if err := g.c.do(ctx, http.MethodGet, "/api/reports/"+id+"/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *GenomicClient) UpdateReport(ctx context.Context, id string, in UpdatePatientVariantReport) (*PatientVariantReport, error) {
	var out PatientVariantReport
	if err := g.c.do(ctx, http.MethodPatch, "/api/reports/"+id+"/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *GenomicClient) DeleteReport(ctx context.Context, id string) error {
	return g.c.do(ctx, http.MethodDelete, "/api/reports/"+id+"/", nil, nil)
}
