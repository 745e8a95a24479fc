package spapiclient

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/pkg/errors"

	"github.com/ArshadAliDS/Amazon/internal/config"
	"github.com/ArshadAliDS/Amazon/internal/domain"
	spapidomain "github.com/ArshadAliDS/Amazon/infrastructure/integrator/spapi/domain"
)

const reportsPath = "/reports/2021-06-30/reports"

// CreateReport submits a report job and returns its id. A response
// without a reportId is a job failure, not a transport one.
func (c *SPAPIClient) CreateReport(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, spec spapidomain.CreateReportSpec) (string, error) {
	body, err := json.Marshal(spec)
	if err != nil {
		return "", errors.Wrap(err, "encoding report spec")
	}

	respBody, err := c.doPost(ctx, creds, region, reportsPath, body)
	if err != nil {
		return "", err
	}

	var created spapidomain.CreateReportResponse
	if err := json.Unmarshal(respBody, &created); err != nil {
		return "", errors.Wrap(err, "decoding create report response")
	}
	if created.ReportID == "" {
		return "", domain.NewFailure(domain.FailureJob, "report submission returned no report id").
			WithDiagnostic(string(respBody))
	}

	return created.ReportID, nil
}

// GetReport polls one report job. The raw body is returned alongside the
// decoded state so terminal failures can surface the full diagnostic
// payload.
func (c *SPAPIClient) GetReport(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, reportID string) (*spapidomain.Report, string, error) {
	respBody, err := c.doGet(ctx, creds, region, reportsPath+"/"+reportID, nil)
	if err != nil {
		return nil, "", err
	}

	var report spapidomain.Report
	if err := json.Unmarshal(respBody, &report); err != nil {
		return nil, "", errors.Wrap(err, "decoding report status")
	}

	return &report, string(respBody), nil
}

// GetReportDocument resolves a document id to its download URL and
// compression indicator.
func (c *SPAPIClient) GetReportDocument(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, documentID string) (*spapidomain.ReportDocument, error) {
	respBody, err := c.doGet(ctx, creds, region, "/reports/2021-06-30/documents/"+url.PathEscape(documentID), nil)
	if err != nil {
		return nil, err
	}

	var doc spapidomain.ReportDocument
	if err := json.Unmarshal(respBody, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding report document")
	}
	if doc.URL == "" {
		return nil, domain.NewFailure(domain.FailureTransport, "report document %s carries no download URL", documentID).
			WithDiagnostic(string(respBody))
	}

	return &doc, nil
}
