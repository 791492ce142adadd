package service

import (
	"context"
	"fmt"
	"time"

	"github.com/imobops/backoffice/internal/model"
)

type ExportResult struct {
	FileName string
	Content  []byte
}

// ExportOverview renders the overview report as an Excel workbook.
func (s *DashboardService) ExportOverview(ctx context.Context, asOf time.Time) (*ExportResult, error) {
	report, asOf, err := s.overviewFor(ctx, asOf)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(*report)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: exportFileName(asOf, "xlsx"),
		Content:  content,
	}, nil
}

// ExportOverviewPDF renders the overview report as a PDF document.
func (s *DashboardService) ExportOverviewPDF(ctx context.Context, asOf time.Time) (*ExportResult, error) {
	report, asOf, err := s.overviewFor(ctx, asOf)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(*report)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: exportFileName(asOf, "pdf"),
		Content:  content,
	}, nil
}

func (s *DashboardService) overviewFor(ctx context.Context, asOf time.Time) (*model.OverviewReport, time.Time, error) {
	asOf = resolveAsOf(asOf)
	report, err := s.BuildOverview(ctx, asOf)
	if err != nil {
		return nil, asOf, err
	}
	return report, asOf, nil
}

func exportFileName(asOf time.Time, extension string) string {
	return fmt.Sprintf("painel-%s.%s", asOf.Format("20060102"), extension)
}
