package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/medroadmap/penalty-board-api/internal/models"
	appErrors "github.com/medroadmap/penalty-board-api/pkg/errors"
	"github.com/medroadmap/penalty-board-api/pkg/export"
)

type exportSummaryReader interface {
	CumulativeByStudent(ctx context.Context) ([]models.StudentPoints, error)
}

// ExportService renders the cumulative summary as a downloadable file.
type ExportService struct {
	penalties exportSummaryReader
	csv       *export.CSVExporter
	excel     *export.ExcelExporter
	pdf       *export.PDFExporter
	logger    *zap.Logger
}

// NewExportService constructs the service.
func NewExportService(penalties exportSummaryReader, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		penalties: penalties,
		csv:       export.NewCSVExporter(),
		excel:     export.NewExcelExporter(),
		pdf:       export.NewPDFExporter(),
		logger:    logger,
	}
}

// ExportFile is a rendered download.
type ExportFile struct {
	Content     []byte
	ContentType string
	Filename    string
}

var summaryHeaders = []string{"id", "name", "grade", "points"}

// CumulativeSummary renders the current summary rows as csv, xlsx, or pdf.
func (s *ExportService) CumulativeSummary(ctx context.Context, format string) (*ExportFile, error) {
	rows, err := s.penalties.CumulativeByStudent(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute summary")
	}

	dataset := export.Dataset{Headers: summaryHeaders, Rows: make([]map[string]string, 0, len(rows))}
	for _, row := range rows {
		grade := ""
		if row.Grade != nil {
			grade = *row.Grade
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"id":     row.ID,
			"name":   row.Name,
			"grade":  grade,
			"points": strconv.Itoa(row.Points),
		})
	}

	switch format {
	case "csv":
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportFile{Content: content, ContentType: "text/csv", Filename: "cumulative_summary.csv"}, nil
	case "xlsx":
		content, err := s.excel.Render(dataset, "Summary")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render xlsx")
		}
		return &ExportFile{
			Content:     content,
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Filename:    "cumulative_summary.xlsx",
		}, nil
	case "pdf":
		content, err := s.pdf.Render(dataset, "Cumulative Penalty Summary")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportFile{Content: content, ContentType: "application/pdf", Filename: "cumulative_summary.pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv, xlsx, or pdf")
	}
}
