package service

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/rihla/customer-queries/internal/errors"
	"github.com/rihla/customer-queries/internal/listing"
	"github.com/rihla/customer-queries/internal/model"
)

// ExportFilename is the fixed name the workbook is downloaded under
const ExportFilename = "CustomerData.xlsx"

const exportSheetName = "Customer Data"

// exportColumns is the fixed column order of the workbook
var exportColumns = []string{
	"Name",
	"Phone Number",
	"Email",
	"Query Status",
	"Quotation Send",
	"Query",
	"City",
	"Remarks",
	"Created By",
	"Created At",
}

// ErrNothingToExport is raised when the requested view holds no records
var ErrNothingToExport = errors.NewBusinessErr("export", "no customer data to export")

// ExportService turns the currently filtered and sorted view into an
// xlsx workbook. It exports the view, not the full collection - what the
// user sees is what lands in the file
type ExportService interface {
	Workbook(ctx context.Context, params listing.Params) ([]byte, error)
}

type exportService struct {
	querySvc CustomerQueryService
}

// NewExportService builds ExportService
func NewExportService(querySvc CustomerQueryService) ExportService {
	return &exportService{querySvc: querySvc}
}

// Workbook produces the workbook bytes: one header row plus one data row
// per record in the view. An empty view produces no file at all
func (s *exportService) Workbook(ctx context.Context, params listing.Params) ([]byte, error) {
	queries, err := s.querySvc.List(ctx, params)
	if err != nil {
		return nil, err
	}

	if len(queries) == 0 {
		return nil, ErrNothingToExport
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), exportSheetName)

	header := make([]any, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = col
	}

	if err := f.SetSheetRow(exportSheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i := range queries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		row := exportRow(&queries[i])
		if err := f.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportRow(q *model.CustomerQuery) []any {
	return []any{
		q.Name,
		q.Number,
		q.Email,
		string(q.QueryStatus),
		string(q.QuotationSend),
		q.Query,
		q.City,
		q.Remarks,
		q.CreatedBy,
		q.CreatedAtDisplay(),
	}
}
