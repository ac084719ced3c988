package services

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/naveenakasaragadda1/Timesheet-Server/internal/core/domain"
	portssvc "github.com/naveenakasaragadda1/Timesheet-Server/internal/core/ports/services"
)

// csvHeader is the fixed column set of every CSV export.
var csvHeader = []string{
	"employeeName",
	"employeeEmail",
	"employeeId",
	"department",
	"date",
	"plannedWork",
	"actualWork",
	"remarks",
	"status",
	"adminComments",
}

type exportService struct{}

// NewExportService creates the result-set renderer. It holds no state;
// both renderers are pure functions of their input rows.
func NewExportService() portssvc.TimesheetExporter {
	return &exportService{}
}

var _ portssvc.TimesheetExporter = (*exportService)(nil)

func exportRowValues(row domain.TimesheetExportRow) []string {
	return []string{
		row.EmployeeName,
		row.EmployeeEmail,
		row.EmployeeNumber,
		row.EmployeeDepartment,
		row.WorkDate.Format("2006-01-02"),
		row.PlannedWork,
		row.ActualWork,
		row.Remarks,
		string(row.Status),
		row.AdminComments,
	}
}

func (s *exportService) WriteCSV(w io.Writer, rows []domain.TimesheetExportRow) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(exportRowValues(row)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// pdfLabels pairs each export column with its printed label, in the same
// order as the CSV columns.
var pdfLabels = []string{
	"Employee Name",
	"Employee Email",
	"Employee ID",
	"Department",
	"Date",
	"Planned Work",
	"Actual Work",
	"Remarks",
	"Status",
	"Admin Comments",
}

func (s *exportService) WritePDF(w io.Writer, title string, rows []domain.TimesheetExportRow) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, row := range rows {
		values := exportRowValues(row)
		for i, label := range pdfLabels {
			pdf.SetFont("Arial", "B", 10)
			pdf.CellFormat(40, 6, label+":", "", 0, "L", false, 0, "")
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 6, values[i], "", "L", false)
		}
		pdf.Ln(6)
	}

	return pdf.Output(w)
}
