package services

import (
	"io"

	"github.com/naveenakasaragadda1/Timesheet-Server/internal/core/domain"
)

// TimesheetExporter renders a result set into an output representation.
// Both renderers are pure functions of their input rows.
type TimesheetExporter interface {
	// WriteCSV writes one header row plus one data row per entry, columns
	// in the fixed export order.
	WriteCSV(w io.Writer, rows []domain.TimesheetExportRow) error

	// WritePDF writes a titled document with one labelled block per entry.
	WritePDF(w io.Writer, title string, rows []domain.TimesheetExportRow) error
}
