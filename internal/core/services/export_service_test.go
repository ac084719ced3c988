package services_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/naveenakasaragadda1/Timesheet-Server/internal/core/domain"
	portssvc "github.com/naveenakasaragadda1/Timesheet-Server/internal/core/ports/services"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/core/services"
)

type ExportServiceTestSuite struct {
	suite.Suite
	exporter portssvc.TimesheetExporter
}

func (suite *ExportServiceTestSuite) SetupTest() {
	suite.exporter = services.NewExportService()
}

func makeExportRow(name, planned string, date time.Time, status domain.TimesheetStatus) domain.TimesheetExportRow {
	return domain.TimesheetExportRow{
		Timesheet: domain.Timesheet{
			TimesheetID:  uuid.NewString(),
			UserID:       uuid.NewString(),
			EmployeeName: name,
			WorkDate:     date,
			PlannedWork:  planned,
			ActualWork:   planned,
			Status:       status,
		},
		EmployeeEmail:      "someone@example.com",
		EmployeeNumber:     "E-042",
		EmployeeDepartment: "Engineering",
	}
}

func (suite *ExportServiceTestSuite) TestWriteCSV_HeaderAndRows() {
	rows := []domain.TimesheetExportRow{
		makeExportRow("Jane Doe", "Ship feature", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), domain.StatusAccepted),
		makeExportRow("John Roe", "Fix bug", time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), domain.StatusPending),
	}

	var buf bytes.Buffer
	err := suite.exporter.WriteCSV(&buf, rows)
	suite.Require().NoError(err)

	records, err := csv.NewReader(&buf).ReadAll()
	suite.Require().NoError(err)
	suite.Require().Len(records, 3)

	suite.Equal([]string{
		"employeeName", "employeeEmail", "employeeId", "department",
		"date", "plannedWork", "actualWork", "remarks", "status", "adminComments",
	}, records[0])

	suite.Equal("Jane Doe", records[1][0])
	suite.Equal("2025-06-02", records[1][4])
	suite.Equal("accepted", records[1][8])
	suite.Equal("John Roe", records[2][0])
	suite.Equal("pending", records[2][8])
}

func (suite *ExportServiceTestSuite) TestWriteCSV_EmptyResultStillHasHeader() {
	var buf bytes.Buffer
	err := suite.exporter.WriteCSV(&buf, nil)
	suite.Require().NoError(err)

	records, err := csv.NewReader(&buf).ReadAll()
	suite.Require().NoError(err)
	suite.Len(records, 1)
}

func (suite *ExportServiceTestSuite) TestWriteCSV_EscapesEmbeddedCommas() {
	row := makeExportRow("Doe, Jane", "Plan A, then B", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), domain.StatusPending)

	var buf bytes.Buffer
	err := suite.exporter.WriteCSV(&buf, []domain.TimesheetExportRow{row})
	suite.Require().NoError(err)

	records, err := csv.NewReader(&buf).ReadAll()
	suite.Require().NoError(err)
	suite.Require().Len(records, 2)
	suite.Equal("Doe, Jane", records[1][0])
	suite.Equal("Plan A, then B", records[1][5])
}

func (suite *ExportServiceTestSuite) TestWritePDF_ProducesDocument() {
	rows := []domain.TimesheetExportRow{
		makeExportRow("Jane Doe", "Ship feature", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), domain.StatusAccepted),
	}

	var buf bytes.Buffer
	err := suite.exporter.WritePDF(&buf, "Timesheet Report", rows)
	suite.Require().NoError(err)

	suite.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output should start with the PDF magic bytes")
	suite.Greater(buf.Len(), 500)
}

func (suite *ExportServiceTestSuite) TestWritePDF_EmptyResultStillRenders() {
	var buf bytes.Buffer
	err := suite.exporter.WritePDF(&buf, "Timesheet Report", nil)
	suite.Require().NoError(err)
	suite.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestExportService(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
