// services/report_service.go
package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/smarttravelhq/smart-travel-backend/models"
)

// ReportService generates Excel exports of a trip's expenses
type ReportService struct {
	expenseService *ExpenseService
}

// NewReportService creates a new ReportService
func NewReportService(expenseService *ExpenseService) *ReportService {
	return &ReportService{expenseService: expenseService}
}

// ExportExpenses builds an xlsx workbook with the trip's expense rows and a
// budget summary block. Returns the file and a download filename.
func (s *ReportService) ExportExpenses(trip *models.Trip) (*excelize.File, string, error) {
	summary, err := s.expenseService.Summary(trip)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get expenses: %v", err)
	}

	f := excelize.NewFile()
	sheet := "Expenses"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Category", "Amount", "Description"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A1", "C1", headerStyle)
	}

	row := 2
	for _, expense := range summary.Expenses {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), expense.Category)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), expense.Amount)
		if expense.Description != nil {
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), *expense.Description)
		}
		row++
	}

	// Summary block below the rows
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total Spent")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), summary.TotalSpent)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Trip Budget")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), summary.TripBudget)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Remaining Budget")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), summary.RemainingBudget)

	f.SetColWidth(sheet, "A", "A", 24)
	f.SetColWidth(sheet, "B", "B", 14)
	f.SetColWidth(sheet, "C", "C", 40)

	filename := fmt.Sprintf("%s_expenses_%s.xlsx",
		cleanFileName(trip.TripName), time.Now().Format("2006-01-02"))
	return f, filename, nil
}

// cleanFileName removes invalid characters from a download filename
func cleanFileName(filename string) string {
	reg := regexp.MustCompile(`[<>:"/\\|?*]`)
	cleaned := reg.ReplaceAllString(filename, "_")
	cleaned = strings.TrimSpace(cleaned)
	return regexp.MustCompile(`\s+`).ReplaceAllString(cleaned, "_")
}
