package services

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportBusinessData writes the 30-day operating report as an Excel
// workbook. The cell coordinates reproduce the layout of the original
// report template (overview block in rows 2-5, per-day detail in rows
// 8-37) so existing consumers keep working.
func (s *ReportService) ExportBusinessData(w io.Writer) error {
	beginDay := time.Now().AddDate(0, 0, -30)
	endDay := time.Now().AddDate(0, 0, -1)

	rangeBegin, _ := dayBounds(beginDay)
	_, rangeEnd := dayBounds(endDay)

	overall, err := s.Workspace.BusinessData(rangeBegin, rangeEnd)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"

	f.SetCellValue(sheet, "A1", "Operating data report")
	f.SetCellValue(sheet, "B2", fmt.Sprintf("Time: %s to %s",
		beginDay.Format(dateLayout), endDay.Format(dateLayout)))

	// overview block
	f.SetCellValue(sheet, "A3", "Overview")
	f.SetCellValue(sheet, "B4", "Turnover")
	f.SetCellValue(sheet, "C4", overall.Turnover)
	f.SetCellValue(sheet, "D4", "Order completion rate")
	f.SetCellValue(sheet, "E4", overall.OrderCompletionRate)
	f.SetCellValue(sheet, "F4", "New users")
	f.SetCellValue(sheet, "G4", overall.NewUsers)
	f.SetCellValue(sheet, "B5", "Valid orders")
	f.SetCellValue(sheet, "C5", overall.ValidOrderCount)
	f.SetCellValue(sheet, "D5", "Average ticket")
	f.SetCellValue(sheet, "E5", overall.UnitPrice)

	// detail header
	f.SetCellValue(sheet, "A7", "Detail")
	f.SetCellValue(sheet, "B7", "Date")
	f.SetCellValue(sheet, "C7", "Turnover")
	f.SetCellValue(sheet, "D7", "Valid orders")
	f.SetCellValue(sheet, "E7", "Order completion rate")
	f.SetCellValue(sheet, "F7", "Average ticket")
	f.SetCellValue(sheet, "G7", "New users")

	// one row per day, rows 8..37
	for i := 0; i < 30; i++ {
		date := beginDay.AddDate(0, 0, i)
		dayBegin, dayEnd := dayBounds(date)

		daily, err := s.Workspace.BusinessData(dayBegin, dayEnd)
		if err != nil {
			return err
		}

		row := 8 + i
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), date.Format(dateLayout))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), daily.Turnover)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), daily.ValidOrderCount)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), daily.OrderCompletionRate)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), daily.UnitPrice)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), daily.NewUsers)
	}

	return f.Write(w)
}
