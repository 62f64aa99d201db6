// Package export renders a resolved month calendar to an Excel workbook.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"horaires/internal/model"
	"horaires/internal/resolve"
)

var headerColumns = []string{"Date", "Jour", "Statut", "Motif", "Horaires", "Marché"}

// MonthCalendar resolves every day of the month and writes one row per
// date into a new workbook.
func MonthCalendar(clientName string, year int, month time.Month, week model.WeekSchedule, periods []model.VacationPeriod, market model.MarketDaySchedule) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := fmt.Sprintf("%s %s %d", clientName, frenchMonth(month), year)
	if len(sheet) > 31 {
		sheet = sheet[:31] // Excel sheet name limit
	}
	f.SetSheetName("Sheet1", sheet)

	if err := writeHeader(f, sheet); err != nil {
		return nil, err
	}

	row := 2
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		st := resolve.Day(d, week, periods, market)
		values := []any{
			d.Format("2006-01-02"),
			string(resolve.WeekdayOf(d)),
			statusLabel(st.Status),
			st.Reason,
			strings.Join(st.OpeningRanges, ", "),
			strings.Join(st.MarketRanges, ", "),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
		}
		row++
	}

	return f, nil
}

func writeHeader(f *excelize.File, sheet string) error {
	for i, col := range headerColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		startCell, _ := excelize.CoordinatesToCellName(1, 1)
		endCell, _ := excelize.CoordinatesToCellName(len(headerColumns), 1)
		_ = f.SetCellStyle(sheet, startCell, endCell, style)
	}
	return nil
}

func statusLabel(s resolve.Status) string {
	switch s {
	case resolve.StatusOpen:
		return "Ouvert"
	case resolve.StatusClosedWeekly:
		return "Fermé"
	case resolve.StatusClosedVacation:
		return "Fermé (vacances)"
	}
	return string(s)
}

func frenchMonth(m time.Month) string {
	names := [...]string{
		"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
		"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
	}
	return names[m-1]
}
