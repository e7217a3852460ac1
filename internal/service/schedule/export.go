package schedule

import (
	"bytes"
	"context"
	"fmt"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/schedule"
	"github.com/xuri/excelize/v2"
)

var exportColumns = []string{"Date", "Employee", "Store", "Shift", "Start", "End", "Status"}

// Export implements Service. It renders every schedule entry into a single
// XLSX sheet with a bold header row.
func (s *ServiceImpl) Export(ctx context.Context) ([]byte, error) {
	entries, err := s.scheduleRepo.List(ctx, schedule.Filter{})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Schedules"
	f.SetSheetName("Sheet1", sheet)

	for i, col := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, err
		}
	}

	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
		_ = f.SetCellStyle(sheet, "A1", endCell, style)
	}

	for i, entry := range entries {
		row := []interface{}{
			entry.ScheduleDate.Format("2006-01-02"),
			entry.DisplayName(),
			entry.StoreName,
			entry.ShiftName,
			entry.StartTime,
			entry.EndTime,
			string(entry.Status),
		}
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
