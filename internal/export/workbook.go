// Package export renders saved designs as spreadsheets.
package export

import (
	"bytes"
	"fmt"

	"dreamhouse/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	RoomsSheet   = "Rooms"
	SummarySheet = "Summary"
)

// RoomsHeader Rooms 工作表表头
var RoomsHeader = []string{"Category", "Type", "ID", "Width", "Height", "Area"}

var roomColumnWidths = []float64{12, 12, 12, 10, 10, 10}

// DesignWorkbook 生成设计的 Excel 文件（Rooms + Summary 两个工作表）
func DesignWorkbook(d *domain.DesignDetail, l domain.Layout) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(RoomsSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	// 删除默认的 Sheet1
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeRooms(f, l, headerStyle); err != nil {
		return nil, err
	}
	if err := writeSummary(f, d, l, headerStyle); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRooms(f *excelize.File, l domain.Layout, headerStyle int) error {
	if err := f.SetSheetRow(RoomsSheet, "A1", &RoomsHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(RoomsHeader), 1)
	if err := f.SetCellStyle(RoomsSheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}
	for i, w := range roomColumnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(RoomsSheet, col, col, w); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	row := 2
	write := func(category string, rooms []domain.Room) error {
		for _, r := range rooms {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			values := []any{category, string(r.Type), r.ID, r.Width, r.Height, r.Area()}
			if err := f.SetSheetRow(RoomsSheet, cell, &values); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
			row++
		}
		return nil
	}
	if err := write("Room", l.Rooms); err != nil {
		return err
	}
	return write("Extra", l.Extras)
}

// room types in the order the synthesizer emits them
var summaryTypes = []domain.RoomType{
	domain.RoomBedroom,
	domain.RoomBathroom,
	domain.RoomKitchen,
	domain.RoomHall,
	domain.RoomBalcony,
	domain.RoomGarden,
	domain.RoomParking,
}

func writeSummary(f *excelize.File, d *domain.DesignDetail, l domain.Layout, headerStyle int) error {
	rows := [][]any{
		{"Name", d.Name},
		{"Style", string(l.Style)},
		{"Prompt", d.Prompt},
		{"Created At", d.CreatedAt},
	}
	counts := l.CountByType()
	for _, t := range summaryTypes {
		rows = append(rows, []any{string(t), counts[t]})
	}
	rows = append(rows, []any{"Total Area", l.TotalArea()})

	for i, values := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SummarySheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
		if err := f.SetCellStyle(SummarySheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to set summary style: %w", err)
		}
	}
	if err := f.SetColWidth(SummarySheet, "A", "A", 14); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	return f.SetColWidth(SummarySheet, "B", "B", 40)
}
