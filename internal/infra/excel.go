package infra

import (
	"bytes"
	"fmt"

	"github.com/willinthon-tech/maquinas/internal/model"

	"github.com/xuri/excelize/v2"
)

const inventarioSheet = "Inventario"

// GenerarInventarioXLSX renders the machine inventory as an .xlsx workbook.
// An empty list still produces the header row.
func GenerarInventarioXLSX(filas []model.MaquinaDetalle) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(inventarioSheet)
	if err != nil {
		return nil, fmt.Errorf("xlsx: create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsx: delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: header style: %w", err)
	}

	for col, h := range InventarioHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(inventarioSheet, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: header %q: %w", h, err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(InventarioHeader), 1)
	if err := f.SetCellStyle(inventarioSheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("xlsx: apply header style: %w", err)
	}

	for i, m := range filas {
		row := i + 2
		for col, v := range inventarioFila(m) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			var value any = v
			// Keep numeric columns numeric so spreadsheets can sum them.
			switch col {
			case 0:
				value = m.ID
			case 2:
				value = m.Puestos
			}
			if err := f.SetCellValue(inventarioSheet, cell, value); err != nil {
				return nil, fmt.Errorf("xlsx: row %d: %w", row, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: write: %w", err)
	}
	return buf.Bytes(), nil
}
