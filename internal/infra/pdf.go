package infra

// pdf.go: printable inventory listing using go-pdf/fpdf.
// A4 landscape, one row per machine, header repeated on every page.

import (
	"bytes"
	"fmt"
	"time"

	"github.com/willinthon-tech/maquinas/internal/model"

	"github.com/go-pdf/fpdf"
)

// relative widths of the InventarioHeader columns
var inventarioAnchos = []float64{0.04, 0.10, 0.05, 0.08, 0.09, 0.08, 0.08, 0.08, 0.07, 0.08, 0.06, 0.07, 0.06, 0.06}

// GenerarInventarioPDF renders the machine inventory as a PDF document.
func GenerarInventarioPDF(titulo string, filas []model.MaquinaDetalle, generado time.Time) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(8, 10, 8)
	pdf.SetAutoPageBreak(true, 10)

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 16
	// fpdf core fonts are cp1252; convert accents and ñ before writing.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	encabezado := func() {
		pdf.SetFont("Helvetica", "B", 7)
		pdf.SetFillColor(230, 243, 255)
		for i, h := range InventarioHeader {
			pdf.CellFormat(contentW*inventarioAnchos[i], 6, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 7)
	}

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(contentW, 7, tr(titulo), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(contentW, 5,
			fmt.Sprintf("Generado %s  -  %d maquinas", generado.Format("02/01/2006 15:04"), len(filas)),
			"", 1, "L", false, 0, "")
		pdf.Ln(2)
		encabezado()
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-8)
		pdf.SetFont("Helvetica", "I", 7)
		pdf.CellFormat(0, 5, fmt.Sprintf("Pagina %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	for _, m := range filas {
		for i, v := range inventarioFila(m) {
			align := "L"
			if i == 0 || i == 2 {
				align = "R"
			}
			pdf.CellFormat(contentW*inventarioAnchos[i], 5, tr(v), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: output: %w", err)
	}
	return buf.Bytes(), nil
}
