// Package excel exporta el informe de cartera a una hoja de cálculo XLSX.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/receivables"
)

// SheetName nombre de la hoja con el detalle por cliente.
const SheetName = "Cartera"

var headings = []string{"Cliente", "Identificación", "0-30", "31-60", "61-90", "+90", "Total pendiente", "Vencido"}

var _ receivables.AgingRenderer = (*AgingXLSXExporter)(nil)

// AgingXLSXExporter implementa receivables.AgingRenderer con excelize.
type AgingXLSXExporter struct{}

func NewAgingXLSXExporter() *AgingXLSXExporter { return &AgingXLSXExporter{} }

// Render una fila de encabezados, una fila por cliente y una fila de totales.
// Los montos se escriben como números para que la hoja pueda sumarlos.
func (e *AgingXLSXExporter) Render(rep *dto.AgingReportResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("excel: estilo: %w", err)
	}

	for i, h := range headings {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, err
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headings))
	_ = f.SetCellStyle(SheetName, "A1", lastCol+"1", bold)

	row := 2
	for _, c := range rep.Clients {
		values := []any{
			c.Name, c.Identifier,
			c.Bucket0To30.InexactFloat64(), c.Bucket31To60.InexactFloat64(),
			c.Bucket61To90.InexactFloat64(), c.BucketOver90.InexactFloat64(),
			c.TotalPending.InexactFloat64(), c.OverdueAmount.InexactFloat64(),
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", row, err)
		}
		row++
	}

	totals := []any{"TOTAL", "", nil, nil, nil, nil, rep.TotalPending.InexactFloat64(), rep.Summary.OverdueAmount.InexactFloat64()}
	cell, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetSheetRow(SheetName, cell, &totals); err != nil {
		return nil, fmt.Errorf("excel: totales: %w", err)
	}
	_ = f.SetCellStyle(SheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), bold)
	_ = f.SetCellStyle(SheetName, "C2", fmt.Sprintf("%s%d", lastCol, row), money)

	_ = f.SetColWidth(SheetName, "A", "A", 36)
	_ = f.SetColWidth(SheetName, "B", "B", 16)
	_ = f.SetColWidth(SheetName, "C", lastCol, 15)

	// Hoja de resumen con la fecha de corte.
	if _, err := f.NewSheet("Resumen"); err != nil {
		return nil, fmt.Errorf("excel: hoja resumen: %w", err)
	}
	summary := [][]any{
		{"Fecha de corte", rep.CutoffDate},
		{"Generado", rep.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Clientes", rep.Summary.TotalClients},
		{"Total pendiente", rep.TotalPending.InexactFloat64()},
		{"Vencido", rep.Summary.OverdueAmount.InexactFloat64()},
		{"Por vencer", rep.Summary.NotYetDueAmount.InexactFloat64()},
	}
	for i, r := range summary {
		if err := f.SetSheetRow("Resumen", fmt.Sprintf("A%d", i+1), &r); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth("Resumen", "A", "A", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
