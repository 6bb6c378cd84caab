package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dampeche/seadoc/internal/layout"
)

// InvoiceWorkbook writes the commercial invoice line table into an XLSX
// workbook, a side artifact for clients who re-key the figures.
func InvoiceWorkbook(payload layout.InvoicePayload) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Facture"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("render: rename sheet: %w", err)
	}

	rows := [][]any{
		{payload.CompanyName},
		{payload.Title},
		{payload.ClientLine},
		{},
		{"Quantité", "P. Brut (KG)", "P. Net (KG)", "Designation", "P. Unit", "Montant (EUR)"},
	}
	for _, line := range payload.Lines {
		designation := line.Name
		if line.LatinName != "" {
			designation = fmt.Sprintf("%s (%s)", line.Name, line.LatinName)
		}
		rows = append(rows, []any{line.Quantity, line.Gross, line.Net, designation, line.UnitPrice, line.Amount})
	}
	rows = append(rows,
		[]any{payload.TotalQuantity, payload.TotalGross, payload.TotalNet, "TOTAL GENERAL", "", payload.TotalAmount},
		[]any{},
		[]any{payload.PlasticLine},
		[]any{payload.DirhamLabel, payload.DirhamValue},
		[]any{"Incoterm:", payload.IncotermLine},
		[]any{"Transport:", payload.TransportLine},
		[]any{"CHARGEE SUR CAM/REM Mat:", payload.TrailerLine},
	)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("render: write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
