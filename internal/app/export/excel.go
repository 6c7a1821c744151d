package export

import (
	"fmt"

	"backend/internal/app/ds"

	"github.com/xuri/excelize/v2"
)

// InvoiceRegisterXLSX генерирует реестр счетов в Excel
func InvoiceRegisterXLSX(invoices []ds.Invoice, currencySymbol string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Счета"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Номер", "Статус", "Клиент", "Дата создания", "Сумма без налога", "Налог", "Итого"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDDDDD"}, Pattern: 1},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A1", "G1", headerStyle)
	}

	var subTotal, taxTotal, grandTotal float64
	for i, invoice := range invoices {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), invoice.Number)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), invoice.Status)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), invoice.Client.Name)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), invoice.CreatedAt.Format("02.01.2006"))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), invoice.SubTotal)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), invoice.TaxTotal)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), invoice.GrandTotal)

		subTotal += invoice.SubTotal
		taxTotal += invoice.TaxTotal
		grandTotal += invoice.GrandTotal
	}

	// Итоговая строка
	totalRow := len(invoices) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("Итого (%s)", currencySymbol))
	f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), subTotal)
	f.SetCellValue(sheet, fmt.Sprintf("F%d", totalRow), taxTotal)
	f.SetCellValue(sheet, fmt.Sprintf("G%d", totalRow), grandTotal)

	f.SetColWidth(sheet, "A", "A", 22)
	f.SetColWidth(sheet, "B", "C", 18)
	f.SetColWidth(sheet, "D", "G", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
