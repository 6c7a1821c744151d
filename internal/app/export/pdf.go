package export

import (
	"bytes"
	_ "embed"
	"fmt"

	"backend/internal/app/billing"
	"backend/internal/app/ds"

	"github.com/jung-kurt/gofpdf"
)

// Таблица cp1251 вшита в бинарник: gofpdf ищет map-файлы относительно
// рабочей директории процесса, а она у сервера и у тестов разная.
//
//go:embed cp1251.map
var cp1251Map []byte

// InvoicePDF генерирует печатную форму счета.
// Кириллица в стандартных шрифтах gofpdf идет через транслятор cp1251.
func InvoicePDF(invoice *ds.Invoice, currencySymbol string) ([]byte, error) {
	tr, err := gofpdf.UnicodeTranslator(bytes.NewReader(cp1251Map))
	if err != nil {
		return nil, fmt.Errorf("cp1251 translator: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Шапка документа
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Счет %s", invoice.Number)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Статус: %s", invoice.Status)))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Клиент: %s", invoice.Client.Name)))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Дата создания: %s", invoice.CreatedAt.Format("02.01.2006"))))
	pdf.Ln(7)
	if invoice.DueAt != nil {
		pdf.Cell(0, 7, tr(fmt.Sprintf("Оплатить до: %s", invoice.DueAt.Format("02.01.2006"))))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	// Таблица строк
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(70, 8, tr("Наименование"), "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, tr("Кол-во"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, tr("Цена"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, tr("Налог"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, tr("Сумма"), "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range invoice.Items {
		name := item.Product.Name
		if name == "" {
			name = fmt.Sprintf("Товар %d", item.ProductID)
		}
		pdf.CellFormat(70, 8, tr(name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%g", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, billing.FormatMoney(item.UnitPrice, currencySymbol), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, billing.FormatMoney(item.TaxAmount, currencySymbol), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, billing.FormatMoney(item.Total, currencySymbol), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)

	// Итоги
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Сумма без налога: %s", billing.FormatMoney(invoice.SubTotal, currencySymbol))))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Налог: %s", billing.FormatMoney(invoice.TaxTotal, currencySymbol))))
	pdf.Ln(7)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Итого к оплате: %s", billing.FormatMoney(invoice.GrandTotal, currencySymbol))))
	pdf.Ln(10)

	if invoice.Notes != "" {
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 6, tr("Примечание: "+invoice.Notes), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
