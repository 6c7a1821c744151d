package export

import (
	"bytes"
	"testing"
	"time"

	"backend/internal/app/ds"

	"github.com/xuri/excelize/v2"
)

func testInvoice() *ds.Invoice {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	return &ds.Invoice{
		ID:         1,
		Number:     "INV-20260830-a1b2c3d4",
		Status:     "выставлен",
		ClientID:   1,
		Client:     ds.Client{ID: 1, Name: "ООО Ромашка"},
		CreatedAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		DueAt:      &due,
		Notes:      "Оплата по договору 42",
		SubTotal:   25,
		TaxTotal:   2,
		GrandTotal: 27,
		Items: []ds.InvoiceItem{
			{
				ProductID: 1,
				Product:   ds.Product{ID: 1, Name: "Консультация"},
				Quantity:  2,
				UnitPrice: 10,
				SubTotal:  20,
				TaxAmount: 2,
				Total:     22,
			},
			{
				ProductID: 2,
				Product:   ds.Product{ID: 2, Name: "Доставка"},
				Quantity:  1,
				UnitPrice: 5,
				SubTotal:  5,
				TaxAmount: 0,
				Total:     5,
			},
		},
	}
}

func TestInvoicePDF(t *testing.T) {
	pdfBytes, err := InvoicePDF(testInvoice(), "$")
	if err != nil {
		t.Fatalf("InvoicePDF() error = %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("InvoicePDF() вернул пустой документ")
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Errorf("InvoicePDF() не похож на PDF, первые байты: %q", pdfBytes[:4])
	}
}

// Генерация не должна зависеть от рабочей директории процесса:
// таблица cp1251 вшита в бинарник, а не читается с диска
func TestInvoicePDFWorksFromAnyDirectory(t *testing.T) {
	t.Chdir(t.TempDir())

	pdfBytes, err := InvoicePDF(testInvoice(), "$")
	if err != nil {
		t.Fatalf("InvoicePDF() error = %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Error("InvoicePDF() не похож на PDF")
	}
}

func TestInvoiceRegisterXLSX(t *testing.T) {
	invoice := testInvoice()
	xlsxBytes, err := InvoiceRegisterXLSX([]ds.Invoice{*invoice}, "$")
	if err != nil {
		t.Fatalf("InvoiceRegisterXLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(xlsxBytes))
	if err != nil {
		t.Fatalf("не удалось открыть сгенерированный файл: %v", err)
	}
	defer f.Close()

	number, err := f.GetCellValue("Счета", "A2")
	if err != nil {
		t.Fatalf("GetCellValue() error = %v", err)
	}
	if number != invoice.Number {
		t.Errorf("A2 = %q, ожидается номер счета %q", number, invoice.Number)
	}

	total, err := f.GetCellValue("Счета", "G2")
	if err != nil {
		t.Fatalf("GetCellValue() error = %v", err)
	}
	if total != "27" {
		t.Errorf("G2 = %q, ожидается итог 27", total)
	}

	// Итоговая строка реестра
	label, _ := f.GetCellValue("Счета", "A3")
	if label != "Итого ($)" {
		t.Errorf("A3 = %q, ожидается итоговая строка", label)
	}
}

func TestInvoiceRegisterXLSXEmpty(t *testing.T) {
	xlsxBytes, err := InvoiceRegisterXLSX(nil, "$")
	if err != nil {
		t.Fatalf("InvoiceRegisterXLSX(nil) error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(xlsxBytes))
	if err != nil {
		t.Fatalf("не удалось открыть сгенерированный файл: %v", err)
	}
	defer f.Close()

	header, _ := f.GetCellValue("Счета", "A1")
	if header != "Номер" {
		t.Errorf("A1 = %q, ожидается заголовок реестра", header)
	}
}
