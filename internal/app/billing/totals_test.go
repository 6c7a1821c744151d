package billing

import (
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

const eps = 1e-9

func almostEqual(a, b float64) bool { return math.Abs(a-b) < eps }

func TestTaxRateFor(t *testing.T) {
	taxes := []Tax{
		{Value: "t1", Label: "НДС", Price: ptr(15)},
		{Value: "t2", Label: "НДС (20%)"},
		{Value: "t3", Label: "Sales Tax (8.5%)"},
		{Value: "t4", Label: "Без ставки"},
		{Value: "t5", Label: "Льготный (7%)", Price: ptr(5)},
	}

	tests := []struct {
		name  string
		taxID string
		want  float64
	}{
		{"числовое поле price", "t1", 0.15},
		{"ставка из label", "t2", 0.20},
		{"дробная ставка из label", "t3", 0.085},
		{"ни price ни label - ноль", "t4", 0},
		{"price приоритетнее label", "t5", 0.05},
		{"сентинел none", NoTax, 0},
		{"пустой taxID", "", 0},
		{"несуществующий налог - молча ноль", "missing", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TaxRateFor(tt.taxID, taxes); !almostEqual(got, tt.want) {
				t.Errorf("TaxRateFor(%q) = %v, want %v", tt.taxID, got, tt.want)
			}
		})
	}
}

func TestComputeTotals(t *testing.T) {
	taxes := []Tax{{Value: "t1", Price: ptr(10)}}
	lines := []Line{
		{Qty: 2, Price: 10, TaxID: "t1"},
		{Qty: 1, Price: 5, TaxID: NoTax},
	}

	got := ComputeTotals(lines, taxes)
	if !almostEqual(got.SubTotal, 25) || !almostEqual(got.TaxTotal, 2) || !almostEqual(got.GrandTotal, 27) {
		t.Errorf("ComputeTotals = %+v, want {25 2 27}", got)
	}

	// По строкам
	first := ComputeLine(lines[0], taxes)
	if !almostEqual(first.SubTotal, 20) || !almostEqual(first.Tax, 2) || !almostEqual(first.Total, 22) {
		t.Errorf("ComputeLine(первая) = %+v, want {20 2 22}", first)
	}
	second := ComputeLine(lines[1], taxes)
	if !almostEqual(second.SubTotal, 5) || !almostEqual(second.Tax, 0) || !almostEqual(second.Total, 5) {
		t.Errorf("ComputeLine(вторая) = %+v, want {5 0 5}", second)
	}
}

func TestComputeTotalsDegenerateInput(t *testing.T) {
	// Кривые qty/price не должны протащить NaN в агрегаты
	lines := []Line{
		{Qty: math.NaN(), Price: math.NaN(), TaxID: "t1"},
		{Qty: math.Inf(1), Price: 10},
		{Qty: 3, Price: 4},
	}
	got := ComputeTotals(lines, nil)
	if !almostEqual(got.SubTotal, 12) || !almostEqual(got.TaxTotal, 0) || !almostEqual(got.GrandTotal, 12) {
		t.Errorf("ComputeTotals с кривыми строками = %+v, want {12 0 12}", got)
	}
}

func TestComputeTotalsEmpty(t *testing.T) {
	got := ComputeTotals(nil, nil)
	if got.SubTotal != 0 || got.TaxTotal != 0 || got.GrandTotal != 0 {
		t.Errorf("пустой документ должен давать нули, получено %+v", got)
	}
}

func TestComputeTotalsIdempotent(t *testing.T) {
	taxes := []Tax{{Value: "t1", Price: ptr(12.5)}}
	lines := []Line{{Qty: 7, Price: 99.99, TaxID: "t1"}}

	a := ComputeTotals(lines, taxes)
	b := ComputeTotals(lines, taxes)
	if a != b {
		t.Errorf("повторный вызов дал другой результат: %+v != %+v", a, b)
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		symbol string
		want   string
	}{
		{"обычная сумма", 27, "$", "$27.00"},
		{"округление до двух знаков", 19.999, "₽", "₽20.00"},
		{"NaN прижимается к нулю", math.NaN(), "$", "$0.00"},
		{"Inf прижимается к нулю", math.Inf(-1), "$", "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMoney(tt.v, tt.symbol); got != tt.want {
				t.Errorf("FormatMoney(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}
