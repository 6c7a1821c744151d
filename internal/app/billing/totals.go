package billing

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Пакет billing - единый расчет строк и итогов для счетов и КП.
// Раньше та же формула qty*price*rate жила в пяти местах, теперь
// все экраны и обработчики считают через этот пакет.
// Все функции чистые и никогда не возвращают ошибку: кривые данные
// деградируют в ноль, а не роняют форму (см. sanitize).

// NoTax - сентинел "без налога" в выпадающем списке
const NoTax = "none"

// Tax - опция налога в формате справочника {value, label, price}.
// Price - процентная ставка 0-100, nullable.
type Tax struct {
	Value string   `json:"value"`
	Label string   `json:"label"`
	Price *float64 `json:"price,omitempty"`
}

// Line - одна строка документа
type Line struct {
	Qty   float64
	Price float64
	TaxID string
}

// LineTotals - расчет по одной строке
type LineTotals struct {
	SubTotal float64
	Tax      float64
	Total    float64
}

// Totals - агрегаты по документу
type Totals struct {
	SubTotal   float64
	TaxTotal   float64
	GrandTotal float64
}

// Ставка, зашитая в label вида "НДС (20%)" или "Sales Tax (8.5%)"
var labelRateRe = regexp.MustCompile(`\((\d+(?:\.\d+)?)%\)`)

// TaxRateFor возвращает дробный множитель налога (процент / 100).
// Приоритет у числового поля price; разбор label оставлен для
// совместимости со старыми записями и логируется, чтобы дрейф
// справочника был виден. Несовпавший taxID - это ставка 0,
// а не ошибка: строка просто считается без налога.
func TaxRateFor(taxID string, taxes []Tax) float64 {
	if taxID == "" || taxID == NoTax {
		return 0
	}

	for _, t := range taxes {
		if t.Value != taxID {
			continue
		}

		if t.Price != nil && isFinite(*t.Price) {
			return *t.Price / 100
		}

		if m := labelRateRe.FindStringSubmatch(t.Label); m != nil {
			if pct, err := strconv.ParseFloat(m[1], 64); err == nil {
				logrus.Warnf("налог %s: ставка извлечена из label %q, заполните поле price", taxID, t.Label)
				return pct / 100
			}
		}

		return 0
	}

	return 0
}

// ComputeLine считает подытог, налог и итог одной строки
func ComputeLine(l Line, taxes []Tax) LineTotals {
	sub := sanitize(l.Qty) * sanitize(l.Price)
	tax := sub * TaxRateFor(l.TaxID, taxes)
	return LineTotals{
		SubTotal: sub,
		Tax:      tax,
		Total:    sub + tax,
	}
}

// ComputeTotals считает агрегаты по всем строкам документа
func ComputeTotals(lines []Line, taxes []Tax) Totals {
	var totals Totals
	for _, l := range lines {
		lt := ComputeLine(l, taxes)
		totals.SubTotal += lt.SubTotal
		totals.TaxTotal += lt.Tax
	}
	totals.GrandTotal = totals.SubTotal + totals.TaxTotal
	return totals
}

// FormatMoney форматирует сумму для отображения: символ валюты и
// ровно два знака. NaN/Inf прижимаются к нулю, чтобы не попасть в UI.
func FormatMoney(v float64, symbol string) string {
	if !isFinite(v) {
		v = 0
	}
	return fmt.Sprintf("%s%.2f", symbol, v)
}

func sanitize(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
