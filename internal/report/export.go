package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/simpleproject-dev/finance-app/internal/model"
)

// Export constants. The 10-row cap is the behavior users have been getting
// all along; kept until the product decides otherwise.
const (
	exportHeader    = "Tanggal,Deskripsi,Kategori,Jumlah,Tipe"
	exportRowLimit  = 10
	placeholderDesc = "Tanpa deskripsi"
	placeholderCat  = "Tanpa kategori"
	labelIncome     = "Pemasukan"
	labelExpense    = "Pengeluaran"
)

var indonesianMonths = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// ExportOptions narrows and shapes the exported subset.
type ExportOptions struct {
	Type        string // "income", "expense" or empty for both
	CategoryID  string
	Limit       int  // rows; 0 means the default cap of 10
	WithSummary bool // append the human-readable summary footer
}

// CSV serializes a transaction subset into the delimited export document:
// UTF-8, comma-separated, every field double-quoted, localized dates, amounts
// and type labels, placeholders for missing description and category.
func CSV(transactions []model.Transaction, categories []model.Category, opts ExportOptions) []byte {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	filtered := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if opts.Type != "" && t.Type != opts.Type {
			continue
		}
		if opts.CategoryID != "" && (t.CategoryID == nil || *t.CategoryID != opts.CategoryID) {
			continue
		}
		filtered = append(filtered, t)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = exportRowLimit
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	var b strings.Builder
	b.WriteString(exportHeader)
	b.WriteByte('\n')

	for _, t := range filtered {
		description := t.Description
		if description == "" {
			description = placeholderDesc
		}
		categoryName := placeholderCat
		if t.CategoryID != nil {
			if name, ok := names[*t.CategoryID]; ok {
				categoryName = name
			}
		}
		amount := FormatRupiah(t.Amount.Float64())
		typeLabel := labelExpense
		if t.Type == model.TypeIncome {
			typeLabel = labelIncome
		} else {
			amount = "-" + amount
		}

		writeRow(&b, FormatDate(t.Date), description, categoryName, amount, typeLabel)
	}

	if opts.WithSummary {
		summary := Summarize(filtered)
		b.WriteByte('\n')
		writeRow(&b, "Ringkasan")
		writeRow(&b, "Total Pemasukan", FormatRupiah(summary.TotalIncome))
		writeRow(&b, "Total Pengeluaran", FormatRupiah(summary.TotalExpense))
		writeRow(&b, "Saldo", FormatRupiah(summary.Balance))
		writeRow(&b, "Jumlah Transaksi", strconv.Itoa(summary.TransactionCount))
	}

	return []byte(b.String())
}

// ExportFileName names the download after the day it was generated.
func ExportFileName(now time.Time) string {
	return "laporan-keuangan-" + now.Format("2006-01-02") + ".csv"
}

func writeRow(b *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// FormatDate renders a date the way the id-ID locale does: numeric day,
// short month name, full year.
func FormatDate(d model.Date) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d %s %d", d.Day(), indonesianMonths[d.Month()-1], d.Year())
}

// FormatRupiah renders an amount with the id-ID digit grouping: "Rp", dots
// between thousands groups, a comma before at most two decimals.
func FormatRupiah(v float64) string {
	negative := v < 0
	cents := int64(math.Round(math.Abs(v) * 100))
	whole, frac := cents/100, cents%100

	digits := strconv.FormatInt(whole, 10)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}

	out := "Rp" + grouped.String()
	if frac > 0 {
		out += "," + strings.TrimRight(fmt.Sprintf("%02d", frac), "0")
	}
	if negative {
		out = "-" + out
	}
	return out
}
