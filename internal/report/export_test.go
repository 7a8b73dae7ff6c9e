package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/simpleproject-dev/finance-app/internal/model"
)

func exportLines(data []byte) []string {
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestCSVHeader(t *testing.T) {
	lines := exportLines(CSV(nil, nil, ExportOptions{}))
	assert.Equal(t, "Tanggal,Deskripsi,Kategori,Jumlah,Tipe", lines[0])
	assert.Len(t, lines, 1)
}

func TestCSVRows(t *testing.T) {
	categories := []model.Category{{ID: "c1", Name: "Makanan", Type: model.TypeExpense}}
	transactions := []model.Transaction{
		{
			Type:        model.TypeExpense,
			Amount:      400,
			Date:        model.NewDate(2024, time.June, 5),
			Description: "Makan siang",
			CategoryID:  ptr("c1"),
		},
		{
			Type:   model.TypeIncome,
			Amount: 1000,
			Date:   model.NewDate(2024, time.June, 1),
		},
	}

	lines := exportLines(CSV(transactions, categories, ExportOptions{}))
	assert.Len(t, lines, 3)
	assert.Equal(t, `"5 Jun 2024","Makan siang","Makanan","-Rp400","Pengeluaran"`, lines[1])
	assert.Equal(t, `"1 Jun 2024","Tanpa deskripsi","Tanpa kategori","Rp1.000","Pemasukan"`, lines[2])
}

func TestCSVUnknownCategoryGetsPlaceholder(t *testing.T) {
	transactions := []model.Transaction{
		{Type: model.TypeExpense, Amount: 10, Date: model.NewDate(2024, time.June, 1), CategoryID: ptr("gone")},
	}
	lines := exportLines(CSV(transactions, nil, ExportOptions{}))
	assert.Contains(t, lines[1], `"Tanpa kategori"`)
}

func TestCSVRowCap(t *testing.T) {
	var transactions []model.Transaction
	for i := 0; i < 25; i++ {
		transactions = append(transactions, model.Transaction{
			Type:   model.TypeExpense,
			Amount: 1,
			Date:   model.NewDate(2024, time.June, 1),
		})
	}

	lines := exportLines(CSV(transactions, nil, ExportOptions{}))
	assert.Len(t, lines, 11) // header + capped rows

	lines = exportLines(CSV(transactions, nil, ExportOptions{Limit: 20}))
	assert.Len(t, lines, 21)
}

func TestCSVFilters(t *testing.T) {
	transactions := []model.Transaction{
		{Type: model.TypeIncome, Amount: 100, Date: model.NewDate(2024, time.June, 1)},
		{Type: model.TypeExpense, Amount: 50, Date: model.NewDate(2024, time.June, 2), CategoryID: ptr("c1")},
		{Type: model.TypeExpense, Amount: 25, Date: model.NewDate(2024, time.June, 3), CategoryID: ptr("c2")},
	}

	lines := exportLines(CSV(transactions, nil, ExportOptions{Type: model.TypeExpense}))
	assert.Len(t, lines, 3)

	lines = exportLines(CSV(transactions, nil, ExportOptions{CategoryID: "c1"}))
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"-Rp50"`)
}

func TestCSVSummaryFooter(t *testing.T) {
	transactions := []model.Transaction{
		{Type: model.TypeIncome, Amount: 1000, Date: model.NewDate(2024, time.June, 1)},
		{Type: model.TypeExpense, Amount: 400, Date: model.NewDate(2024, time.June, 2)},
	}

	out := string(CSV(transactions, nil, ExportOptions{WithSummary: true}))
	assert.Contains(t, out, `"Ringkasan"`)
	assert.Contains(t, out, `"Total Pemasukan","Rp1.000"`)
	assert.Contains(t, out, `"Total Pengeluaran","Rp400"`)
	assert.Contains(t, out, `"Saldo","Rp600"`)
	assert.Contains(t, out, `"Jumlah Transaksi","2"`)
}

func TestCSVQuoteEscaping(t *testing.T) {
	transactions := []model.Transaction{
		{
			Type:        model.TypeExpense,
			Amount:      5,
			Date:        model.NewDate(2024, time.June, 1),
			Description: `beli "kopi", panas`,
		},
	}
	lines := exportLines(CSV(transactions, nil, ExportOptions{}))
	assert.Contains(t, lines[1], `"beli ""kopi"", panas"`)
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "laporan-keuangan-2024-06-15.csv", ExportFileName(now))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "5 Jun 2024", FormatDate(model.NewDate(2024, time.June, 5)))
	assert.Equal(t, "17 Agu 2023", FormatDate(model.NewDate(2023, time.August, 17)))
	assert.Equal(t, "", FormatDate(model.Date{}))
}

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Rp0"},
		{400, "Rp400"},
		{1000, "Rp1.000"},
		{1234567, "Rp1.234.567"},
		{1000.5, "Rp1.000,5"},
		{1000.05, "Rp1.000,05"},
		{-400, "-Rp400"},
		{999.999, "Rp1.000"}, // rounds to whole cents
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatRupiah(tc.in))
	}
}
