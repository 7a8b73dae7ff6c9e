package charts

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/simpleproject-dev/finance-app/internal/report"
)

// Generator renders report aggregates as PNG charts.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// CategoryPie renders the share of each category within the given type as a
// pie chart. Categories at zero and slivers below 1% are left out. Returns
// nil when there is nothing to draw.
func (g *Generator) CategoryPie(totals []report.CategoryTotal, categoryType string) ([]byte, error) {
	var overall float64
	for _, t := range totals {
		if t.Type == categoryType {
			overall += t.Total
		}
	}
	if overall <= 0 {
		return nil, nil
	}

	values := make([]chart.Value, 0, len(totals))
	for _, t := range totals {
		if t.Type != categoryType || t.Total <= 0 {
			continue
		}
		percentage := t.Total / overall * 100
		if percentage <= 1.0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s (%.1f%%)", t.Name, report.FormatRupiah(t.Total), percentage),
			Value: t.Total,
		})
	}
	if len(values) == 0 {
		return nil, nil
	}

	pie := chart.PieChart{
		Width:  1200,
		Height: 600,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render category pie: %w", err)
	}
	return buffer.Bytes(), nil
}

// SourceDonut renders total movement (income plus expense) per source as a
// doughnut chart. Returns nil when there is nothing to draw.
func (g *Generator) SourceDonut(breakdown []report.SourceTotal) ([]byte, error) {
	values := make([]chart.Value, 0, len(breakdown))
	for _, s := range breakdown {
		movement := s.Income + s.Expense
		if movement <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s", s.Name, report.FormatRupiah(movement)),
			Value: movement,
		})
	}
	if len(values) == 0 {
		return nil, nil
	}

	donut := chart.DonutChart{
		Width:  1200,
		Height: 600,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := donut.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render source donut: %w", err)
	}
	return buffer.Bytes(), nil
}

// MonthlySeries renders income versus expense over the bucketed months.
// Returns nil when there are no buckets.
func (g *Generator) MonthlySeries(buckets []report.MonthBucket) ([]byte, error) {
	if len(buckets) == 0 {
		return nil, nil
	}

	xValues := make([]time.Time, 0, len(buckets))
	incomeValues := make([]float64, 0, len(buckets))
	expenseValues := make([]float64, 0, len(buckets))
	for _, b := range buckets {
		month, err := time.Parse("2006-01", b.Month)
		if err != nil {
			continue
		}
		xValues = append(xValues, month)
		incomeValues = append(incomeValues, b.Income)
		expenseValues = append(expenseValues, b.Expense)
	}
	// the continuous series renderer needs at least two points
	if len(xValues) < 2 {
		return nil, nil
	}

	graph := chart.Chart{
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return report.FormatRupiah(v.(float64))
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Pemasukan",
				XValues: xValues,
				YValues: incomeValues,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2,
				},
			},
			chart.TimeSeries{
				Name:    "Pengeluaran",
				XValues: xValues,
				YValues: expenseValues,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					StrokeWidth: 2,
				},
			},
		},
	}

	graph.Elements = []chart.Renderable{
		chart.Legend(&graph, chart.Style{
			FontSize:  12,
			FontColor: chart.ColorBlack,
		}),
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render monthly series: %w", err)
	}
	return buffer.Bytes(), nil
}
