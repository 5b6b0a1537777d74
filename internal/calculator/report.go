package calculator

import (
	"sort"

	"github.com/mmynk/billdesk/internal/models"
)

const monthKeyLen = len("2006-01")

// MonthKey returns the YYYY-MM key a sale is reported under: the first seven
// characters of its date, or of its creation timestamp when the date is empty.
// An empty result means the sale has no usable date.
func MonthKey(sale models.SaleRecord) string {
	date := sale.Date
	if date == "" {
		date = sale.CreatedAt
	}
	if len(date) > monthKeyLen {
		return date[:monthKeyLen]
	}
	return date
}

// MonthlyReport groups sales by month key and sums their totals.
// The result is sorted ascending by month; sales without a key are skipped.
func MonthlyReport(sales []models.SaleRecord) []models.MonthlyTotal {
	byMonth := make(map[string]float64)
	for _, sale := range sales {
		key := MonthKey(sale)
		if key == "" {
			continue
		}
		byMonth[key] += sale.Total
	}

	report := make([]models.MonthlyTotal, 0, len(byMonth))
	for month, total := range byMonth {
		report = append(report, models.MonthlyTotal{Month: month, Total: total})
	}
	sort.Slice(report, func(i, j int) bool {
		return report[i].Month < report[j].Month
	})
	return report
}
