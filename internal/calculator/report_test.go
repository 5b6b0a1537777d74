package calculator

import (
	"reflect"
	"testing"

	"github.com/mmynk/billdesk/internal/models"
)

func TestMonthlyReport(t *testing.T) {
	tests := []struct {
		name  string
		sales []models.SaleRecord
		want  []models.MonthlyTotal
	}{
		{
			name:  "empty history",
			sales: nil,
			want:  []models.MonthlyTotal{},
		},
		{
			name: "groups and sorts by month",
			sales: []models.SaleRecord{
				{Date: "2024-02-01", Total: 30},
				{Date: "2024-01-05", Total: 100},
				{Date: "2024-01-20", Total: 50},
			},
			want: []models.MonthlyTotal{
				{Month: "2024-01", Total: 150},
				{Month: "2024-02", Total: 30},
			},
		},
		{
			name: "falls back to createdAt when date is empty",
			sales: []models.SaleRecord{
				{Date: "", Total: 75, CreatedAt: "2023-12-31T23:59:00.000Z"},
				{Date: "2024-01-01", Total: 25},
			},
			want: []models.MonthlyTotal{
				{Month: "2023-12", Total: 75},
				{Month: "2024-01", Total: 25},
			},
		},
		{
			name: "skips sales without any date",
			sales: []models.SaleRecord{
				{Total: 10},
				{Date: "2024-03-09", Total: 5},
			},
			want: []models.MonthlyTotal{
				{Month: "2024-03", Total: 5},
			},
		},
		{
			name: "sorts across years",
			sales: []models.SaleRecord{
				{Date: "2025-01-02", Total: 1},
				{Date: "2024-11-30", Total: 2},
			},
			want: []models.MonthlyTotal{
				{Month: "2024-11", Total: 2},
				{Month: "2025-01", Total: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyReport(tt.sales)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MonthlyReport() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonthKey(t *testing.T) {
	if got := MonthKey(models.SaleRecord{Date: "2024"}); got != "2024" {
		t.Errorf("MonthKey(short date) = %q, want %q", got, "2024")
	}
	if got := MonthKey(models.SaleRecord{Date: "2024-06-15", CreatedAt: "2023-01-01T00:00:00Z"}); got != "2024-06" {
		t.Errorf("MonthKey prefers date, got %q", got)
	}
}
