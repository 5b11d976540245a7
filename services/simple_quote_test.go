package services

import (
	"math"
	"testing"
)

func TestCalculateSimpleQuote(t *testing.T) {
	tests := []struct {
		name         string
		hours, days  string
		wantHours    int
		wantBase     float64
		wantDiscount float64
		wantVAT      float64
		wantTotal    float64
	}{
		{"8x5 no discount", "8", "5", 160, 4480, 0, 940.80, 5420.80},
		{"12x5 five percent", "12", "5", 240, 6720, 336, 1340.64, 7724.64},
		{"24x6 five percent", "24", "6", 576, 16128, 806.40, 3217.54, 18539.14},
		{"24x7 ten percent", "24", "7", 672, 18816, 1881.60, 3556.22, 20490.62},
		{"whitespace tolerated", " 8 ", "7", 224, 6272, 0, 1317.12, 7589.12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := CalculateSimpleQuote(tt.hours, tt.days)
			if q == nil {
				t.Fatal("expected a quote, got nil")
			}
			if q.TotalHours != tt.wantHours {
				t.Errorf("TotalHours = %d, want %d", q.TotalHours, tt.wantHours)
			}
			if math.Abs(q.BasePrice-tt.wantBase) > 0.001 {
				t.Errorf("BasePrice = %v, want %v", q.BasePrice, tt.wantBase)
			}
			if math.Abs(q.Discount-tt.wantDiscount) > 0.001 {
				t.Errorf("Discount = %v, want %v", q.Discount, tt.wantDiscount)
			}
			if math.Abs(q.VAT-tt.wantVAT) > 0.001 {
				t.Errorf("VAT = %v, want %v", q.VAT, tt.wantVAT)
			}
			if math.Abs(q.Total-tt.wantTotal) > 0.001 {
				t.Errorf("Total = %v, want %v", q.Total, tt.wantTotal)
			}
		})
	}
}

func TestCalculateSimpleQuote_Incomplete(t *testing.T) {
	tests := []struct {
		name        string
		hours, days string
	}{
		{"missing days", "8", ""},
		{"missing hours", "", "5"},
		{"both missing", "", ""},
		{"hours not offered", "10", "5"},
		{"days not offered", "8", "4"},
		{"not a number", "eight", "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if q := CalculateSimpleQuote(tt.hours, tt.days); q != nil {
				t.Errorf("CalculateSimpleQuote(%q, %q) = %+v, want nil", tt.hours, tt.days, q)
			}
		})
	}
}
