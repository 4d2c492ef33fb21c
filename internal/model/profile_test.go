package model

import (
	"errors"
	"testing"
)

func flatSeries(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func TestNewHourlyProfile(t *testing.T) {
	tests := []struct {
		name         string
		temperatures []float64
		prices       []float64
		wantErr      bool
		wantField    string
	}{
		{
			name:         "valid profile",
			temperatures: flatSeries(24, 95),
			prices:       flatSeries(24, 50),
		},
		{
			name:         "short temperatures",
			temperatures: flatSeries(23, 95),
			prices:       flatSeries(24, 50),
			wantErr:      true,
			wantField:    "temperatures",
		},
		{
			name:         "long prices",
			temperatures: flatSeries(24, 95),
			prices:       flatSeries(25, 50),
			wantErr:      true,
			wantField:    "prices",
		},
		{
			name:         "empty input",
			temperatures: nil,
			prices:       nil,
			wantErr:      true,
			wantField:    "temperatures",
		},
		{
			name:         "negative price",
			temperatures: flatSeries(24, 95),
			prices:       append(flatSeries(23, 50), -0.01),
			wantErr:      true,
			wantField:    "prices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewHourlyProfile(tt.temperatures, tt.prices)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(p.Temperatures) != HoursPerDay || len(p.Prices) != HoursPerDay {
					t.Fatalf("profile series not %d long", HoursPerDay)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var inputErr *InvalidInputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("expected *InvalidInputError, got %T", err)
			}
			if inputErr.Field != tt.wantField {
				t.Fatalf("error field = %q, want %q", inputErr.Field, tt.wantField)
			}
		})
	}
}

func TestNewHourlyProfileCopiesInput(t *testing.T) {
	temps := flatSeries(24, 95)
	prices := flatSeries(24, 50)
	p, err := NewHourlyProfile(temps, prices)
	if err != nil {
		t.Fatal(err)
	}

	temps[0] = 120
	prices[0] = 999
	if p.Temperatures[0] != 95 || p.Prices[0] != 50 {
		t.Fatal("profile aliases caller slices")
	}
}

func TestAveragePrice(t *testing.T) {
	prices := flatSeries(24, 0)
	for i := range prices {
		prices[i] = float64(i) // mean of 0..23 is 11.5
	}
	p, err := NewHourlyProfile(flatSeries(24, 95), prices)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.AveragePrice(); got != 11.5 {
		t.Fatalf("AveragePrice() = %v, want 11.5", got)
	}
}
