package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPence(t *testing.T) {
	tests := []struct {
		name  string
		pence int64
		want  string
	}{
		{name: "pounds and pence", pence: 125, want: "1.25"},
		{name: "sub pound", pence: 99, want: "0.99"},
		{name: "whole pounds", pence: 400, want: "4.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPence(tt.pence)
			assert.Contains(t, got, "£")
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestCalculateSavings(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want Savings
	}{
		{name: "a dearer", a: 200, b: 150, want: Savings{Amount: 50, Percentage: 25}},
		{name: "b dearer", a: 150, b: 200, want: Savings{Amount: 50, Percentage: 25}},
		{name: "equal", a: 100, b: 100, want: Savings{}},
		{name: "zero side", a: 0, b: 200, want: Savings{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateSavings(tt.a, tt.b))
		})
	}
}
