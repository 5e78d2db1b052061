package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	tests := []struct {
		name string
		want string
		v    float64
	}{
		{name: "zero", v: 0, want: "0"},
		{name: "default acre to bigha", v: 43560.0 / 27000.0, want: "1.6133"},
		{name: "whole number", v: 2, want: "2"},
		{name: "thousands", v: 43560, want: "43,560"},
		{name: "lakhs", v: 107639, want: "1,07,639"},
		{name: "crores", v: 123456789, want: "12,34,56,789"},
		{name: "four fraction digits", v: 1234.56789, want: "1,234.5679"},
		{name: "at threshold stays grouped", v: 0.01, want: "0.01"},
		{name: "tiny acre to hectare", v: 0.0001 * 43560 / 107639, want: "4.0469e-5"},
		{name: "tiny negative", v: -0.005, want: "-5.0000e-3"},
		{name: "negative grouped", v: -250000, want: "-2,50,000"},
		{name: "exact tie rounds up", v: 1.15625, want: "1.1563"},
		{name: "exact tie below one", v: 0.03125, want: "0.0313"},
		{name: "negative tie rounds away from zero", v: -1.15625, want: "-1.1563"},
		{name: "tiny exact tie", v: 0.00390625, want: "3.9063e-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Result(tt.v))
		})
	}
}

func TestFactor(t *testing.T) {
	tests := []struct {
		name string
		want string
		v    float64
		ok   bool
	}{
		{name: "square foot", v: 1, ok: true, want: "1"},
		{name: "square meter", v: 10.764, ok: true, want: "10.76"},
		{name: "acre", v: 43560, ok: true, want: "43,560"},
		{name: "hectare", v: 107639, ok: true, want: "1,07,639"},
		{name: "exact tie rounds up", v: 0.125, ok: true, want: "0.13"},
		{name: "close to a tie rounds down", v: 9.995, ok: true, want: "9.99"},
		{name: "exact tie with even digit", v: 1.125, ok: true, want: "1.13"},
		{name: "missing", v: 0, ok: false, want: "0"},
		{name: "missing ignores value", v: 27000, ok: false, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Factor(tt.v, tt.ok))
		})
	}
}

func TestGrouped_RoundsTiesAwayFromZero(t *testing.T) {
	tests := []struct {
		want        string
		v           float64
		maxFraction int
	}{
		{v: 2.5, maxFraction: 0, want: "3"},
		{v: -2.5, maxFraction: 0, want: "-3"},
		{v: 999.5, maxFraction: 0, want: "1,000"},
		{v: 99999.90625, maxFraction: 4, want: "99,999.9063"},
		{v: 0.25, maxFraction: 1, want: "0.3"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Grouped(tt.v, tt.maxFraction))
		})
	}
}

func TestScientific(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		v      float64
		digits int
	}{
		{name: "negative exponent", v: 0.000040469, digits: 4, want: "4.0469e-5"},
		{name: "positive exponent", v: 1200, digits: 4, want: "1.2000e+3"},
		{name: "zero exponent", v: 7.5, digits: 4, want: "7.5000e+0"},
		{name: "two digit exponent", v: 3.2e-12, digits: 4, want: "3.2000e-12"},
		{name: "three digit exponent", v: 1e-300, digits: 2, want: "1.00e-300"},
		{name: "exact tie rounds up", v: 0.125, digits: 1, want: "1.3e-1"},
		{name: "negative exact tie", v: -0.125, digits: 1, want: "-1.3e-1"},
		{name: "tie carries into exponent", v: 9.5, digits: 0, want: "1e+1"},
		{name: "no fraction digits", v: 0.00004, digits: 0, want: "4e-5"},
		{name: "zero", v: 0, digits: 4, want: "0.0000e+0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Scientific(tt.v, tt.digits))
		})
	}
}
