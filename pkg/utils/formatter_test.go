package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{
			name:     "CTR de 5 por cento",
			value:    5.0,
			expected: "5.00%",
		},
		{
			name:     "valor zero",
			value:    0,
			expected: "0.00%",
		},
		{
			name:     "valor com arredondamento",
			value:    12.345,
			expected: "12.35%",
		},
		{
			name:     "valor fracionário",
			value:    0.5,
			expected: "0.50%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPercentage(tt.value))
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{
			name:     "valor com uma casa decimal",
			value:    1.5,
			expected: "1.50",
		},
		{
			name:     "valor zero",
			value:    0,
			expected: "0.00",
		},
		{
			name:     "valor inteiro",
			value:    2,
			expected: "2.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.value))
		})
	}
}

func TestParseFloatOrZero(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{
			name:     "número válido",
			raw:      "100",
			expected: 100,
		},
		{
			name:     "número decimal válido",
			raw:      "2.75",
			expected: 2.75,
		},
		{
			name:     "campo vazio vale zero",
			raw:      "",
			expected: 0,
		},
		{
			name:     "valor não numérico vale zero",
			raw:      "abc",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseFloatOrZero("impressions", "123", tt.raw))
		})
	}
}
