package utils

import "fmt"

// FormatPercentage formata um valor com duas casas decimais seguido de "%".
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

// FormatCurrency formata um valor monetário com duas casas decimais, sem símbolo.
func FormatCurrency(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
