package utils

import (
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseFloatOrZero converte um campo numérico bruto da API em float64.
// Um campo ausente ou inválido vale zero e não invalida os demais campos.
func ParseFloatOrZero(field, campaignID, raw string) float64 {
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"field":       field,
			"raw_value":   raw,
			"error":       err.Error(),
		}).Warn("insights: erro ao converter campo numérico, usando zero")
		return 0
	}

	return value
}
