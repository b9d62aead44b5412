package service

import "strings"

const NeutralColor = "#6b7280"

var urgencyColors = map[string]string{
	"emergency": "#ef4444",
	"high":      "#f97316",
	"moderate":  "#eab308",
	"low":       "#22c55e",
}

var probabilityColors = map[string]string{
	"high":     "#ef4444",
	"moderate": "#f97316",
	"low":      "#22c55e",
}

// UrgencyColor maps an urgency level to its display colour.
func UrgencyColor(level string) string {
	return lookupColor(urgencyColors, level)
}

// ProbabilityColor maps a condition probability to its display colour.
func ProbabilityColor(probability string) string {
	return lookupColor(probabilityColors, probability)
}

func lookupColor(table map[string]string, key string) string {
	if c, ok := table[strings.ToLower(strings.TrimSpace(key))]; ok {
		return c
	}
	return NeutralColor
}
