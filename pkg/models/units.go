package models

import "strings"

// WeightUnit is transmitted alongside every weight value.
type WeightUnit string

const (
	WeightUnitG   WeightUnit = "g"
	WeightUnitCts WeightUnit = "cts"
)

// ParseWeightUnit defaults to grams, the unit every form starts with.
func ParseWeightUnit(unit string) WeightUnit {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case string(WeightUnitCts):
		return WeightUnitCts
	default:
		return WeightUnitG
	}
}
