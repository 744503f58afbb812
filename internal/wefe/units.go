package wefe

import "fmt"

// unitSuffixes maps catalog unit names to display suffixes.
var unitSuffixes = map[string]string{
	"percentage":                          "%",
	"cubic meters per capita per year":    " m³/capita/year",
	"millimeters per year":                " mm/year",
	"kilowatt hours per capita per year":  " kWh/capita/year",
	"metric tons CO2 per capita per year": " tCO₂/capita/year",
	"grams per capita per day":            " g/capita/day",
	"kilograms per hectare":               " kg/ha",
	"metric tons CO2 equivalent per hectare per year": " tCO₂eq/ha/year",
	"metric tons per hectare per year":                " t/ha/year",
}

// bareUnits render as the plain value.
var bareUnits = map[string]struct{}{
	"index (0-1)":   {},
	"score (0-100)": {},
	"count":         {},
}

// FormatIndicator renders an indicator value with its unit for display.
func FormatIndicator(name string, value float64, units map[string]string) string {
	unit := units[name]
	if suffix, ok := unitSuffixes[unit]; ok {
		return fmt.Sprintf("%v%s", trimFloat(value), suffix)
	}
	if _, ok := bareUnits[unit]; ok || unit == "" {
		return trimFloat(value)
	}
	if unit == "USD per capita per year" {
		return fmt.Sprintf("$%v/capita/year", trimFloat(value))
	}
	return fmt.Sprintf("%v %s", trimFloat(value), unit)
}

// trimFloat prints a float without trailing zeros.
func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
