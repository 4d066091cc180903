package util

import (
	"fmt"
	"strconv"
	"strings"
)

// numericNoise - characters commonly found around numbers on third-party
// CSV exports ($ prefixes, percent suffixes, thousand separators).
var numericNoiseReplacer = strings.NewReplacer("$", "", "%", "", ",", "", " ", "")

// CleanNumericString strips currency/percent symbols, separators and
// surrounding whitespace so the remainder can be parsed as a number.
func CleanNumericString(value string) string {
	return numericNoiseReplacer.Replace(strings.TrimSpace(value))
}

// ParseIntFromAny parses an integer out of a string, float or integer
// value after stripping numeric noise. Float inputs are truncated.
func ParseIntFromAny(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	case string:
		cleaned := CleanNumericString(v)
		if cleaned == "" {
			return 0, fmt.Errorf("empty numeric value")
		}
		// Exports frequently hold integers formatted as floats ("50000.0").
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, err
		}
		return int64(parsed), nil
	default:
		return 0, fmt.Errorf("unsupported numeric type %T", value)
	}
}

// ParseFloatFromAny parses a float out of a string, float or integer
// value after stripping numeric noise.
func ParseFloatFromAny(value interface{}) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		cleaned := CleanNumericString(v)
		if cleaned == "" {
			return 0, fmt.Errorf("empty numeric value")
		}
		return strconv.ParseFloat(cleaned, 64)
	default:
		return 0, fmt.Errorf("unsupported numeric type %T", value)
	}
}

// GetValueAsString renders row cell values the way they arrive from JSON
// decoded import payloads (string or float64, occasionally bool).
func GetValueAsString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		// Avoid exponent notation for ids and zip codes.
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
