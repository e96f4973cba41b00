package latex

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var measure = regexp.MustCompile("^(-?[0-9]*(?:\\.[0-9]+)?)\\s*([a-z]*)$")

// ptInEm is the size of em in points for a 10pt font
const ptInEm = 10

// Measure parses measurement value, a number and units, for example: 5.1cm, 6em, -3mu
func Measure(raw string) (float32, string, error) {
	match := measure.FindStringSubmatch(strings.TrimSpace(raw))
	if len(match) == 0 || match[1] == "" || match[1] == "-" {
		return 0, "", errors.New("unable to parse measurement")
	}

	number, err := strconv.ParseFloat(match[1], 32)
	if err != nil {
		return 0, "", err
	}

	return float32(number), match[2], nil
}

// MeasureEm parses measurement and converts it to em
func MeasureEm(raw string) (float32, error) {
	n, u, err := Measure(raw)
	if err != nil {
		return 0, err
	}

	return ToEm(n, u)
}

func ToEm(value float32, unit string) (float32, error) {
	switch unit {
	case "em":
		return value, nil
	case "ex":
		return value * 0.43, nil
	case "mu":
		return value / 18, nil
	case "pt":
		return value / ptInEm, nil
	case "bp":
		return value * 1.00375 / ptInEm, nil
	case "mm":
		return value * 2.84527 / ptInEm, nil
	case "cm":
		return value * 28.4527 / ptInEm, nil
	case "in":
		return value * 72.27 / ptInEm, nil
	case "px":
		return value / 16, nil
	default:
		return 0, fmt.Errorf("measurement unit %#v is not supported", unit)
	}
}
