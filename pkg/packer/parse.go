package packer

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultCurrencySymbol is stripped from cost fields unless configured otherwise.
const DefaultCurrencySymbol = "€"

const malformedLineMsg = "Incorrect input format in input line, expected format [packageWeight : thingsList]"

var itemGroupPattern = regexp.MustCompile(`\(([^)]+)\)`)

// ParseLine splits a package line into its capacity and candidate items.
// Items are read left to right and parsing stops at the first invalid one.
func ParseLine(line, currencySymbol string) (Line, error) {
	if strings.Count(line, ":") != 1 {
		return Line{}, newError(ErrMalformedLine, line, malformedLineMsg)
	}
	head, tail, _ := strings.Cut(line, ":")
	if tail == "" {
		return Line{}, newError(ErrMalformedLine, line, malformedLineMsg)
	}

	capacity, err := parseCapacity(head)
	if err != nil {
		return Line{}, err
	}

	groups := itemGroupPattern.FindAllStringSubmatch(tail, -1)
	items := make([]Item, 0, min(len(groups), MaxItems))
	for _, group := range groups {
		if len(items) >= MaxItems {
			msg := fmt.Sprintf("Package %s has more than %d things to be chosen.", formatDouble(capacity), MaxItems)
			return Line{}, newError(ErrTooManyItems, line, msg)
		}
		item, err := ParseItem(group[1], currencySymbol)
		if err != nil {
			return Line{}, err
		}
		items = append(items, item)
	}

	return Line{Capacity: capacity, Items: items}, nil
}

// ParseItem converts an "index,weight,cost" definition, without the
// surrounding parentheses, into an Item.
func ParseItem(definition, currencySymbol string) (Item, error) {
	fields := strings.Split(definition, ",")
	if len(fields) != 3 {
		return Item{}, newError(ErrMalformedItem, definition,
			"Incorrect format for thing in input: "+definition)
	}

	index, err := parseIndex(fields[0])
	if err != nil {
		return Item{}, err
	}
	weight, err := parseWeight(fields[1])
	if err != nil {
		return Item{}, err
	}
	cost, err := parseCost(fields[2], currencySymbol)
	if err != nil {
		return Item{}, err
	}

	return Item{Index: index, Weight: weight, Cost: cost}, nil
}

func parseCapacity(raw string) (float64, error) {
	field := strings.TrimSpace(raw)
	value, ok := parseReal(field)
	if !ok {
		return 0, newError(ErrInvalidWeightFormat, field,
			fmt.Sprintf("Incorrect format for package weight: \"%s\"", field))
	}
	if value < 0 {
		return 0, newError(ErrNegativeWeight, field,
			fmt.Sprintf("Package weight is negative: \"%s\"", field))
	}
	return value, nil
}

func parseIndex(raw string) (int, error) {
	field := strings.TrimSpace(raw)
	// Indices are 32-bit.
	value, err := strconv.ParseInt(field, 10, 32)
	if err != nil {
		return 0, newError(ErrInvalidIndexFormat, field,
			fmt.Sprintf("Incorrect format for thing's index: \"%s\"", field))
	}
	if value < 0 {
		return 0, newError(ErrNegativeIndex, field,
			fmt.Sprintf("Thing's index is negative: \"%s\"", field))
	}
	return int(value), nil
}

func parseWeight(raw string) (float64, error) {
	field := strings.TrimSpace(raw)
	value, ok := parseReal(field)
	if !ok {
		return 0, newError(ErrInvalidWeightFormat, field,
			fmt.Sprintf("Incorrect format for thing's weight: \"%s\"", field))
	}
	if value < 0 {
		return 0, newError(ErrNegativeWeight, field,
			fmt.Sprintf("Thing's weight is negative: \"%s\"", field))
	}
	return value, nil
}

func parseCost(raw, currencySymbol string) (float64, error) {
	field := strings.TrimSpace(raw)
	stripped := field
	if currencySymbol != "" {
		stripped = strings.TrimSpace(strings.ReplaceAll(field, currencySymbol, ""))
	}
	value, ok := parseReal(stripped)
	if !ok {
		return 0, newError(ErrInvalidCostFormat, field,
			fmt.Sprintf("Incorrect format for thing's cost: \"%s\"", field))
	}
	if value < 0 {
		return 0, newError(ErrNegativeCost, field,
			fmt.Sprintf("Thing's cost is negative: \"%s\"", field))
	}
	return value, nil
}

// parseReal accepts finite decimal numbers only; NaN and infinities are
// rejected as malformed.
func parseReal(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// formatDouble renders v with at least one fractional digit (16 -> "16.0")
// and switches to E notation outside [1e-3, 1e7).
func formatDouble(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-3 || abs >= 1e7) {
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'E', -1, 64), "E")
		if !strings.Contains(mantissa, ".") {
			mantissa += ".0"
		}
		n, _ := strconv.Atoi(exp)
		return mantissa + "E" + strconv.Itoa(n)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
