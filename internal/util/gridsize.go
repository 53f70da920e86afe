package util

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	sizePattern     = regexp.MustCompile(`^(\d+)[xX](\d+)$`)
	positionPattern = regexp.MustCompile(`^\s*(\d+)\s*,\s*(\d+)\s*$`)
)

// ParseGridSize parses a ward size such as "3x4" into rows and columns.
// Bounds are left to ward.Store.Load.
func ParseGridSize(s string) (rows, cols int, err error) {
	matches := sizePattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, 0, fmt.Errorf("invalid size: '%s'. Use format like '3x4'", s)
	}
	return atoiPair(matches[1], matches[2])
}

// ParsePosition parses a bed position such as "1,2" into row and column.
func ParsePosition(s string) (row, col int, err error) {
	matches := positionPattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, 0, fmt.Errorf("invalid position: '%s'. Use format like '1,2'", s)
	}
	return atoiPair(matches[1], matches[2])
}

func atoiPair(a, b string) (int, int, error) {
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numeric value: %v", err)
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numeric value: %v", err)
	}
	return x, y, nil
}
