package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundHalfEven rounds x to the given number of decimal places, ties to even.
func RoundHalfEven(x float64, places int32) float64 {
	return decimal.NewFromFloat(x).RoundBank(places).InexactFloat64()
}

// RoundToInt rounds x to a whole currency unit, ties to even.
func RoundToInt(x float64) int64 {
	return decimal.NewFromFloat(x).RoundBank(0).IntPart()
}

// FormatINR renders an amount with Indian digit grouping, e.g. "INR 1,23,456".
func FormatINR(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%sINR %s", sign, groupIndian(amount))
}

// groupIndian groups the last three digits, then pairs.
func groupIndian(n int64) string {
	str := strconv.FormatInt(n, 10)
	if len(str) <= 3 {
		return str
	}
	head, tail := str[:len(str)-3], str[len(str)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(append(parts, tail), ",")
}
