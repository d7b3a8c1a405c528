package calculator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidBill is returned when the bill text is not a decimal number.
var ErrInvalidBill = errors.New("bill amount is not a number")

// CalculateTotalTip returns the tip owed on totalBill at tipPercentage percent.
// Non-positive bills carry no tip. The result is not rounded; rounding happens
// when the amount is formatted for display.
func CalculateTotalTip(totalBill float64, tipPercentage int) float64 {
	if totalBill > 0 {
		return totalBill * float64(tipPercentage) / 100
	}
	return 0
}

// CalculateTotalPerPerson computes what each person pays once the tip is added
// and the bill is divided splitBy ways.
// splitBy must be at least 1; callers get that guarantee from form.Controller.
func CalculateTotalPerPerson(totalBill float64, splitBy int, tipPercentage int) float64 {
	bill := totalBill + CalculateTotalTip(totalBill, tipPercentage)
	return bill / float64(splitBy)
}

// ParseBill converts raw bill text to an amount.
// A zero is prepended before conversion so that "" reads as 0 and ".5" as 0.5.
// Trailing whitespace is tolerated, leading whitespace is not. Digit
// separators ("1_000") are rejected.
func ParseBill(text string) (float64, error) {
	if strings.Contains(text, "_") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBill, text)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace("0"+text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBill, text)
	}
	return v, nil
}

// TipPercentage converts a slider fraction in [0, 1] to a whole percentage,
// truncating any fractional part. The product is taken in single precision,
// so 0.29 gives 29 rather than the 28 a float64 product truncates to.
func TipPercentage(fraction float64) int {
	return int(float32(float32(fraction) * 100))
}

// FormatAmount renders an amount with exactly two decimal digits.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
