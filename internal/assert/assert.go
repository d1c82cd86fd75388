package assert

import "fmt"

// That panics with the formatted message if the condition does not hold.
func That(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Sprintf(format, args...))
	}
}

// Positive panics if value is not strictly greater than zero.
func Positive(value float64, what string) {
	if !(value > 0) {
		panic(fmt.Sprintf("expected %s to be positive, got %v", what, value))
	}
}

// NonNegative panics if value is negative.
func NonNegative(value float64, what string) {
	if value < 0 {
		panic(fmt.Sprintf("expected %s to be non negative, got %v", what, value))
	}
}
