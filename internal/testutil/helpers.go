// Package testutil provides reusable test helper functions for waveform tests.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	Float32Tolerance = 1e-6
	// PCM8Tolerance is one quantization step of 8-bit unsigned PCM.
	PCM8Tolerance = 1.0 / 128.0
)

// AssertSamplesInDelta verifies that actual has the expected length and that
// every sample is within tolerance of its expected value.
func AssertSamplesInDelta(t *testing.T, expected, actual []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance,
			"sample %d: got %v, want %v", i, actual[i], expected[i]) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that every sample is finite.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return assert.Fail(t, fmt.Sprintf("sample %d is not finite: %v", i, v), msgAndArgs...)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertNonNegative verifies that every element is >= 0.
func AssertNonNegative(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	return AssertAllInRange(t, s, 0, math.Inf(1), msgAndArgs...)
}

// AssertBinary verifies that every element is exactly 0 or 1.
func AssertBinary(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v != 0 && v != 1 {
			return assert.Fail(t, "value is not binary", "s[%d]=%v", i, v)
		}
	}
	return true
}

// AssertLengthEquals verifies that a slice has the expected length.
func AssertLengthEquals(t *testing.T, s []float64, expectedLen int, msgAndArgs ...any) bool {
	t.Helper()
	return assert.Len(t, s, expectedLen, msgAndArgs...)
}

// Sine returns n samples of a unit-amplitude sine with the given number of
// samples per cycle.
func Sine(n int, period float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.Sin(2 * math.Pi * float64(i) / period)
	}
	return s
}
