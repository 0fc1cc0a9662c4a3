// File path: internal/jafr/reduce.go
package jafr

import "math"

// DigitalRoot collapses n to a single digit by repeated decimal digit
// summing. For n > 0 the result is in [1,9]; DigitalRoot(0) is 0, callers
// that need a [1,9] result must guard the zero case themselves.
func DigitalRoot(n int) int {
	for n > 9 {
		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}
	return n
}

// WafqSize derives the side length of the recommended wafq grid from the raw
// numerology total: floor(sqrt(total/10)) + 3, clamped to [3,9]. The mapping
// is monotone in the total and a zero total yields the minimum 3x3 grid.
func WafqSize(total int) int {
	if total < 0 {
		total = 0
	}
	size := int(math.Sqrt(float64(total)/10)) + 3
	if size < 3 {
		size = 3
	}
	if size > 9 {
		size = 9
	}
	return size
}

// Meaning returns the canned semantic label for a value's digital root.
// Values outside [1,9] after reduction fall back to a generic label.
func Meaning(n int) string {
	if meaning, ok := digitMeanings[DigitalRoot(n)]; ok {
		return meaning
	}
	return genericMeaning
}

// LetterMeaning returns the richer per-letter label for an un-reduced Abjad
// value (units, decades, hundreds, thousand).
func LetterMeaning(value int) string {
	if meaning, ok := letterMeanings[value]; ok {
		return meaning
	}
	return genericMeaning
}
