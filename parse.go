package mandelbrot

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParsePair parses s as a coordinate pair like "400x600" or "1.0,0.5".
//
// s must have the form <left><separator><right>, split at the first
// separator, where both sides parse with parse as a whole. On any failure
// the zero values and false are returned.
func ParsePair[T any](s string, separator rune, parse func(string) (T, error)) (T, T, bool) {
	var zero T
	index := strings.IndexRune(s, separator)
	if index < 0 {
		return zero, zero, false
	}
	l, err := parse(s[:index])
	if err != nil {
		return zero, zero, false
	}
	_, width := utf8.DecodeRuneInString(s[index:])
	r, err := parse(s[index+width:])
	if err != nil {
		return zero, zero, false
	}
	return l, r, true
}

// ParseFloat parses a float64 in the shape ParsePair wants.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// ParseComplex parses "re,im" into a complex number.
func ParseComplex(s string) (complex128, bool) {
	re, im, ok := ParsePair(s, ',', ParseFloat)
	if !ok {
		return 0, false
	}
	return complex(re, im), true
}
