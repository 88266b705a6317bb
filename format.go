package svgdom

import (
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// Precision is the maximum number of decimals used when serializing values back to attribute text.
var Precision = 8

// Epsilon is the tolerance used by the Equals methods.
var Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

type num float64

// String formats in fixed notation, so serialized values never contain exponents.
func (f num) String() string {
	if !IsValid(float64(f)) {
		return strconv.FormatFloat(float64(f), 'g', -1, 64)
	} else if float64(f) == math.Trunc(float64(f)) && math.Abs(float64(f)) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	s := strconv.FormatFloat(float64(f), 'f', Precision, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	b := minify.Decimal([]byte(s), Precision)
	if len(b) == 0 || string(b) == "-" || string(b) == "-0" {
		return "0"
	}
	return string(b)
}

func joinNums(sep string, fs ...float64) string {
	sb := strings.Builder{}
	for i, f := range fs {
		if i != 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(num(f).String())
	}
	return sb.String()
}
