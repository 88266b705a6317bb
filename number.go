// Package svgdom implements the value and geometry kernel of an SVG document object model: parsing of the
// numeric micro-grammars, length resolution against a coordinate context, affine transforms, viewBox fitting
// and the owner-tracked lists used by multi-valued attributes.
package svgdom

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// numberLength returns the length of the number at the start of b following
// (+|-)? digits* .? digits+ ((e|E)(+|-)? digits+)?, or zero.
func numberLength(b []byte) int {
	n := parse.Number(b)
	if n == 0 {
		return 0
	}
	// a trailing dot without fractional digits is not part of the number, "1." and "1.e5" both read as "1"
	i := 0
	if b[0] == '+' || b[0] == '-' {
		i++
	}
	for i < n && isDigit(b[i]) {
		i++
	}
	if i < n && b[i] == '.' && (i+1 == n || !isDigit(b[i+1])) {
		return i
	}
	return n
}

// findNumber returns the start and length of the first number in b, or -1.
func findNumber(b []byte) (int, int) {
	for i := 0; i < len(b); i++ {
		if c := b[i]; isDigit(c) || c == '.' || c == '+' || c == '-' {
			if n := numberLength(b[i:]); 0 < n {
				return i, n
			}
		}
	}
	return -1, 0
}

func parseFloat(b []byte) (float64, error) {
	f, n := pstrconv.ParseFloat(b)
	if n == 0 {
		return 0.0, fmt.Errorf("%w: bad number %q", ErrSyntax, b)
	} else if !IsValid(f) {
		return 0.0, fmt.Errorf("%w: number out of range %q", ErrSyntax, b)
	}
	return f, nil
}

// ParseNumber returns the first number found in s, ignoring any text around it.
func ParseNumber(s string) (float64, error) {
	b := []byte(s)
	i, n := findNumber(b)
	if i == -1 {
		return 0.0, fmt.Errorf("%w: no number in %q", ErrSyntax, s)
	}
	return parseFloat(b[i : i+n])
}

// ParseDoubles returns all numbers found in s in order, they may be separated by anything.
func ParseDoubles(s string) []float64 {
	b := []byte(s)
	fs := []float64{}
	for {
		i, n := findNumber(b)
		if i == -1 {
			return fs
		}
		if f, err := parseFloat(b[i : i+n]); err == nil {
			fs = append(fs, f)
		}
		b = b[i+n:]
	}
}

// ScientificToDecimal rewrites a number in scientific notation to a decimal with at most four
// fractional digits, keeping any text before and after it such as a unit. Other input is returned as is.
func ScientificToDecimal(s string) string {
	if !strings.ContainsAny(s, "eE") {
		return s
	}
	b := []byte(s)
	i, n := findNumber(b)
	if i == -1 || !strings.ContainsAny(s[i:i+n], "eE") {
		return s
	}
	f, err := parseFloat(b[i : i+n])
	if err != nil {
		return s
	}
	if math.Abs(f) < 1e15 {
		f = math.Round(f*1e4) / 1e4 // half away from zero
	}
	if f == 0.0 {
		f = 0.0 // no negative zero
	}
	return s[:i] + strconv.FormatFloat(f, 'f', -1, 64) + s[i+n:]
}

// IsValid returns true if f is neither NaN nor infinite.
func IsValid(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// angleNorm returns the angle in degrees in the range [0,360).
func angleNorm(a float64) float64 {
	a = math.Mod(a, 360.0)
	if a < 0.0 {
		a += 360.0
	}
	if a == 360.0 { // -tiny + 360 rounds up
		a = 0.0
	}
	return a
}

// CalcAngleDiff returns the counter clockwise angle in degrees from a2 to a1, in the range [0,360).
func CalcAngleDiff(a1, a2 float64) float64 {
	return angleNorm(angleNorm(a1) - angleNorm(a2))
}

// CalcAngleBisection returns the angle in degrees halfway from a2 to a1 in counter clockwise direction,
// in the range [0,360).
func CalcAngleBisection(a1, a2 float64) float64 {
	diff := CalcAngleDiff(a1, a2)
	return angleNorm(angleNorm(a1) - diff/2.0)
}

////////////////////////////////////////////////////////////////

// Number is a parsed number that remembers whether it was written in scientific notation.
type Number struct {
	Value      float64
	Scientific bool
}

// ParseNumberValue parses s as in ParseNumber.
func ParseNumberValue(s string) (Number, error) {
	b := []byte(s)
	i, n := findNumber(b)
	if i == -1 {
		return Number{}, fmt.Errorf("%w: no number in %q", ErrSyntax, s)
	}
	f, err := parseFloat(b[i : i+n])
	if err != nil {
		return Number{}, err
	}
	return Number{f, strings.ContainsAny(s[i:i+n], "eE")}, nil
}

func (n Number) String() string {
	return num(n.Value).String()
}
