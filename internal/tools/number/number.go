// Package number renders float64 values the way JavaScript's Number#toString
// does, so tool output matches what a browser would print.
package number

import (
	"math"
	"strconv"
	"strings"
)

// Format returns the shortest round-trip decimal form of v: plain notation
// for magnitudes in [1e-6, 1e21), exponent notation (1e+21, 1.5e-7) outside
// it, "NaN", "Infinity" and "-Infinity" for the special values, and "0"
// for negative zero.
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	// "d.ddde±XX" -> digits "dddd", point position n.
	sci := strconv.FormatFloat(v, 'e', -1, 64)
	mant, expPart, _ := strings.Cut(sci, "e")
	digits := strings.Replace(mant, ".", "", 1)
	exp, _ := strconv.Atoi(expPart)
	k := len(digits)
	n := exp + 1

	var out string
	switch {
	case k <= n && n <= 21:
		out = digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		out = digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		out = "0." + strings.Repeat("0", -n) + digits
	default:
		e := n - 1
		esign := "+"
		if e < 0 {
			esign = "-"
			e = -e
		}
		out = digits[:1]
		if k > 1 {
			out += "." + digits[1:]
		}
		out += "e" + esign + strconv.Itoa(e)
	}

	return sign + out
}
