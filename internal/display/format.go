// Package display formats conversion values the way the converter shows them:
// Indian digit grouping (lakh, crore) for ordinary values and scientific
// notation for very small ones.
package display

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// ResultFractionDigits is the most fractional digits a result shows.
	ResultFractionDigits = 4
	// FactorFractionDigits is the most fractional digits a reference factor shows.
	FactorFractionDigits = 2
	// ScientificThreshold is the magnitude below which results switch to
	// scientific notation.
	ScientificThreshold = 0.01
)

// Zero is what every zero or missing value renders as.
const Zero = "0"

// indianPattern groups the first three integer digits, then pairs:
// 1,23,45,678.
const indianPattern = "#,##,##0.###"

var (
	locale  = language.MustParse("en-IN")
	printer = message.NewPrinter(locale)

	// PatternOverrides must come before any other number option.
	indianGrouping = number.PatternOverrides(map[string]string{locale.String(): indianPattern})
)

// Result renders a converted value. Exactly zero is "0"; magnitudes below
// ScientificThreshold use scientific notation with four fractional digits;
// everything else is grouped with up to four fractional digits.
func Result(v float64) string {
	switch {
	case v == 0:
		return Zero
	case v > -ScientificThreshold && v < ScientificThreshold:
		return Scientific(v, ResultFractionDigits)
	default:
		return Grouped(v, ResultFractionDigits)
	}
}

// Factor renders a square-feet reference factor. A factor that could not be
// resolved renders as "0".
func Factor(v float64, ok bool) string {
	if !ok {
		return Zero
	}
	return Grouped(v, FactorFractionDigits)
}

// Grouped renders v with Indian digit grouping and at most maxFraction
// fractional digits, dropping trailing zeros. Exact ties round away from zero.
func Grouped(v float64, maxFraction int) string {
	v = roundHalfAway(v, maxFraction)
	return printer.Sprint(number.Decimal(v, indianGrouping, number.MaxFractionDigits(maxFraction)))
}

// Scientific renders v in normalized exponent form with exactly digits
// fractional digits in the mantissa and an unpadded, always signed exponent,
// for example 4.0469e-5 or 1.2000e+3. Exact ties round away from zero.
func Scientific(v float64, digits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || digits < 0 || digits >= exactSignificantDigits {
		return strconv.FormatFloat(v, 'e', digits, 64)
	}

	exact := strconv.FormatFloat(math.Abs(v), 'e', exactSignificantDigits, 64)
	mantissa, exp, _ := strings.Cut(exact, "e")
	all := mantissa[:1] + mantissa[2:]

	kept := roundDigits(all[:digits+1], all[digits+1])
	e, err := strconv.Atoi(exp)
	if err != nil {
		return strconv.FormatFloat(v, 'e', digits, 64)
	}
	if len(kept) > digits+1 {
		// 9.99...5 carried into a new leading digit.
		kept = kept[:digits+1]
		e++
	}
	if v == 0 {
		e = 0
	}

	var b strings.Builder
	if math.Signbit(v) {
		b.WriteByte('-')
	}
	b.WriteString(kept[:1])
	if digits > 0 {
		b.WriteByte('.')
		b.WriteString(kept[1:])
	}
	b.WriteByte('e')
	if e >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(e))
	return b.String()
}

// Enough digits for strconv to print any float64 exactly, so ties can be
// told apart from values merely close to one.
const (
	exactFractionDigits    = 1100
	exactSignificantDigits = 800
)

// roundHalfAway rounds v to maxFraction fractional digits, sending exact
// ties away from zero. x/text and strconv both round ties to even.
func roundHalfAway(v float64, maxFraction int) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) || maxFraction < 0 || maxFraction >= exactFractionDigits {
		return v
	}

	exact := strconv.FormatFloat(math.Abs(v), 'f', exactFractionDigits, 64)
	intPart, frac, _ := strings.Cut(exact, ".")

	kept := roundDigits(intPart+frac[:maxFraction], frac[maxFraction])
	split := len(kept) - maxFraction
	rounded, err := strconv.ParseFloat(kept[:split]+"."+kept[split:]+"0", 64)
	if err != nil {
		return v
	}
	return math.Copysign(rounded, v)
}

// roundDigits rounds the decimal digit string kept using the first dropped
// digit. A carry out of the leading digit makes the result one digit longer.
func roundDigits(kept string, next byte) string {
	if next < '5' {
		return kept
	}

	b := []byte(kept)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}
