package literal

import (
	stderrors "errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// renderNative produces the default textual form of a native value for the
// given variant. Rendering never fails; a nil native renders empty.
func renderNative(kind Kind, native any) string {
	if native == nil {
		return ""
	}
	switch v := native.(type) {
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int64:
		return strconv.FormatInt(v, 10)
	case *big.Int:
		return v.String()
	case float64:
		return formatFloat(v)
	case *big.Rat:
		return ratDecimalString(v)
	case time.Time:
		return formatDateTime(v)
	case Date:
		return v.String()
	case TimeOfDay:
		return v.String()
	case Token:
		return string(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// parseNative converts a lexical form to the variant's native value.
// String-shaped variants return the lexical form unchanged; boolean never
// fails; the remaining variants surface a parse error for lexical forms
// their grammar would reject.
func parseNative(kind Kind, lexical string) (any, error) {
	switch kind {
	case KindBoolean:
		// "true"/"1" are true, everything else false.
		return lexical == "true" || lexical == "1", nil
	case KindInteger:
		return parseInteger(lexical)
	case KindDouble:
		return parseFloat(lexical)
	case KindDecimal:
		r, ok := parseDecimal(lexical)
		if !ok {
			return nil, fmt.Errorf("parse decimal %q", lexical)
		}
		return r, nil
	case KindDate:
		return parseDate(lexical)
	case KindTime:
		return parseTime(lexical)
	case KindDateTime:
		return parseDateTime(lexical)
	case KindToken:
		return Token(lexical), nil
	default:
		return lexical, nil
	}
}

// parseInteger parses an integer-family lexical form, widening to *big.Int
// beyond the int64 range.
func parseInteger(lexical string) (any, error) {
	i, err := strconv.ParseInt(lexical, 10, 64)
	if err == nil {
		return i, nil
	}
	var numErr *strconv.NumError
	if stderrors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
		b, ok := new(big.Int).SetString(lexical, 10)
		if ok {
			return b, nil
		}
	}
	return nil, fmt.Errorf("parse integer %q", lexical)
}

// parseFloat parses an xsd:double lexical form, including the XSD special
// values INF, +INF, -INF and NaN.
func parseFloat(lexical string) (float64, error) {
	switch lexical {
	case "INF", "+INF":
		return math.Inf(1), nil
	case "-INF":
		return math.Inf(-1), nil
	case "NaN":
		return math.NaN(), nil
	}
	f, err := strconv.ParseFloat(lexical, 64)
	if err != nil {
		return 0, fmt.Errorf("parse double %q", lexical)
	}
	return f, nil
}

// formatFloat is the default rendering for doubles. Special values use the
// XSD spellings; finite values use the shortest Go representation, which
// the double grammar accepts. Canonical exponent form is Canonicalize's
// job.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// parseDecimal parses an xsd:decimal lexical form as an exact rational,
// tolerating the grammar's bare-point forms (".5", "-.5") that
// big.Rat.SetString does not accept directly.
func parseDecimal(lexical string) (*big.Rat, bool) {
	s := lexical
	switch {
	case strings.HasPrefix(s, "."):
		s = "0" + s
	case strings.HasPrefix(s, "+.") || strings.HasPrefix(s, "-."):
		s = s[:1] + "0" + s[1:]
	}
	r, ok := new(big.Rat).SetString(s)
	return r, ok
}

// ratDecimalString renders a rational as a decimal with a mandatory point
// and no superfluous zeros. Non-terminating fractions are rounded at 32
// places.
func ratDecimalString(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String() + ".0"
	}
	s := r.FloatString(32)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}

// Temporal layouts, with and without a zone designator. XSD permits an
// optional timezone on all three calendar datatypes; the zoned layouts are
// tried first so an explicit offset is carried into the native value rather
// than discarded.
var (
	zonedDateLayouts = []string{"2006-01-02Z07:00"}
	plainDateLayouts = []string{"2006-01-02"}
	zonedTimeLayouts = []string{"15:04:05.999999999Z07:00", "15:04:05Z07:00"}
	plainTimeLayouts = []string{"15:04:05.999999999", "15:04:05"}
	dateTimeLayouts  = []string{
		"2006-01-02T15:04:05.999999999Z07:00", "2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05",
	}
)

func parseDate(lexical string) (Date, error) {
	for _, layout := range zonedDateLayouts {
		if t, err := time.Parse(layout, lexical); err == nil {
			_, offset := t.Zone()
			return Date{
				Year: t.Year(), Month: t.Month(), Day: t.Day(),
				Zoned: true, Offset: offset,
			}, nil
		}
	}
	for _, layout := range plainDateLayouts {
		if t, err := time.Parse(layout, lexical); err == nil {
			return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
		}
	}
	return Date{}, fmt.Errorf("parse date %q", lexical)
}

func parseTime(lexical string) (TimeOfDay, error) {
	for _, layout := range zonedTimeLayouts {
		if t, err := time.Parse(layout, lexical); err == nil {
			_, offset := t.Zone()
			return TimeOfDay{
				Hour:       t.Hour(),
				Minute:     t.Minute(),
				Second:     t.Second(),
				Nanosecond: t.Nanosecond(),
				Zoned:      true,
				Offset:     offset,
			}, nil
		}
	}
	for _, layout := range plainTimeLayouts {
		if t, err := time.Parse(layout, lexical); err == nil {
			return TimeOfDay{
				Hour:       t.Hour(),
				Minute:     t.Minute(),
				Second:     t.Second(),
				Nanosecond: t.Nanosecond(),
			}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("parse time %q", lexical)
}

func parseDateTime(lexical string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, lexical); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse dateTime %q", lexical)
}

func formatDateTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05.999999999Z07:00")
}

// canonicalLexical rewrites a lexical form to the variant's canonical
// rendering. The second return is false when the variant defines no
// canonical rewriting or the form is not parseable (invalid forms are left
// for Validate to reject).
func canonicalLexical(kind Kind, lexical string) (string, bool) {
	switch kind {
	case KindBoolean:
		switch lexical {
		case "1":
			return "true", true
		case "0":
			return "false", true
		case "true", "false":
			return lexical, true
		}
		return "", false
	case KindInteger:
		b, ok := new(big.Int).SetString(lexical, 10)
		if !ok {
			return "", false
		}
		return b.String(), true
	case KindDecimal:
		r, ok := parseDecimal(lexical)
		if !ok {
			return "", false
		}
		return ratDecimalString(r), true
	case KindDouble:
		return canonicalDouble(lexical)
	case KindDate:
		d, err := parseDate(lexical)
		if err != nil {
			return "", false
		}
		return d.String(), true
	case KindTime:
		t, err := parseTime(lexical)
		if err != nil {
			return "", false
		}
		return t.String(), true
	case KindDateTime:
		t, err := parseDateTime(lexical)
		if err != nil {
			return "", false
		}
		return formatDateTime(t), true
	default:
		return "", false
	}
}

// canonicalDouble renders the canonical xsd:double form: one non-zero digit
// before the point, an upper-case E, no exponent sign for positives and no
// leading exponent zeros. Special values pass through unchanged.
func canonicalDouble(lexical string) (string, bool) {
	switch lexical {
	case "INF", "+INF", "-INF", "NaN":
		return strings.TrimPrefix(lexical, "+"), true
	}
	f, err := parseFloat(lexical)
	if err != nil {
		return "", false
	}
	s := strconv.FormatFloat(f, 'E', -1, 64)
	mantissa, exponent, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	neg := strings.HasPrefix(exponent, "-")
	exponent = strings.TrimLeft(exponent, "+-")
	exponent = strings.TrimLeft(exponent, "0")
	if exponent == "" {
		exponent = "0"
	}
	if neg {
		exponent = "-" + exponent
	}
	return mantissa + "E" + exponent, true
}
