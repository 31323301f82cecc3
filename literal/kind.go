package literal

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"time"

	"github.com/cdchapman/rdf"
	"github.com/cdchapman/rdf/vocabulary"
)

// Kind identifies the concrete variant governing a literal. The set is
// closed: every literal is governed by exactly one of these, selected at
// construction and immutable afterward.
type Kind int

const (
	// KindUnspecified selects the variant by dispatch (see Options.Kind).
	KindUnspecified Kind = iota
	// KindString governs plain literals and xsd:string.
	KindString
	// KindGeneric governs literals typed with a datatype the registry does
	// not recognize.
	KindGeneric
	// KindBoolean governs xsd:boolean.
	KindBoolean
	// KindInteger governs xsd:integer and its range refinements.
	KindInteger
	// KindDouble governs xsd:float and xsd:double.
	KindDouble
	// KindDecimal governs xsd:decimal.
	KindDecimal
	// KindDate governs xsd:date.
	KindDate
	// KindTime governs xsd:time.
	KindTime
	// KindDateTime governs xsd:dateTime.
	KindDateTime
	// KindToken governs xsd:token and xsd:language.
	KindToken
	// KindXML governs rdf:XMLLiteral fragments.
	KindXML
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindGeneric:
		return "generic"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	case KindDecimal:
		return "decimal"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindDateTime:
		return "dateTime"
	case KindToken:
		return "token"
	case KindXML:
		return "xml"
	default:
		return "unspecified"
	}
}

// capability is the per-variant contract the core consults instead of
// switching on concrete kinds: the lexical grammar (nil means no lexical
// constraint), whether the variant's family is excluded from comparison
// against plain literals, and whether it participates in numeric coercion.
type capability struct {
	grammar  *regexp.Regexp
	excluded bool
	numeric  bool
}

// Lexical grammars. Full-string matches; refinement facets (value ranges,
// enumerations) are per-datatype detail outside this module.
var (
	booleanGrammar  = regexp.MustCompile(`^(?:true|false|1|0)$`)
	integerGrammar  = regexp.MustCompile(`^[+-]?[0-9]+$`)
	decimalGrammar  = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)$`)
	doubleGrammar   = regexp.MustCompile(`^(?:[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?|[+-]?INF|NaN)$`)
	dateGrammar     = regexp.MustCompile(`^-?[0-9]{4,}-[0-9]{2}-[0-9]{2}(?:Z|[+-][0-9]{2}:[0-9]{2})?$`)
	timeGrammar     = regexp.MustCompile(`^[0-9]{2}:[0-9]{2}:[0-9]{2}(?:\.[0-9]+)?(?:Z|[+-][0-9]{2}:[0-9]{2})?$`)
	dateTimeGrammar = regexp.MustCompile(`^-?[0-9]{4,}-[0-9]{2}-[0-9]{2}T[0-9]{2}:[0-9]{2}:[0-9]{2}(?:\.[0-9]+)?(?:Z|[+-][0-9]{2}:[0-9]{2})?$`)
	tokenGrammar    = regexp.MustCompile(`^(?:\S+(?: \S+)*)?$`)
	languageGrammar = regexp.MustCompile(`^[a-zA-Z]{1,8}(?:-[a-zA-Z0-9]{1,8})*$`)
)

// capabilities is the variant contract table. Immutable after package
// initialization; dispatch and equality read it, nothing writes it.
var capabilities = map[Kind]capability{
	KindString:   {},
	KindGeneric:  {},
	KindBoolean:  {grammar: booleanGrammar, excluded: true},
	KindInteger:  {grammar: integerGrammar, excluded: true, numeric: true},
	KindDouble:   {grammar: doubleGrammar, excluded: true, numeric: true},
	KindDecimal:  {grammar: decimalGrammar, excluded: true, numeric: true},
	KindDate:     {grammar: dateGrammar, excluded: true},
	KindTime:     {grammar: timeGrammar, excluded: true},
	KindDateTime: {grammar: dateTimeGrammar, excluded: true},
	KindToken:    {grammar: tokenGrammar},
	KindXML:      {},
}

// datatypeKinds maps datatype IRIs to variants. Immutable after package
// initialization.
var datatypeKinds = map[rdf.IRI]Kind{
	vocabulary.XSDString: KindString,

	vocabulary.XSDBoolean: KindBoolean,

	vocabulary.XSDInteger:            KindInteger,
	vocabulary.XSDLong:               KindInteger,
	vocabulary.XSDInt:                KindInteger,
	vocabulary.XSDShort:              KindInteger,
	vocabulary.XSDByte:               KindInteger,
	vocabulary.XSDNonNegativeInteger: KindInteger,
	vocabulary.XSDNonPositiveInteger: KindInteger,
	vocabulary.XSDNegativeInteger:    KindInteger,
	vocabulary.XSDPositiveInteger:    KindInteger,
	vocabulary.XSDUnsignedLong:       KindInteger,
	vocabulary.XSDUnsignedInt:        KindInteger,
	vocabulary.XSDUnsignedShort:      KindInteger,
	vocabulary.XSDUnsignedByte:       KindInteger,

	vocabulary.XSDFloat:   KindDouble,
	vocabulary.XSDDouble:  KindDouble,
	vocabulary.XSDDecimal: KindDecimal,

	vocabulary.XSDDate:     KindDate,
	vocabulary.XSDTime:     KindTime,
	vocabulary.XSDDateTime: KindDateTime,

	vocabulary.XSDToken:    KindToken,
	vocabulary.XSDLanguage: KindToken,

	vocabulary.RDFXMLLiteral: KindXML,
}

// KindForDatatype returns the variant governing the given datatype IRI.
// Unrecognized datatypes map to KindGeneric; dispatch never fails.
func KindForDatatype(datatype rdf.IRI) Kind {
	if datatype.IsZero() {
		return KindString
	}
	if k, ok := datatypeKinds[datatype]; ok {
		return k
	}
	return KindGeneric
}

// KindForValue returns the variant for a native value's runtime shape. Used
// only when no explicit datatype is given; anything unrecognized is a plain
// string literal.
func KindForValue(value any) Kind {
	switch value.(type) {
	case bool:
		return KindBoolean
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, *big.Int:
		return KindInteger
	case float32, float64:
		return KindDouble
	case *big.Rat:
		return KindDecimal
	case time.Time:
		return KindDateTime
	case Date:
		return KindDate
	case TimeOfDay:
		return KindTime
	case Token:
		return KindToken
	default:
		return KindString
	}
}

// normalizeNative widens machine integer types to int64 (or *big.Int when
// out of range) and float32 to float64, so the cache holds one
// representation per variant.
func normalizeNative(value any) any {
	switch v := value.(type) {
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case uint:
		return uint64ToNative(uint64(v))
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return uint64ToNative(v)
	case float32:
		return float64(v)
	default:
		return value
	}
}

func uint64ToNative(v uint64) any {
	if v > math.MaxInt64 {
		return new(big.Int).SetUint64(v)
	}
	return int64(v)
}

// Date is a calendar date without a time-of-day component, the native value
// of xsd:date literals.
type Date struct {
	Year  int
	Month time.Month
	Day   int

	// Zoned marks an explicit timezone; Offset is its UTC offset in
	// seconds east.
	Zoned  bool
	Offset int
}

// String renders the date in its canonical YYYY-MM-DD form, keeping an
// explicit timezone.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day) +
		zoneSuffix(d.Zoned, d.Offset)
}

// TimeOfDay is a wall-clock time without a date component, the native value
// of xsd:time literals.
type TimeOfDay struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int

	// Zoned marks an explicit timezone; Offset is its UTC offset in
	// seconds east.
	Zoned  bool
	Offset int
}

// String renders the time in its canonical hh:mm:ss[.fff] form, keeping an
// explicit timezone.
func (t TimeOfDay) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond > 0 {
		frac := fmt.Sprintf("%09d", t.Nanosecond)
		for len(frac) > 1 && frac[len(frac)-1] == '0' {
			frac = frac[:len(frac)-1]
		}
		s += "." + frac
	}
	return s + zoneSuffix(t.Zoned, t.Offset)
}

// normalized shifts a zoned time to UTC so equal instants compare equal
// regardless of the offset they were written in. Unzoned times are returned
// unchanged and never compare equal to zoned ones.
func (t TimeOfDay) normalized() TimeOfDay {
	if !t.Zoned {
		return t
	}
	sec := (t.Hour*3600 + t.Minute*60 + t.Second - t.Offset) % 86400
	if sec < 0 {
		sec += 86400
	}
	return TimeOfDay{
		Hour:       sec / 3600,
		Minute:     sec % 3600 / 60,
		Second:     sec % 60,
		Nanosecond: t.Nanosecond,
		Zoned:      true,
	}
}

// zoneSuffix renders an explicit timezone: Z for UTC, ±hh:mm otherwise.
func zoneSuffix(zoned bool, offset int) string {
	if !zoned {
		return ""
	}
	if offset == 0 {
		return "Z"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("%s%02d:%02d", sign, offset/3600, offset%3600/60)
}

// Token is a symbolic token value. Constructing a literal from a Token
// selects the token variant instead of the plain string variant.
type Token string
