package literal

import (
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdchapman/rdf"
	stderrors "github.com/cdchapman/rdf/errors"
	"github.com/cdchapman/rdf/vocabulary"
)

func TestKindForDatatype(t *testing.T) {
	tests := []struct {
		name     string
		datatype rdf.IRI
		expected Kind
	}{
		{
			name:     "absent datatype is plain string",
			datatype: "",
			expected: KindString,
		},
		{
			name:     "xsd string",
			datatype: vocabulary.XSDString,
			expected: KindString,
		},
		{
			name:     "xsd boolean",
			datatype: vocabulary.XSDBoolean,
			expected: KindBoolean,
		},
		{
			name:     "xsd integer",
			datatype: vocabulary.XSDInteger,
			expected: KindInteger,
		},
		{
			name:     "unsigned refinement dispatches to integer",
			datatype: vocabulary.XSDUnsignedShort,
			expected: KindInteger,
		},
		{
			name:     "negative refinement dispatches to integer",
			datatype: vocabulary.XSDNegativeInteger,
			expected: KindInteger,
		},
		{
			name:     "xsd float shares the double variant",
			datatype: vocabulary.XSDFloat,
			expected: KindDouble,
		},
		{
			name:     "xsd decimal",
			datatype: vocabulary.XSDDecimal,
			expected: KindDecimal,
		},
		{
			name:     "xsd date",
			datatype: vocabulary.XSDDate,
			expected: KindDate,
		},
		{
			name:     "xsd time",
			datatype: vocabulary.XSDTime,
			expected: KindTime,
		},
		{
			name:     "xsd dateTime",
			datatype: vocabulary.XSDDateTime,
			expected: KindDateTime,
		},
		{
			name:     "xsd language shares the token variant",
			datatype: vocabulary.XSDLanguage,
			expected: KindToken,
		},
		{
			name:     "rdf XMLLiteral",
			datatype: vocabulary.RDFXMLLiteral,
			expected: KindXML,
		},
		{
			name:     "unrecognized datatype falls back to generic",
			datatype: "https://example.org/vocab#temperature",
			expected: KindGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindForDatatype(tt.datatype))
		})
	}
}

func TestKindForValue(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected Kind
	}{
		{name: "bool", value: true, expected: KindBoolean},
		{name: "int", value: 42, expected: KindInteger},
		{name: "int64", value: int64(42), expected: KindInteger},
		{name: "uint32", value: uint32(7), expected: KindInteger},
		{name: "float64", value: 3.14, expected: KindDouble},
		{name: "big rat", value: big.NewRat(1, 2), expected: KindDecimal},
		{name: "time.Time", value: time.Now(), expected: KindDateTime},
		{name: "date", value: Date{Year: 2020, Month: time.May, Day: 1}, expected: KindDate},
		{name: "time of day", value: TimeOfDay{Hour: 13, Minute: 20}, expected: KindTime},
		{name: "token", value: Token("tok"), expected: KindToken},
		{name: "string", value: "hello", expected: KindString},
		{name: "unrecognized shape is plain", value: struct{ X int }{1}, expected: KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindForValue(tt.value))
		})
	}
}

func TestNewFromNativeValues(t *testing.T) {
	tests := []struct {
		name         string
		value        any
		expectedKind Kind
		expectedLex  string
		expectedDT   rdf.IRI
	}{
		{
			name:         "integer",
			value:        42,
			expectedKind: KindInteger,
			expectedLex:  "42",
			expectedDT:   vocabulary.XSDInteger,
		},
		{
			name:         "negative integer",
			value:        -7,
			expectedKind: KindInteger,
			expectedLex:  "-7",
			expectedDT:   vocabulary.XSDInteger,
		},
		{
			name:         "boolean",
			value:        true,
			expectedKind: KindBoolean,
			expectedLex:  "true",
			expectedDT:   vocabulary.XSDBoolean,
		},
		{
			name:         "double",
			value:        3.25,
			expectedKind: KindDouble,
			expectedLex:  "3.25",
			expectedDT:   vocabulary.XSDDouble,
		},
		{
			name:         "decimal",
			value:        big.NewRat(5, 2),
			expectedKind: KindDecimal,
			expectedLex:  "2.5",
			expectedDT:   vocabulary.XSDDecimal,
		},
		{
			name:         "date",
			value:        Date{Year: 2020, Month: time.May, Day: 1},
			expectedKind: KindDate,
			expectedLex:  "2020-05-01",
			expectedDT:   vocabulary.XSDDate,
		},
		{
			name:         "time of day",
			value:        TimeOfDay{Hour: 13, Minute: 20, Second: 5},
			expectedKind: KindTime,
			expectedLex:  "13:20:05",
			expectedDT:   vocabulary.XSDTime,
		},
		{
			name:         "plain string",
			value:        "hello",
			expectedKind: KindString,
			expectedLex:  "hello",
			expectedDT:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.value)
			assert.Equal(t, tt.expectedKind, l.Kind())
			assert.Equal(t, tt.expectedLex, l.Value())
			assert.Equal(t, tt.expectedDT, l.Datatype())
		})
	}
}

func TestObjectParsesLexicalForms(t *testing.T) {
	tests := []struct {
		name     string
		lexical  string
		datatype rdf.IRI
		expected any
	}{
		{
			name:     "integer",
			lexical:  "42",
			datatype: vocabulary.XSDInteger,
			expected: int64(42),
		},
		{
			name:     "boolean true",
			lexical:  "true",
			datatype: vocabulary.XSDBoolean,
			expected: true,
		},
		{
			name:     "boolean numeric form",
			lexical:  "1",
			datatype: vocabulary.XSDBoolean,
			expected: true,
		},
		{
			name:     "boolean treats anything else as false",
			lexical:  "whatever",
			datatype: vocabulary.XSDBoolean,
			expected: false,
		},
		{
			name:     "double",
			lexical:  "1.5e2",
			datatype: vocabulary.XSDDouble,
			expected: float64(150),
		},
		{
			name:     "date",
			lexical:  "2020-05-01",
			datatype: vocabulary.XSDDate,
			expected: Date{Year: 2020, Month: time.May, Day: 1},
		},
		{
			name:     "time",
			lexical:  "13:20:05",
			datatype: vocabulary.XSDTime,
			expected: TimeOfDay{Hour: 13, Minute: 20, Second: 5},
		},
		{
			name:     "string datatype returns lexical unchanged",
			lexical:  "hello",
			datatype: vocabulary.XSDString,
			expected: "hello",
		},
		{
			name:     "unknown datatype returns lexical unchanged",
			lexical:  "37.2",
			datatype: "https://example.org/vocab#temperature",
			expected: "37.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewTyped(tt.lexical, tt.datatype)
			assert.Equal(t, tt.expected, l.Object())
		})
	}
}

func TestObjectDecimal(t *testing.T) {
	l := NewTyped("2.5", vocabulary.XSDDecimal)
	r, ok := l.Object().(*big.Rat)
	require.True(t, ok)
	assert.Zero(t, r.Cmp(big.NewRat(5, 2)))
}

func TestObjectDateTime(t *testing.T) {
	l := NewTyped("2002-04-02T12:00:00Z", vocabulary.XSDDateTime)
	ts, ok := l.Object().(time.Time)
	require.True(t, ok)
	assert.True(t, ts.Equal(time.Date(2002, time.April, 2, 12, 0, 0, 0, time.UTC)))
}

func TestObjectBigInteger(t *testing.T) {
	// Beyond int64: parse widens to big.Int instead of failing.
	l := NewTyped("18446744073709551616", vocabulary.XSDInteger)
	b, ok := l.Object().(*big.Int)
	require.True(t, ok)
	assert.Equal(t, "18446744073709551616", b.String())
}

func TestObjectMalformedLexicalIsNil(t *testing.T) {
	// Best-effort conversion: strict rejection is Validate's job.
	l := NewTyped("abc", vocabulary.XSDInteger)
	assert.Nil(t, l.Object())
	require.Error(t, l.Validate())
}

func TestRoundTrip(t *testing.T) {
	// Canonical lexical -> native -> lexical for each datatype family.
	tests := []struct {
		name     string
		lexical  string
		datatype rdf.IRI
	}{
		{name: "boolean", lexical: "true", datatype: vocabulary.XSDBoolean},
		{name: "integer", lexical: "-42", datatype: vocabulary.XSDInteger},
		{name: "decimal", lexical: "2.5", datatype: vocabulary.XSDDecimal},
		{name: "double", lexical: "150", datatype: vocabulary.XSDDouble},
		{name: "double special value", lexical: "-INF", datatype: vocabulary.XSDDouble},
		{name: "date", lexical: "2020-05-01", datatype: vocabulary.XSDDate},
		{name: "date with zone", lexical: "2020-05-01+05:00", datatype: vocabulary.XSDDate},
		{name: "time", lexical: "13:20:05", datatype: vocabulary.XSDTime},
		{name: "time with zone", lexical: "13:20:05Z", datatype: vocabulary.XSDTime},
		{name: "dateTime", lexical: "2002-04-02T12:00:00Z", datatype: vocabulary.XSDDateTime},
		{name: "token", lexical: "abc", datatype: vocabulary.XSDToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			native := NewTyped(tt.lexical, tt.datatype).Object()
			require.NotNil(t, native)

			back := NewTyped(native, tt.datatype)
			assert.Equal(t, tt.lexical, back.Value())
		})
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name        string
		literal     *Literal
		plain       bool
		hasLanguage bool
		hasDatatype bool
	}{
		{
			name:        "plain",
			literal:     New("hello"),
			plain:       true,
			hasLanguage: false,
			hasDatatype: false,
		},
		{
			name:        "language tagged",
			literal:     NewLang("hello", "en"),
			plain:       false,
			hasLanguage: true,
			hasDatatype: false,
		},
		{
			name:        "typed",
			literal:     NewTyped("42", vocabulary.XSDInteger),
			plain:       false,
			hasLanguage: false,
			hasDatatype: true,
		},
		{
			name:        "xsd string typed literal is not plain but compares as plain",
			literal:     NewTyped("hello", vocabulary.XSDString),
			plain:       false,
			hasLanguage: false,
			hasDatatype: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.plain, tt.literal.IsPlain())
			assert.Equal(t, tt.plain, tt.literal.IsSimple())
			assert.Equal(t, tt.hasLanguage, tt.literal.HasLanguage())
			assert.Equal(t, tt.hasDatatype, tt.literal.HasDatatype())
		})
	}
}

func TestNewWithValidate(t *testing.T) {
	l, err := NewWith("42", Options{Datatype: vocabulary.XSDInteger, Validate: true})
	require.NoError(t, err)
	assert.Equal(t, "42", l.Value())

	_, err = NewWith("abc", Options{Datatype: vocabulary.XSDInteger, Validate: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, stderrors.ErrInvalidLexical)
	assert.True(t, stderrors.IsInvalid(err))
}

func TestNewWithRejectsLanguageAndDatatype(t *testing.T) {
	// The combination is undefined; construction allows it, validation
	// rejects it.
	l, err := NewWith("hello", Options{Language: "en", Datatype: vocabulary.XSDToken})
	require.NoError(t, err)
	assert.True(t, l.HasLanguage())
	assert.True(t, l.HasDatatype())

	_, err = NewWith("hello", Options{
		Language: "en",
		Datatype: vocabulary.XSDToken,
		Validate: true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, stderrors.ErrLanguageWithDatatype)
}

func TestNewWithExplicitKind(t *testing.T) {
	// Re-entrant construction bypasses dispatch entirely.
	l, err := NewWith("42", Options{Kind: KindDecimal})
	require.NoError(t, err)
	assert.Equal(t, KindDecimal, l.Kind())
	assert.Equal(t, vocabulary.XSDDecimal, l.Datatype())
}

func TestNewWithCanonicalize(t *testing.T) {
	l, err := NewWith("0042", Options{Datatype: vocabulary.XSDInteger, Canonicalize: true})
	require.NoError(t, err)
	assert.Equal(t, "42", l.Value())
}

func TestNewWithExplicitLexical(t *testing.T) {
	l, err := NewWith(int64(150), Options{
		Datatype: vocabulary.XSDDouble,
		Lexical:  "1.5E2",
	})
	require.NoError(t, err)
	assert.Equal(t, "1.5E2", l.Value())
}

func TestSharedConstants(t *testing.T) {
	assert.True(t, True.Eql(New(true)))
	assert.True(t, False.Eql(New(false)))
	assert.True(t, Zero.Eql(New(0)))

	assert.Equal(t, true, True.Object())
	assert.Equal(t, false, False.Object())
	assert.Equal(t, int64(0), Zero.Object())
}

func TestConcurrentReads(t *testing.T) {
	// Lazy cache fills race without the internal mutex; run with -race.
	fromLexical := NewTyped("42", vocabulary.XSDInteger)
	fromNative := New(big.NewRat(5, 2))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, int64(42), fromLexical.Object())
			assert.Equal(t, "42", fromLexical.Value())
			assert.Equal(t, "2.5", fromNative.Value())
			assert.True(t, fromLexical.Valid())
		}()
	}
	wg.Wait()
}

func TestStringReturnsRawLexical(t *testing.T) {
	assert.Equal(t, "42", NewTyped("42", vocabulary.XSDInteger).String())
	assert.Equal(t, "hello", NewLang("hello", "en").String())
}
