package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdchapman/rdf"
	stderrors "github.com/cdchapman/rdf/errors"
	"github.com/cdchapman/rdf/vocabulary"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name     string
		lexical  string
		datatype rdf.IRI
		valid    bool
	}{
		{name: "boolean true", lexical: "true", datatype: vocabulary.XSDBoolean, valid: true},
		{name: "boolean numeric", lexical: "1", datatype: vocabulary.XSDBoolean, valid: true},
		{name: "boolean garbage", lexical: "yes", datatype: vocabulary.XSDBoolean, valid: false},
		{name: "integer", lexical: "-42", datatype: vocabulary.XSDInteger, valid: true},
		{name: "integer with sign", lexical: "+7", datatype: vocabulary.XSDInteger, valid: true},
		{name: "integer garbage", lexical: "abc", datatype: vocabulary.XSDInteger, valid: false},
		{name: "integer with decimal point", lexical: "1.0", datatype: vocabulary.XSDInteger, valid: false},
		{name: "decimal", lexical: "3.14", datatype: vocabulary.XSDDecimal, valid: true},
		{name: "decimal bare point", lexical: ".5", datatype: vocabulary.XSDDecimal, valid: true},
		{name: "decimal exponent is invalid", lexical: "1e2", datatype: vocabulary.XSDDecimal, valid: false},
		{name: "double exponent", lexical: "1.5e2", datatype: vocabulary.XSDDouble, valid: true},
		{name: "double INF", lexical: "-INF", datatype: vocabulary.XSDDouble, valid: true},
		{name: "double NaN", lexical: "NaN", datatype: vocabulary.XSDDouble, valid: true},
		{name: "double garbage", lexical: "1.5.2", datatype: vocabulary.XSDDouble, valid: false},
		{name: "date", lexical: "2020-05-01", datatype: vocabulary.XSDDate, valid: true},
		{name: "date with zone", lexical: "2020-05-01Z", datatype: vocabulary.XSDDate, valid: true},
		{name: "date wrong shape", lexical: "01/05/2020", datatype: vocabulary.XSDDate, valid: false},
		{name: "time", lexical: "13:20:00", datatype: vocabulary.XSDTime, valid: true},
		{name: "time with fraction", lexical: "13:20:00.5", datatype: vocabulary.XSDTime, valid: true},
		{name: "dateTime", lexical: "2020-05-01T13:20:00Z", datatype: vocabulary.XSDDateTime, valid: true},
		{name: "dateTime missing T", lexical: "2020-05-01 13:20:00", datatype: vocabulary.XSDDateTime, valid: false},
		{name: "token", lexical: "a b", datatype: vocabulary.XSDToken, valid: true},
		{name: "token double space", lexical: "a  b", datatype: vocabulary.XSDToken, valid: false},
		{name: "token tab", lexical: "a\tb", datatype: vocabulary.XSDToken, valid: false},
		{name: "language tag", lexical: "en-US", datatype: vocabulary.XSDLanguage, valid: true},
		{name: "language tag garbage", lexical: "not a tag", datatype: vocabulary.XSDLanguage, valid: false},
		{name: "plain has no grammar", lexical: "anything at all", datatype: "", valid: true},
		{name: "unknown datatype has no grammar", lexical: "37.2", datatype: "https://example.org/vocab#temperature", valid: true},
		{name: "xml fragment has no grammar", lexical: "<b>bold</b>", datatype: vocabulary.RDFXMLLiteral, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewTyped(tt.lexical, tt.datatype)
			assert.Equal(t, tt.valid, l.Valid())
			assert.Equal(t, !tt.valid, l.Invalid())
		})
	}
}

func TestValidateNamesOffendingForm(t *testing.T) {
	l := NewTyped("abc", vocabulary.XSDInteger)
	err := l.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, stderrors.ErrInvalidLexical)
	assert.Contains(t, err.Error(), `"abc"`)
	assert.Contains(t, err.Error(), "integer")
}

func TestValidateReturnsLiteralUnchanged(t *testing.T) {
	l := NewTyped("42", vocabulary.XSDInteger)
	require.NoError(t, l.Validate())
	assert.Equal(t, "42", l.Value())

	// Idempotent on success.
	require.NoError(t, l.Validate())
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name     string
		lexical  string
		datatype rdf.IRI
		expected string
	}{
		{name: "boolean numeric true", lexical: "1", datatype: vocabulary.XSDBoolean, expected: "true"},
		{name: "boolean numeric false", lexical: "0", datatype: vocabulary.XSDBoolean, expected: "false"},
		{name: "boolean already canonical", lexical: "true", datatype: vocabulary.XSDBoolean, expected: "true"},
		{name: "integer leading zeros", lexical: "0042", datatype: vocabulary.XSDInteger, expected: "42"},
		{name: "integer plus sign", lexical: "+7", datatype: vocabulary.XSDInteger, expected: "7"},
		{name: "integer negative zero", lexical: "-0", datatype: vocabulary.XSDInteger, expected: "0"},
		{name: "decimal trailing zeros", lexical: "2.50", datatype: vocabulary.XSDDecimal, expected: "2.5"},
		{name: "decimal forces point", lexical: "1", datatype: vocabulary.XSDDecimal, expected: "1.0"},
		{name: "decimal bare point", lexical: ".5", datatype: vocabulary.XSDDecimal, expected: "0.5"},
		{name: "double exponent case and padding", lexical: "1.5e2", datatype: vocabulary.XSDDouble, expected: "1.5E2"},
		{name: "double forces mantissa point", lexical: "100", datatype: vocabulary.XSDDouble, expected: "1.0E2"},
		{name: "double zero", lexical: "0", datatype: vocabulary.XSDDouble, expected: "0.0E0"},
		{name: "double negative exponent", lexical: "0.015", datatype: vocabulary.XSDDouble, expected: "1.5E-2"},
		{name: "double INF passes through", lexical: "INF", datatype: vocabulary.XSDDouble, expected: "INF"},
		{name: "time strips trailing fraction zeros", lexical: "13:20:00.500", datatype: vocabulary.XSDTime, expected: "13:20:00.5"},
		{name: "time keeps its timezone", lexical: "13:20:05+01:00", datatype: vocabulary.XSDTime, expected: "13:20:05+01:00"},
		{name: "time renders utc as Z", lexical: "13:20:05+00:00", datatype: vocabulary.XSDTime, expected: "13:20:05Z"},
		{name: "date keeps its timezone", lexical: "2020-05-01+05:00", datatype: vocabulary.XSDDate, expected: "2020-05-01+05:00"},
		{name: "date keeps Z", lexical: "2020-05-01Z", datatype: vocabulary.XSDDate, expected: "2020-05-01Z"},
		{name: "date without timezone stays bare", lexical: "2020-05-01", datatype: vocabulary.XSDDate, expected: "2020-05-01"},
		{name: "invalid form left untouched", lexical: "abc", datatype: vocabulary.XSDInteger, expected: "abc"},
		{name: "plain left untouched", lexical: "Hello", datatype: "", expected: "Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewTyped(tt.lexical, tt.datatype).Canonicalize()
			assert.Equal(t, tt.expected, l.Value())
		})
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	tests := []struct {
		name     string
		lexical  string
		datatype rdf.IRI
	}{
		{name: "integer", lexical: "0042", datatype: vocabulary.XSDInteger},
		{name: "double", lexical: "1.5e2", datatype: vocabulary.XSDDouble},
		{name: "decimal", lexical: "2.50", datatype: vocabulary.XSDDecimal},
		{name: "boolean", lexical: "1", datatype: vocabulary.XSDBoolean},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := NewTyped(tt.lexical, tt.datatype).Canonicalize()
			twice := NewTyped(tt.lexical, tt.datatype).Canonicalize().Canonicalize()
			assert.Equal(t, once.Value(), twice.Value())
			assert.Equal(t, once.Object(), twice.Object())
		})
	}
}

func TestCanonicalizeLowercasesLanguage(t *testing.T) {
	l := NewLang("Hej", "SV")
	assert.Equal(t, "SV", l.Language())

	l.Canonicalize()
	assert.Equal(t, "sv", l.Language())
	assert.Equal(t, "Hej", l.Value())
}

func TestCanonicalReturnsCopy(t *testing.T) {
	l := NewTyped("0042", vocabulary.XSDInteger)
	c := l.Canonical()

	assert.Equal(t, "42", c.Value())
	assert.Equal(t, "0042", l.Value())
	assert.NotSame(t, l, c)
}

func TestCanonicalizeRebuildsNative(t *testing.T) {
	l := NewTyped("0042", vocabulary.XSDInteger)
	require.Equal(t, int64(42), l.Object())

	l.Canonicalize()
	assert.Equal(t, "42", l.Value())
	assert.Equal(t, int64(42), l.Object())
}
