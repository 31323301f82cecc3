package literal

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/cdchapman/rdf"
	"github.com/cdchapman/rdf/errors"
	"github.com/cdchapman/rdf/vocabulary"
)

// Literal is an RDF literal: a lexical form optionally tagged with a
// language or bound to a datatype. The governing variant, language and
// datatype are fixed at construction; the lexical and native
// representations are derived from each other lazily, with cache fills
// guarded by an internal mutex, so literals are safe to read concurrently.
// Canonicalize is a mutation and must not race with readers; use Canonical
// for a copy.
type Literal struct {
	mu         sync.Mutex // guards the lexical/native cache fills
	kind       Kind
	lexical    string
	hasLexical bool
	native     any
	language   string // original case preserved; compared case-insensitively
	datatype   rdf.IRI
}

// Options configures literal construction.
//
// A literal carrying both Language and Datatype is not forbidden here
// (matching the reference behavior) but its semantics are undefined: the
// comparison rules evaluate the language before the datatype. Validate
// rejects the combination.
type Options struct {
	// Language is an optional language tag, e.g. "en" or "en-US".
	Language string
	// Datatype is an optional datatype IRI; it takes precedence over the
	// native value's shape when selecting the variant.
	Datatype rdf.IRI
	// Lexical optionally supplies the lexical form directly.
	Lexical string
	// Kind names the variant explicitly, bypassing dispatch. Used by
	// callers re-entering construction from within a variant.
	Kind Kind
	// Validate rejects construction when the lexical form does not match
	// the variant's grammar.
	Validate bool
	// Canonicalize rewrites the literal to canonical form before returning.
	Canonicalize bool
}

// New constructs a literal from a native value, selecting the variant from
// the value's runtime shape: bool, the machine integer widths, floats,
// *big.Rat, time.Time, Date, TimeOfDay and Token map to their datatype
// variants; strings and everything else become plain literals.
func New(value any) *Literal {
	l, _ := NewWith(value, Options{})
	return l
}

// NewLang constructs a language-tagged literal.
func NewLang(value any, language string) *Literal {
	l, _ := NewWith(value, Options{Language: language})
	return l
}

// NewTyped constructs a literal bound to the given datatype. Unrecognized
// datatypes fall back to the generic variant, never an error.
func NewTyped(value any, datatype rdf.IRI) *Literal {
	l, _ := NewWith(value, Options{Datatype: datatype})
	return l
}

// NewWith constructs a literal with full control over construction. It only
// fails when Options.Validate is set and the lexical form does not satisfy
// the variant's grammar, or when validation is requested for the undefined
// language-plus-datatype combination.
func NewWith(value any, opts Options) (*Literal, error) {
	kind := opts.Kind
	if kind == KindUnspecified {
		if !opts.Datatype.IsZero() {
			kind = KindForDatatype(opts.Datatype)
		} else {
			kind = KindForValue(value)
		}
	}

	datatype := opts.Datatype
	if datatype.IsZero() {
		// A variant selected from the native value's shape carries its
		// family datatype; only string-shaped values stay plain.
		datatype = implicitDatatype(kind)
	}

	l := &Literal{
		kind:     kind,
		language: opts.Language,
		datatype: datatype,
	}

	if opts.Lexical != "" {
		l.lexical = opts.Lexical
		l.hasLexical = true
	}

	switch v := value.(type) {
	case nil:
		// Lexical-only construction; an absent lexical means the empty
		// string literal.
		l.hasLexical = true
	case string:
		if !l.hasLexical {
			l.lexical = v
			l.hasLexical = true
		}
	case Token:
		if !l.hasLexical {
			l.lexical = string(v)
			l.hasLexical = true
		}
		l.native = v
	default:
		l.native = normalizeNative(v)
	}

	if opts.Validate {
		if l.language != "" && !l.datatype.IsZero() {
			return nil, errors.WrapInvalid(
				fmt.Errorf("language %q with datatype %q: %w",
					l.language, l.datatype, errors.ErrLanguageWithDatatype),
				"Literal", "NewWith", "validate construction")
		}
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}

	if opts.Canonicalize {
		l.Canonicalize()
	}

	return l, nil
}

// implicitDatatype returns the datatype a variant implies when none is
// given explicitly. String, generic and XML variants imply none.
func implicitDatatype(kind Kind) rdf.IRI {
	switch kind {
	case KindBoolean:
		return vocabulary.XSDBoolean
	case KindInteger:
		return vocabulary.XSDInteger
	case KindDouble:
		return vocabulary.XSDDouble
	case KindDecimal:
		return vocabulary.XSDDecimal
	case KindDate:
		return vocabulary.XSDDate
	case KindTime:
		return vocabulary.XSDTime
	case KindDateTime:
		return vocabulary.XSDDateTime
	case KindToken:
		return vocabulary.XSDToken
	default:
		return ""
	}
}

// Kind returns the variant governing this literal.
func (l *Literal) Kind() Kind { return l.kind }

// Language returns the language tag with its original case, or "" when
// absent. Language tags compare case-insensitively; Canonicalize
// lower-cases them.
func (l *Literal) Language() string { return l.language }

// Datatype returns the datatype IRI, or the zero IRI when absent.
func (l *Literal) Datatype() rdf.IRI { return l.datatype }

// Value returns the lexical form, rendering it from the native value on
// first use. Typed variants cache the rendering; plain literals re-render
// each call.
func (l *Literal) Value() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value()
}

// value implements Value; callers must hold mu.
func (l *Literal) value() string {
	if l.hasLexical {
		return l.lexical
	}
	s := renderNative(l.kind, l.native)
	if l.kind != KindString {
		l.lexical = s
		l.hasLexical = true
	}
	return s
}

// Object returns the native value, parsing the lexical form on first use.
// The conversion is best-effort: a lexical form the variant's grammar
// rejects yields nil rather than an error. Callers that need strict
// parsing must Validate first.
func (l *Literal) Object() any {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.native != nil {
		return l.native
	}
	if !l.hasLexical {
		return nil
	}
	v, err := parseNative(l.kind, l.lexical)
	if err != nil {
		return nil
	}
	l.native = v
	return v
}

// String returns the raw lexical form, independent of any wire syntax. Use
// ntriples.FormatLiteral for the developer-facing serialized rendering.
func (l *Literal) String() string { return l.Value() }

// IsPlain reports whether the literal has neither language nor datatype.
func (l *Literal) IsPlain() bool {
	return l.language == "" && l.datatype.IsZero()
}

// IsSimple reports a simple literal; alias of IsPlain, kept for RDF 1.0
// terminology.
func (l *Literal) IsSimple() bool { return l.IsPlain() }

// HasLanguage reports whether a language tag is present.
func (l *Literal) HasLanguage() bool { return l.language != "" }

// HasDatatype reports whether a datatype is present. Note a literal typed
// exactly as xsd:string reports true here but still compares as plain.
func (l *Literal) HasDatatype() bool { return !l.datatype.IsZero() }

// isPlainOrString reports plain-or-xsd:string, the grouping the semantic
// equality rules treat as plain.
func (l *Literal) isPlainOrString() bool {
	return l.language == "" &&
		(l.datatype.IsZero() || l.datatype == vocabulary.XSDString)
}

// grammar returns the lexical grammar governing this literal, or nil when
// the variant defines none. xsd:language narrows the token grammar.
func (l *Literal) grammar() *regexp.Regexp {
	if l.kind == KindToken && l.datatype == vocabulary.XSDLanguage {
		return languageGrammar
	}
	return capabilities[l.kind].grammar
}

// Valid reports whether the lexical form matches the variant's grammar.
// Variants without a grammar are always valid.
func (l *Literal) Valid() bool {
	g := l.grammar()
	if g == nil {
		return true
	}
	return g.MatchString(l.Value())
}

// Invalid is the negation of Valid.
func (l *Literal) Invalid() bool { return !l.Valid() }

// Validate returns an invalid-classified error naming the offending lexical
// form and datatype when the literal is invalid. On success it returns nil
// and the literal is unchanged.
func (l *Literal) Validate() error {
	if l.Valid() {
		return nil
	}
	return errors.WrapInvalid(
		fmt.Errorf("%q is not a valid %s lexical form: %w",
			l.Value(), l.datatypeName(), errors.ErrInvalidLexical),
		"Literal", "Validate", "check lexical form")
}

// datatypeName names the governing datatype for error messages: the
// explicit datatype's local name when present, the variant name otherwise.
func (l *Literal) datatypeName() string {
	if !l.datatype.IsZero() {
		return vocabulary.LocalName(l.datatype)
	}
	return l.kind.String()
}

// Canonicalize rewrites the literal in place to canonical form: the
// language tag is lower-cased and the lexical form is rewritten to the
// variant's canonical rendering (e.g. stripped leading zeros for integers,
// upper-case E and minimal exponent for doubles). Invalid lexical forms are
// left untouched. Returns the receiver; idempotent.
func (l *Literal) Canonicalize() *Literal {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.language = strings.ToLower(l.language)
	if canon, ok := canonicalLexical(l.kind, l.value()); ok {
		l.lexical = canon
		l.hasLexical = true
		// The canonical form reparses to the same value; drop the cache so
		// the next Object call rebuilds it from the canonical lexical.
		l.native = nil
	}
	return l
}

// Canonical returns a canonicalized copy, leaving the receiver untouched.
func (l *Literal) Canonical() *Literal {
	l.mu.Lock()
	c := &Literal{
		kind:       l.kind,
		lexical:    l.lexical,
		hasLexical: l.hasLexical,
		native:     l.native,
		language:   l.language,
		datatype:   l.datatype,
	}
	l.mu.Unlock()
	return c.Canonicalize()
}
