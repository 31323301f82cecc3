package literal

import (
	"fmt"
	"hash/fnv"
	"math/big"
	"strings"
	"time"

	"github.com/cdchapman/rdf/errors"
)

// Eql reports strict term equality: the identical instance, or the same
// variant, equal lexical values, case-insensitively equal language tags and
// equal datatypes. This is the identity-level equality used for
// deduplication and hashing.
func (l *Literal) Eql(other *Literal) bool {
	if l == other {
		return true
	}
	if other == nil {
		return false
	}
	return l.kind == other.kind &&
		l.Value() == other.Value() &&
		strings.EqualFold(l.language, other.language) &&
		l.datatype == other.datatype
}

// Hash returns a hash derived from the lexical value alone, consistent with
// Eql's lexical component. Literals unequal under Eql may collide when
// their lexical text matches; that is acceptable for a hash.
func (l *Literal) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(l.Value()))
	return h.Sum64()
}

// TermEqual reports semantic equivalence per the SPARQL term-equality
// rules. Unlike Equal it distinguishes "unequal" from "undecidable": a
// genuinely incomparable pair (two non-coercible datatypes, or a plain
// literal against an unknown datatype) fails with errors.ErrIncomparable
// instead of answering false.
//
// A raw string operand is equal iff the literal is plain and its lexical
// value matches exactly. Operands of any other type are not equal.
func (l *Literal) TermEqual(other any) (bool, error) {
	switch o := other.(type) {
	case *Literal:
		return l.termEqualLiteral(o)
	case string:
		return l.IsPlain() && l.Value() == o, nil
	default:
		return false, nil
	}
}

// Equal is the total comparison operator: TermEqual with the incomparable
// failure masked to false. Callers that need to detect genuine
// incomparability must use TermEqual.
func (l *Literal) Equal(other any) bool {
	eq, err := l.TermEqual(other)
	if err != nil {
		return false
	}
	return eq
}

// termEqualLiteral evaluates the comparison rules in their mandated
// precedence: strict equality, language-tagged comparison, plain
// comparison, value comparison within coercible families, the
// plain-versus-excluded-family rule, then the incomparable residue.
func (l *Literal) termEqualLiteral(o *Literal) (bool, error) {
	if l.Eql(o) {
		return true, nil
	}
	if o == nil {
		return false, nil
	}

	// Both language-tagged: equal tags compare lexically, mismatched tags
	// are definitively unequal.
	if l.HasLanguage() && o.HasLanguage() {
		if !strings.EqualFold(l.language, o.language) {
			return false, nil
		}
		return l.Value() == o.Value(), nil
	}

	// Both plain (or typed exactly xsd:string): lexical comparison.
	if l.isPlainOrString() && o.isPlainOrString() {
		return l.Value() == o.Value(), nil
	}

	// Numeric coercion across the integer/double/decimal family.
	if capabilities[l.kind].numeric && capabilities[o.kind].numeric {
		if eq, ok := numericEqual(l, o); ok {
			return eq, nil
		}
		// Unparseable operands fall through to the incomparable residue.
	} else if l.kind == o.kind {
		if eq, ok := valueEqual(l, o); ok {
			return eq, nil
		}
	}

	// A plain literal against an excluded family (numeric, boolean, date,
	// time, dateTime) is definitively unequal, not undecidable. The
	// capability flag, not a concrete type check, decides membership, which
	// is what lets unknown datatypes fall past this rule.
	if (l.IsPlain() && capabilities[o.kind].excluded) ||
		(o.IsPlain() && capabilities[l.kind].excluded) {
		return false, nil
	}

	return false, errors.WrapInvalid(
		fmt.Errorf("%s literal %q and %s literal %q: %w",
			l.datatypeName(), l.Value(), o.datatypeName(), o.Value(),
			errors.ErrIncomparable),
		"Literal", "TermEqual", "compare literals")
}

// numericEqual compares two numeric literals by value. Double pairs compare
// as floats so the IEEE special values behave (NaN is unequal to
// everything, infinities compare by sign); mixed pairs compare exactly as
// rationals. The second return is false when either lexical form does not
// parse.
func numericEqual(l, o *Literal) (bool, bool) {
	if l.kind == KindDouble && o.kind == KindDouble {
		fa, ea := parseFloat(l.Value())
		fb, eb := parseFloat(o.Value())
		if ea != nil || eb != nil {
			return false, false
		}
		return fa == fb, true
	}

	a, aok := l.numericRat()
	b, bok := o.numericRat()
	if !aok || !bok {
		return false, false
	}
	return a.Cmp(b) == 0, true
}

// numericRat converts the literal's lexical value to an exact rational.
// Doubles convert from their float value; the special values INF and NaN
// have no rational form.
func (l *Literal) numericRat() (*big.Rat, bool) {
	if l.kind == KindDouble {
		f, err := parseFloat(l.Value())
		if err != nil {
			return nil, false
		}
		r := new(big.Rat)
		if r.SetFloat64(f) == nil {
			return nil, false
		}
		return r, true
	}
	return parseDecimal(l.Value())
}

// valueEqual compares two same-kind literals of a non-numeric value-spaced
// variant (boolean, date, time, dateTime) by parsed value, so "1" equals
// "true" and equivalent temporal renderings compare equal. Zoned times
// compare as instants, not wall-clock fields. The second return is false
// for variants without a value comparison or unparseable operands.
func valueEqual(l, o *Literal) (bool, bool) {
	switch l.kind {
	case KindBoolean:
		// Boolean parsing is total, so this never falls through.
		return l.Object() == o.Object(), true
	case KindDate:
		a, aok := l.Object().(Date)
		b, bok := o.Object().(Date)
		if !aok || !bok {
			return false, false
		}
		return a == b, true
	case KindTime:
		a, aok := l.Object().(TimeOfDay)
		b, bok := o.Object().(TimeOfDay)
		if !aok || !bok {
			return false, false
		}
		return a.normalized() == b.normalized(), true
	case KindDateTime:
		a, aok := l.Object().(time.Time)
		b, bok := o.Object().(time.Time)
		if !aok || !bok {
			return false, false
		}
		return a.Equal(b), true
	default:
		return false, false
	}
}
