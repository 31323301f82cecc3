package stream

import (
	"github.com/cdchapman/rdf"
	"github.com/cdchapman/rdf/literal"
)

// Record is the wire form of a literal in flight.
type Record struct {
	// ID identifies the record; the canonicalizer assigns one when absent.
	ID string `json:"id,omitempty"`

	// Value is the lexical form.
	Value string `json:"value"`

	// Language is an optional language tag.
	Language string `json:"language,omitempty"`

	// Datatype is an optional datatype IRI.
	Datatype string `json:"datatype,omitempty"`

	// Canonical marks records the canonicalizer has already rewritten.
	Canonical bool `json:"canonical,omitempty"`
}

// Literal builds the literal the record describes. With validate set,
// construction fails when the lexical form does not satisfy the datatype
// grammar.
func (r Record) Literal(validate bool) (*literal.Literal, error) {
	return literal.NewWith(r.Value, literal.Options{
		Language: r.Language,
		Datatype: rdf.IRI(r.Datatype),
		Validate: validate,
	})
}

// recordFromLiteral renders a literal back to its wire form, preserving the
// record identity.
func recordFromLiteral(id string, l *literal.Literal) Record {
	return Record{
		ID:        id,
		Value:     l.Value(),
		Language:  l.Language(),
		Datatype:  l.Datatype().String(),
		Canonical: true,
	}
}
