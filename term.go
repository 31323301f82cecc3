package rdf

// IRI is an immutable internationalized resource identifier. It is the
// datatype identifier type for literals: equality is exact string identity,
// and the zero value means "no datatype". Many literals may share the same
// well-known IRI (e.g. xsd:integer); IRIs are plain values and safe to copy.
type IRI string

// String returns the IRI as a string.
func (i IRI) String() string { return string(i) }

// IsZero reports whether the IRI is absent.
func (i IRI) IsZero() bool { return i == "" }

// Term is the minimal surface of the external term model that this module
// consumes. Literals and IRIs are terms; blank nodes and triples belong to
// the surrounding graph model and are out of scope here.
type Term interface {
	// String returns the raw textual form of the term, independent of any
	// wire syntax. Serialization to a concrete syntax is the ntriples
	// package's job.
	String() string
}
