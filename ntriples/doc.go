// Package ntriples renders RDF terms in the N-Triples grammar. It is the
// serialization collaborator the literal model defers to for its
// developer-facing rendering: literal quoting and ECHAR escaping, language
// tag suffixes and datatype annotations.
//
// Only term rendering lives here; statement-level serialization belongs to
// the surrounding graph model.
package ntriples
