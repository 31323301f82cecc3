// Package rdf provides the RDF literal value model and its equivalence
// engine, plus the minimal term glue the engine consumes.
//
// # Architecture
//
// The module is split by concern:
//
//   - rdf (this package): the IRI datatype identifier and the Term interface
//     the literal engine consumes. The surrounding term/graph model is an
//     external collaborator; only its identifier shape lives here.
//   - vocabulary: XSD and RDF datatype IRIs and namespace helpers.
//   - literal: the literal value type — variant dispatch, lexical/native
//     conversion, strict and semantic equality, validation and
//     canonicalization.
//   - ntriples: N-Triples rendering of terms, used as the developer-facing
//     serialization surface.
//   - stream, metric, config, cmd/rdf-canonicalizer: a JetStream service
//     that validates and canonicalizes literal records in flight, with
//     Prometheus instrumentation.
//
// # Equality
//
// Literals carry two distinct notions of equality. Strict term equality
// (Literal.Eql) is identity-level: same variant, same lexical value, same
// language and datatype. Semantic equivalence (Literal.TermEqual) follows
// the SPARQL term-equality rules, coerces across the numeric family, and
// distinguishes "unequal" from "incomparable": genuinely undecidable
// comparisons fail with errors.ErrIncomparable rather than answering false.
// Literal.Equal is the total form that masks incomparability to false.
package rdf
