// Package literal implements the RDF literal value type and its
// equivalence engine.
//
// A literal is a lexical form optionally tagged with a language or bound to
// a datatype IRI. Each literal is governed by exactly one variant (Kind),
// fixed at construction: the factory selects it from the explicit datatype
// when one is given, otherwise from the runtime shape of the native value.
// Unrecognized datatypes fall back to the generic variant; dispatch never
// fails.
//
// Literals are value objects. After construction only two things ever
// change: the lexical/native caches fill lazily (write-once, behind an
// internal mutex, so concurrent readers are safe) and Canonicalize rewrites
// the lexical form to the datatype's canonical rendering. Canonicalize is a
// mutation and needs the same external synchronization as any other write.
// Everything observable is otherwise immutable.
//
// Equality comes in two non-interchangeable operations. Eql is strict term
// identity (variant + lexical value + language + datatype). TermEqual is
// SPARQL semantic equivalence: it coerces across the numeric family and
// fails with errors.ErrIncomparable when a comparison is genuinely
// undecidable, e.g. a plain literal against an unknown datatype. Equal is
// the total operator that masks that failure to false.
//
// Rendering a literal into a wire syntax is the ntriples package's job.
package literal
