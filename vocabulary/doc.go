// Package vocabulary provides the W3C datatype identifiers the literal
// engine dispatches on.
//
// The constants are rdf.IRI values for the XML Schema datatypes and the RDF
// Concepts vocabulary. They are documentation-grade identifiers: the engine
// compares them as opaque strings and attaches no grammar knowledge here.
//
// References:
//   - XML Schema Datatypes: https://www.w3.org/TR/xmlschema11-2/
//   - RDF Concepts: https://www.w3.org/TR/rdf11-concepts/
package vocabulary
