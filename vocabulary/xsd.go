package vocabulary

import (
	"strings"

	"github.com/cdchapman/rdf"
)

// Namespace base IRIs.
const (
	// XSDNamespace is the XML Schema datatype namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

	// RDFNamespace is the RDF Concepts vocabulary namespace.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
)

// String and token datatypes.
const (
	// XSDString is the generic string datatype. Literals typed with it are
	// treated as plain for comparison purposes.
	XSDString = rdf.IRI(XSDNamespace + "string")

	// XSDToken is a whitespace-normalized string.
	XSDToken = rdf.IRI(XSDNamespace + "token")

	// XSDLanguage is a natural-language identifier per BCP 47.
	XSDLanguage = rdf.IRI(XSDNamespace + "language")
)

// Boolean datatype.
const (
	// XSDBoolean admits the lexical forms true, false, 1 and 0.
	XSDBoolean = rdf.IRI(XSDNamespace + "boolean")
)

// Numeric datatypes. The integer refinements all dispatch to the integer
// variant; their range facets are per-datatype detail outside this module.
const (
	XSDInteger            = rdf.IRI(XSDNamespace + "integer")
	XSDLong               = rdf.IRI(XSDNamespace + "long")
	XSDInt                = rdf.IRI(XSDNamespace + "int")
	XSDShort              = rdf.IRI(XSDNamespace + "short")
	XSDByte               = rdf.IRI(XSDNamespace + "byte")
	XSDNonNegativeInteger = rdf.IRI(XSDNamespace + "nonNegativeInteger")
	XSDNonPositiveInteger = rdf.IRI(XSDNamespace + "nonPositiveInteger")
	XSDNegativeInteger    = rdf.IRI(XSDNamespace + "negativeInteger")
	XSDPositiveInteger    = rdf.IRI(XSDNamespace + "positiveInteger")
	XSDUnsignedLong       = rdf.IRI(XSDNamespace + "unsignedLong")
	XSDUnsignedInt        = rdf.IRI(XSDNamespace + "unsignedInt")
	XSDUnsignedShort      = rdf.IRI(XSDNamespace + "unsignedShort")
	XSDUnsignedByte       = rdf.IRI(XSDNamespace + "unsignedByte")

	XSDFloat   = rdf.IRI(XSDNamespace + "float")
	XSDDouble  = rdf.IRI(XSDNamespace + "double")
	XSDDecimal = rdf.IRI(XSDNamespace + "decimal")
)

// Date and time datatypes.
const (
	XSDDate     = rdf.IRI(XSDNamespace + "date")
	XSDTime     = rdf.IRI(XSDNamespace + "time")
	XSDDateTime = rdf.IRI(XSDNamespace + "dateTime")
)

// RDF Concepts datatypes.
const (
	// RDFXMLLiteral is the datatype of XML fragment literals.
	RDFXMLLiteral = rdf.IRI(RDFNamespace + "XMLLiteral")

	// RDFLangString is the datatype of language-tagged strings. It is never
	// given explicitly on construction; the language tag implies it.
	RDFLangString = rdf.IRI(RDFNamespace + "langString")
)

// InXSD reports whether the IRI is in the XML Schema namespace.
func InXSD(iri rdf.IRI) bool {
	return strings.HasPrefix(string(iri), XSDNamespace)
}

// LocalName returns the fragment after the namespace separator, or the full
// IRI when it has no # separator.
func LocalName(iri rdf.IRI) string {
	s := string(iri)
	if i := strings.LastIndex(s, "#"); i >= 0 {
		return s[i+1:]
	}
	return s
}
