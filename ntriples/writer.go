package ntriples

import (
	"strings"

	"github.com/cdchapman/rdf"
	"github.com/cdchapman/rdf/literal"
	"github.com/cdchapman/rdf/vocabulary"
)

// FormatIRI renders an IRI reference in angle brackets.
func FormatIRI(iri rdf.IRI) string {
	return "<" + string(iri) + ">"
}

// FormatLiteral renders a literal in the N-Triples grammar: the escaped
// lexical form in double quotes, followed by a language tag or a datatype
// annotation when present. An xsd:string datatype is omitted, matching the
// canonical N-Triples form.
func FormatLiteral(l *literal.Literal) string {
	var b strings.Builder
	b.WriteByte('"')
	escape(&b, l.Value())
	b.WriteByte('"')

	switch {
	case l.HasLanguage():
		b.WriteByte('@')
		b.WriteString(l.Language())
	case l.HasDatatype() && l.Datatype() != vocabulary.XSDString:
		b.WriteString("^^")
		b.WriteString(FormatIRI(l.Datatype()))
	}

	return b.String()
}

// escape writes s with the ECHAR escapes the N-Triples string grammar
// requires.
func escape(b *strings.Builder, s string) {
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
}
