package literal

import "github.com/cdchapman/rdf/vocabulary"

// Shared canonical constants. They are process-wide singletons, already in
// canonical form, and safe to alias across any number of concurrent
// readers; callers must not canonicalize or otherwise mutate them in place
// (use Canonical for a copy).
var (
	// True is the canonical boolean true literal.
	True = &Literal{
		kind:       KindBoolean,
		lexical:    "true",
		hasLexical: true,
		native:     true,
		datatype:   vocabulary.XSDBoolean,
	}

	// False is the canonical boolean false literal.
	False = &Literal{
		kind:       KindBoolean,
		lexical:    "false",
		hasLexical: true,
		native:     false,
		datatype:   vocabulary.XSDBoolean,
	}

	// Zero is the canonical zero-valued integer literal.
	Zero = &Literal{
		kind:       KindInteger,
		lexical:    "0",
		hasLexical: true,
		native:     int64(0),
		datatype:   vocabulary.XSDInteger,
	}
)
