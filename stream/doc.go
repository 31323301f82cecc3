// Package stream provides the literal canonicalizer component: a JetStream
// consumer that decodes literal records, validates them against their
// datatype grammar and republishes them in canonical form.
//
// Invalid records are a data-quality condition, not a transient failure:
// they are counted, logged and acknowledged, never redelivered. Publish
// failures are transient and negatively acknowledged so JetStream redelivers.
package stream
