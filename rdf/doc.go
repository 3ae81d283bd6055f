// Package rdf implements IRI parsing and manipulation per RFC 3987
// (Internationalized Resource Identifiers), RFC 3986 (URIs), and
// RFC 8141 (URNs), plus a small in-memory RDF term and graph model
// built on top of it.
//
// An IRI decomposes into one of three forms:
//   - Url: the generic scheme + authority + path + query + fragment form.
//   - Urn: an RFC 8141 "urn:" identifier (namespace id, nss, r/q-components).
//   - RelativeIri: a scheme-less IRI reference.
//
// ParseIRI recognizes which form raw text takes; ParseURL and ParseURN
// are convenience wrappers that additionally require the parsed result
// to be a Url or a Urn respectively.
//
// Every value type in this package (Path, Query, Host, IRI and its
// variants, Term and its variants) is immutable: operations that would
// mutate a value instead return a new one.
//
// Path implements RFC 3986's path grammar as a right-recursive list of
// constructors, and provides RFC 3986 §5.2.4 dot-segment removal.
// Resolve implements RFC 3986 §5.2.2 reference resolution against a Url
// base. Against a Urn base it accepts only a Urn reference and merges
// nothing but the base's r-component (see Resolve).
//
// The rendering methods AsString and AsURI expose the "IRI" vs "URI"
// distinction directly: AsString keeps non-ASCII text readable, AsURI
// percent-encodes everything outside a production's ASCII-safe set.
//
// Example:
//
//	base, err := rdf.ParseIRI("http://example.com/a/b/c")
//	if err != nil {
//	    // handle error
//	}
//	ref, err := rdf.ParseIRI("../g")
//	if err != nil {
//	    // handle error
//	}
//	resolved, err := rdf.Resolve(base, ref)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(resolved.AsString()) // http://example.com/a/g
//
// Term, BlankNode, IriNode, and Literal model the RDF abstract syntax
// (RDF 1.1 Concepts and Abstract Syntax) used to build Triples and
// Graphs; Graph provides deduplicated add/remove/union/difference and
// explicit-worklist cycle and connectivity checks.
package rdf
