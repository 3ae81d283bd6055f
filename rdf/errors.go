package rdf

import (
	"errors"
	"fmt"
)

// ErrorCode is a programmatic error classification for the small set
// of ways parsing or constructing a value in this package can fail.
type ErrorCode string

const (
	// ErrCodeParse indicates a grammar production failed at some offset.
	ErrCodeParse ErrorCode = "PARSE_ERROR"
	// ErrCodeInvalidPercentEncoding indicates a malformed %HH triplet or
	// a percent-decoded byte sequence that is not valid UTF-8.
	ErrCodeInvalidPercentEncoding ErrorCode = "INVALID_PERCENT_ENCODING"
	// ErrCodeDomain indicates a value failed a domain constraint: port
	// range, IPv4/IPv6 byte length, blank-node id shape, language tag
	// shape.
	ErrCodeDomain ErrorCode = "DOMAIN_ERROR"
	// ErrCodeUnsupported indicates a value with no typed-literal mapping,
	// e.g. LiteralFrom given a Go type it has no XSD datatype for.
	ErrCodeUnsupported ErrorCode = "UNSUPPORTED"
)

// Code returns the error code for an error, or "" if err is nil or
// does not originate from this package.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		return ErrCodeParse
	}
	var derr *DomainError
	if errors.As(err, &derr) {
		switch derr.Kind {
		case "InvalidPercentEncoding":
			return ErrCodeInvalidPercentEncoding
		case "Unsupported":
			return ErrCodeUnsupported
		default:
			return ErrCodeDomain
		}
	}
	return ""
}

// ParseError reports a failed grammar production, naming the production
// and the byte offset in the input at which it failed.
type ParseError struct {
	// Production is the grammar rule that failed, e.g. "scheme", "ipv6".
	Production string
	// Input is the text the failed production was given, which may be
	// only the remainder of the caller's original string.
	Input string
	// Offset is the 0-based byte offset into Input at which the
	// production failed.
	Offset int
	// Err is the underlying cause, if any (e.g. a percent-decoding error).
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("expected %s at offset %d: %v", e.Production, e.Offset, e.Err)
	}
	return fmt.Sprintf("expected %s at offset %d", e.Production, e.Offset)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DomainError reports a value that failed validation outside of the
// grammar itself: a port out of range, a fixed-length byte array of
// the wrong size, a blank-node id or language tag failing its shape
// check, or a malformed percent-encoding.
type DomainError struct {
	// Kind names the failed check, e.g. "Port", "IPv4", "IPv6",
	// "BlankNodeID", "LanguageTag", "InvalidPercentEncoding".
	Kind string
	// Msg is a human-readable description.
	Msg string
}

func (e *DomainError) Error() string {
	if e.Kind == "" {
		return e.Msg
	}
	return e.Kind + ": " + e.Msg
}

func parseErrAt(production string, input string, offset int) error {
	return &ParseError{Production: production, Input: input, Offset: offset}
}

func parseErrWrap(production string, input string, offset int, cause error) error {
	return &ParseError{Production: production, Input: input, Offset: offset, Err: cause}
}
