// Enumeration-like type for content mimetypes.
package mimetype

import (
	"strings"
)

/*
MimeType is used to enumerate the default representation for content encoding
types. Non default MimeTypes can be used by wrapping a custom string:

	MimeType("application/x-my-format")
*/
type MimeType string

const (
	// OCTET_STREAM is the default media type checked on incoming binary
	// payloads and attached to outgoing ones.
	OCTET_STREAM = MimeType("application/octet-stream")
	MSGPACK      = MimeType("application/msgpack")
	CBOR         = MimeType("application/cbor")
	BSON         = MimeType("application/bson")
	GOB          = MimeType("application/x-gob")
	// UNKNOWN is used when the incoming string is blank
	UNKNOWN = MimeType("")
)

// Interface for object used to fetch headers such as http.Request.Header or
// http.Response.Header
type headerFetcher interface {
	Get(string) string
}

// Extract content type from a message / request header.
func FromHeader(headers headerFetcher) MimeType {
	return Normalize(headers.Get("Content-Type"))
}

/*
Normalize converts an incoming Content-Type string to a MimeType suitable for
comparison against a configured media type. The matching policy is fixed:

• media-type parameters are stripped, so "application/octet-stream;
charset=utf-8" normalizes to "application/octet-stream" -- strict clients that
append parameters are not spuriously rejected

• surrounding whitespace is trimmed

• the type/subtype is lower-cased, making comparison case-insensitive

A blank string yields UNKNOWN.
*/
func Normalize(incoming string) MimeType {
	if semicolon := strings.Index(incoming, ";"); semicolon != -1 {
		incoming = incoming[:semicolon]
	}
	incoming = strings.TrimSpace(incoming)
	incoming = strings.ToLower(incoming)

	return MimeType(incoming)
}
