// Typed extraction of binary request bodies and typed encoding of binary
// response bodies.
package payload

/*
Payload is an owning wrapper around a single decoded value. A Payload only
comes into existence at the end of a successful decode: it is always fully
decoded, with no partial or lazy state.

It is created by Decode, consumed by handler code, and destructured on the
response path.
*/
type Payload[T any] struct {
	value T
}

// NewPayload wraps an already-decoded value.
func NewPayload[T any](value T) *Payload[T] {
	return &Payload[T]{value: value}
}

// Value returns a pointer to the wrapped value for in-place access.
func (payload *Payload[T]) Value() *T {
	return &payload.value
}

// Into destructures the payload to its inner value.
func (payload *Payload[T]) Into() T {
	return payload.value
}
