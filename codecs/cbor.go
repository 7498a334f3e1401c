package codecs

import (
	"bytes"

	"github.com/ugorji/go/codec"

	"github.com/illuscio-dev/spanbind-go/mimetype"
)

/*
CBOR encodes content with the Concise Binary Object Representation format
through the codec library (https://godoc.org/github.com/ugorji/go/codec).

The underlying handle is exposed through Handle() so that type extensions can
be registered on it the same way they are for that library's other formats.
Extensions must be registered before the codec is put into service; the handle
is not safe to mutate while requests are in flight.
*/
type CBOR struct {
	handle *codec.CborHandle
}

func NewCBOR() *CBOR {
	return &CBOR{handle: &codec.CborHandle{}}
}

// Returns the internal codec.CborHandle used for encoding and decoding.
func (cborCodec *CBOR) Handle() *codec.CborHandle {
	return cborCodec.handle
}

func (cborCodec *CBOR) ContentType() mimetype.MimeType {
	return mimetype.CBOR
}

func (cborCodec *CBOR) Marshal(content interface{}) ([]byte, error) {
	buffer := bytes.Buffer{}
	encoder := codec.NewEncoder(&buffer, cborCodec.handle)
	if err := encoder.Encode(content); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func (cborCodec *CBOR) Unmarshal(data []byte, contentReceiver interface{}) error {
	decoder := codec.NewDecoderBytes(data, cborCodec.handle)
	return decoder.Decode(contentReceiver)
}

var _ Codec = (*CBOR)(nil)
