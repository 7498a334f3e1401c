package codecs

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/illuscio-dev/spanbind-go/mimetype"
)

// Msgpack encodes content with the MessagePack format
// (https://godoc.org/github.com/vmihailenco/msgpack). This is the default
// codec: compact, schema-less, and handles binary data natively.
type Msgpack struct{}

func (msgpackCodec Msgpack) ContentType() mimetype.MimeType {
	return mimetype.MSGPACK
}

func (msgpackCodec Msgpack) Marshal(content interface{}) ([]byte, error) {
	return msgpack.Marshal(content)
}

func (msgpackCodec Msgpack) Unmarshal(
	data []byte, contentReceiver interface{},
) error {
	return msgpack.Unmarshal(data, contentReceiver)
}

var _ Codec = Msgpack{}
