package codecs

import (
	"bytes"
	"encoding/gob"

	"github.com/illuscio-dev/spanbind-go/mimetype"
)

// Gob encodes content with the standard library's gob format. Useful when
// both ends of the wire are Go services inside the same ecosystem.
type Gob struct{}

func (gobCodec Gob) ContentType() mimetype.MimeType {
	return mimetype.GOB
}

func (gobCodec Gob) Marshal(content interface{}) ([]byte, error) {
	buffer := new(bytes.Buffer)
	encoder := gob.NewEncoder(buffer)
	if err := encoder.Encode(content); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func (gobCodec Gob) Unmarshal(data []byte, contentReceiver interface{}) error {
	decoder := gob.NewDecoder(bytes.NewReader(data))
	return decoder.Decode(contentReceiver)
}

var _ Codec = Gob{}
