package codecs

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/illuscio-dev/spanbind-go/mimetype"
)

// BSON encodes content through the official bson driver
// (https://godoc.org/go.mongodb.org/mongo-driver). Content must be a document
// type (a struct or map); bson has no top-level representation for scalars or
// lists.
type BSON struct{}

func (bsonCodec BSON) ContentType() mimetype.MimeType {
	return mimetype.BSON
}

func (bsonCodec BSON) Marshal(content interface{}) ([]byte, error) {
	return bson.Marshal(content)
}

func (bsonCodec BSON) Unmarshal(data []byte, contentReceiver interface{}) error {
	return bson.Unmarshal(data, contentReceiver)
}

var _ Codec = BSON{}
