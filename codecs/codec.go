package codecs

import (
	"golang.org/x/xerrors"

	"github.com/illuscio-dev/spanbind-go/mimetype"
)

/*
Codec is the contract for a binary codec: anything that can turn a typed value
into a byte buffer and a byte buffer back into a typed value.

Implementations must be stateless across calls so that a single codec value
can be shared by any number of concurrent requests.
*/
type Codec interface {
	// The media type this codec naturally produces, for callers that want to
	// label content with the codec's own format rather than a generic one.
	ContentType() mimetype.MimeType

	// Serializes content to a byte buffer.
	Marshal(content interface{}) ([]byte, error)

	// Deserializes data into contentReceiver, which must be a pointer.
	Unmarshal(data []byte, contentReceiver interface{}) error
}

// SafeMarshal runs codec.Marshal while catching panics to return as errors.
func SafeMarshal(codec Codec, content interface{}) (data []byte, err error) {
	defer func() {
		recovered := recover()
		if recovered != nil {
			err = xerrors.Errorf("panic during marshal: %v", recovered)
		}
	}()

	return codec.Marshal(content)
}

// SafeUnmarshal runs codec.Unmarshal while catching panics to return as
// errors. A malformed payload must surface as an error, never a panic.
func SafeUnmarshal(
	codec Codec, data []byte, contentReceiver interface{},
) (err error) {
	defer func() {
		recovered := recover()
		if recovered != nil {
			err = xerrors.Errorf("panic during unmarshal: %v", recovered)
		}
	}()

	return codec.Unmarshal(data, contentReceiver)
}
