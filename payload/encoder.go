package payload

import (
	"net/http"
	"strconv"

	"github.com/illuscio-dev/spanbind-go/codecs"
	"github.com/illuscio-dev/spanbind-go/errors_api"
	"github.com/illuscio-dev/spanbind-go/mimetype"
)

/*
Encode serializes content into an outgoing body, returning the bytes and the
media type to attach to the response.

The media type returned is the same one the decoder validates against, so
anything Encode produces round-trips through Decode for the same type. No
size limit applies on encode; locally constructed values are trusted.

A serialization failure is returned as SerializeError -- no body can be
produced, so the host is expected to answer with a server-side failure.

A nil config uses the process-wide defaults.
*/
func Encode(
	content interface{}, config *Config,
) ([]byte, mimetype.MimeType, *errors_api.PayloadError) {
	if config == nil {
		config = defaultConfig
	}

	body, err := codecs.SafeMarshal(config.Codec, content)
	if err != nil {
		return nil, mimetype.UNKNOWN, errors_api.SerializeError.New(
			"could not serialize response content: "+err.Error(),
			nil,
			err,
		)
	}

	return body, config.ContentType, nil
}

// Respond encodes content and writes it to the response with the given
// status. On a serialization failure nothing is written, so the caller can
// still produce an error response.
func Respond(
	writer http.ResponseWriter,
	status int,
	content interface{},
	config *Config,
) *errors_api.PayloadError {
	body, contentType, payloadErr := Encode(content, config)
	if payloadErr != nil {
		return payloadErr
	}

	writer.Header().Set("Content-Type", string(contentType))
	writer.Header().Set("Content-Length", strconv.Itoa(len(body)))
	writer.WriteHeader(status)
	_, _ = writer.Write(body)

	return nil
}

// WriteError maps a payload error onto the response: the error type's HTTP
// code plus the error-* headers. No body is written.
func WriteError(writer http.ResponseWriter, payloadError *errors_api.PayloadError) {
	payloadError.ToHeader(writer.Header())
	writer.WriteHeader(payloadError.HttpCode())
}
