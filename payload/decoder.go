package payload

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/illuscio-dev/spanbind-go/codecs"
	"github.com/illuscio-dev/spanbind-go/errors_api"
	"github.com/illuscio-dev/spanbind-go/mimetype"
)

// How many body bytes are pulled per read while accumulating.
const readChunkSize = 4096

/*
Source is the handle the decoder consumes from the host framework: the
declared size and content-type of an incoming body, the body bytes
themselves, and a context that signals cancellation of the in-flight request.

Keeping this an interface keeps the decode contract free of any one
framework. NewRequestSource adapts a net/http request; other hosts only need
to satisfy these four methods.
*/
type Source interface {
	// Declared content-length of the body in bytes, or -1 when unknown.
	ContentLength() int64

	// Declared content-type of the request, raw / un-normalized.
	ContentType() string

	// The incremental byte source. Bytes may arrive across multiple reads.
	Body() io.Reader

	// Canceled when the host aborts the in-flight request. Must not be nil.
	Context() context.Context
}

// requestSource adapts *http.Request to the Source interface.
type requestSource struct {
	request *http.Request
}

func (source *requestSource) ContentLength() int64 {
	return source.request.ContentLength
}

func (source *requestSource) ContentType() string {
	return source.request.Header.Get("Content-Type")
}

func (source *requestSource) Body() io.Reader {
	// Body is nil on some client-constructed requests.
	if source.request.Body == nil {
		return bytes.NewReader(nil)
	}
	return source.request.Body
}

func (source *requestSource) Context() context.Context {
	return source.request.Context()
}

// NewRequestSource wraps an incoming net/http request as a decode Source.
func NewRequestSource(request *http.Request) Source {
	return &requestSource{request: request}
}

/*
Decode extracts a value of type T from the request body described by source.

Validation runs in a fixed order and the first failing check wins:

1. When config.CheckContentType is set, the declared content-type is
normalized (see mimetype.Normalize) and must equal config.ContentType, or the
decode fails with UnsupportedMediaTypeError.

2. When a maximum size is configured and the declared content-length exceeds
it, the decode fails with PayloadTooLargeError before a single body byte is
read.

3. The body is accumulated into one contiguous buffer. If the running total
passes the maximum -- a caller that lies about content-length, or omits it --
the read is abandoned with PayloadTooLargeError.

4. A failed read, including cancellation of the request context, is
PayloadReadError. The partial buffer is discarded and deserialization is
never attempted.

5. A body the codec cannot deserialize into T, including an empty body, is
DeserializeError.

A nil config uses the process-wide defaults. Decode holds no state between
calls; concurrent decodes for distinct requests are fully independent.
*/
func Decode[T any](
	source Source, config *Config,
) (*Payload[T], *errors_api.PayloadError) {
	if config == nil {
		config = defaultConfig
	}

	if config.CheckContentType {
		contentType := mimetype.Normalize(source.ContentType())
		if contentType != config.ContentType {
			return nil, errors_api.UnsupportedMediaTypeError.New(
				"expected content-type '"+string(config.ContentType)+
					"', got '"+string(contentType)+"'",
				map[string]interface{}{"content-type": string(contentType)},
				nil,
			)
		}
	}

	if declared := source.ContentLength(); config.MaxSize != SizeUnbounded &&
		declared > config.MaxSize {
		return nil, errors_api.PayloadTooLargeError.New(
			"declared content-length exceeds maximum payload size",
			map[string]interface{}{
				"declared-length": declared,
				"max-size":        config.MaxSize,
			},
			nil,
		)
	}

	body, payloadErr := accumulate(source, config)
	if payloadErr != nil {
		return nil, payloadErr
	}

	contentReceiver := new(T)
	if err := codecs.SafeUnmarshal(config.Codec, body, contentReceiver); err != nil {
		return nil, errors_api.DeserializeError.New(
			"body is not a valid encoding of the receiving type: "+err.Error(),
			map[string]interface{}{"body-size": len(body)},
			err,
		)
	}

	return NewPayload(*contentReceiver), nil
}

// accumulate reads the body into a single contiguous buffer, enforcing the
// size limit on the running total and checking for cancellation between
// chunk reads.
func accumulate(source Source, config *Config) ([]byte, *errors_api.PayloadError) {
	ctx := source.Context()
	body := source.Body()

	buffer := bytes.Buffer{}
	chunk := make([]byte, readChunkSize)

	for {
		if err := ctx.Err(); err != nil {
			// Unwind cleanly: the partial buffer is dropped and the
			// deserialization step never runs.
			return nil, errors_api.PayloadReadError.New(
				"request canceled while reading body",
				map[string]interface{}{"bytes-read": buffer.Len()},
				err,
			)
		}

		read, err := body.Read(chunk)
		if read > 0 {
			if config.MaxSize != SizeUnbounded &&
				int64(buffer.Len())+int64(read) > config.MaxSize {
				return nil, errors_api.PayloadTooLargeError.New(
					"body exceeds maximum payload size",
					map[string]interface{}{
						"bytes-read": int64(buffer.Len()) + int64(read),
						"max-size":   config.MaxSize,
					},
					nil,
				)
			}
			buffer.Write(chunk[:read])
		}

		if err == io.EOF {
			return buffer.Bytes(), nil
		}
		if err != nil {
			return nil, errors_api.PayloadReadError.New(
				"error reading body: "+err.Error(),
				map[string]interface{}{"bytes-read": buffer.Len()},
				err,
			)
		}
	}
}
