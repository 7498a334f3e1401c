package payload_test

//revive:disable:import-shadowing reason: Disabled for assert := assert.New(), which is
// the preferred method of using multiple asserts in a test.

import (
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/illuscio-dev/spanbind-go/codecs"
	"github.com/illuscio-dev/spanbind-go/errors_api"
	"github.com/illuscio-dev/spanbind-go/mimetype"
	"github.com/illuscio-dev/spanbind-go/payload"
)

// Codec whose marshal always fails, for exercising the serialize error path.
// Unmarshal is inherited from Msgpack so decode still works.
type failingMarshalCodec struct {
	codecs.Msgpack
}

func (failing failingMarshalCodec) Marshal(content interface{}) ([]byte, error) {
	return nil, xerrors.New("marshal refused")
}

func TestEncodeDefaults(test *testing.T) {
	assert := assert.New(test)

	testName := Name{First: "Harry", Last: "Potter"}

	body, contentType, payloadErr := payload.Encode(testName, nil)

	require.Nil(test, payloadErr)
	assert.Equal(mimetype.OCTET_STREAM, contentType)

	loaded := Name{}
	require.NoError(test, codecs.Msgpack{}.Unmarshal(body, &loaded))
	assert.Equal(testName, loaded)
}

func TestEncodeSerializeFailure(test *testing.T) {
	assert := assert.New(test)

	config := payload.NewConfig(payload.WithCodec(failingMarshalCodec{}))
	body, contentType, payloadErr := payload.Encode(Name{}, config)

	assert.Nil(body)
	assert.Equal(mimetype.UNKNOWN, contentType)
	require.NotNil(test, payloadErr)
	assert.True(payloadErr.IsType(errors_api.SerializeError))
	assert.Equal(500, payloadErr.HttpCode())
}

func TestRespond(test *testing.T) {
	assert := assert.New(test)

	testName := Name{First: "Harry", Last: "Potter"}
	recorder := httptest.NewRecorder()

	payloadErr := payload.Respond(recorder, 200, testName, nil)
	require.Nil(test, payloadErr)

	response := recorder.Result()
	assert.Equal(200, response.StatusCode)
	assert.Equal(
		string(mimetype.OCTET_STREAM), response.Header.Get("Content-Type"),
	)

	body := recorder.Body.Bytes()
	assert.Equal(
		strconv.Itoa(len(body)), response.Header.Get("Content-Length"),
	)

	loaded := Name{}
	require.NoError(test, codecs.Msgpack{}.Unmarshal(body, &loaded))
	assert.Equal(testName, loaded)
}

func TestRespondSerializeFailureWritesNothing(test *testing.T) {
	assert := assert.New(test)

	recorder := httptest.NewRecorder()
	config := payload.NewConfig(payload.WithCodec(failingMarshalCodec{}))

	payloadErr := payload.Respond(recorder, 200, Name{}, config)

	require.NotNil(test, payloadErr)
	assert.True(payloadErr.IsType(errors_api.SerializeError))
	assert.Zero(recorder.Body.Len())
}

func TestWriteError(test *testing.T) {
	assert := assert.New(test)

	recorder := httptest.NewRecorder()
	payloadErr := errors_api.PayloadTooLargeError.New(
		"body exceeds maximum payload size",
		map[string]interface{}{"max-size": 1024},
		nil,
	)

	payload.WriteError(recorder, payloadErr)

	response := recorder.Result()
	assert.Equal(413, response.StatusCode)
	assert.Equal("PayloadTooLargeError", response.Header.Get("error-name"))
	assert.Equal("1101", response.Header.Get("error-code"))
	assert.Equal(payloadErr.ID.String(), response.Header.Get("error-id"))
	assert.Equal("1024", response.Header.Get("error-data-max-size"))
}
