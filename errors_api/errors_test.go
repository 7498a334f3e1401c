package errors_api_test

//revive:disable:import-shadowing reason: Disabled for assert := assert.New(), which is
// the preferred method of using multiple asserts in a test.

import (
	"errors"
	"net/http"
	"testing"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"

	"github.com/illuscio-dev/spanbind-go/errors_api"
)

func TestDefaultErrorTypes(test *testing.T) {
	assert := assert.New(test)

	assert.Equal(415, errors_api.UnsupportedMediaTypeError.HttpCode())
	assert.Equal(413, errors_api.PayloadTooLargeError.HttpCode())
	assert.Equal(400, errors_api.PayloadReadError.HttpCode())
	assert.Equal(400, errors_api.DeserializeError.HttpCode())
	assert.Equal(500, errors_api.SerializeError.HttpCode())

	// Every default type must have a unique api code and appear in the code
	// index.
	seen := make(map[int]bool)
	for _, errorType := range errors_api.ErrorList {
		assert.False(seen[errorType.ApiCode()], errorType.Name())
		seen[errorType.ApiCode()] = true

		indexed, ok := errors_api.ErrorTypeCodeIndex[errorType.ApiCode()]
		assert.True(ok, errorType.Name())
		assert.Equal(errorType, indexed)
	}
}

func TestNewError(test *testing.T) {
	assert := assert.New(test)

	sourceErr := xerrors.New("stream truncated")
	payloadError := errors_api.PayloadReadError.New(
		"error reading body",
		map[string]interface{}{"bytes-read": 512},
		sourceErr,
	)

	assert.Equal("PayloadReadError", payloadError.Name())
	assert.Equal(1102, payloadError.ApiCode())
	assert.Equal(400, payloadError.HttpCode())
	assert.Equal("error reading body", payloadError.Message)
	assert.NotEqual(uuid.UUID{}, payloadError.ID)
	assert.Equal(512, payloadError.ErrorData["bytes-read"])

	assert.Equal(
		"PayloadReadError (1102) - error reading body", payloadError.Error(),
	)
	assert.True(errors.Is(payloadError, sourceErr))
	assert.True(payloadError.IsType(errors_api.PayloadReadError))
	assert.False(payloadError.IsType(errors_api.DeserializeError))
}

func TestWithHttpCode(test *testing.T) {
	assert := assert.New(test)

	adjusted := errors_api.PayloadTooLargeError.WithHttpCode(400)

	assert.Equal(400, adjusted.HttpCode())
	assert.Equal(errors_api.PayloadTooLargeError.Name(), adjusted.Name())
	assert.Equal(errors_api.PayloadTooLargeError.ApiCode(), adjusted.ApiCode())

	// The original definition is untouched.
	assert.Equal(413, errors_api.PayloadTooLargeError.HttpCode())

	// Instances of the adjusted type still match the base definition.
	payloadError := adjusted.New("too big", nil, nil)
	assert.True(payloadError.IsType(errors_api.PayloadTooLargeError))
}

func TestToHeader(test *testing.T) {
	assert := assert.New(test)

	payloadError := errors_api.PayloadTooLargeError.New(
		"body exceeds maximum payload size",
		map[string]interface{}{"max-size": 1024},
		nil,
	)

	headers := make(http.Header)
	payloadError.ToHeader(headers)

	assert.Equal("PayloadTooLargeError", headers.Get("error-name"))
	assert.Equal("1101", headers.Get("error-code"))
	assert.Equal(
		"body exceeds maximum payload size", headers.Get("error-message"),
	)
	assert.Equal(payloadError.ID.String(), headers.Get("error-id"))
	assert.Equal("1024", headers.Get("error-data-max-size"))
}

func TestLogMessage(test *testing.T) {
	assert := assert.New(test)

	sourceErr := xerrors.New("connection reset")
	payloadError := errors_api.PayloadReadError.New(
		"error reading body", nil, sourceErr,
	)

	logMessage := payloadError.LogMessage()

	assert.Contains(logMessage, "error reading body")
	assert.Contains(logMessage, "connection reset")
	assert.Contains(logMessage, "STACK")
}
