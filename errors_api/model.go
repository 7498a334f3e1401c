package errors_api

import (
	"fmt"
	"runtime/debug"
	"strconv"

	uuid "github.com/satori/go.uuid"
	"golang.org/x/xerrors"
)

// Interface for object that can set header information.
type headerSetter interface {
	Set(key string, value string)
}

/*
PayloadErrorType defines a TYPE of error that CAN be raised while extracting a
payload from a request body or encoding one into a response body.

Each PayloadErrorType for a given ecosystem should have a unique Name and
APICode. Codes 1100-1199 are reserved for this module's default error
definitions.

Since types are declared as pointers, to protect against accidental mutation
of the error type by other packages, the underlying fields of this struct are
private and accessed through functions. Define new error types using
NewPayloadErrorType().
*/
type PayloadErrorType struct {
	// Unique human-readable name of the error type for the API ecosystem.
	name string

	// Unique number to identify the error type in the API ecosystem.
	apiCode int

	// HTTP code that should be returned when this error type is surfaced to
	// a client.
	httpCode int
}

// Returns a new payload error to be surfaced to the host framework.
func (errorType *PayloadErrorType) New(
	message string,
	errorData map[string]interface{},
	source error,
) *PayloadError {
	payloadError := PayloadError{
		PayloadErrorType: errorType,
		Message:          message,
		ID:               uuid.NewV4(),
		ErrorData:        errorData,
		sourceErr:        source,
		sourceStack:      debug.Stack(),
		frame:            xerrors.Caller(0),
	}
	return &payloadError
}

// Unique human-readable name of the error type for the API ecosystem.
func (errorType *PayloadErrorType) Name() string {
	return errorType.name
}

// Unique number to identify the error type in the API ecosystem.
func (errorType *PayloadErrorType) ApiCode() int {
	return errorType.apiCode
}

// HTTP code that should be returned when this error type is surfaced to a
// client.
func (errorType *PayloadErrorType) HttpCode() int {
	return errorType.httpCode
}

// Returns a copy of the error type with the given http code replaced.
func (errorType *PayloadErrorType) WithHttpCode(newHttpCode int) *PayloadErrorType {
	return &PayloadErrorType{
		name:     errorType.name,
		apiCode:  errorType.apiCode,
		httpCode: newHttpCode,
	}
}

// Allows the error type definition itself to also be a valid error for things
// like testing error equality.
func (errorType *PayloadErrorType) Error() string {
	return errorType.name +
		" (" + strconv.Itoa(errorType.apiCode) + ")"
}

// Used to return a specific error instance.
type PayloadError struct {
	// The type of error we are returning.
	*PayloadErrorType

	// A message detailing what caused the error.
	Message string

	// An id for the error being returned.
	ID uuid.UUID

	// A string / any mapping of diagnostic data related to the error, such as
	// the byte sizes involved or the content-type seen on the request. Never
	// holds partially-decoded payload data.
	ErrorData map[string]interface{}

	// If this error was raised because of another error, the original error
	// is stored here.
	sourceErr error

	// The debug.Stack() from where this error was instantiated.
	sourceStack []byte

	// The xerrors.Frame from where this error was instantiated.
	frame xerrors.Frame
}

// Returns true if the underlying type of this error is the same as errorType.
// Some errors may have multiple http codes possible, so we can't just compare
// PayloadErrorType field equality directly.
func (payloadError *PayloadError) IsType(errorType *PayloadErrorType) bool {
	return payloadError.PayloadErrorType.Error() == errorType.Error()
}

// Error string to conform to builtin error interface.
func (payloadError *PayloadError) Error() string {
	return payloadError.PayloadErrorType.Error() + " - " + payloadError.Message
}

// Implements xerrors.Wrapper so errors.Is / errors.As can reach the source
// error.
func (payloadError *PayloadError) Unwrap() error {
	return payloadError.sourceErr
}

// More verbose error message that includes a debug.Stack() and source error
// information. This is not part of the Error(), Message, or ErrorData by
// default since it may contain sensitive information that is not desirable to
// return to the client.
func (payloadError *PayloadError) LogMessage() string {
	loggerMessage := fmt.Sprint(
		// print the error
		"\nMESSAGE: ",
		payloadError.Error(),
		"\nORIGINAL: ",
		payloadError.sourceErr,
		"\nSTACK:\n",
		string(payloadError.sourceStack),
	)
	return loggerMessage
}

// Writes error to an object which implements a Set(key string, value string)
// method like http.Request.Header or http.Response.Header. Diagnostic data is
// flattened to one "error-data-"-prefixed header per key.
func (payloadError *PayloadError) ToHeader(setter headerSetter) {
	setter.Set("error-name", payloadError.name)
	setter.Set("error-code", strconv.Itoa(payloadError.apiCode))
	setter.Set("error-message", payloadError.Message)
	setter.Set("error-id", payloadError.ID.String())

	for key, value := range payloadError.ErrorData {
		setter.Set("error-data-"+key, fmt.Sprint(value))
	}
}
