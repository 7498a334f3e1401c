package errors_api

// Request declared a content-type other than the configured binary media
// type.
var UnsupportedMediaTypeError = NewPayloadErrorType(
	"UnsupportedMediaTypeError",
	1100,
	415,
)

// Request body exceeds the configured maximum payload size, whether declared
// up front through content-length or discovered while reading.
var PayloadTooLargeError = NewPayloadErrorType(
	"PayloadTooLargeError",
	1101,
	413,
)

// Reading the request body failed: connection reset, truncated stream,
// timeout, or a canceled request.
var PayloadReadError = NewPayloadErrorType(
	"PayloadReadError",
	1102,
	400,
)

// Body bytes are not a valid encoding of the receiving type.
var DeserializeError = NewPayloadErrorType(
	"DeserializeError",
	1103,
	400,
)

// Response content could not be serialized. No body can be produced, so this
// is a server-side failure.
var SerializeError = NewPayloadErrorType(
	"SerializeError",
	1104,
	500,
)

// List of default payload error definitions.
var ErrorList = [5]*PayloadErrorType{
	UnsupportedMediaTypeError,
	PayloadTooLargeError,
	PayloadReadError,
	DeserializeError,
	SerializeError,
}

// Used to make ErrorTypeCodeIndex.
func makeDefaultErrorCodeIndex() map[int]*PayloadErrorType {
	index := make(map[int]*PayloadErrorType)
	for _, errorType := range ErrorList {
		index[errorType.apiCode] = errorType
	}
	return index
}

// ApiCode:*PayloadErrorType indexing of default errors.
var ErrorTypeCodeIndex = makeDefaultErrorCodeIndex()
