package errors_api

// Returns a payload error type definition. Each definition should only need
// to be declared once in a shared library for any given ecosystem, ensuring
// consistent error codes and names for the error type across all services /
// libraries of a given language.
func NewPayloadErrorType(
	name string,
	apiCode int,
	httpCode int,
) *PayloadErrorType {
	payloadErrorType := &PayloadErrorType{
		name:     name,
		apiCode:  apiCode,
		httpCode: httpCode,
	}
	return payloadErrorType
}
