package payload

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
)

// HandlerFunc is the typed handler signature Handle wraps: a decoded request
// value in, a response value out. Returning a nil response produces a 204
// with no body.
type HandlerFunc[Req any, Resp any] func(
	ctx context.Context, request *Req,
) (*Resp, error)

// Binding carries the per-route settings for Handle.
type Binding struct {
	config *Config
	log    zerolog.Logger
}

// BindOption overrides one Binding setting at route-registration time.
type BindOption func(*Binding)

// WithConfig sets the payload Config for the route. Routes without an
// override share the process-wide default config.
func WithConfig(config *Config) BindOption {
	return func(binding *Binding) {
		binding.config = config
	}
}

// WithLogger sets the logger used to report failed extractions and encodes.
// Logging is disabled by default.
func WithLogger(log zerolog.Logger) BindOption {
	return func(binding *Binding) {
		binding.log = log.With().Str("component", "payload-binding").Logger()
	}
}

/*
Handle binds a typed handler into a net/http handler: the request body is
decoded into Req before fn runs, and fn's returned value is encoded as the
response body.

Decode failures are answered with the error type's HTTP code and error-*
headers without invoking fn: 415 for a mismatched content-type, 413 for an
oversized body, 400 for a failed read or undecodable body. A failed response
encode answers 500.

Errors returned by fn itself are answered with a bare 500; classifying
application errors is the host's concern, not this binding's.
*/
func Handle[Req any, Resp any](
	fn HandlerFunc[Req, Resp], opts ...BindOption,
) http.HandlerFunc {
	binding := &Binding{config: nil, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(binding)
	}

	return func(writer http.ResponseWriter, request *http.Request) {
		decoded, payloadErr := Decode[Req](NewRequestSource(request), binding.config)
		if payloadErr != nil {
			binding.log.Debug().
				Str("path", request.URL.Path).
				Str("error-type", payloadErr.Name()).
				Msg("failed to extract payload from request body")

			WriteError(writer, payloadErr)
			return
		}

		response, err := fn(request.Context(), decoded.Value())
		if err != nil {
			binding.log.Debug().
				Str("path", request.URL.Path).
				Err(err).
				Msg("handler returned error")

			http.Error(
				writer,
				http.StatusText(http.StatusInternalServerError),
				http.StatusInternalServerError,
			)
			return
		}

		if response == nil {
			writer.WriteHeader(http.StatusNoContent)
			return
		}

		payloadErr = Respond(writer, http.StatusOK, response, binding.config)
		if payloadErr != nil {
			binding.log.Debug().
				Str("path", request.URL.Path).
				Str("error-type", payloadErr.Name()).
				Msg("failed to encode response body")

			WriteError(writer, payloadErr)
		}
	}
}
