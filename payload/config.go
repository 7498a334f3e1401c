package payload

import (
	"io"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"

	"github.com/illuscio-dev/spanbind-go/codecs"
	"github.com/illuscio-dev/spanbind-go/mimetype"
)

// SizeUnbounded disables the maximum payload size check. Unlimited reads are
// never the default; opting in should be a deliberate, reviewed decision.
const SizeUnbounded int64 = -1

// DefaultMaxSize is the maximum body size accepted when no override is
// given: 32KiB.
const DefaultMaxSize int64 = 32_768

/*
Config holds the limits and toggles applied while decoding and encoding
payloads.

A Config is read-only once built: the process-wide default is initialized at
startup and per-route overrides are passed at registration time through
functional options or FromYAML. A Config is never mutated during request
handling, so one value may be shared by any number of concurrent requests.
*/
type Config struct {
	// Maximum number of body bytes accepted before a decode is abandoned
	// with PayloadTooLargeError. SizeUnbounded disables the check.
	MaxSize int64 `yaml:"max_size"`

	// Media type required on incoming requests and attached to outgoing
	// responses.
	ContentType mimetype.MimeType `yaml:"content_type"`

	// When false, the decoder accepts any declared content-type.
	CheckContentType bool `yaml:"check_content_type"`

	// Codec used to deserialize request bodies and serialize response
	// bodies. Resolved by name through codecs.DefaultRegistry when loading
	// from YAML.
	Codec codecs.Codec `yaml:"-"`
}

// DefaultConfig returns the settings used when a route does not override
// anything: 32KiB limit, application/octet-stream, content-type checking on,
// msgpack codec.
func DefaultConfig() *Config {
	return &Config{
		MaxSize:          DefaultMaxSize,
		ContentType:      mimetype.OCTET_STREAM,
		CheckContentType: true,
		Codec:            codecs.DefaultRegistry.Default(),
	}
}

// Process-wide default configuration, used whenever a nil *Config is passed.
// Initialized once; never mutated.
var defaultConfig = DefaultConfig()

// Option overrides one Config setting at route-registration time.
type Option func(*Config)

// Change max size of payload. By default max size is 32KiB.
func WithMaxSize(maxSize int64) Option {
	return func(config *Config) {
		config.MaxSize = maxSize
	}
}

// Disable the maximum payload size check entirely. Calling this is the only
// way to get an unbounded read, so the opt-in stays auditable.
func WithUnboundedSize() Option {
	return func(config *Config) {
		config.MaxSize = SizeUnbounded
	}
}

// Change the media type required on requests and attached to responses. The
// value is normalized with the same policy applied to incoming headers.
func WithContentType(mimeType mimetype.MimeType) Option {
	return func(config *Config) {
		config.ContentType = mimetype.Normalize(string(mimeType))
	}
}

// Enable or disable content-type checking. When disabled the decoder accepts
// any declared content-type.
func WithContentTypeCheck(enabled bool) Option {
	return func(config *Config) {
		config.CheckContentType = enabled
	}
}

// Change the codec used to deserialize requests and serialize responses.
func WithCodec(withCodec codecs.Codec) Option {
	return func(config *Config) {
		config.Codec = withCodec
	}
}

// NewConfig builds a Config from the defaults plus the given overrides.
func NewConfig(opts ...Option) *Config {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// configYAML is the on-disk schema for Config. Pointer fields distinguish
// "absent" from zero values so absent keys fall back to defaults.
type configYAML struct {
	MaxSize          *int64 `yaml:"max_size"`
	ContentType      string `yaml:"content_type"`
	CheckContentType *bool  `yaml:"check_content_type"`
	Codec            string `yaml:"codec"`
}

/*
FromYAML loads a Config from a YAML document, falling back to DefaultConfig()
for any absent key. The codec key names a codec registered in
codecs.DefaultRegistry:

	max_size: 1048576
	content_type: application/octet-stream
	check_content_type: true
	codec: msgpack
*/
func FromYAML(reader io.Reader) (*Config, error) {
	raw := configYAML{}
	decoder := yaml.NewDecoder(reader)
	if err := decoder.Decode(&raw); err != nil {
		return nil, xerrors.Errorf("error parsing payload config: %w", err)
	}

	config := DefaultConfig()

	if raw.MaxSize != nil {
		config.MaxSize = *raw.MaxSize
	}
	if raw.ContentType != "" {
		config.ContentType = mimetype.Normalize(raw.ContentType)
	}
	if raw.CheckContentType != nil {
		config.CheckContentType = *raw.CheckContentType
	}
	if raw.Codec != "" {
		named, ok := codecs.DefaultRegistry.Get(raw.Codec)
		if !ok {
			return nil, xerrors.New(
				"no codec registered under '" + raw.Codec + "'",
			)
		}
		config.Codec = named
	}

	return config, nil
}
